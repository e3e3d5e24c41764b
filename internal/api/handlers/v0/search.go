package v0

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/fermm870-del/prompt-system-pro/internal/service"
	"github.com/fermm870-del/prompt-system-pro/pkg/models"
	"github.com/fermm870-del/prompt-system-pro/pkg/types"
)

// SearchRequest carries the substring query.
type SearchRequest struct {
	Query string `json:"query,omitempty" doc:"Case-insensitive substring to match" example:"rest"`
}

// SearchInput wraps the request body.
type SearchInput struct {
	Body SearchRequest `body:""`
}

// SearchBody echoes the query alongside its hits.
type SearchBody struct {
	Query   string                `json:"query" example:"rest"`
	Count   int                   `json:"count" example:"1"`
	Results []models.SearchResult `json:"results"`
}

// RegisterSearchEndpoint registers POST {prefix}/search.
func RegisterSearchEndpoint(api huma.API, pathPrefix string, svc service.PromptService) {
	huma.Register(api, huma.Operation{
		OperationID: "search-prompts",
		Method:      http.MethodPost,
		Path:        pathPrefix + "/search",
		Summary:     "Search prompts",
		Description: "Linear substring scan over category names, file names and prompt content. An empty query returns no results.",
		Tags:        []string{"search"},
	}, func(ctx context.Context, input *SearchInput) (*types.Response[SearchBody], error) {
		results := svc.Search(ctx, input.Body.Query)
		return &types.Response[SearchBody]{
			Body: SearchBody{
				Query:   input.Body.Query,
				Count:   len(results),
				Results: results,
			},
		}, nil
	})
}
