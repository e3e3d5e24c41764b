package v0

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/fermm870-del/prompt-system-pro/pkg/types"
)

// HealthBody represents the health response body
type HealthBody struct {
	Status  string `json:"status" example:"OK" doc:"Service status"`
	Service string `json:"service" example:"Prompt System Pro" doc:"Service name"`
	Version string `json:"version" example:"1.0.0" doc:"Service version"`
}

// RegisterHealthEndpoint registers GET /health at the mux root.
func RegisterHealthEndpoint(api huma.API, version string) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Report service liveness",
		Tags:        []string{"health"},
	}, func(_ context.Context, _ *struct{}) (*types.Response[HealthBody], error) {
		return &types.Response[HealthBody]{
			Body: HealthBody{
				Status:  "OK",
				Service: "Prompt System Pro",
				Version: version,
			},
		}, nil
	})
}
