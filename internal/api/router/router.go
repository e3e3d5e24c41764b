// Package router contains API routing logic
package router

import (
	"github.com/danielgtaylor/huma/v2"

	v0 "github.com/fermm870-del/prompt-system-pro/internal/api/handlers/v0"
	"github.com/fermm870-del/prompt-system-pro/internal/service"
)

// APIPrefix is where all prompt endpoints live; /health stays at the root.
const APIPrefix = "/api"

// RegisterRoutes registers the full REST surface on the given API.
func RegisterRoutes(api huma.API, svc service.PromptService, version string) {
	v0.RegisterHealthEndpoint(api, version)
	v0.RegisterPromptsEndpoints(api, APIPrefix, svc)
	v0.RegisterSearchEndpoint(api, APIPrefix, svc)
	v0.RegisterCompletionEndpoints(api, APIPrefix, svc)
}
