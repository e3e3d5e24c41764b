package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"gopkg.in/yaml.v3"

	"github.com/fermm870-del/prompt-system-pro/internal/api/router"
	"github.com/fermm870-del/prompt-system-pro/internal/version"
)

func main() {
	outputPath := flag.String("output", "openapi.yaml", "Output path for OpenAPI spec")
	versionOverride := flag.String("version", "", "Override the API version (defaults to version.Version)")
	flag.Parse()

	apiVersion := version.Version
	if *versionOverride != "" {
		apiVersion = *versionOverride
	}

	spec := generateSpec(apiVersion)

	yamlData, err := yaml.Marshal(spec)
	if err != nil {
		log.Fatalf("Failed to marshal OpenAPI spec to YAML: %v", err)
	}

	if err := os.WriteFile(*outputPath, yamlData, 0644); err != nil {
		log.Fatalf("Failed to write OpenAPI spec to %s: %v", *outputPath, err)
	}

	absPath, err := filepath.Abs(*outputPath)
	if err != nil {
		absPath = *outputPath
	}
	fmt.Printf("OpenAPI spec generated: %s\n", absPath)
}

// generateSpec creates a Huma API, registers all routes, and returns the
// OpenAPI spec.
func generateSpec(apiVersion string) *huma.OpenAPI {
	mux := http.NewServeMux()

	humaConfig := huma.DefaultConfig("Prompt System Pro", apiVersion)
	humaConfig.Info.Description = "Hierarchical prompt library with one-shot generation and stateless chat."
	// Disable $schema property injection in responses
	humaConfig.CreateHooks = []func(huma.Config) huma.Config{}

	api := humago.New(mux, humaConfig)

	// The service is only captured in handler closures and invoked at
	// request time, not during route registration, so nil is fine here.
	router.RegisterRoutes(api, nil, apiVersion)

	return api.OpenAPI()
}
