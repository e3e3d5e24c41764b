// Package version holds the build version, overridable via ldflags.
package version

// Version is the service version reported by /health and the OpenAPI spec.
var Version = "1.0.0"
