// Package tracing holds the OpenTelemetry tracer for the harvesting
// pipeline. The tracer provider is installed by the entry point; library
// code only creates spans through GetTracer.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("wikicorpus")

// GetTracer returns the global tracer for creating spans.
//
// Example usage:
//
//	ctx, span := tracing.GetTracer().Start(ctx, "wiki.api_get")
//	defer span.End()
func GetTracer() trace.Tracer {
	return tracer
}
