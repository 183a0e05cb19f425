package app

import (
	validator "github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/noah-isme/backend-rental/internal/ratelimit"
)

// Dependencies enumerates shared infrastructure wired once at startup and
// handed to feature packages explicitly.
type Dependencies struct {
	Validator       *validator.Validate
	Limiter         ratelimit.Limiter
	MetricsRegistry prometheus.Registerer
}

// NewValidator constructs the request validator shared by handlers.
func NewValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// Tracer returns the default OpenTelemetry tracer for instrumentation hooks.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}
