package telemetry

import (
	"os"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/hexlink/internal/hex"
)

// Offsets renders a chain of coordinates as a string slice attribute.
func Offsets(key string, chain []hex.Offset) attribute.KeyValue {
	vals := make([]string, len(chain))
	for i, o := range chain {
		vals[i] = o.String()
	}
	return attribute.StringSlice(key, vals)
}

// ConfigureEnv points the OTLP exporter at endpoint unless the environment
// already names one. Headers are only set when non-empty.
func ConfigureEnv(endpoint, headers string) {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" && endpoint != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", endpoint)
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_HEADERS") == "" && headers != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS", headers)
	}
}
