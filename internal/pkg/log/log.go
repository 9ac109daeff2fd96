package log

import (
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Setup builds the service-wide logger. Trace context is attached through
// otelzap so log lines correlate with spans when a collector is configured.
func Setup() *otelzap.Logger {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	return otelzap.New(zapLogger, otelzap.WithMinLevel(zap.InfoLevel))
}
