package exception

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// DefaultPlaceholderAddress is reported by the timed-out constructor when the
// failing request carried no target address.
const DefaultPlaceholderAddress = "0.0.0.0:0"

// Option configures a Builder.
type Option func(*options)

type options struct {
	logger      *zap.Logger
	metrics     prometheus.Registerer
	placeholder string
}

func defaultOptions() options {
	return options{
		logger:      zap.NewNop(),
		placeholder: DefaultPlaceholderAddress,
	}
}

// WithLogger sets the logger used while building the registry. Translation
// itself never logs.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics counts constructed exceptions per kind on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.metrics = reg
	}
}

// WithPlaceholderAddress overrides DefaultPlaceholderAddress.
func WithPlaceholderAddress(addr string) Option {
	return func(o *options) {
		if addr != "" {
			o.placeholder = addr
		}
	}
}
