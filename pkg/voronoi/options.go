package voronoi

import (
	"fmt"
	"math"

	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"go.uber.org/multierr"
)

// Options configures a call to Tessellate.
type Options struct {
	// Tolerance is the absolute distance under which endpoints are merged and
	// snapped onto the rectangle.
	Tolerance float64
	Logger    *logger.ZapLogger
}

type Option func(*Options) error

func WithTolerance(eps float64) Option {
	return func(o *Options) error {
		if !(eps > 0) || math.IsInf(eps, 1) {
			return fmt.Errorf("%w: %g must be positive and finite", ErrInvalidTolerance, eps)
		}
		o.Tolerance = eps
		return nil
	}
}

// WithLogger routes engine logs to l. A nil logger discards them.
func WithLogger(l *logger.ZapLogger) Option {
	return func(o *Options) error {
		if l == nil {
			l = logger.NewNop()
		}
		o.Logger = l
		return nil
	}
}

func newOptions(setters []Option) (Options, error) {
	opts := Options{
		Tolerance: DefaultTolerance,
		Logger:    logger.NewNop(),
	}
	var err error
	for _, set := range setters {
		err = multierr.Append(err, set(&opts))
	}
	return opts, err
}
