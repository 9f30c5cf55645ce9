package transport

import (
	"log/slog"
	"math"
)

// DefaultEpsilon is the default numeric tolerance. Zero keeps the exact
// comparisons of the classic method: a supply counts as exhausted only at
// exactly 0 and an improvement index must be >= 0.
const DefaultEpsilon = 0.0

const panicEpsilonInvalid = "transport: WithEpsilon: eps must be finite, non-negative"

// Options configures builders, the optimality check and Solve.
//
//   - Method: strategy used by Solve and Build (default MethodNorthWest).
//   - Epsilon: tolerance for exhaustion (remaining <= Epsilon), the verdict
//     (index >= -Epsilon) and the balance check.
//   - RequireBalanced: builders fail with ErrUnbalanced instead of producing
//     a best-effort plan.
//   - Logger: when non-nil, each allocation and potential resolution is
//     logged at debug level.
type Options struct {
	Method          Method
	Epsilon         float64
	RequireBalanced bool
	Logger          *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Method:  MethodNorthWest,
		Epsilon: DefaultEpsilon,
	}
}

// WithMethod selects the construction strategy used by Solve.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithEpsilon sets the numeric tolerance. It panics on a negative or
// non-finite eps (programmer error).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.Epsilon = eps }
}

// WithRequireBalanced makes builders reject unbalanced or negative input.
func WithRequireBalanced() Option {
	return func(o *Options) { o.RequireBalanced = true }
}

// WithLogger enables debug tracing through l. A nil l keeps the package silent.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// gatherOptions applies opts on top of DefaultOptions.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// debug logs through the configured logger, if any.
func (o Options) debug(msg string, args ...any) {
	if o.Logger != nil {
		o.Logger.Debug(msg, args...)
	}
}
