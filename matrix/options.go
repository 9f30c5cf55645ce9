// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag changes behavior and is covered by tests.
//   - Options fields are unexported; constructors consume ...Option.
package matrix

// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
// Cost tables must be finite, so the default is on.
const DefaultValidateNaNInf = true

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables strict finite-value validation (default).
// When enabled, Set and NewDenseFromRows reject NaN, +Inf and -Inf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// The flag propagates only on creation; existing matrices are unaffected.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves opts on top of the documented defaults.
// Complexity: O(len(opts)).
func NewMatrixOptions(opts ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// ValidateNaNInf reports whether the finite-only policy is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }
