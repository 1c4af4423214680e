// Package generrors defines the generator's error taxonomy (spec §7): config
// errors, pool errors, generation failures, and invariant violations. The
// *Wrap constructors wrap an underlying error so callers can still use
// errors.Is/As; every error exposes a Kind for callers that want to branch
// on the taxonomy (e.g. the
// placement driver retries GenerationError but propagates everything else).
package generrors

import "fmt"

// Kind categorizes a generator error per spec §7.
type Kind int

const (
	// KindConfig: unknown spawn identifier, incompatible preset, malformed
	// seed string. Fatal, reported before any generation work.
	KindConfig Kind = iota
	// KindPool: preplacements reference an unknown item or zone.
	KindPool
	// KindGeneration: progression solver exhausted with unplaced locations.
	// Retryable by the driver up to a fixed attempt count.
	KindGeneration
	// KindInvariant: an internal invariant was violated (out-of-bounds node
	// index, negative orb value after a Pareto merge). Indicates a defect.
	KindInvariant
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindPool:
		return "pool"
	case KindGeneration:
		return "generation"
	case KindInvariant:
		return "invariant"
	default:
		return "unknown"
	}
}

// Error is a taxonomy-tagged generator error.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Config returns a fatal configuration error with a formatted message.
func Config(format string, args ...any) error {
	return &Error{Kind: KindConfig, Msg: fmt.Sprintf(format, args...)}
}

// ConfigWrap wraps an underlying error as a fatal configuration error.
func ConfigWrap(err error, format string, args ...any) error {
	return &Error{Kind: KindConfig, Msg: fmt.Sprintf(format, args...), Err: err}
}

// Pool returns a fatal pool/preplacement error with a formatted message.
func Pool(format string, args ...any) error {
	return &Error{Kind: KindPool, Msg: fmt.Sprintf(format, args...)}
}

// Generation returns a retryable generation failure with a formatted
// message.
func Generation(format string, args ...any) error {
	return &Error{Kind: KindGeneration, Msg: fmt.Sprintf(format, args...)}
}

// GenerationWrap wraps an underlying error as a retryable generation failure.
func GenerationWrap(err error, format string, args ...any) error {
	return &Error{Kind: KindGeneration, Msg: fmt.Sprintf(format, args...), Err: err}
}

// Invariant panics with an invariant violation. Per spec §7, invariant
// violations indicate a defect and are never recovered from like ordinary
// errors — callers that detect one must stop immediately.
func Invariant(format string, args ...any) {
	panic(&Error{Kind: KindInvariant, Msg: fmt.Sprintf(format, args...)})
}

// IsKind reports whether err (or any error it wraps) is a generator Error of
// the given kind.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			if e.Kind == kind {
				return true
			}
			err = e.Err
			continue
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
