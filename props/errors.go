package props

import (
	"errors"

	"github.com/brent-hartwig/rsuite-conf-utils-lib/messages"
)

// Kind classifies a configuration error.
type Kind int

const (
	// KindMissing reports a required property with no usable value.
	KindMissing Kind = iota + 1
	// KindInvalidValue reports a present value that failed type-specific
	// parsing, or an uncompilable delimiter pattern.
	KindInvalidValue
)

// Error is the configuration error type produced by the accessors. Name is
// always the property that was being read; Value carries the offending text
// for KindInvalidValue.
type Error struct {
	Kind  Kind
	Name  string
	Value string
	Err   error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindMissing:
		return msgs().Format(messages.KeyRequiredPropNotSet, e.Name)
	case KindInvalidValue:
		return msgs().Format(messages.KeyInvalidPropertyValue, e.Value, e.Name)
	default:
		return "configuration error for property " + e.Name
	}
}

func (e *Error) Unwrap() error { return e.Err }

// IsMissing reports whether err is a configuration error for a required
// property that has no value.
func IsMissing(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == KindMissing
}

// IsInvalidValue reports whether err is a configuration error for a value
// that failed parsing.
func IsInvalidValue(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == KindInvalidValue
}
