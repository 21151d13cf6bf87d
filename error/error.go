package mError

import "fmt"

const (
	CODEC_ERROR_SEVERITY_ERROR = "error"
	CODEC_ERROR_SEVERITY_INFO  = "info"
)

const (
	KIND_INVALID_ENCODING  = "invalid encoding"
	KIND_CAPACITY_EXCEEDED = "capacity exceeded"
)

var (
	ErrInvalidEncoding  = &CodecError{Severity: CODEC_ERROR_SEVERITY_ERROR, Kind: KIND_INVALID_ENCODING}
	ErrCapacityExceeded = &CodecError{Severity: CODEC_ERROR_SEVERITY_ERROR, Kind: KIND_CAPACITY_EXCEEDED}
)

type CodecError struct {
	Severity string
	Kind     string
	Message  string
}

func (ce *CodecError) Error() string {
	if ce.Message == "" {
		return fmt.Sprintf("(%s) %s", ce.Severity, ce.Kind)
	}

	return fmt.Sprintf("(%s) %s: %s", ce.Severity, ce.Kind, ce.Message)
}

// Is reports a match for any CodecError of the same kind, so callers can
// check errors.Is(err, ErrInvalidEncoding) regardless of the message.
func (ce *CodecError) Is(target error) bool {
	other, ok := target.(*CodecError)
	if !ok {
		return false
	}

	return ce.Kind == other.Kind
}

func InvalidEncoding(format string, args ...any) *CodecError {
	return &CodecError{
		Severity: CODEC_ERROR_SEVERITY_ERROR,
		Kind:     KIND_INVALID_ENCODING,
		Message:  fmt.Sprintf(format, args...),
	}
}

func CapacityExceeded(format string, args ...any) *CodecError {
	return &CodecError{
		Severity: CODEC_ERROR_SEVERITY_ERROR,
		Kind:     KIND_CAPACITY_EXCEEDED,
		Message:  fmt.Sprintf(format, args...),
	}
}
