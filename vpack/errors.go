package vpack

import "fmt"

// BuilderErrorCode enumerates the Builder failure kinds from spec §7.
// Modeled on the teacher's schema.ErrorCode (schema/schema.go): a closed
// enum with a Stringer, wrapped by a richer error struct below.
type BuilderErrorCode int

const (
	ErrUnknown BuilderErrorCode = iota
	ErrNeedOpenCompound
	ErrNeedOpenArray
	ErrNeedOpenObject
	ErrNeedSubvalue
	ErrKeyAlreadyWritten
	ErrKeyMustBeString
	ErrUnexpectedType
	ErrUnexpectedValue
	ErrNumberOutOfRange
	ErrExternalsDisallowed
	ErrDuplicateAttributeName
	ErrNotImplemented
	ErrCuckooConstructionFailed
)

func (c BuilderErrorCode) String() string {
	switch c {
	case ErrNeedOpenCompound:
		return "NeedOpenCompound"
	case ErrNeedOpenArray:
		return "NeedOpenArray"
	case ErrNeedOpenObject:
		return "NeedOpenObject"
	case ErrNeedSubvalue:
		return "NeedSubvalue"
	case ErrKeyAlreadyWritten:
		return "KeyAlreadyWritten"
	case ErrKeyMustBeString:
		return "KeyMustBeString"
	case ErrUnexpectedType:
		return "UnexpectedType"
	case ErrUnexpectedValue:
		return "UnexpectedValue"
	case ErrNumberOutOfRange:
		return "NumberOutOfRange"
	case ErrExternalsDisallowed:
		return "ExternalsDisallowed"
	case ErrDuplicateAttributeName:
		return "DuplicateAttributeName"
	case ErrNotImplemented:
		return "NotImplemented"
	case ErrCuckooConstructionFailed:
		return "CuckooConstructionFailed"
	default:
		return fmt.Sprintf("BuilderErrorCode(%d)", int(c))
	}
}

// BuilderError is the concrete error type every Builder failure surfaces
// as. Op names the Builder method that raised it; InnerErr, when present,
// is reachable via errors.Unwrap.
type BuilderError struct {
	Code     BuilderErrorCode
	Op       string
	InnerErr error
}

func (e *BuilderError) Error() string {
	if e.InnerErr != nil {
		return fmt.Sprintf("vpack: %s: %s: %s", e.Op, e.Code, e.InnerErr)
	}
	return fmt.Sprintf("vpack: %s: %s", e.Op, e.Code)
}

func (e *BuilderError) Unwrap() error {
	return e.InnerErr
}

func newErr(op string, code BuilderErrorCode) *BuilderError {
	return &BuilderError{Op: op, Code: code}
}

func wrapErr(op string, code BuilderErrorCode, inner error) *BuilderError {
	return &BuilderError{Op: op, Code: code, InnerErr: inner}
}

// Is allows errors.Is(err, ErrSentinel) against a code-only sentinel,
// independent of Op/InnerErr.
func (e *BuilderError) Is(target error) bool {
	t, ok := target.(*BuilderError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel values for errors.Is comparisons; Op is irrelevant for Is.
var (
	ErrSentinelNeedOpenCompound       = &BuilderError{Code: ErrNeedOpenCompound}
	ErrSentinelNeedOpenArray          = &BuilderError{Code: ErrNeedOpenArray}
	ErrSentinelNeedOpenObject         = &BuilderError{Code: ErrNeedOpenObject}
	ErrSentinelNeedSubvalue           = &BuilderError{Code: ErrNeedSubvalue}
	ErrSentinelKeyAlreadyWritten      = &BuilderError{Code: ErrKeyAlreadyWritten}
	ErrSentinelKeyMustBeString        = &BuilderError{Code: ErrKeyMustBeString}
	ErrSentinelUnexpectedType         = &BuilderError{Code: ErrUnexpectedType}
	ErrSentinelUnexpectedValue        = &BuilderError{Code: ErrUnexpectedValue}
	ErrSentinelNumberOutOfRange       = &BuilderError{Code: ErrNumberOutOfRange}
	ErrSentinelExternalsDisallowed    = &BuilderError{Code: ErrExternalsDisallowed}
	ErrSentinelDuplicateAttributeName = &BuilderError{Code: ErrDuplicateAttributeName}
	ErrSentinelNotImplemented         = &BuilderError{Code: ErrNotImplemented}
)
