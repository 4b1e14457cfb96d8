package templstore

import (
	"errors"

	"github.com/itsatony/go-cuserr"
)

// Error message constants - all error messages must be constants
const (
	// I/O errors
	ErrMsgFileUnreadable  = "template file is not readable"
	ErrMsgNullStoreEmpty  = "null store is always empty"
	ErrMsgNoStore         = "no store configured"
	ErrMsgQueryFailed     = "template table query failed"
	ErrMsgScanFailed      = "template row scan failed"
	ErrMsgConnFailed      = "postgres connection failed"
	ErrMsgEmptyConnString = "postgres connection string is empty"
	ErrMsgMigrateFailed   = "postgres schema migration failed"
	ErrMsgStoreClosed     = "store is closed"

	// Deserialization errors
	ErrMsgMalformedJSON = "malformed JSON template data"
	ErrMsgMalformedYAML = "malformed YAML template data"
	ErrMsgMalformedTOML = "malformed TOML template data"

	// Registry errors
	ErrMsgNilStoreDriver          = "store driver is nil"
	ErrMsgDriverAlreadyRegistered = "store driver already registered"
	ErrMsgDriverNotFound          = "store driver not found"

	// Template contract errors
	ErrMsgApplyFailed        = "template application failed"
	ErrMsgUnresolvedVariable = "template variable has no argument"
)

// Error code constants for categorization
const (
	ErrCodeIo          = "TEMPLSTORE_IO"
	ErrCodeSerialize   = "TEMPLSTORE_SERIALIZE"
	ErrCodeDeserialize = "TEMPLSTORE_DESERIALIZE"
	ErrCodeRegistry    = "TEMPLSTORE_REGISTRY"
	ErrCodeApply       = "TEMPLSTORE_APPLY"
)

// Error kind values attached under MetaKeyKind, so callers can distinguish
// an unreachable source from malformed content without string matching.
const (
	ErrKindIo          = "io"
	ErrKindDeserialize = "deserialize"
	ErrKindSerialize   = "serialize"
)

// NewIoError creates an error for an unreachable or unreadable source.
func NewIoError(msg string, cause error) error {
	if cause == nil {
		cause = errors.New(msg)
	}
	return cuserr.WrapStdError(cause, ErrCodeIo, msg).
		WithMetadata(MetaKeyKind, ErrKindIo)
}

// NewDeserializeError creates an error for malformed content in the
// selected format.
func NewDeserializeError(msg string, format string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeDeserialize, msg).
		WithMetadata(MetaKeyKind, ErrKindDeserialize).
		WithMetadata(MetaKeyFormat, format)
}

// NewSerializeError creates an error for content that cannot be written
// back out in the selected format.
func NewSerializeError(msg string, format string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeSerialize, msg).
		WithMetadata(MetaKeyKind, ErrKindSerialize).
		WithMetadata(MetaKeyFormat, format)
}

// NewFileIoError creates an I/O error carrying the offending path.
func NewFileIoError(path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeIo, ErrMsgFileUnreadable).
		WithMetadata(MetaKeyKind, ErrKindIo).
		WithMetadata(MetaKeyPath, path)
}

// NewNullStoreError creates the error a NullStore returns on every fetch.
func NewNullStoreError() error {
	return NewIoError(ErrMsgNullStoreEmpty, nil)
}

// NewDriverNotFoundError creates an error for a missing store driver.
func NewDriverNotFoundError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyDriver, ErrMsgDriverNotFound).
		WithMetadata(MetaKeyDriver, name)
}

// NewUnresolvedVariableError creates an error for a placeholder with no
// matching argument during template application.
func NewUnresolvedVariableError(variable string) error {
	return cuserr.NewNotFoundError(MetaKeyVar, ErrMsgUnresolvedVariable).
		WithMetadata(MetaKeyVar, variable)
}

// errKind extracts the MetaKeyKind value from a templstore error.
func errKind(err error) (string, bool) {
	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return "", false
	}
	return customErr.GetMetadata(MetaKeyKind)
}

// IsIoError reports whether err was produced by an unreachable source.
func IsIoError(err error) bool {
	kind, ok := errKind(err)
	return ok && kind == ErrKindIo
}

// IsDeserializeError reports whether err was produced by malformed content.
func IsDeserializeError(err error) bool {
	kind, ok := errKind(err)
	return ok && kind == ErrKindDeserialize
}

// IsSerializeError reports whether err was produced while writing content out.
func IsSerializeError(err error) bool {
	kind, ok := errKind(err)
	return ok && kind == ErrKindSerialize
}
