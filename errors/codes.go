// Package errors provides the structured error type used across arch-as-code.
// It extends Go's standard error handling with string error codes and context
// preservation so that command layers can distinguish failure classes.
package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Resource errors.

	// CodeNotFound indicates a requested file, branch or entity does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates a resource already exists and cannot be created again.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Validation errors.

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration error prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// CodeSchemaFailed indicates the data failed schema validation.
	CodeSchemaFailed ErrorCode = "SCHEMA_VALIDATION_FAILED"

	// CodeParseFailed indicates a document could not be parsed.
	CodeParseFailed ErrorCode = "PARSE_FAILED"

	// CodeDuplicateID indicates two entities of one architecture share an id.
	CodeDuplicateID ErrorCode = "DUPLICATE_ID"

	// CodeMalformedReference indicates a textual reference (path, component
	// reference) does not follow its expected form.
	CodeMalformedReference ErrorCode = "MALFORMED_REFERENCE"

	// CodeIncompatibleVersion indicates a schema version outside the supported range.
	CodeIncompatibleVersion ErrorCode = "INCOMPATIBLE_VERSION"

	// Loading errors.

	// CodeArchitectureLoadFailed indicates an architecture document could not be loaded.
	CodeArchitectureLoadFailed ErrorCode = "ARCHITECTURE_LOAD_FAILED"

	// CodeUpdateLoadFailed indicates an architecture update document could not be loaded.
	CodeUpdateLoadFailed ErrorCode = "UPDATE_LOAD_FAILED"

	// CodeGitLoadFailed indicates a document could not be read from git history.
	CodeGitLoadFailed ErrorCode = "GIT_LOAD_FAILED"

	// CodeCUELoadFailed indicates a CUE source failed to compile.
	CodeCUELoadFailed ErrorCode = "CUE_LOAD_FAILED"

	// CodeCUEDecodeFailed indicates a CUE value could not be decoded into Go types.
	CodeCUEDecodeFailed ErrorCode = "CUE_DECODE_FAILED"

	// CodeWriteFailed indicates a document could not be written.
	CodeWriteFailed ErrorCode = "WRITE_FAILED"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// Generic errors.

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
