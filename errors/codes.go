package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Precondition errors
const (
	// ErrCodeInvalidArgument indicates a constructor received an argument outside its domain.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeConfigInvalid indicates the loaded settings failed validation.
	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"
)

// Extraction errors
const (
	// ErrCodeUnwrapNone indicates Unwrap was called on an empty Option.
	ErrCodeUnwrapNone ErrorCode = "UNWRAP_NONE"
	// ErrCodeExpectNone indicates Expect was called on an empty Option.
	ErrCodeExpectNone ErrorCode = "EXPECT_NONE"
	// ErrCodeUnwrapErr indicates Unwrap was called on an Err Result.
	ErrCodeUnwrapErr ErrorCode = "UNWRAP_ERR"
	// ErrCodeUnwrapOk indicates UnwrapErr was called on an Ok Result.
	ErrCodeUnwrapOk ErrorCode = "UNWRAP_OK"
	// ErrCodeExpectErr indicates Expect or ExpectErr was called on the wrong Result variant.
	ErrCodeExpectErr ErrorCode = "EXPECT_ERR"
	// ErrCodeUnwrapLeft indicates UnwrapLeft was called on a Right value.
	ErrCodeUnwrapLeft ErrorCode = "UNWRAP_LEFT"
	// ErrCodeUnwrapRight indicates UnwrapRight was called on a Left value.
	ErrCodeUnwrapRight ErrorCode = "UNWRAP_RIGHT"
)

// Runtime errors
const (
	// ErrCodePanicRecovered indicates a panic was converted into an error value.
	ErrCodePanicRecovered ErrorCode = "PANIC_RECOVERED"
)

var extractionCodes = map[ErrorCode]bool{
	ErrCodeUnwrapNone:  true,
	ErrCodeExpectNone:  true,
	ErrCodeUnwrapErr:   true,
	ErrCodeUnwrapOk:    true,
	ErrCodeExpectErr:   true,
	ErrCodeUnwrapLeft:  true,
	ErrCodeUnwrapRight: true,
}

// IsExtractionCode returns true if the code reports a checked accessor used on the wrong variant.
func IsExtractionCode(code ErrorCode) bool {
	return extractionCodes[code]
}
