package errors

// ErrorCode is a string identifier for a specific failure category.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes shared by every layer.
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_003"
	ErrCodeConflict           ErrorCode = "COMMON_004"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_005"
	ErrCodeSerialization      ErrorCode = "COMMON_006"
	ErrCodeCacheError         ErrorCode = "COMMON_007"
	ErrCodeValidation         ErrorCode = "COMMON_008"
)

// Ingestion error codes.  Per-row data-quality conditions are deliberately
// absent from this list: malformed rows are skipped during aggregation and
// never propagate.  These codes cover whole-dataset structural failures.
const (
	ErrCodeDatasetUnreadable ErrorCode = "INGEST_001"
	ErrCodeDatasetMalformed  ErrorCode = "INGEST_002"
	ErrCodeBoundaryInvalid   ErrorCode = "INGEST_003"
	ErrCodeNotANumber        ErrorCode = "INGEST_004"
)

// Dashboard / query-surface error codes.
const (
	ErrCodeSnapshotNotReady ErrorCode = "DASH_001"
	ErrCodeSnapshotBuild    ErrorCode = "DASH_002"
)

// CodeOK is the zero failure code returned by GetCode for nil errors.
const CodeOK = ErrorCode("OK")

// CodeUnknown marks errors that carry no AppError in their chain.
const CodeUnknown = ErrorCode("UNKNOWN")
