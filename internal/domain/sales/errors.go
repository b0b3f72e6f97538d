package sales

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	// ErrEmptyDataset is returned when a statistic's denominator collection
	// holds no records. It is surfaced to the caller instead of producing
	// NaN or a silent zero.
	ErrEmptyDataset = NewDomainError("EMPTY_DATASET", "Dataset is empty, statistic is undefined")

	// ErrInsufficientData is returned when a sample standard deviation is
	// requested over fewer than two observations (n-1 denominator).
	ErrInsufficientData = NewDomainError("INSUFFICIENT_DATA", "Standard deviation requires at least two samples")

	// ErrInvalidStatus is returned when an invoice status is outside its closed set.
	ErrInvalidStatus = NewDomainError("INVALID_STATUS", "Invoice status must be pending, shipped or returned")

	// ErrInvalidResult is returned when a transaction result is outside its closed set.
	ErrInvalidResult = NewDomainError("INVALID_RESULT", "Transaction result must be success or failed")

	ErrInvalidID = NewDomainError("INVALID_ID", "Record id must be a positive integer")
)
