package repository

// StorageError marks an unexpected persistence failure. It is the deliberate
// classification surface the response boundary matches on, so failed database
// operations map to one error kind without string comparison.
type StorageError struct {
	op  string
	err error
}

// OperationFailed wraps an unexpected persistence error with the operation
// that failed.
func OperationFailed(err error, op string) error {
	return &StorageError{op: op, err: err}
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return e.op + ": " + e.err.Error()
}

// Unwrap returns the underlying driver error.
func (e *StorageError) Unwrap() error {
	return e.err
}
