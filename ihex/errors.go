package ihex

import (
	"errors"
	"fmt"
)

// RecordError indicates that a record could not be built.
type RecordError struct {
	// Type is the requested record type
	Type byte

	// Reason describes what is wrong with the record
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record type 0x%02X: %s", e.Type, e.Reason)
}

// IsRecordError returns true if the error is, or wraps, a RecordError.
func IsRecordError(err error) bool {
	var recErr *RecordError
	return errors.As(err, &recErr)
}
