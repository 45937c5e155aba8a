package listing

import "fmt"

// FilterError reports a filter, sort or paging value outside the known set.
type FilterError struct {
	Field string
	Value string
	Err   error
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

func (e *FilterError) Unwrap() error {
	return e.Err
}
