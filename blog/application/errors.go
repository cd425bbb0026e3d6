package application

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports malformed input with per-field detail. It is
// raised before any repository call.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid post payload"
	}

	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	return fmt.Sprintf("invalid post payload: %s", strings.Join(names, ", "))
}

// AsValidationError unwraps err into a *ValidationError if one is present.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
