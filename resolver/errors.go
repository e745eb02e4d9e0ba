package resolver

import (
	"fmt"
	"strings"
)

// InvalidSchemaError reports that the schema is unusable, carrying every
// violation collected so far in detection order.
type InvalidSchemaError struct {
	Messages []string
}

func (e *InvalidSchemaError) Error() string {
	return fmt.Sprintf("schema is invalid:\n%s", strings.Join(e.Messages, "\n"))
}
