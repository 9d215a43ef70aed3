package masterdata

import (
	"fmt"
	"strings"
)

// ConfigurationError is returned when an attribute type does not map to any
// known resource. It signals a caller bug, not a transient failure, so the
// message names the offending type and every valid alternative.
type ConfigurationError struct {
	Type       string
	ValidTypes []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unknown attribute type %q; valid types: %s",
		e.Type, strings.Join(e.ValidTypes, ", "))
}
