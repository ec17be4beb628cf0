package solution

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ParseGUID parses a GUID field as it appears in a manifest: braced or bare,
// any casing. Surrounding whitespace is ignored.
func ParseGUID(text string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(text))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidGUID, text)
	}
	return id, nil
}

// FormatGUID renders a GUID in the canonical manifest form: uppercase,
// hyphenated, brace-delimited. Serialization always uses this form
// regardless of how the identifier was written in the input.
func FormatGUID(id uuid.UUID) string {
	return "{" + strings.ToUpper(id.String()) + "}"
}
