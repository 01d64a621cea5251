package models

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yigit/campusadmin/internal/pkg/apperrors"
)

// Setter assigns one form input to a draft, reporting type errors
type Setter[D any] func(draft *D, value string) error

// FieldSet maps form input names onto the setters of draft type D
type FieldSet[D any] map[string]Setter[D]

// Set applies value to the named field of draft
func (fs FieldSet[D]) Set(draft *D, name, value string) error {
	setter, ok := fs[name]
	if !ok {
		return fmt.Errorf("%w: %q", apperrors.ErrUnknownField, name)
	}
	return setter(draft, value)
}

// Names returns the input names known to the field set
func (fs FieldSet[D]) Names() []string {
	names := make([]string, 0, len(fs))
	for name := range fs {
		names = append(names, name)
	}
	return names
}

func initial(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r))
}
