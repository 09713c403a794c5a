package core

import (
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Delimiter separates the id from the text in a persisted note line.
const Delimiter = "|"

// Note is the central entity of the domain.
// It is a short piece of text identified by a non-negative integer.
type Note struct {
	ID   int    `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
}

// Equal reports whether two notes share the same identifier.
func (n Note) Equal(other Note) bool {
	return n.ID == other.ID
}

// ParseID parses a note id from a command-line argument.
func ParseID(arg string) (int, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return 0, newError(KindBadArgument, "parse id", nil, "missing note id")
	}
	id, err := strconv.Atoi(arg)
	if err != nil || strings.TrimLeft(arg, "0123456789") != "" {
		return 0, newError(KindBadArgument, "parse id", nil, "invalid note id %q: expected a non-negative integer", arg)
	}
	return id, nil
}

var textRules = []validation.Rule{
	validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if strings.ContainsAny(s, "\r\n") {
			return validation.NewError("validation_note_newline", "must not contain a line break")
		}
		return nil
	}),
	validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if strings.Contains(s, Delimiter) {
			return validation.NewError("validation_note_delimiter", "must not contain '"+Delimiter+"'")
		}
		return nil
	}),
}

// ValidateText checks that a note body survives a round trip through the
// line format of the backing file.
func ValidateText(text string) error {
	if err := validation.Validate(text, textRules...); err != nil {
		return newError(KindBadArgument, "validate text", err, "note text %s", err.Error())
	}
	return nil
}
