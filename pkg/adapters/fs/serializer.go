package fs

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/aretw0/notes/pkg/core"
)

// parseLine decodes a single `<id>|<text>` record.
// It returns a KindMalformed error for anything else, including lines
// carrying more than one delimiter.
func parseLine(line string) (core.Note, error) {
	parts := strings.Split(line, core.Delimiter)
	if len(parts) != 2 {
		return core.Note{}, core.Errorf(core.KindMalformed, "parse line", "expected exactly one %q delimiter, got %d", core.Delimiter, len(parts)-1)
	}

	rawID := strings.TrimSpace(parts[0])
	if rawID == "" || strings.TrimLeft(rawID, "0123456789") != "" {
		return core.Note{}, core.Errorf(core.KindMalformed, "parse line", "invalid id %q", rawID)
	}
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return core.Note{}, core.Errorf(core.KindMalformed, "parse line", "invalid id %q", rawID)
	}

	return core.Note{ID: id, Text: parts[1]}, nil
}

// formatLine encodes a note as a single line, including the trailing newline.
func formatLine(n core.Note) string {
	return strconv.Itoa(n.ID) + core.Delimiter + n.Text + "\n"
}

// decode extracts every well-formed record from the file contents in order.
// Empty lines are ignored; malformed lines of any length are skipped and counted.
func decode(data []byte) (notes []core.Note, skipped int) {
	notes = []core.Note{}
	for _, raw := range bytes.Split(data, []byte("\n")) {
		line := strings.TrimSuffix(string(raw), "\r")
		if line == "" {
			continue
		}
		n, err := parseLine(line)
		if err != nil {
			skipped++
			continue
		}
		notes = append(notes, n)
	}
	return notes, skipped
}

// encode serializes notes in order.
func encode(notes []core.Note) []byte {
	var buf bytes.Buffer
	for _, n := range notes {
		buf.WriteString(formatLine(n))
	}
	return buf.Bytes()
}
