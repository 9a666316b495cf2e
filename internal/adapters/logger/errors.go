package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrorEntry is one level of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// chainError is implemented by zerr errors.
type chainError interface {
	Message() string
	Metadata() map[string]any
}

// collectErrorEntries walks the chain of err. A zerr error contributes its own
// message and metadata; the first plain error contributes its full text and
// ends the walk. Errors without a message only carry metadata, which is folded
// into the next entry.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var pending map[string]any

	for current := err; current != nil; {
		ce, ok := current.(chainError)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: pending})
			break
		}

		meta := ce.Metadata()
		if ce.Message() == "" {
			if pending == nil {
				pending = make(map[string]any, len(meta))
			}
			maps.Copy(pending, meta)
			current = errors.Unwrap(current)
			continue
		}

		maps.Copy(meta, pending)
		pending = nil
		entries = append(entries, ErrorEntry{Message: ce.Message(), Metadata: meta})
		current = errors.Unwrap(current)
	}

	if pending != nil && len(entries) == 0 {
		return []ErrorEntry{{Message: err.Error(), Metadata: pending}}
	}
	if pending != nil {
		last := &entries[len(entries)-1]
		if last.Metadata == nil {
			last.Metadata = make(map[string]any, len(pending))
		}
		maps.Copy(last.Metadata, pending)
	}
	return entries
}

// formatErrorEntries renders entries as a main error followed by its causes.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")
		head, indent := "Error: ", "       "
		if i > 0 {
			head, indent = "    → ", "      "
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
		}

		lines = append(lines, head+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.Metadata[key]))
		}
	}

	return strings.Join(lines, "\n")
}
