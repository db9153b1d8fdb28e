package repo

import (
	"strings"

	"github.com/google/uuid"
)

const listSeparator = ","

// joinList serializes an ordered string collection to its stored form.
// An empty collection serializes to an empty string.
func joinList(values []string) string {
	return strings.Join(values, listSeparator)
}

// splitList deserializes a stored list, dropping empty segments so an
// empty string round-trips to an empty collection rather than a
// collection holding one empty string.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, listSeparator)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// joinIDs serializes a uuid collection to its stored form.
func joinIDs(ids []uuid.UUID) string {
	values := make([]string, len(ids))
	for i, id := range ids {
		values[i] = id.String()
	}
	return joinList(values)
}

// splitIDs deserializes a stored id list, skipping segments that do not
// parse as UUIDs.
func splitIDs(s string) []uuid.UUID {
	parts := splitList(s)
	out := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		id, err := uuid.Parse(p)
		if err != nil {
			continue
		}
		out = append(out, id)
	}
	return out
}
