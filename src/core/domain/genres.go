package domain

import "strings"

// GenreSet is an ordered collection of genre tags that rejects empty
// members and case-insensitive duplicates. It backs both book genres and
// user preferred genres.
type GenreSet struct {
	field string
	tags  []string
}

// NewGenreSet builds a set from the given tags. The set must end up with
// at least one member; duplicates (ignoring case) or blank tags fail the
// whole construction.
func NewGenreSet(field string, tags []string) (*GenreSet, error) {
	s := &GenreSet{field: field}
	if err := s.Replace(tags); err != nil {
		return nil, err
	}
	return s, nil
}

// Add trims and appends a tag, preserving insertion order.
func (s *GenreSet) Add(tag string) error {
	appended, err := s.appendTo(s.tags, tag)
	if err != nil {
		return err
	}
	s.tags = appended
	return nil
}

// Replace swaps the whole set for the given tags. Validation happens on
// a fresh list before the commit, so a failed replacement leaves the
// previous members untouched.
func (s *GenreSet) Replace(tags []string) error {
	if len(tags) == 0 {
		return NewValidationError(s.field, "must have at least 1 genre")
	}
	fresh := make([]string, 0, len(tags))
	for _, tag := range tags {
		appended, err := s.appendTo(fresh, tag)
		if err != nil {
			return err
		}
		fresh = appended
	}
	s.tags = fresh
	return nil
}

// Contains reports whether the set holds the tag, ignoring case.
func (s *GenreSet) Contains(tag string) bool {
	tag = strings.TrimSpace(tag)
	for _, existing := range s.tags {
		if strings.EqualFold(existing, tag) {
			return true
		}
	}
	return false
}

// Values returns a snapshot of the members in insertion order.
func (s *GenreSet) Values() []string {
	out := make([]string, len(s.tags))
	copy(out, s.tags)
	return out
}

// Len returns the number of members.
func (s *GenreSet) Len() int {
	return len(s.tags)
}

func (s *GenreSet) appendTo(tags []string, tag string) ([]string, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil, NewValidationError(s.field, "genre cannot be empty")
	}
	for _, existing := range tags {
		if strings.EqualFold(existing, tag) {
			return nil, NewDuplicateError(s.field, "genre already exists: "+tag)
		}
	}
	return append(tags, tag), nil
}
