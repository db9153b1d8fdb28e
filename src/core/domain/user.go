package domain

import (
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.']+$`)
	namePattern     = regexp.MustCompile(`^[A-Za-z_']+$`)
)

// User is the user aggregate: identity fields, a preferred-genre set and
// the set of book ids the user has read. All invariant-bearing fields are
// mutated through validating setters only.
//
// Read book ids are weak references: deleting a book does not remove its
// id from user read sets.
type User struct {
	id              uuid.UUID
	username        string
	firstName       string
	lastName        string
	email           string
	preferredGenres *GenreSet
	readBookIDs     []uuid.UUID
	createdAt       time.Time
}

// NewUser validates and constructs a User. Checks run in a fixed order
// (username, first name, last name, email, preferred genres) and fail
// fast on the first violation.
func NewUser(id uuid.UUID, username, firstName, lastName, email string, preferredGenres []string, createdAt time.Time) (*User, error) {
	u := &User{id: id, createdAt: createdAt}
	if err := u.SetUsername(username); err != nil {
		return nil, err
	}
	if err := u.SetFirstName(firstName); err != nil {
		return nil, err
	}
	if err := u.SetLastName(lastName); err != nil {
		return nil, err
	}
	if err := u.UpdateEmail(email); err != nil {
		return nil, err
	}
	genreSet, err := NewGenreSet("preferred_genres", preferredGenres)
	if err != nil {
		return nil, err
	}
	u.preferredGenres = genreSet
	return u, nil
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Username() string     { return u.username }
func (u *User) FirstName() string    { return u.firstName }
func (u *User) LastName() string     { return u.lastName }
func (u *User) Email() string        { return u.email }
func (u *User) CreatedAt() time.Time { return u.createdAt }

// PreferredGenres returns a snapshot of the preferred-genre set in
// insertion order.
func (u *User) PreferredGenres() []string { return u.preferredGenres.Values() }

// SetUsername validates and replaces the username. Usernames are 5-30
// characters from [A-Za-z0-9_.'].
func (u *User) SetUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return NewValidationError("username", "username cannot be empty")
	}
	if n := utf8.RuneCountInString(username); n < MinUsernameLength || n > MaxUsernameLength {
		return NewValidationError("username", "username must have at least 5 characters and no more than 30 characters")
	}
	if !usernamePattern.MatchString(username) {
		return NewValidationError("username", "username has invalid characters, use only [A-Za-z0-9_.']")
	}
	u.username = username
	return nil
}

// SetFirstName validates and replaces the first name. Names allow
// letters, underscore and apostrophe only.
func (u *User) SetFirstName(firstName string) error {
	if strings.TrimSpace(firstName) == "" {
		return NewValidationError("first_name", "first name cannot be empty")
	}
	if !namePattern.MatchString(firstName) {
		return NewValidationError("first_name", "first name has invalid characters, use only [A-Za-z_']")
	}
	u.firstName = firstName
	return nil
}

// SetLastName validates and replaces the last name.
func (u *User) SetLastName(lastName string) error {
	if strings.TrimSpace(lastName) == "" {
		return NewValidationError("last_name", "last name cannot be empty")
	}
	if !namePattern.MatchString(lastName) {
		return NewValidationError("last_name", "last name has invalid characters, use only [A-Za-z_']")
	}
	u.lastName = lastName
	return nil
}

// UpdateEmail parses, normalizes and replaces the email address.
func (u *User) UpdateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return NewValidationError("email", "email cannot be empty")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return NewValidationError("email", "invalid email format")
	}
	u.email = addr.Address
	return nil
}

// AddPreferredGenre appends a genre, rejecting blanks and
// case-insensitive duplicates.
func (u *User) AddPreferredGenre(genre string) error {
	return u.preferredGenres.Add(genre)
}

// UpdatePreferredGenres replaces the preferred-genre set atomically; on
// failure the previous genres remain.
func (u *User) UpdatePreferredGenres(genres []string) error {
	return u.preferredGenres.Replace(genres)
}

// MarkBookAsRead adds the book id to the read set. Marking an already
// read book is a no-op, not an error.
func (u *User) MarkBookAsRead(bookID uuid.UUID) {
	if u.HasRead(bookID) {
		return
	}
	u.readBookIDs = append(u.readBookIDs, bookID)
}

// UnmarkBookAsRead removes the book id from the read set if present.
func (u *User) UnmarkBookAsRead(bookID uuid.UUID) {
	for i, id := range u.readBookIDs {
		if id == bookID {
			u.readBookIDs = append(u.readBookIDs[:i], u.readBookIDs[i+1:]...)
			return
		}
	}
}

// HasRead reports whether the book id is in the read set.
func (u *User) HasRead(bookID uuid.UUID) bool {
	for _, id := range u.readBookIDs {
		if id == bookID {
			return true
		}
	}
	return false
}

// ReadBookIDs returns a snapshot of the read set in insertion order.
func (u *User) ReadBookIDs() []uuid.UUID {
	out := make([]uuid.UUID, len(u.readBookIDs))
	copy(out, u.readBookIDs)
	return out
}
