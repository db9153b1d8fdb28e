package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Book is the book aggregate. Identity and content fields (title, author,
// description, publish date) are fixed at construction; only the genre
// set is mutable afterwards.
type Book struct {
	id          uuid.UUID
	title       string
	author      string
	description string
	genres      *GenreSet
	publishDate time.Time
}

// NewBook validates and constructs a Book. Checks run in a fixed order
// (title, author, description, genres) and fail fast on the first
// violation.
func NewBook(id uuid.UUID, title, author, description string, genres []string, publishDate time.Time) (*Book, error) {
	if strings.TrimSpace(title) == "" {
		return nil, NewValidationError("title", "title cannot be empty")
	}
	if strings.TrimSpace(author) == "" {
		return nil, NewValidationError("author", "author cannot be empty")
	}
	if strings.TrimSpace(description) == "" {
		return nil, NewValidationError("description", "description cannot be empty")
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return nil, NewValidationError("description", "description cannot exceed 800 characters")
	}
	genreSet, err := NewGenreSet("genres", genres)
	if err != nil {
		return nil, err
	}
	return &Book{
		id:          id,
		title:       title,
		author:      author,
		description: description,
		genres:      genreSet,
		publishDate: publishDate,
	}, nil
}

func (b *Book) ID() uuid.UUID          { return b.id }
func (b *Book) Title() string          { return b.title }
func (b *Book) Author() string         { return b.author }
func (b *Book) Description() string    { return b.description }
func (b *Book) PublishDate() time.Time { return b.publishDate }

// Genres returns a snapshot of the genre set in insertion order.
func (b *Book) Genres() []string { return b.genres.Values() }

// AddGenre appends a genre, rejecting blanks and case-insensitive
// duplicates.
func (b *Book) AddGenre(genre string) error {
	return b.genres.Add(genre)
}

// UpdateGenres replaces the genre set atomically; on failure the
// previous genres remain.
func (b *Book) UpdateGenres(genres []string) error {
	return b.genres.Replace(genres)
}
