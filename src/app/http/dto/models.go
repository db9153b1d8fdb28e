// Package dto contains Data Transfer Objects for HTTP requests and
// responses. DTOs are separate from domain entities to control what the
// API exposes and to carry binding tags for request validation.
package dto

import (
	"time"

	"github.com/google/uuid"

	"bookrec/src/core/domain"
	"bookrec/src/core/usecase"
)

// CreateBookRequest is the payload for POST /v1/books.
type CreateBookRequest struct {
	Title       string    `json:"title" binding:"required"`
	Author      string    `json:"author" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Genres      []string  `json:"genres" binding:"required"`
	PublishDate time.Time `json:"publish_date" binding:"required"`
}

// AddGenreRequest is the payload for POST /v1/books/:book_id/genres.
type AddGenreRequest struct {
	Genre string `json:"genre" binding:"required"`
}

// UpdateGenresRequest replaces a genre set (books and users).
type UpdateGenresRequest struct {
	Genres []string `json:"genres" binding:"required"`
}

// CreateUserRequest is the payload for POST /v1/users.
type CreateUserRequest struct {
	Username        string   `json:"username" binding:"required"`
	FirstName       string   `json:"first_name" binding:"required"`
	LastName        string   `json:"last_name" binding:"required"`
	Email           string   `json:"email" binding:"required"`
	PreferredGenres []string `json:"preferred_genres" binding:"required"`
}

// UpdateUserRequest is the payload for PATCH /v1/users/:user_id.
// Omitted fields are left untouched.
type UpdateUserRequest struct {
	Username  *string `json:"username"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
}

// BookResponse is the public shape of a book.
type BookResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Description string    `json:"description"`
	Genres      []string  `json:"genres"`
	PublishDate time.Time `json:"publish_date"`
}

// BookFromDomain maps a book aggregate to its response shape.
func BookFromDomain(b *domain.Book) BookResponse {
	return BookResponse{
		ID:          b.ID(),
		Title:       b.Title(),
		Author:      b.Author(),
		Description: b.Description(),
		Genres:      b.Genres(),
		PublishDate: b.PublishDate(),
	}
}

// BooksFromDomain maps a list of book aggregates.
func BooksFromDomain(books []*domain.Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, BookFromDomain(b))
	}
	return out
}

// BookFromSummary maps a recommendation summary to the book response
// shape.
func BookFromSummary(s usecase.BookSummary) BookResponse {
	return BookResponse{
		ID:          s.ID,
		Title:       s.Title,
		Author:      s.Author,
		Description: s.Description,
		Genres:      s.Genres,
		PublishDate: s.PublishDate,
	}
}

// UserResponse is the public shape of a user.
type UserResponse struct {
	ID              uuid.UUID   `json:"id"`
	Username        string      `json:"username"`
	FirstName       string      `json:"first_name"`
	LastName        string      `json:"last_name"`
	Email           string      `json:"email"`
	PreferredGenres []string    `json:"preferred_genres"`
	ReadBookIDs     []uuid.UUID `json:"read_book_ids"`
	CreatedAt       time.Time   `json:"created_at"`
}

// UserFromDomain maps a user aggregate to its response shape.
func UserFromDomain(u *domain.User) UserResponse {
	return UserResponse{
		ID:              u.ID(),
		Username:        u.Username(),
		FirstName:       u.FirstName(),
		LastName:        u.LastName(),
		Email:           u.Email(),
		PreferredGenres: u.PreferredGenres(),
		ReadBookIDs:     u.ReadBookIDs(),
		CreatedAt:       u.CreatedAt(),
	}
}

// UsersFromDomain maps a list of user aggregates.
func UsersFromDomain(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserFromDomain(u))
	}
	return out
}
