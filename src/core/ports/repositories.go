// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"github.com/google/uuid"

	"bookrec/src/core/domain"
)

// Repository is the base interface for all repositories.
// Concrete repositories should embed this and add entity-specific methods.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// BookRepository persists the Book aggregate.
//
// Lookups return (nil, nil) when no entity matches: absence is a normal
// outcome, not an error. Infrastructure failures are returned as
// dependency errors.
type BookRepository interface {
	Repository

	GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	GetByTitle(ctx context.Context, title string) (*domain.Book, error)
	ListByAuthor(ctx context.Context, author string) ([]*domain.Book, error)
	// ListByGenre matches by substring against the stored genre string.
	ListByGenre(ctx context.Context, genre string) ([]*domain.Book, error)
	// ListAll returns all books ordered by title.
	ListAll(ctx context.Context) ([]*domain.Book, error)

	Insert(ctx context.Context, book *domain.Book) error
	// Update replaces all mutable fields of an existing book.
	Update(ctx context.Context, book *domain.Book) error
	// Delete removes the book by id; deleting an absent id is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepository persists the User aggregate, including the serialized
// preferred-genre and read-book-id sets.
//
// Lookups return (nil, nil) when no entity matches.
type UserRepository interface {
	Repository

	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	// ListAll returns all users ordered by id.
	ListAll(ctx context.Context) ([]*domain.User, error)

	Insert(ctx context.Context, user *domain.User) error
	// Update replaces all mutable fields of an existing user.
	Update(ctx context.Context, user *domain.User) error
	// Delete removes the user by id; deleting an absent id is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}
