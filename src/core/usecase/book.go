package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"bookrec/src/core/domain"
	"bookrec/src/core/ports"
)

// CreateBookInput carries the attributes for a new book.
type CreateBookInput struct {
	Title       string
	Author      string
	Description string
	Genres      []string
	PublishDate time.Time
}

// BookService handles book CRUD flows.
type BookService struct {
	repo ports.BookRepository
	log  *slog.Logger
}

func NewBookService(repo ports.BookRepository, log *slog.Logger) *BookService {
	return &BookService{repo: repo, log: log}
}

// Create validates and persists a new book, assigning a fresh id.
func (s *BookService) Create(ctx context.Context, in CreateBookInput) (*domain.Book, error) {
	book, err := domain.NewBook(uuid.New(), in.Title, in.Author, in.Description, in.Genres, in.PublishDate)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Insert(ctx, book); err != nil {
		return nil, err
	}
	s.log.Info("book created", "book_id", book.ID(), "title", book.Title())
	return book, nil
}

func (s *BookService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, domain.NewNotFoundError("book")
	}
	return book, nil
}

func (s *BookService) GetByTitle(ctx context.Context, title string) (*domain.Book, error) {
	book, err := s.repo.GetByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, domain.NewNotFoundError("book")
	}
	return book, nil
}

func (s *BookService) ListByAuthor(ctx context.Context, author string) ([]*domain.Book, error) {
	return s.repo.ListByAuthor(ctx, author)
}

func (s *BookService) ListByGenre(ctx context.Context, genre string) ([]*domain.Book, error) {
	return s.repo.ListByGenre(ctx, genre)
}

func (s *BookService) ListAll(ctx context.Context) ([]*domain.Book, error) {
	return s.repo.ListAll(ctx)
}

// AddGenre appends a genre to an existing book and persists the change.
// Updating a missing book is a hard error.
func (s *BookService) AddGenre(ctx context.Context, id uuid.UUID, genre string) (*domain.Book, error) {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, domain.NewNotFoundError("book")
	}
	if err := book.AddGenre(genre); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// UpdateGenres replaces the genre set of an existing book and persists
// the change. Updating a missing book is a hard error.
func (s *BookService) UpdateGenres(ctx context.Context, id uuid.UUID, genres []string) (*domain.Book, error) {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, domain.NewNotFoundError("book")
	}
	if err := book.UpdateGenres(genres); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// Delete removes a book by id. Deleting a missing book is a silent no-op.
func (s *BookService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
