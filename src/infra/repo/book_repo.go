package repo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookrec/src/core/domain"
	"bookrec/src/infra/db"
)

const bookColumns = "book_id, title, author, description, genres, publish_date"

// BookRepository implements ports.BookRepository using pgx.
type BookRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewBookRepository constructs a book repository backed by Postgres.
func NewBookRepository(pg *db.Postgres, log *slog.Logger) *BookRepository {
	return &BookRepository{pool: pg.Pool, log: log}
}

func (r *BookRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *BookRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	const q = `SELECT ` + bookColumns + ` FROM books WHERE book_id = $1`
	book, err := r.queryOne(ctx, q, id)
	if err != nil {
		return nil, wrapErr("books.get_by_id", err)
	}
	return book, nil
}

func (r *BookRepository) GetByTitle(ctx context.Context, title string) (*domain.Book, error) {
	const q = `SELECT ` + bookColumns + ` FROM books WHERE title = $1`
	book, err := r.queryOne(ctx, q, title)
	if err != nil {
		return nil, wrapErr("books.get_by_title", err)
	}
	return book, nil
}

func (r *BookRepository) ListByAuthor(ctx context.Context, author string) ([]*domain.Book, error) {
	const q = `SELECT ` + bookColumns + ` FROM books WHERE author = $1 ORDER BY title ASC`
	books, err := r.queryMany(ctx, q, author)
	if err != nil {
		return nil, wrapErr("books.list_by_author", err)
	}
	return books, nil
}

// ListByGenre matches by substring against the stored comma-joined genre
// string.
func (r *BookRepository) ListByGenre(ctx context.Context, genre string) ([]*domain.Book, error) {
	const q = `SELECT ` + bookColumns + ` FROM books WHERE genres LIKE '%' || $1 || '%' ORDER BY title ASC`
	books, err := r.queryMany(ctx, q, genre)
	if err != nil {
		return nil, wrapErr("books.list_by_genre", err)
	}
	return books, nil
}

func (r *BookRepository) ListAll(ctx context.Context) ([]*domain.Book, error) {
	const q = `SELECT ` + bookColumns + ` FROM books ORDER BY title ASC`
	books, err := r.queryMany(ctx, q)
	if err != nil {
		return nil, wrapErr("books.list_all", err)
	}
	return books, nil
}

func (r *BookRepository) Insert(ctx context.Context, book *domain.Book) error {
	const q = `
		INSERT INTO books (book_id, title, author, description, genres, publish_date)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, q,
		book.ID(), book.Title(), book.Author(), book.Description(),
		joinList(book.Genres()), book.PublishDate(),
	)
	if err != nil {
		return wrapErr("books.insert", err)
	}
	return nil
}

func (r *BookRepository) Update(ctx context.Context, book *domain.Book) error {
	const q = `
		UPDATE books
		SET title = $2, author = $3, description = $4, genres = $5, publish_date = $6, updated_at = now()
		WHERE book_id = $1
	`
	res, err := r.pool.Exec(ctx, q,
		book.ID(), book.Title(), book.Author(), book.Description(),
		joinList(book.Genres()), book.PublishDate(),
	)
	if err != nil {
		return wrapErr("books.update", err)
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("book")
	}
	return nil
}

func (r *BookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM books WHERE book_id = $1`
	// Deleting an absent id is a no-op, so RowsAffected is not checked.
	if _, err := r.pool.Exec(ctx, q, id); err != nil {
		return wrapErr("books.delete", err)
	}
	return nil
}

func (r *BookRepository) queryOne(ctx context.Context, q string, args ...any) (*domain.Book, error) {
	book, err := scanBook(r.pool.QueryRow(ctx, q, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return book, nil
}

func (r *BookRepository) queryMany(ctx context.Context, q string, args ...any) ([]*domain.Book, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []*domain.Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, rows.Err()
}

// scanBook rehydrates a book row through the validated constructor so
// stored data is held to the same invariants as new data.
func scanBook(row pgx.Row) (*domain.Book, error) {
	var (
		id                        uuid.UUID
		title, author, desc, tags string
		publishDate               time.Time
	)
	if err := row.Scan(&id, &title, &author, &desc, &tags, &publishDate); err != nil {
		return nil, err
	}
	return domain.NewBook(id, title, author, desc, splitList(tags), publishDate)
}
