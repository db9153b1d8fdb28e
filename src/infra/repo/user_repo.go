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

const userColumns = "user_id, username, first_name, last_name, email, preferred_genres, read_book_ids, created_at"

// UserRepository implements ports.UserRepository using pgx.
type UserRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewUserRepository constructs a user repository backed by Postgres.
func NewUserRepository(pg *db.Postgres, log *slog.Logger) *UserRepository {
	return &UserRepository{pool: pg.Pool, log: log}
}

func (r *UserRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	user, err := r.queryOne(ctx, q, id)
	if err != nil {
		return nil, wrapErr("users.get_by_id", err)
	}
	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := r.queryOne(ctx, q, email)
	if err != nil {
		return nil, wrapErr("users.get_by_email", err)
	}
	return user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	user, err := r.queryOne(ctx, q, username)
	if err != nil {
		return nil, wrapErr("users.get_by_username", err)
	}
	return user, nil
}

func (r *UserRepository) ListAll(ctx context.Context) ([]*domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users ORDER BY user_id ASC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, wrapErr("users.list_all", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, wrapErr("users.list_all", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("users.list_all", err)
	}
	return users, nil
}

func (r *UserRepository) Insert(ctx context.Context, user *domain.User) error {
	const q = `
		INSERT INTO users (user_id, username, first_name, last_name, email, preferred_genres, read_book_ids, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, q,
		user.ID(), user.Username(), user.FirstName(), user.LastName(), user.Email(),
		joinList(user.PreferredGenres()), joinIDs(user.ReadBookIDs()), user.CreatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflictError("username or email already taken")
		}
		return wrapErr("users.insert", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	const q = `
		UPDATE users
		SET username = $2, first_name = $3, last_name = $4, email = $5,
		    preferred_genres = $6, read_book_ids = $7, updated_at = now()
		WHERE user_id = $1
	`
	res, err := r.pool.Exec(ctx, q,
		user.ID(), user.Username(), user.FirstName(), user.LastName(), user.Email(),
		joinList(user.PreferredGenres()), joinIDs(user.ReadBookIDs()),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflictError("username or email already taken")
		}
		return wrapErr("users.update", err)
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("user")
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM users WHERE user_id = $1`
	// Deleting an absent id is a no-op, so RowsAffected is not checked.
	if _, err := r.pool.Exec(ctx, q, id); err != nil {
		return wrapErr("users.delete", err)
	}
	return nil
}

func (r *UserRepository) queryOne(ctx context.Context, q string, args ...any) (*domain.User, error) {
	user, err := scanUser(r.pool.QueryRow(ctx, q, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// scanUser rehydrates a user row through the validated constructor and
// replays the read set on top.
func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		id                                        uuid.UUID
		username, first, last, email, tags, reads string
		createdAt                                 time.Time
	)
	if err := row.Scan(&id, &username, &first, &last, &email, &tags, &reads, &createdAt); err != nil {
		return nil, err
	}
	user, err := domain.NewUser(id, username, first, last, email, splitList(tags), createdAt)
	if err != nil {
		return nil, err
	}
	for _, bookID := range splitIDs(reads) {
		user.MarkBookAsRead(bookID)
	}
	return user, nil
}
