package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"bookrec/src/core/domain"
	"bookrec/src/core/ports"
)

// CreateUserInput carries the attributes for a new user.
type CreateUserInput struct {
	Username        string
	FirstName       string
	LastName        string
	Email           string
	PreferredGenres []string
}

// UpdateUserInput carries a partial update; nil fields are left untouched.
type UpdateUserInput struct {
	Username  *string
	FirstName *string
	LastName  *string
	Email     *string
}

// UserService handles user CRUD and read-history flows.
type UserService struct {
	repo ports.UserRepository
	log  *slog.Logger
}

func NewUserService(repo ports.UserRepository, log *slog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// Create validates and persists a new user, assigning a fresh id.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	user, err := domain.NewUser(uuid.New(), in.Username, in.FirstName, in.LastName, in.Email, in.PreferredGenres, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info("user created", "user_id", user.ID(), "username", user.Username())
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFoundError("user")
	}
	return user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFoundError("user")
	}
	return user, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFoundError("user")
	}
	return user, nil
}

func (s *UserService) ListAll(ctx context.Context) ([]*domain.User, error) {
	return s.repo.ListAll(ctx)
}

// Update applies a partial update through the validating setters.
// Updating a missing user is a hard error.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, in UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFoundError("user")
	}
	if in.Username != nil {
		if err := user.SetUsername(*in.Username); err != nil {
			return nil, err
		}
	}
	if in.FirstName != nil {
		if err := user.SetFirstName(*in.FirstName); err != nil {
			return nil, err
		}
	}
	if in.LastName != nil {
		if err := user.SetLastName(*in.LastName); err != nil {
			return nil, err
		}
	}
	if in.Email != nil {
		if err := user.UpdateEmail(*in.Email); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePreferredGenres replaces the preferred-genre set of an existing
// user and persists the change. Updating a missing user is a hard error.
func (s *UserService) UpdatePreferredGenres(ctx context.Context, id uuid.UUID, genres []string) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFoundError("user")
	}
	if err := user.UpdatePreferredGenres(genres); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// MarkBookAsRead adds the book id to the user's read set and persists it.
// Marking an already read book is a no-op.
func (s *UserService) MarkBookAsRead(ctx context.Context, userID, bookID uuid.UUID) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFoundError("user")
	}
	user.MarkBookAsRead(bookID)
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UnmarkBookAsRead removes the book id from the user's read set and
// persists it. Unmarking an absent id is a no-op.
func (s *UserService) UnmarkBookAsRead(ctx context.Context, userID, bookID uuid.UUID) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFoundError("user")
	}
	user.UnmarkBookAsRead(bookID)
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user by id. Deleting a missing user is a silent no-op.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// PreferredGenres returns the user's preferred genres, or an empty slice
// when the user does not exist. Absence is not an error here: the
// recommendation flow treats it as "nothing to recommend".
func (s *UserService) PreferredGenres(ctx context.Context, id uuid.UUID) ([]string, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return user.PreferredGenres(), nil
}

// ReadBookIDs returns the user's read set, or an empty slice when the
// user does not exist.
func (s *UserService) ReadBookIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return user.ReadBookIDs(), nil
}
