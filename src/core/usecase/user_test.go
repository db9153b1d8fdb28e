package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookrec/src/core/domain"
)

func TestUserService_CreateAndGet(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testLogger())
	ctx := context.Background()

	user, err := svc.Create(ctx, CreateUserInput{
		Username:        "reader1",
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@example.com",
		PreferredGenres: []string{"Fantasy"},
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID())
	assert.False(t, user.CreatedAt().IsZero())

	got, err := svc.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID(), got.ID())

	got, err = svc.GetByUsername(ctx, "reader1")
	require.NoError(t, err)
	assert.Equal(t, user.ID(), got.ID())
}

func TestUserService_CreateInvalid(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testLogger())

	_, err := svc.Create(context.Background(), CreateUserInput{
		Username:        "abc",
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@example.com",
		PreferredGenres: []string{"Fantasy"},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.users)
}

func TestUserService_NotFoundAsymmetry(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), testLogger())
	ctx := context.Background()
	missing := uuid.New()

	// Get against a missing id is a not-found error.
	_, err := svc.GetByID(ctx, missing)
	require.ErrorIs(t, err, domain.ErrNotFound)

	// Update against a missing id is a hard error.
	username := "newname"
	_, err = svc.Update(ctx, missing, UpdateUserInput{Username: &username})
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.UpdatePreferredGenres(ctx, missing, []string{"Fantasy"})
	require.ErrorIs(t, err, domain.ErrNotFound)

	// Delete against a missing id is a silent no-op.
	require.NoError(t, svc.Delete(ctx, missing))

	// Preference and read-set lookups treat absence as empty, not as
	// an error: the recommendation flow depends on this.
	genres, err := svc.PreferredGenres(ctx, missing)
	require.NoError(t, err)
	assert.Empty(t, genres)

	ids, err := svc.ReadBookIDs(ctx, missing)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestUserService_PartialUpdate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testLogger())
	ctx := context.Background()

	user, err := svc.Create(ctx, CreateUserInput{
		Username:        "reader1",
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@example.com",
		PreferredGenres: []string{"Fantasy"},
	})
	require.NoError(t, err)

	email := "jane.doe@example.com"
	updated, err := svc.Update(ctx, user.ID(), UpdateUserInput{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@example.com", updated.Email())
	// Untouched fields survive a partial update.
	assert.Equal(t, "reader1", updated.Username())
	assert.Equal(t, "Jane", updated.FirstName())

	bad := "not an email"
	_, err = svc.Update(ctx, user.ID(), UpdateUserInput{Email: &bad})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserService_ReadSetRoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testLogger())
	ctx := context.Background()

	user, err := svc.Create(ctx, CreateUserInput{
		Username:        "reader1",
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@example.com",
		PreferredGenres: []string{"Fantasy"},
	})
	require.NoError(t, err)

	bookID := uuid.New()
	_, err = svc.MarkBookAsRead(ctx, user.ID(), bookID)
	require.NoError(t, err)

	ids, err := svc.ReadBookIDs(ctx, user.ID())
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{bookID}, ids)

	_, err = svc.UnmarkBookAsRead(ctx, user.ID(), bookID)
	require.NoError(t, err)

	ids, err = svc.ReadBookIDs(ctx, user.ID())
	require.NoError(t, err)
	assert.Empty(t, ids)

	// Unmarking an id that was never read is a no-op.
	_, err = svc.UnmarkBookAsRead(ctx, user.ID(), uuid.New())
	require.NoError(t, err)
}
