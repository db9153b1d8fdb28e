package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookrec/src/core/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustBook(t *testing.T, title string, genres []string, publishDate time.Time) *domain.Book {
	t.Helper()
	book, err := domain.NewBook(uuid.New(), title, "Author", "Description", genres, publishDate)
	require.NoError(t, err)
	return book
}

func mustUser(t *testing.T, genres []string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(uuid.New(), "reader1", "Jane", "Doe", "jane@example.com", genres, time.Now().UTC())
	require.NoError(t, err)
	return user
}

func newRecommendationFixture(books *fakeBookRepo, users *fakeUserRepo) *RecommendationService {
	log := testLogger()
	return NewRecommendationService(NewUserService(users, log), books, log)
}

func TestRecommend_ExcludesReadAndUnmatchedGenres(t *testing.T) {
	now := time.Now().UTC()
	b1 := mustBook(t, "B1", []string{"Fantasy"}, now.AddDate(-1, 0, 0))
	b2 := mustBook(t, "B2", []string{"Sci-Fi"}, now.AddDate(-2, 0, 0))
	b3 := mustBook(t, "B3", []string{"Mystery"}, now)

	user := mustUser(t, []string{"Fantasy", "Sci-Fi"})
	user.MarkBookAsRead(b2.ID())

	svc := newRecommendationFixture(
		&fakeBookRepo{books: []*domain.Book{b1, b2, b3}},
		newFakeUserRepo(user),
	)

	got, err := svc.Recommend(context.Background(), user.ID(), domain.DefaultRecommendationLimit)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, b1.ID(), got[0].ID)
	assert.Equal(t, "B1", got[0].Title)
}

func TestRecommend_UnknownUserReturnsEmpty(t *testing.T) {
	svc := newRecommendationFixture(&fakeBookRepo{}, newFakeUserRepo())

	got, err := svc.Recommend(context.Background(), uuid.New(), 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecommend_SortsByPublishDateDescending(t *testing.T) {
	now := time.Now().UTC()
	oldest := mustBook(t, "Oldest", []string{"Fantasy"}, now.AddDate(-3, 0, 0))
	newest := mustBook(t, "Newest", []string{"Fantasy"}, now)
	middle := mustBook(t, "Middle", []string{"Fantasy"}, now.AddDate(-1, 0, 0))

	user := mustUser(t, []string{"Fantasy"})
	svc := newRecommendationFixture(
		&fakeBookRepo{books: []*domain.Book{oldest, newest, middle}},
		newFakeUserRepo(user),
	)

	got, err := svc.Recommend(context.Background(), user.ID(), 10)
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, "Newest", got[0].Title)
	assert.Equal(t, "Middle", got[1].Title)
	assert.Equal(t, "Oldest", got[2].Title)
}

func TestRecommend_Limit(t *testing.T) {
	now := time.Now().UTC()
	books := &fakeBookRepo{}
	for i := 0; i < 5; i++ {
		books.books = append(books.books, mustBook(t, "Book", []string{"Fantasy"}, now.AddDate(0, 0, -i)))
	}

	user := mustUser(t, []string{"Fantasy"})
	svc := newRecommendationFixture(books, newFakeUserRepo(user))

	got, err := svc.Recommend(context.Background(), user.ID(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Most recent first even after truncation.
	assert.Equal(t, now, got[0].PublishDate)

	got, err = svc.Recommend(context.Background(), user.ID(), 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = svc.Recommend(context.Background(), user.ID(), -1)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecommend_DedupesAcrossGenres(t *testing.T) {
	// One book matching both preferred genres must appear exactly once.
	both := mustBook(t, "Both", []string{"Fantasy", "Sci-Fi"}, time.Now().UTC())

	user := mustUser(t, []string{"Fantasy", "Sci-Fi"})
	svc := newRecommendationFixture(
		&fakeBookRepo{books: []*domain.Book{both}},
		newFakeUserRepo(user),
	)

	got, err := svc.Recommend(context.Background(), user.ID(), 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, both.ID(), got[0].ID)
}

func TestRecommend_CollaboratorFailure(t *testing.T) {
	user := mustUser(t, []string{"Fantasy"})
	depErr := domain.NewDependencyError("books.list_by_genre", context.DeadlineExceeded)

	svc := newRecommendationFixture(
		&fakeBookRepo{err: depErr},
		newFakeUserRepo(user),
	)

	got, err := svc.Recommend(context.Background(), user.ID(), 10)
	require.Error(t, err)
	assert.True(t, domain.IsDependencyFailure(err))
	assert.Nil(t, got)
}

func TestRecommend_GenreWithNoMatchesContributesNothing(t *testing.T) {
	fantasy := mustBook(t, "Fantasy Book", []string{"Fantasy"}, time.Now().UTC())

	user := mustUser(t, []string{"Western", "Fantasy"})
	svc := newRecommendationFixture(
		&fakeBookRepo{books: []*domain.Book{fantasy}},
		newFakeUserRepo(user),
	)

	got, err := svc.Recommend(context.Background(), user.ID(), 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Fantasy Book", got[0].Title)
}
