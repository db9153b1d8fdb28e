package usecase

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"bookrec/src/core/domain"
	"bookrec/src/core/ports"
)

// BookSummary is the public shape of a recommended book.
type BookSummary struct {
	ID          uuid.UUID
	Title       string
	Author      string
	Description string
	Genres      []string
	PublishDate time.Time
}

// RecommendationService produces ranked lists of unread books matching a
// user's preferred genres.
type RecommendationService struct {
	users *UserService
	books ports.BookRepository
	log   *slog.Logger
}

func NewRecommendationService(users *UserService, books ports.BookRepository, log *slog.Logger) *RecommendationService {
	return &RecommendationService{users: users, books: books, log: log}
}

// Recommend gathers candidate books per preferred genre, drops books the
// user has already read, dedupes by id, sorts by publish date descending
// and truncates to at most limit entries.
//
// A user with no preferred genres (including an unknown user id) yields
// an empty result without error. A limit of zero or less also yields an
// empty result. Any collaborator failure aborts the whole operation: no
// partial results.
func (s *RecommendationService) Recommend(ctx context.Context, userID uuid.UUID, limit int) ([]BookSummary, error) {
	genres, err := s.users.PreferredGenres(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(genres) == 0 {
		return []BookSummary{}, nil
	}

	var candidates []*domain.Book
	for _, genre := range genres {
		books, err := s.books.ListByGenre(ctx, genre)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, books...)
	}

	readIDs, err := s.users.ReadBookIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	read := make(map[uuid.UUID]struct{}, len(readIDs))
	for _, id := range readIDs {
		read[id] = struct{}{}
	}

	// Filter out read books and keep the first occurrence of each id.
	seen := make(map[uuid.UUID]struct{}, len(candidates))
	filtered := candidates[:0]
	for _, book := range candidates {
		if _, ok := read[book.ID()]; ok {
			continue
		}
		if _, ok := seen[book.ID()]; ok {
			continue
		}
		seen[book.ID()] = struct{}{}
		filtered = append(filtered, book)
	}

	// Most recent publish date first; stable so equal dates keep their
	// candidate order.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].PublishDate().After(filtered[j].PublishDate())
	})

	if limit < 0 {
		limit = 0
	}
	if limit > len(filtered) {
		limit = len(filtered)
	}

	out := make([]BookSummary, 0, limit)
	for _, book := range filtered[:limit] {
		out = append(out, BookSummary{
			ID:          book.ID(),
			Title:       book.Title(),
			Author:      book.Author(),
			Description: book.Description(),
			Genres:      book.Genres(),
			PublishDate: book.PublishDate(),
		})
	}
	return out, nil
}
