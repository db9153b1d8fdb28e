package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"bookrec/src/core/domain"
)

// fakeBookRepo is an in-memory ports.BookRepository. Setting err makes
// every call fail with it.
type fakeBookRepo struct {
	books []*domain.Book
	err   error
}

func (f *fakeBookRepo) Health(ctx context.Context) error { return f.err }

func (f *fakeBookRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, b := range f.books {
		if b.ID() == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookRepo) GetByTitle(ctx context.Context, title string) (*domain.Book, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, b := range f.books {
		if b.Title() == title {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookRepo) ListByAuthor(ctx context.Context, author string) ([]*domain.Book, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Book
	for _, b := range f.books {
		if b.Author() == author {
			out = append(out, b)
		}
	}
	return out, nil
}

// ListByGenre mirrors the production contains-match against the joined
// genre string.
func (f *fakeBookRepo) ListByGenre(ctx context.Context, genre string) ([]*domain.Book, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Book
	for _, b := range f.books {
		if strings.Contains(strings.Join(b.Genres(), ","), genre) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookRepo) ListAll(ctx context.Context) ([]*domain.Book, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.books, nil
}

func (f *fakeBookRepo) Insert(ctx context.Context, book *domain.Book) error {
	if f.err != nil {
		return f.err
	}
	f.books = append(f.books, book)
	return nil
}

func (f *fakeBookRepo) Update(ctx context.Context, book *domain.Book) error {
	if f.err != nil {
		return f.err
	}
	for i, b := range f.books {
		if b.ID() == book.ID() {
			f.books[i] = book
			return nil
		}
	}
	return domain.NewNotFoundError("book")
}

func (f *fakeBookRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i, b := range f.books {
		if b.ID() == id {
			f.books = append(f.books[:i], f.books[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeUserRepo is an in-memory ports.UserRepository.
type fakeUserRepo struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)}
	for _, u := range users {
		f.users[u.ID()] = u
	}
	return f
}

func (f *fakeUserRepo) Health(ctx context.Context) error { return f.err }

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Username() == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ListAll(ctx context.Context) ([]*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Insert(ctx context.Context, user *domain.User) error {
	if f.err != nil {
		return f.err
	}
	f.users[user.ID()] = user
	return nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *domain.User) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.users[user.ID()]; !ok {
		return domain.NewNotFoundError("user")
	}
	f.users[user.ID()] = user
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	delete(f.users, id)
	return nil
}
