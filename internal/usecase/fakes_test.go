package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes backing the service tests. They mirror the
// store contracts: active-scoped lookups, ErrNotFound on zero matched
// rows, ErrDuplicateName where a unique index would fire.

type fakeMovieRepo struct {
	mu     sync.Mutex
	movies map[uuid.UUID]entity.Movie
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{movies: make(map[uuid.UUID]entity.Movie)}
}

var _ repository.MovieRepository = (*fakeMovieRepo)(nil)

func (f *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, m := range f.movies {
		if m.Name == movie.Name && m.DeletedAt == nil {
			return fmt.Errorf("create movie %s: %w", movie.Name, repository.ErrDuplicateName)
		}
	}
	f.movies[movie.ID] = *movie
	return nil
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	m, ok := f.movies[id]
	if !ok || m.DeletedAt != nil {
		return nil, nil
	}
	out := m
	return &out, nil
}

func (f *fakeMovieRepo) FindByName(ctx context.Context, name string) (*entity.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var deleted *entity.Movie
	for _, m := range f.movies {
		if m.Name != name {
			continue
		}
		if m.DeletedAt == nil {
			out := m
			return &out, nil
		}
		out := m
		deleted = &out
	}
	return deleted, nil
}

func (f *fakeMovieRepo) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*entity.Movie
	for _, m := range f.movies {
		if m.DeletedAt == nil {
			c := m
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakeMovieRepo) Update(ctx context.Context, movie *entity.Movie) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.movies[movie.ID]
	if !ok || existing.DeletedAt != nil {
		return fmt.Errorf("update movie %s: %w", movie.ID, repository.ErrNotFound)
	}
	for id, m := range f.movies {
		if id != movie.ID && m.Name == movie.Name && m.DeletedAt == nil {
			return fmt.Errorf("update movie %s: %w", movie.ID, repository.ErrDuplicateName)
		}
	}
	f.movies[movie.ID] = *movie
	return nil
}

func (f *fakeMovieRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	m, ok := f.movies[id]
	if !ok || m.DeletedAt != nil {
		return fmt.Errorf("delete movie %s: %w", id, repository.ErrNotFound)
	}
	now := time.Now()
	m.DeletedAt = &now
	f.movies[id] = m
	return nil
}

func (f *fakeMovieRepo) Restore(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	m, ok := f.movies[id]
	if !ok || m.DeletedAt == nil {
		return fmt.Errorf("restore movie %s: %w", id, repository.ErrNotFound)
	}
	for otherID, other := range f.movies {
		if otherID != id && other.Name == m.Name && other.DeletedAt == nil {
			return fmt.Errorf("restore movie %s: %w", id, repository.ErrDuplicateName)
		}
	}
	m.DeletedAt = nil
	f.movies[id] = m
	return nil
}

type fakeHallRepo struct {
	mu    sync.Mutex
	halls map[uuid.UUID]entity.Hall
}

func newFakeHallRepo() *fakeHallRepo {
	return &fakeHallRepo{halls: make(map[uuid.UUID]entity.Hall)}
}

var _ repository.HallRepository = (*fakeHallRepo)(nil)

func (f *fakeHallRepo) Create(ctx context.Context, hall *entity.Hall) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, h := range f.halls {
		if h.Name == hall.Name && h.DeletedAt == nil {
			return fmt.Errorf("create hall %s: %w", hall.Name, repository.ErrDuplicateName)
		}
	}
	f.halls[hall.ID] = *hall
	return nil
}

func (f *fakeHallRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hall, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	h, ok := f.halls[id]
	if !ok || h.DeletedAt != nil {
		return nil, nil
	}
	out := h
	return &out, nil
}

func (f *fakeHallRepo) FindByName(ctx context.Context, name string) (*entity.Hall, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var deleted *entity.Hall
	for _, h := range f.halls {
		if h.Name != name {
			continue
		}
		if h.DeletedAt == nil {
			out := h
			return &out, nil
		}
		out := h
		deleted = &out
	}
	return deleted, nil
}

func (f *fakeHallRepo) FindAll(ctx context.Context) ([]*entity.Hall, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*entity.Hall
	for _, h := range f.halls {
		if h.DeletedAt == nil {
			c := h
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakeHallRepo) Update(ctx context.Context, hall *entity.Hall) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.halls[hall.ID]
	if !ok || existing.DeletedAt != nil {
		return fmt.Errorf("update hall %s: %w", hall.ID, repository.ErrNotFound)
	}
	f.halls[hall.ID] = *hall
	return nil
}

func (f *fakeHallRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	h, ok := f.halls[id]
	if !ok || h.DeletedAt != nil {
		return fmt.Errorf("delete hall %s: %w", id, repository.ErrNotFound)
	}
	now := time.Now()
	h.DeletedAt = &now
	f.halls[id] = h
	return nil
}

func (f *fakeHallRepo) Restore(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	h, ok := f.halls[id]
	if !ok || h.DeletedAt == nil {
		return fmt.Errorf("restore hall %s: %w", id, repository.ErrNotFound)
	}
	h.DeletedAt = nil
	f.halls[id] = h
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]entity.User)}
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.DeletedAt == nil && (u.Email == user.Email || u.Username == user.Username) {
			return fmt.Errorf("create user %s: %w", user.Email, repository.ErrDuplicateName)
		}
	}
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok || u.DeletedAt != nil {
		return nil, nil
	}
	out := u
	return &out, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == email && u.DeletedAt == nil {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Username == username && u.DeletedAt == nil {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, id uuid.UUID, role entity.UserRole) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok || u.DeletedAt != nil {
		return fmt.Errorf("update role for user %s: %w", id, repository.ErrNotFound)
	}
	u.Role = role
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) SetVerified(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok || u.DeletedAt != nil {
		return fmt.Errorf("mark user %s verified: %w", id, repository.ErrNotFound)
	}
	u.EmailVerified = true
	f.users[id] = u
	return nil
}

type fakeOTPRepo struct {
	mu   sync.Mutex
	otps []entity.OTP
}

func newFakeOTPRepo() *fakeOTPRepo {
	return &fakeOTPRepo{}
}

var _ repository.OTPRepository = (*fakeOTPRepo)(nil)

func (f *fakeOTPRepo) Create(ctx context.Context, otp *entity.OTP) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.otps = append(f.otps, *otp)
	return nil
}

func (f *fakeOTPRepo) FindValidOTP(ctx context.Context, email, otpCode string) (*entity.OTP, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := len(f.otps) - 1; i >= 0; i-- {
		o := f.otps[i]
		if o.Email == email && o.OTPCode == otpCode && !o.IsUsed && o.ExpiresAt.After(time.Now()) {
			out := o
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeOTPRepo) MarkAsUsed(ctx context.Context, otpID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.otps {
		if f.otps[i].ID == otpID {
			f.otps[i].IsUsed = true
			return nil
		}
	}
	return fmt.Errorf("mark OTP %s as used: %w", otpID, repository.ErrNotFound)
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeMailer) SendVerificationCode(to, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sent = append(f.sent, to)
	return nil
}
