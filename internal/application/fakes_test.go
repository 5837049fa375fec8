package application

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oksasatya/lightbnb-api/internal/domain/apperr"
	"github.com/oksasatya/lightbnb-api/internal/domain/entity"
	"github.com/oksasatya/lightbnb-api/pkg/mailer"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*entity.User
	nextID  int64
	err     error // returned by every call when set
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, ok := r.byEmail[u.Email]; ok {
		return fmt.Errorf("create user: %w", apperr.ErrConflict)
	}
	r.nextID++
	u.ID = r.nextID
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("get user by id: %w", apperr.ErrNotFound)
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("get user by email: %w", apperr.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]int64
	ttls     map[string]time.Duration
	err      error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]int64{}, ttls: map[string]time.Duration{}}
}

func (r *fakeSessionRepo) Save(_ context.Context, sid string, userID int64, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.sessions[sid] = userID
	r.ttls[sid] = ttl
	return nil
}

func (r *fakeSessionRepo) Lookup(_ context.Context, sid string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	id, ok := r.sessions[sid]
	if !ok {
		return 0, fmt.Errorf("lookup session: %w", apperr.ErrNotFound)
	}
	return id, nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, sid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sid)
	return nil
}

type fakePropertyRepo struct {
	created  []entity.Property
	listings []entity.PropertyListing
	gotOpts  entity.PropertySearchOptions
	gotLimit int
	err      error
}

func (r *fakePropertyRepo) Search(_ context.Context, opts entity.PropertySearchOptions, limit int) ([]entity.PropertyListing, error) {
	r.gotOpts, r.gotLimit = opts, limit
	return r.listings, r.err
}

func (r *fakePropertyRepo) Create(_ context.Context, p *entity.Property) error {
	if r.err != nil {
		return r.err
	}
	p.ID = int64(len(r.created) + 1)
	p.Active = true
	r.created = append(r.created, *p)
	return nil
}

type fakeReservationRepo struct {
	gotGuest int64
	gotLimit int
	out      []entity.GuestReservation
}

func (r *fakeReservationRepo) ListForGuest(_ context.Context, guestID int64, limit int) ([]entity.GuestReservation, error) {
	r.gotGuest, r.gotLimit = guestID, limit
	return r.out, nil
}

type fakePublisher struct {
	jobs []mailer.EmailJob
	err  error
}

func (p *fakePublisher) PublishEmail(_ context.Context, job mailer.EmailJob) error {
	p.jobs = append(p.jobs, job)
	return p.err
}

type fakeIndex struct {
	indexed []entity.Property
	results []entity.Property
	gotQ    string
	gotSize int
	err     error
}

func (i *fakeIndex) Index(_ context.Context, p entity.Property) error {
	i.indexed = append(i.indexed, p)
	return i.err
}

func (i *fakeIndex) Search(_ context.Context, q string, size int) ([]entity.Property, error) {
	i.gotQ, i.gotSize = q, size
	return i.results, i.err
}

type fakePhotos struct {
	gotOwner int64
	gotName  string
	gotBody  string
}

func (p *fakePhotos) Upload(_ context.Context, ownerID int64, r io.Reader, filename, _ string) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	p.gotOwner, p.gotName, p.gotBody = ownerID, filename, string(b)
	return "https://storage.googleapis.com/bucket/" + filename, nil
}
