package services

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/lifelog/internal/common"
	"github.com/dmitrijs2005/lifelog/internal/dbx"
	"github.com/dmitrijs2005/lifelog/internal/models"
	sm "github.com/dmitrijs2005/lifelog/internal/server/models"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/journals"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/memories"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/phases"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/photos"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/places"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/tastes"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/users"
	"github.com/dmitrijs2005/lifelog/internal/server/storage"
)

var errBoom = errors.New("boom")

// fakeRepoManager hands out whatever fakes a test set; unset repos are nil.
type fakeRepoManager struct {
	users    users.Repository
	tokens   refreshtokens.Repository
	journals journals.Repository
	memories memories.Repository
	tastes   tastes.Repository
	places   places.Repository
	photos   photos.Repository
	phases   phases.Repository
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return m.users }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.tokens }
func (m *fakeRepoManager) Journals(dbx.DBTX) journals.Repository           { return m.journals }
func (m *fakeRepoManager) Memories(dbx.DBTX) memories.Repository           { return m.memories }
func (m *fakeRepoManager) Tastes(dbx.DBTX) tastes.Repository               { return m.tastes }
func (m *fakeRepoManager) Places(dbx.DBTX) places.Repository               { return m.places }
func (m *fakeRepoManager) Photos(dbx.DBTX) photos.Repository               { return m.photos }
func (m *fakeRepoManager) Phases(dbx.DBTX) phases.Repository               { return m.phases }

type fakeUsersRepo struct {
	byName    map[string]*sm.User
	createErr error
	getErr    error
}

func newFakeUsers(us ...*sm.User) *fakeUsersRepo {
	f := &fakeUsersRepo{byName: map[string]*sm.User{}}
	for _, u := range us {
		f.byName[u.Username] = u
	}
	return f
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *sm.User) (*sm.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byName[u.Username]; ok {
		return nil, common.ErrAlreadyExists
	}
	u.ID = "id-" + u.Username
	f.byName[u.Username] = u
	return u, nil
}

func (f *fakeUsersRepo) GetUserByLogin(ctx context.Context, username string) (*sm.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byName[username]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetUserByEmail(ctx context.Context, email string) (*sm.User, error) {
	for _, u := range f.byName {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetUserByID(ctx context.Context, id string) (*sm.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.byName {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

type fakeRefreshRepo struct {
	tokens    map[string]*sm.RefreshToken
	createErr error
	delErr    error
	findErr   error
	purged    time.Time
}

func newFakeRefresh() *fakeRefreshRepo {
	return &fakeRefreshRepo{tokens: map[string]*sm.RefreshToken{}}
}

func (f *fakeRefreshRepo) Create(ctx context.Context, userID, token string, validity time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.tokens[token] = &sm.RefreshToken{UserID: userID, Token: token, Expires: timeNow().Add(validity)}
	return nil
}

func (f *fakeRefreshRepo) Find(ctx context.Context, token string) (*sm.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if t, ok := f.tokens[token]; ok {
		return t, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeRefreshRepo) Delete(ctx context.Context, token string) error {
	if f.delErr != nil {
		return f.delErr
	}
	if _, ok := f.tokens[token]; !ok {
		return common.ErrorNotFound
	}
	delete(f.tokens, token)
	return nil
}

func (f *fakeRefreshRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	f.purged = now
	var n int64
	for k, t := range f.tokens {
		if t.Expires.Before(now) {
			delete(f.tokens, k)
			n++
		}
	}
	return n, nil
}

// fakeJournals keeps entries keyed by id and honours ownership the way the
// SQL does.
type fakeJournals struct {
	rows      map[string]*models.JournalEntry
	createErr error
	lastList  journals.Filter
}

func newFakeJournals() *fakeJournals {
	return &fakeJournals{rows: map[string]*models.JournalEntry{}}
}

func (f *fakeJournals) Create(ctx context.Context, e *models.JournalEntry) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *e
	f.rows[e.ID] = &cp
	return nil
}

func (f *fakeJournals) Update(ctx context.Context, e *models.JournalEntry) error {
	cur, ok := f.rows[e.ID]
	if !ok || cur.UserID != e.UserID || cur.Deleted {
		return common.ErrorNotFound
	}
	cp := *e
	cp.CreatedAt = cur.CreatedAt
	f.rows[e.ID] = &cp
	return nil
}

func (f *fakeJournals) SoftDelete(ctx context.Context, userID, id string) error {
	cur, ok := f.rows[id]
	if !ok || cur.UserID != userID || cur.Deleted {
		return common.ErrorNotFound
	}
	cur.Deleted = true
	return nil
}

func (f *fakeJournals) Get(ctx context.Context, userID, id string) (*models.JournalEntry, error) {
	cur, ok := f.rows[id]
	if !ok || cur.UserID != userID || cur.Deleted {
		return nil, common.ErrorNotFound
	}
	cp := *cur
	return &cp, nil
}

func (f *fakeJournals) List(ctx context.Context, userID string, flt journals.Filter) ([]*models.JournalEntry, error) {
	f.lastList = flt
	out := []*models.JournalEntry{}
	for _, e := range f.rows {
		if e.UserID == userID && !e.Deleted {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeMemories struct {
	created []*models.Memory
	delErr  error
}

func (f *fakeMemories) Create(ctx context.Context, m *models.Memory) error {
	f.created = append(f.created, m)
	return nil
}
func (f *fakeMemories) Delete(ctx context.Context, userID, id string) error { return f.delErr }
func (f *fakeMemories) Get(ctx context.Context, userID, id string) (*models.Memory, error) {
	return nil, common.ErrorNotFound
}
func (f *fakeMemories) List(ctx context.Context, userID string, flt memories.Filter) ([]*models.Memory, error) {
	return f.created, nil
}

type fakeTastes struct {
	updated   *models.Taste
	updateErr error
	lastList  tastes.Filter
}

func (f *fakeTastes) Create(ctx context.Context, t *models.Taste) error { return nil }
func (f *fakeTastes) Update(ctx context.Context, t *models.Taste) error {
	f.updated = t
	return f.updateErr
}
func (f *fakeTastes) Delete(ctx context.Context, userID, id string) error { return nil }
func (f *fakeTastes) Get(ctx context.Context, userID, id string) (*models.Taste, error) {
	return nil, common.ErrorNotFound
}
func (f *fakeTastes) List(ctx context.Context, userID string, flt tastes.Filter) ([]*models.Taste, error) {
	f.lastList = flt
	return []*models.Taste{}, nil
}

type fakePlaces struct {
	created *models.Place
}

func (f *fakePlaces) Create(ctx context.Context, p *models.Place) error {
	f.created = p
	return nil
}
func (f *fakePlaces) Update(ctx context.Context, p *models.Place) error   { return common.ErrorNotFound }
func (f *fakePlaces) Delete(ctx context.Context, userID, id string) error { return nil }
func (f *fakePlaces) Get(ctx context.Context, userID, id string) (*models.Place, error) {
	return nil, common.ErrorNotFound
}
func (f *fakePlaces) List(ctx context.Context, userID string, flt places.Filter) ([]*models.Place, error) {
	return []*models.Place{}, nil
}

type fakePhases struct {
	created *models.LifePhase
}

func (f *fakePhases) Create(ctx context.Context, p *models.LifePhase) error {
	f.created = p
	return nil
}
func (f *fakePhases) Update(ctx context.Context, p *models.LifePhase) error { return nil }
func (f *fakePhases) Delete(ctx context.Context, userID, id string) error   { return nil }
func (f *fakePhases) Get(ctx context.Context, userID, id string) (*models.LifePhase, error) {
	return nil, common.ErrorNotFound
}
func (f *fakePhases) List(ctx context.Context, userID string) ([]*models.LifePhase, error) {
	return []*models.LifePhase{}, nil
}

type fakePhotos struct {
	rows      map[string]*models.Photo
	createErr error
}

func newFakePhotos() *fakePhotos {
	return &fakePhotos{rows: map[string]*models.Photo{}}
}

func (f *fakePhotos) Create(ctx context.Context, p *models.Photo) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.rows[p.ID] = p
	return nil
}

func (f *fakePhotos) Get(ctx context.Context, userID, id string) (*models.Photo, error) {
	if p, ok := f.rows[id]; ok && p.UserID == userID {
		return p, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakePhotos) Delete(ctx context.Context, userID, id string) (*models.Photo, error) {
	p, err := f.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	delete(f.rows, id)
	return p, nil
}

func (f *fakePhotos) List(ctx context.Context, userID string, flt photos.Filter) ([]*models.Photo, error) {
	return []*models.Photo{}, nil
}

// memStore is an in-memory storage.BlobStore.
type memStore struct {
	mu      sync.Mutex
	objects map[string]string
	putErr  error
	delErr  error
}

func newMemStore() *memStore {
	return &memStore{objects: map[string]string{}}
}

func (s *memStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if s.putErr != nil {
		return s.putErr
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = string(b)
	return nil
}

func (s *memStore) Get(ctx context.Context, key string) (io.ReadCloser, *storage.ObjectInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.objects[key]
	if !ok {
		return nil, nil, common.ErrorNotFound
	}
	return io.NopCloser(strings.NewReader(b)), &storage.ObjectInfo{ContentType: "image/png", Size: int64(len(b))}, nil
}

func (s *memStore) Delete(ctx context.Context, key string) error {
	if s.delErr != nil {
		return s.delErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}
