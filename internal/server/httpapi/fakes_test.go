package httpapi

import (
	"bytes"
	"context"
	"io"

	"github.com/dmitrijs2005/lifelog/internal/common"
	"github.com/dmitrijs2005/lifelog/internal/logging"
	"github.com/dmitrijs2005/lifelog/internal/models"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/journals"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/memories"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/photos"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/places"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/tastes"
	"github.com/dmitrijs2005/lifelog/internal/server/services"
	"github.com/dmitrijs2005/lifelog/internal/server/storage"
)

const (
	validToken = "good-token"
	testUserID = "u1"
	journalID  = "3f1c2b4e-8d2a-4c1e-9b7a-1e2d3c4b5a60"
	otherID    = "7a9e0c1d-2b3f-4a5e-8c6d-0f1e2d3c4b5a"
)

type fakeUsers struct {
	registerErr error
	loginErr    error
	refreshErr  error
	lastRefresh string
	loggedOut   string
}

func (f *fakeUsers) Register(_ context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: "a", RefreshToken: "r", Username: req.Username, UserID: testUserID}, nil
}

func (f *fakeUsers) Login(_ context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &models.AuthResponse{Token: "a", RefreshToken: "r", Username: req.Username, UserID: testUserID}, nil
}

func (f *fakeUsers) RefreshToken(_ context.Context, token string) (*models.AuthResponse, error) {
	f.lastRefresh = token
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}
	return &models.AuthResponse{Token: "a2", RefreshToken: "r2", UserID: testUserID}, nil
}

func (f *fakeUsers) Logout(_ context.Context, token string) error {
	f.loggedOut = token
	return nil
}

func (f *fakeUsers) Profile(_ context.Context, userID string) (*models.Profile, error) {
	return &models.Profile{UserID: userID, Username: "alice", Email: "a@x.io"}, nil
}

func (f *fakeUsers) Authenticate(token string) (string, error) {
	switch token {
	case validToken:
		return testUserID, nil
	case "expired":
		return "", common.ErrTokenExpired
	}
	return "", common.ErrInvalidToken
}

type fakeJournals struct {
	lastFilter journals.Filter
	lastUser   string
	lastID     string
	err        error
}

func (f *fakeJournals) Create(_ context.Context, userID string, e *models.JournalEntry) (*models.JournalEntry, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	e.ID, e.UserID = "j1", userID
	return e, nil
}

func (f *fakeJournals) Update(_ context.Context, userID, id string, e *models.JournalEntry) (*models.JournalEntry, error) {
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	e.ID, e.UserID = id, userID
	return e, nil
}

func (f *fakeJournals) Delete(_ context.Context, userID, id string) error {
	f.lastUser, f.lastID = userID, id
	return f.err
}

func (f *fakeJournals) Get(_ context.Context, userID, id string) (*models.JournalEntry, error) {
	f.lastUser, f.lastID = userID, id
	if f.err != nil {
		return nil, f.err
	}
	return &models.JournalEntry{ID: id, Content: "hi", Mood: models.MoodHappy, Tags: models.Tags{}}, nil
}

func (f *fakeJournals) List(_ context.Context, userID string, flt journals.Filter) ([]*models.JournalEntry, error) {
	f.lastUser, f.lastFilter = userID, flt
	if f.err != nil {
		return nil, f.err
	}
	return []*models.JournalEntry{}, nil
}

type fakeMemories struct {
	lastFilter memories.Filter
}

func (f *fakeMemories) Create(_ context.Context, _ string, m *models.Memory) (*models.Memory, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	m.ID = "m1"
	return m, nil
}

func (f *fakeMemories) Delete(context.Context, string, string) error { return common.ErrorNotFound }
func (f *fakeMemories) Get(context.Context, string, string) (*models.Memory, error) {
	return nil, common.ErrorNotFound
}

func (f *fakeMemories) List(_ context.Context, _ string, flt memories.Filter) ([]*models.Memory, error) {
	f.lastFilter = flt
	return []*models.Memory{}, nil
}

type fakeTastes struct {
	lastFilter tastes.Filter
}

func (f *fakeTastes) Create(_ context.Context, _ string, t *models.Taste) (*models.Taste, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (f *fakeTastes) Update(_ context.Context, _, _ string, t *models.Taste) (*models.Taste, error) {
	return t, nil
}

func (f *fakeTastes) Delete(context.Context, string, string) error { return nil }
func (f *fakeTastes) Get(context.Context, string, string) (*models.Taste, error) {
	return nil, common.ErrorNotFound
}

func (f *fakeTastes) List(_ context.Context, _ string, flt tastes.Filter) ([]*models.Taste, error) {
	f.lastFilter = flt
	return []*models.Taste{}, nil
}

type fakePlaces struct {
	lastFilter places.Filter
}

func (f *fakePlaces) Create(_ context.Context, _ string, p *models.Place) (*models.Place, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (f *fakePlaces) Update(_ context.Context, _, _ string, p *models.Place) (*models.Place, error) {
	return p, nil
}

func (f *fakePlaces) Delete(context.Context, string, string) error { return nil }
func (f *fakePlaces) Get(context.Context, string, string) (*models.Place, error) {
	return nil, common.ErrorNotFound
}

func (f *fakePlaces) List(_ context.Context, _ string, flt places.Filter) ([]*models.Place, error) {
	f.lastFilter = flt
	return []*models.Place{}, nil
}

type fakePhases struct{}

func (fakePhases) Create(_ context.Context, _ string, p *models.LifePhase) (*models.LifePhase, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (fakePhases) Update(_ context.Context, _, _ string, p *models.LifePhase) (*models.LifePhase, error) {
	return p, nil
}

func (fakePhases) Delete(context.Context, string, string) error { return nil }
func (fakePhases) Get(context.Context, string, string) (*models.LifePhase, error) {
	return &models.LifePhase{ID: "p1", Name: "Uni"}, nil
}

func (fakePhases) List(context.Context, string) ([]*models.LifePhase, error) {
	return []*models.LifePhase{}, nil
}

type fakePhotos struct {
	upload     services.PhotoUpload
	body       []byte
	uploadErr  error
	lastFilter photos.Filter
	directURL  string
	objects    map[string][]byte
}

func (f *fakePhotos) Upload(_ context.Context, userID string, u services.PhotoUpload) (*models.Photo, error) {
	if err := models.ValidatePhotoFile(u.ContentType, u.Size, common.MaxPhotoSize); err != nil {
		return nil, err
	}
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.upload = u
	f.body, _ = io.ReadAll(u.Body)
	return &models.Photo{ID: "ph1", UserID: userID, ImageURL: storage.PublicURL("k.png"), Tags: u.Metadata.Tags}, nil
}

func (f *fakePhotos) Delete(context.Context, string, string) error { return nil }
func (f *fakePhotos) Get(context.Context, string, string) (*models.Photo, error) {
	return nil, common.ErrorNotFound
}

func (f *fakePhotos) List(_ context.Context, _ string, flt photos.Filter) ([]*models.Photo, error) {
	f.lastFilter = flt
	return []*models.Photo{}, nil
}

func (f *fakePhotos) Open(_ context.Context, key string) (io.ReadCloser, *storage.ObjectInfo, error) {
	b, ok := f.objects[key]
	if !ok {
		return nil, nil, common.ErrorNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), &storage.ObjectInfo{ContentType: "image/png", Size: int64(len(b))}, nil
}

func (f *fakePhotos) DirectURL(context.Context, string) (string, bool, error) {
	return f.directURL, f.directURL != "", nil
}

type fixture struct {
	users    *fakeUsers
	journals *fakeJournals
	memories *fakeMemories
	tastes   *fakeTastes
	places   *fakePlaces
	photos   *fakePhotos
}

func newFixture() (*fixture, *HTTPServer) {
	f := &fixture{
		users:    &fakeUsers{},
		journals: &fakeJournals{},
		memories: &fakeMemories{},
		tastes:   &fakeTastes{},
		places:   &fakePlaces{},
		photos:   &fakePhotos{objects: map[string][]byte{}},
	}
	s := NewHTTPServer(":0", logging.Nop{}, Services{
		Users:    f.users,
		Journals: f.journals,
		Memories: f.memories,
		Tastes:   f.tastes,
		Places:   f.places,
		Photos:   f.photos,
		Phases:   fakePhases{},
	}, Options{CORSAllowedOrigin: "http://localhost:3000", MaxUploadBytes: common.MaxPhotoSize})
	return f, s
}
