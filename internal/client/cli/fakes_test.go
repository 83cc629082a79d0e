package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/lifelog/internal/client/config"
	"github.com/dmitrijs2005/lifelog/internal/client/services"
	"github.com/dmitrijs2005/lifelog/internal/client/session"
	"github.com/dmitrijs2005/lifelog/internal/logging"
	"github.com/dmitrijs2005/lifelog/internal/models"
)

type fakeSession struct {
	user *session.User

	loginUser, loginPass string
	registered           models.RegisterRequest
	err                  error
	loggedOut            bool
}

func (f *fakeSession) Login(_ context.Context, username, password string) (*session.User, error) {
	f.loginUser, f.loginPass = username, password
	if f.err != nil {
		return nil, f.err
	}
	f.user = &session.User{ID: "u1", Username: username}
	return f.user, nil
}

func (f *fakeSession) Register(_ context.Context, req models.RegisterRequest) (*session.User, error) {
	f.registered = req
	if f.err != nil {
		return nil, f.err
	}
	f.user = &session.User{ID: "u1", Username: req.Username}
	return f.user, nil
}

func (f *fakeSession) Logout(context.Context) error {
	f.loggedOut = true
	f.user = nil
	return f.err
}

func (f *fakeSession) User() *session.User { return f.user }

func (f *fakeSession) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.user == nil {
		return session.ErrNotLoggedIn
	}
	return fn(ctx)
}

// Unused methods of the embedded interfaces panic, which flags a command
// calling more than it should.

type fakeJournals struct {
	services.JournalService
	items   []*models.JournalEntry
	byDate  models.Date
	tag     string
	created *models.JournalEntry
	updated *models.JournalEntry
	deleted []string
}

func (f *fakeJournals) GetAll(context.Context) ([]*models.JournalEntry, error) { return f.items, nil }

func (f *fakeJournals) GetByID(_ context.Context, id string) (*models.JournalEntry, error) {
	for _, e := range f.items {
		if e.ID == id {
			c := *e
			return &c, nil
		}
	}
	return nil, &notFound{}
}

func (f *fakeJournals) GetByDate(_ context.Context, d models.Date) ([]*models.JournalEntry, error) {
	f.byDate = d
	return f.items, nil
}

func (f *fakeJournals) FilterByTag(_ context.Context, tag string) ([]*models.JournalEntry, error) {
	f.tag = tag
	return f.items, nil
}

func (f *fakeJournals) Create(_ context.Context, e *models.JournalEntry) (*models.JournalEntry, error) {
	f.created = e
	c := *e
	c.ID = "j-new"
	return &c, nil
}

func (f *fakeJournals) Update(_ context.Context, id string, e *models.JournalEntry) (*models.JournalEntry, error) {
	f.updated = e
	return e, nil
}

func (f *fakeJournals) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	kept := f.items[:0]
	for _, e := range f.items {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	f.items = kept
	return nil
}

type notFound struct{}

func (*notFound) Error() string { return "not found" }

type fakeMemories struct {
	services.MemoryService
	items   []*models.Memory
	created *models.Memory
}

func (f *fakeMemories) GetAll(context.Context) ([]*models.Memory, error) { return f.items, nil }

func (f *fakeMemories) Create(_ context.Context, m *models.Memory) (*models.Memory, error) {
	f.created = m
	c := *m
	c.ID = "m-new"
	return &c, nil
}

type fakeTastes struct {
	services.TasteService
	items []*models.Taste
}

func (f *fakeTastes) GetAll(context.Context) ([]*models.Taste, error)       { return f.items, nil }
func (f *fakeTastes) SortByRating(context.Context) ([]*models.Taste, error) { return f.items, nil }

type fakePlaces struct {
	services.PlaceService
	items   []*models.Place
	updated *models.Place
}

func (f *fakePlaces) GetAll(context.Context) ([]*models.Place, error) { return f.items, nil }

func (f *fakePlaces) GetByID(_ context.Context, id string) (*models.Place, error) {
	for _, p := range f.items {
		if p.ID == id {
			c := *p
			return &c, nil
		}
	}
	return nil, &notFound{}
}

func (f *fakePlaces) Update(_ context.Context, id string, p *models.Place) (*models.Place, error) {
	f.updated = p
	return p, nil
}

type fakePhotos struct {
	services.PhotoService
	items    []*models.Photo
	file     services.PhotoFile
	body     string
	meta     models.PhotoMetadata
	uploaded bool
}

func (f *fakePhotos) GetAll(context.Context) ([]*models.Photo, error) { return f.items, nil }

func (f *fakePhotos) Upload(_ context.Context, file services.PhotoFile, meta models.PhotoMetadata) (*models.Photo, error) {
	var b bytes.Buffer
	if _, err := b.ReadFrom(file.Body); err != nil {
		return nil, err
	}
	f.file, f.body, f.meta, f.uploaded = file, b.String(), meta, true
	return &models.Photo{ID: "ph-new"}, nil
}

type fixture struct {
	app      *App
	out      *bytes.Buffer
	session  *fakeSession
	journals *fakeJournals
	memories *fakeMemories
	tastes   *fakeTastes
	places   *fakePlaces
	photos   *fakePhotos
}

// newFixture builds a signed-in app over fakes. input feeds the prompts.
func newFixture(input string) *fixture {
	f := &fixture{
		out:      &bytes.Buffer{},
		session:  &fakeSession{user: &session.User{ID: "u1", Username: "alice"}},
		journals: &fakeJournals{},
		memories: &fakeMemories{},
		tastes:   &fakeTastes{},
		places:   &fakePlaces{},
		photos:   &fakePhotos{},
	}
	f.app = &App{
		logger:   logging.Nop{},
		session:  f.session,
		journals: f.journals,
		memories: f.memories,
		tastes:   f.tastes,
		places:   f.places,
		photos:   f.photos,
		in:       rdr(input),
		out:      f.out,
	}
	return f
}

func (f *fixture) run(t *testing.T, args ...string) error {
	t.Helper()
	root := newRootCommand(f.app, &config.Config{}, func(context.Context, *config.Config) error { return nil })
	root.SetOut(f.out)
	root.SetErr(f.out)
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

func indexOf(s, sub string) int {
	return strings.Index(s, sub)
}
