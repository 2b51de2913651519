package services

import (
	"context"
	"sync"
	"time"

	"karttem-admin/internal/models"
	"karttem-admin/internal/repositories"
	"karttem-admin/pkg/imageproc"
	"karttem-admin/pkg/inmobiliaria"

	"github.com/stretchr/testify/mock"
)

type mockPropertyBackend struct{ mock.Mock }

func (m *mockPropertyBackend) List(ctx context.Context) ([]inmobiliaria.Property, error) {
	args := m.Called(ctx)
	props, _ := args.Get(0).([]inmobiliaria.Property)
	return props, args.Error(1)
}

func (m *mockPropertyBackend) ListByStatus(ctx context.Context, status inmobiliaria.Status) ([]inmobiliaria.Property, error) {
	args := m.Called(ctx, status)
	props, _ := args.Get(0).([]inmobiliaria.Property)
	return props, args.Error(1)
}

func (m *mockPropertyBackend) ListInactive(ctx context.Context) ([]inmobiliaria.Property, error) {
	args := m.Called(ctx)
	props, _ := args.Get(0).([]inmobiliaria.Property)
	return props, args.Error(1)
}

func (m *mockPropertyBackend) Get(ctx context.Context, id string) (*inmobiliaria.Property, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*inmobiliaria.Property)
	return p, args.Error(1)
}

func (m *mockPropertyBackend) Create(ctx context.Context, form *inmobiliaria.PropertyForm) (*inmobiliaria.Property, string, error) {
	args := m.Called(ctx, form)
	p, _ := args.Get(0).(*inmobiliaria.Property)
	return p, args.String(1), args.Error(2)
}

func (m *mockPropertyBackend) Update(ctx context.Context, id string, form *inmobiliaria.PropertyForm) (*inmobiliaria.Property, string, error) {
	args := m.Called(ctx, id, form)
	p, _ := args.Get(0).(*inmobiliaria.Property)
	return p, args.String(1), args.Error(2)
}

func (m *mockPropertyBackend) UpdateStatus(ctx context.Context, id string, status inmobiliaria.Status) (string, error) {
	args := m.Called(ctx, id, status)
	return args.String(0), args.Error(1)
}

func (m *mockPropertyBackend) Delete(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type mockOwnerBackend struct{ mock.Mock }

func (m *mockOwnerBackend) List(ctx context.Context) ([]inmobiliaria.Owner, error) {
	args := m.Called(ctx)
	owners, _ := args.Get(0).([]inmobiliaria.Owner)
	return owners, args.Error(1)
}

func (m *mockOwnerBackend) Search(ctx context.Context, query string) ([]inmobiliaria.Owner, error) {
	args := m.Called(ctx, query)
	owners, _ := args.Get(0).([]inmobiliaria.Owner)
	return owners, args.Error(1)
}

func (m *mockOwnerBackend) Get(ctx context.Context, id string) (*inmobiliaria.Owner, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*inmobiliaria.Owner)
	return o, args.Error(1)
}

func (m *mockOwnerBackend) GetByDocument(ctx context.Context, docType, number string) (*inmobiliaria.Owner, error) {
	args := m.Called(ctx, docType, number)
	o, _ := args.Get(0).(*inmobiliaria.Owner)
	return o, args.Error(1)
}

func (m *mockOwnerBackend) Create(ctx context.Context, owner *inmobiliaria.Owner) (*inmobiliaria.Owner, string, error) {
	args := m.Called(ctx, owner)
	o, _ := args.Get(0).(*inmobiliaria.Owner)
	return o, args.String(1), args.Error(2)
}

func (m *mockOwnerBackend) Update(ctx context.Context, id string, owner *inmobiliaria.Owner) (string, error) {
	args := m.Called(ctx, id, owner)
	return args.String(0), args.Error(1)
}

func (m *mockOwnerBackend) Delete(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type mockUserBackend struct{ mock.Mock }

func (m *mockUserBackend) List(ctx context.Context) ([]inmobiliaria.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]inmobiliaria.User)
	return users, args.Error(1)
}

func (m *mockUserBackend) Get(ctx context.Context, id string) (*inmobiliaria.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*inmobiliaria.User)
	return u, args.Error(1)
}

func (m *mockUserBackend) Create(ctx context.Context, user *inmobiliaria.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *mockUserBackend) Update(ctx context.Context, id string, user *inmobiliaria.User) (string, error) {
	args := m.Called(ctx, id, user)
	return args.String(0), args.Error(1)
}

func (m *mockUserBackend) Delete(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type mockPropertyTypeBackend struct{ mock.Mock }

func (m *mockPropertyTypeBackend) List(ctx context.Context) ([]inmobiliaria.PropertyType, error) {
	args := m.Called(ctx)
	types, _ := args.Get(0).([]inmobiliaria.PropertyType)
	return types, args.Error(1)
}

func (m *mockPropertyTypeBackend) Create(ctx context.Context, pt *inmobiliaria.PropertyType) (string, error) {
	args := m.Called(ctx, pt)
	return args.String(0), args.Error(1)
}

func (m *mockPropertyTypeBackend) Update(ctx context.Context, id string, pt *inmobiliaria.PropertyType) (string, error) {
	args := m.Called(ctx, id, pt)
	return args.String(0), args.Error(1)
}

func (m *mockPropertyTypeBackend) Delete(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *mockPropertyTypeBackend) Activate(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *mockPropertyTypeBackend) Deactivate(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type mockAuthBackend struct{ mock.Mock }

func (m *mockAuthBackend) Login(ctx context.Context, email, password string) (*inmobiliaria.LoginResult, error) {
	args := m.Called(ctx, email, password)
	r, _ := args.Get(0).(*inmobiliaria.LoginResult)
	return r, args.Error(1)
}

// fakeListingCache is an in-memory ListingCache.
type fakeListingCache struct {
	mu            sync.Mutex
	lists         map[string][]inmobiliaria.Property
	invalidations int
}

func newFakeListingCache() *fakeListingCache {
	return &fakeListingCache{lists: map[string][]inmobiliaria.Property{}}
}

func (c *fakeListingCache) Get(_ context.Context, scope string) ([]inmobiliaria.Property, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	props, ok := c.lists[scope]
	return props, ok
}

func (c *fakeListingCache) Set(_ context.Context, scope string, properties []inmobiliaria.Property) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lists[scope] = properties
}

func (c *fakeListingCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lists = map[string][]inmobiliaria.Property{}
	c.invalidations++
	return nil
}

// fakeSessions is an in-memory SessionRepository.
type fakeSessions struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
	ttls     map[string]time.Duration
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: map[string]*models.Session{}, ttls: map[string]time.Duration{}}
}

func (f *fakeSessions) Save(_ context.Context, session *models.Session, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[session.ID] = session
	f.ttls[session.ID] = ttl
	return nil
}

func (f *fakeSessions) FindByID(_ context.Context, id string) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return nil, repositories.ErrSessionNotFound
	}
	return s, nil
}

func (f *fakeSessions) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, id)
	return nil
}

// recordingActivity keeps audit entries in memory.
type recordingActivity struct {
	mu      sync.Mutex
	entries []models.Activity
}

func (r *recordingActivity) Record(_ context.Context, activity *models.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *activity)
	return nil
}

func (r *recordingActivity) Recent(_ context.Context, limit int) ([]models.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) > limit {
		return r.entries[:limit], nil
	}
	return r.entries, nil
}

// prefixCompressor marks every file it touches.
type prefixCompressor struct{}

func (prefixCompressor) Compress(filename, contentType string, data []byte) (*imageproc.Result, error) {
	return &imageproc.Result{Filename: "c-" + filename, ContentType: contentType, Data: data, Compressed: true}, nil
}
