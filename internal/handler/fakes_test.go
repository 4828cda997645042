package handler_test

// In-memory stores backing the HTTP scenario tests.  They implement
// the service interfaces just like the fakes in the service tests, but
// live here so the handler package can be tested on its own.

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/iliyamo/files-manager/internal/blob"
	"github.com/iliyamo/files-manager/internal/model"
	"github.com/iliyamo/files-manager/internal/queue"
	"github.com/iliyamo/files-manager/internal/repository"
)

type memUsers struct {
	mu     sync.Mutex
	nextID uint64
	byID   map[uint64]model.User
}

func newMemUsers() *memUsers { return &memUsers{byID: map[uint64]model.User{}} }

func (m *memUsers) Create(_ context.Context, email, password string) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			return 0, repository.ErrEmailExists
		}
	}
	m.nextID++
	m.byID[m.nextID] = model.User{ID: m.nextID, Email: email, Password: password}
	return m.nextID, nil
}

func (m *memUsers) GetByCredentials(_ context.Context, email, password string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email && u.Password == password {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func (m *memUsers) GetByID(_ context.Context, id uint64) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

type memFiles struct {
	mu     sync.Mutex
	nextID uint64
	byID   map[uint64]model.File
}

func newMemFiles() *memFiles { return &memFiles{byID: map[uint64]model.File{}} }

func (m *memFiles) Create(_ context.Context, f model.File) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	f.ID = m.nextID
	m.byID[f.ID] = f
	return f.ID, nil
}

func (m *memFiles) GetByID(_ context.Context, id uint64) (model.File, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.byID[id]
	if !ok {
		return model.File{}, repository.ErrNotFound
	}
	return f, nil
}

func (m *memFiles) List(_ context.Context, parentID uint64, page int) ([]model.File, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if page < 0 {
		page = 0
	}
	all := []model.File{}
	for _, f := range m.byID {
		if parentID == 0 || f.ParentID == parentID {
			all = append(all, f)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	lo := page * repository.PageSize
	if lo >= len(all) {
		return []model.File{}, nil
	}
	hi := lo + repository.PageSize
	if hi > len(all) {
		hi = len(all)
	}
	return all[lo:hi], nil
}

func (m *memFiles) SetPublic(_ context.Context, id uint64, public bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	f.IsPublic = public
	m.byID[id] = f
	return nil
}

type memSessions struct {
	mu  sync.Mutex
	ttl time.Duration
	tok map[string]struct {
		userID  uint64
		expires time.Time
	}
}

func newMemSessions(ttl time.Duration) *memSessions {
	return &memSessions{ttl: ttl, tok: map[string]struct {
		userID  uint64
		expires time.Time
	}{}}
}

func (m *memSessions) Create(_ context.Context, token string, userID uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tok[token] = struct {
		userID  uint64
		expires time.Time
	}{userID, time.Now().Add(m.ttl)}
	return nil
}

func (m *memSessions) Get(_ context.Context, token string) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.tok[token]
	if !ok || time.Now().After(e.expires) {
		return 0, repository.ErrNotFound
	}
	return e.userID, nil
}

func (m *memSessions) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tok[token]; !ok {
		return repository.ErrNotFound
	}
	delete(m.tok, token)
	return nil
}

type memBlobs struct {
	mu     sync.Mutex
	nextID int
	data   map[string][]byte
}

func newMemBlobs() *memBlobs { return &memBlobs{data: map[string][]byte{}} }

func (m *memBlobs) Put(_ context.Context, p []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	key := fmt.Sprintf("/blobs/%d", m.nextID)
	m.data[key] = p
	return key, nil
}

func (m *memBlobs) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.data[key]
	if !ok {
		return nil, blob.ErrNotFound
	}
	return p, nil
}

type memQueue struct {
	mu   sync.Mutex
	jobs []queue.ThumbnailJob
}

func (m *memQueue) Publish(_ context.Context, job queue.ThumbnailJob) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs = append(m.jobs, job)
	return nil
}
