package viewstate

import (
	"context"
	"hospital-web-service/internal/app/contracts"
	"hospital-web-service/internal/pkg/constvars"
	"hospital-web-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// memoryViewStateRepository keeps view state in process. Values are stored
// serialized so callers never share slices with the store.
type memoryViewStateRepository struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryViewStateRepository(ttl time.Duration) contracts.ViewStateRepository {
	return &memoryViewStateRepository{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *memoryViewStateRepository) Load(ctx context.Context, sessionID, view string, dest interface{}) (bool, error) {
	key := buildKey(sessionID, view)

	m.mu.Lock()
	entry, ok := m.entries[key]
	if ok && m.expired(entry) {
		delete(m.entries, key)
		ok = false
	}
	m.mu.Unlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(entry.data, dest); err != nil {
		return false, exceptions.ErrCannotUnmarshalJSON(err)
	}
	return true, nil
}

func (m *memoryViewStateRepository) Save(ctx context.Context, sessionID, view string, state interface{}) error {
	data, err := json.Marshal(state)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	entry := memoryEntry{data: data}
	if m.ttl > 0 {
		entry.expiresAt = m.now().Add(m.ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweep()
	m.entries[buildKey(sessionID, view)] = entry
	return nil
}

func (m *memoryViewStateRepository) Delete(ctx context.Context, sessionID, view string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, buildKey(sessionID, view))
	return nil
}

func (m *memoryViewStateRepository) Name() string {
	return constvars.SessionStoreMemory
}

func (m *memoryViewStateRepository) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && m.now().After(entry.expiresAt)
}

// sweep drops expired entries. Callers hold mu.
func (m *memoryViewStateRepository) sweep() {
	for key, entry := range m.entries {
		if m.expired(entry) {
			delete(m.entries, key)
		}
	}
}
