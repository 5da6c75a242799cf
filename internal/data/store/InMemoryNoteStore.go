package store

import (
	"context"
	"sync"
	"time"

	"github.com/akolanti/StudyAPI/pkg/logger_i"
)

var inMemLogger = logger_i.NewLogger("InMem NoteStore")

type noteEntry struct {
	note      string
	expiresAt time.Time
}

// InMemoryNoteStore keeps working notes in process memory with the same TTL rule as Redis:
// every save or read pushes the expiry forward.
type InMemoryNoteStore struct {
	noteMutex *sync.RWMutex
	noteMap   map[string]noteEntry
	ttl       time.Duration
	now       func() time.Time
}

func InitInMemoryNoteStore(ttl time.Duration) *InMemoryNoteStore {
	return &InMemoryNoteStore{
		noteMutex: new(sync.RWMutex),
		noteMap:   make(map[string]noteEntry),
		ttl:       ttl,
		now:       time.Now,
	}
}

func (store *InMemoryNoteStore) SaveNote(ctx context.Context, sessionId string, note string) error {
	store.noteMutex.Lock()
	defer store.noteMutex.Unlock()
	store.noteMap[sessionId] = noteEntry{note: note, expiresAt: store.now().Add(store.ttl)}
	inMemLogger.FromContext(ctx).Debug("Saved working note", "chars", len(note))
	return nil
}

func (store *InMemoryNoteStore) GetNote(ctx context.Context, sessionId string) (string, bool, error) {
	store.noteMutex.Lock()
	defer store.noteMutex.Unlock()

	entry, found := store.noteMap[sessionId]
	if !found {
		return "", false, nil
	}
	if !store.now().Before(entry.expiresAt) {
		delete(store.noteMap, sessionId)
		return "", false, nil
	}
	entry.expiresAt = store.now().Add(store.ttl)
	store.noteMap[sessionId] = entry
	return entry.note, true, nil
}

func (store *InMemoryNoteStore) ClearNote(ctx context.Context, sessionId string) error {
	store.noteMutex.Lock()
	defer store.noteMutex.Unlock()
	delete(store.noteMap, sessionId)
	return nil
}

// Sweep drops expired notes. Returns how many were removed.
func (store *InMemoryNoteStore) Sweep() int {
	store.noteMutex.Lock()
	defer store.noteMutex.Unlock()
	removed := 0
	now := store.now()
	for id, entry := range store.noteMap {
		if !now.Before(entry.expiresAt) {
			delete(store.noteMap, id)
			removed++
		}
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (store *InMemoryNoteStore) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.Sweep(); n > 0 {
				inMemLogger.Debug("Swept expired notes", "count", n)
			}
		}
	}
}
