package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/akolanti/StudyAPI/pkg/logger_i"
)

// NoteStore holds one working note per session.
type NoteStore interface {
	GetNote(ctx context.Context, sessionId string) (string, bool, error)
	SaveNote(ctx context.Context, sessionId string, note string) error
	ClearNote(ctx context.Context, sessionId string) error
}

// Context is the state chat and quiz run against. It is passed explicitly, never read from a global.
type Context struct {
	SessionID   string
	WorkingNote string
}

func (c Context) HasNote() bool {
	return strings.TrimSpace(c.WorkingNote) != ""
}

type Manager struct {
	store  NoteStore
	logger *logger_i.Logger
}

func NewManager(store NoteStore) *Manager {
	return &Manager{
		store:  store,
		logger: logger_i.NewLogger("Session Manager"),
	}
}

// Load returns the session's state. A session without a note yields an empty WorkingNote.
func (m *Manager) Load(ctx context.Context, sessionId string) (Context, error) {
	note, _, err := m.store.GetNote(ctx, sessionId)
	if err != nil {
		m.logger.FromContext(ctx).Error("Could not load working note", "error", err)
		return Context{SessionID: sessionId}, fmt.Errorf("load session: %w", err)
	}
	return Context{SessionID: sessionId, WorkingNote: note}, nil
}

// Commit replaces the working note wholesale. Concurrent commits for one session: last write wins.
func (m *Manager) Commit(ctx context.Context, sc *Context, note string) error {
	if err := m.store.SaveNote(ctx, sc.SessionID, note); err != nil {
		m.logger.FromContext(ctx).Error("Could not save working note", "error", err)
		return fmt.Errorf("commit session: %w", err)
	}
	sc.WorkingNote = note
	return nil
}

func (m *Manager) End(ctx context.Context, sessionId string) error {
	if err := m.store.ClearNote(ctx, sessionId); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	m.logger.FromContext(ctx).Debug("Session ended")
	return nil
}
