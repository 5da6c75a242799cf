package store

import (
	"context"
	"fmt"
	"time"

	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/internal/data/redisStore"
	"github.com/akolanti/StudyAPI/pkg/logger_i"
)

const notePrefix = "note:"

type RedisNoteStore struct {
	store  *redisStore.Store
	ttl    time.Duration
	logger *logger_i.Logger
}

func GetRedisNoteStore(ctx context.Context, addr string, password string) (*RedisNoteStore, error) {
	s, err := redisStore.GetRedisStore(ctx, redisStore.Options{
		Addr:     addr,
		Password: password,
		DB:       config.RedisNoteStore,
	})
	if err != nil {
		return nil, err
	}
	return &RedisNoteStore{
		store:  s,
		ttl:    config.SessionNoteTTL,
		logger: logger_i.NewLogger("NoteStore"),
	}, nil
}

func noteKey(sessionId string) string {
	return notePrefix + sessionId
}

func (s *RedisNoteStore) SaveNote(ctx context.Context, sessionId string, note string) error {
	log := s.logger.FromContext(ctx)
	if err := s.store.Set(ctx, noteKey(sessionId), note, s.ttl); err != nil {
		log.Error("Error saving working note", "error", err)
		return fmt.Errorf("save note: %w", err)
	}
	log.Debug("Saved working note to Redis", "chars", len(note))
	return nil
}

func (s *RedisNoteStore) GetNote(ctx context.Context, sessionId string) (string, bool, error) {
	log := s.logger.FromContext(ctx)

	val, err := s.store.Get(ctx, noteKey(sessionId))
	if s.store.IsNil(err) {
		return "", false, nil
	} else if err != nil {
		log.Error("Error reading working note", "error", err)
		return "", false, fmt.Errorf("get note: %w", err)
	}

	if _, err := s.store.Touch(ctx, noteKey(sessionId), s.ttl); err != nil {
		log.Warn("Could not refresh note expiry", "error", err)
	}
	return val, true, nil
}

func (s *RedisNoteStore) ClearNote(ctx context.Context, sessionId string) error {
	if err := s.store.Del(ctx, noteKey(sessionId)); err != nil {
		s.logger.FromContext(ctx).Error("Error deleting working note", "error", err)
		return fmt.Errorf("clear note: %w", err)
	}
	return nil
}

func TestNoteStore(store *redisStore.Store, ttl time.Duration) *RedisNoteStore {
	return &RedisNoteStore{
		store:  store,
		ttl:    ttl,
		logger: logger_i.NewLogger("test redis"),
	}
}
