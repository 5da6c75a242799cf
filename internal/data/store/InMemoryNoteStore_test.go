package store

import (
	"context"
	"testing"
	"time"
)

func TestInMemoryNoteStore(t *testing.T) {
	clock := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	s := InitInMemoryNoteStore(time.Hour)
	s.now = func() time.Time { return clock }
	ctx := context.Background()

	if _, found, _ := s.GetNote(ctx, "s1"); found {
		t.Fatal("empty store returned a note")
	}

	_ = s.SaveNote(ctx, "s1", "first")
	_ = s.SaveNote(ctx, "s1", "second")
	note, found, err := s.GetNote(ctx, "s1")
	if err != nil || !found || note != "second" {
		t.Fatalf("got (%q, %v, %v), want second", note, found, err)
	}

	// read at 50m refreshes expiry to 1h50m
	clock = clock.Add(50 * time.Minute)
	if _, found, _ := s.GetNote(ctx, "s1"); !found {
		t.Fatal("note expired early")
	}
	clock = clock.Add(59 * time.Minute)
	if _, found, _ := s.GetNote(ctx, "s1"); !found {
		t.Fatal("read did not refresh the expiry")
	}

	clock = clock.Add(2 * time.Hour)
	if _, found, _ := s.GetNote(ctx, "s1"); found {
		t.Error("expected the note to expire")
	}

	_ = s.SaveNote(ctx, "s2", "x")
	_ = s.ClearNote(ctx, "s2")
	if _, found, _ := s.GetNote(ctx, "s2"); found {
		t.Error("note survived ClearNote")
	}
}

func TestInMemoryNoteStore_Sweep(t *testing.T) {
	clock := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	s := InitInMemoryNoteStore(time.Minute)
	s.now = func() time.Time { return clock }
	ctx := context.Background()

	_ = s.SaveNote(ctx, "old", "x")
	clock = clock.Add(30 * time.Second)
	_ = s.SaveNote(ctx, "new", "y")
	clock = clock.Add(45 * time.Second)

	if removed := s.Sweep(); removed != 1 {
		t.Errorf("Sweep removed %d, want 1", removed)
	}
	if _, found, _ := s.GetNote(ctx, "new"); !found {
		t.Error("sweep removed a live note")
	}
}

func TestInMemoryNoteStore_RunSweeperStops(t *testing.T) {
	s := InitInMemoryNoteStore(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.RunSweeper(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
