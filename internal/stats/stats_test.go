package stats

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "stats.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		err := s.Record(Session{
			StartedAt: base.Add(time.Duration(i) * time.Hour),
			Duration:  90 * time.Second,
			Frames:    int64(1000 + i),
			AvgFPS:    59.9,
			CanvasW:   64,
			CanvasH:   64,
		})
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Recent returned %d sessions, want 3", len(got))
	}
	// Newest first.
	if got[0].Frames != 1002 {
		t.Errorf("newest session frames = %d, want 1002", got[0].Frames)
	}
	if !got[0].StartedAt.Equal(base.Add(2 * time.Hour)) {
		t.Errorf("started at = %v, want %v", got[0].StartedAt, base.Add(2*time.Hour))
	}
	if got[0].Duration != 90*time.Second {
		t.Errorf("duration = %v, want 90s", got[0].Duration)
	}
	if got[0].CanvasW != 64 || got[0].CanvasH != 64 {
		t.Errorf("canvas = %dx%d, want 64x64", got[0].CanvasW, got[0].CanvasH)
	}
}

func TestRecentLimit(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 5; i++ {
		if err := s.Record(Session{StartedAt: time.Now(), CanvasW: 64, CanvasH: 64}); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Recent(2) returned %d sessions", len(got))
	}
}

func TestRecentEmpty(t *testing.T) {
	s := openTestStore(t)
	got, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("empty store returned %d sessions", len(got))
	}
}
