package animation

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestManual_AdvanceRunsPendingFrames(t *testing.T) {
	m := NewManual(epoch)

	var got []time.Time
	m.RequestFrame(func(now time.Time) { got = append(got, now) })
	m.RequestFrame(func(now time.Time) { got = append(got, now) })

	if ran := m.Advance(16 * time.Millisecond); ran != 2 {
		t.Fatalf("expected 2 frames, got %d", ran)
	}
	want := epoch.Add(16 * time.Millisecond)
	for i, ts := range got {
		if !ts.Equal(want) {
			t.Errorf("frame %d saw %v, want %v", i, ts, want)
		}
	}
	if m.Pending() != 0 {
		t.Errorf("expected no pending frames, got %d", m.Pending())
	}
}

func TestManual_FramesRequestedInCallbackWait(t *testing.T) {
	m := NewManual(epoch)

	count := 0
	var frame FrameFunc
	frame = func(time.Time) {
		count++
		m.RequestFrame(frame)
	}
	m.RequestFrame(frame)

	m.Advance(time.Millisecond)
	if count != 1 {
		t.Fatalf("expected 1 call, got %d", count)
	}
	if m.Pending() != 1 {
		t.Fatalf("expected re-requested frame to wait, pending=%d", m.Pending())
	}
	m.Advance(time.Millisecond)
	if count != 2 {
		t.Errorf("expected 2 calls, got %d", count)
	}
}

func TestManual_CancelFrame(t *testing.T) {
	m := NewManual(epoch)

	called := false
	id := m.RequestFrame(func(time.Time) { called = true })
	m.CancelFrame(id)
	m.Advance(time.Second)

	if called {
		t.Error("cancelled frame must not run")
	}
	if !m.Now().Equal(epoch.Add(time.Second)) {
		t.Errorf("clock did not move: %v", m.Now())
	}
}

func TestManual_RunForStopsWhenIdle(t *testing.T) {
	m := NewManual(epoch)

	remaining := 3
	var frame FrameFunc
	frame = func(time.Time) {
		remaining--
		if remaining > 0 {
			m.RequestFrame(frame)
		}
	}
	m.RequestFrame(frame)
	m.RunFor(time.Hour, 10*time.Millisecond)

	if remaining != 0 {
		t.Fatalf("expected all frames to run, remaining=%d", remaining)
	}
	if got := m.Now().Sub(epoch); got != 30*time.Millisecond {
		t.Errorf("expected clock to stop at 30ms, got %v", got)
	}
}

func TestTicker_RunsAndCloses(t *testing.T) {
	tk := NewTicker(time.Millisecond)

	done := make(chan time.Time, 1)
	tk.RequestFrame(func(now time.Time) { done <- now })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("frame did not run")
	}

	cancelled := make(chan struct{}, 1)
	id := tk.RequestFrame(func(time.Time) { cancelled <- struct{}{} })
	tk.CancelFrame(id)

	if err := tk.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	tk.RequestFrame(func(time.Time) { cancelled <- struct{}{} })

	select {
	case <-cancelled:
		t.Fatal("cancelled or post-close frame ran")
	case <-time.After(20 * time.Millisecond):
	}
}
