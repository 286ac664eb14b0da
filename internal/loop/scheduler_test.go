package loop

import (
	"context"
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestPollRunsDueTasksAndRearms(t *testing.T) {
	var fast, slow int
	s := New(
		Task{Name: "fast", Rate: func() float64 { return 10 }, Run: func(time.Time) { fast++ }},
		Task{Name: "slow", Rate: func() float64 { return 1 }, Run: func(time.Time) { slow++ }},
	)
	for ms := 0; ms <= 1000; ms += 10 {
		s.Poll(epoch.Add(time.Duration(ms) * time.Millisecond))
	}
	if fast != 11 || slow != 2 {
		t.Fatalf("fast=%d slow=%d, want 11 and 2", fast, slow)
	}
	if s.Runs("fast") != 11 || s.Runs("missing") != 0 {
		t.Fatalf("Runs fast=%d", s.Runs("fast"))
	}
}

func TestRateChangeAppliesOnNextTick(t *testing.T) {
	rate := 1.0
	var runs []time.Time
	s := New(Task{Name: "draw", Rate: func() float64 { return rate }, Run: func(now time.Time) { runs = append(runs, now) }})
	s.Poll(epoch)
	rate = 100
	// Already armed one second out; the new rate is not seen until then.
	if n := s.Poll(epoch.Add(500 * time.Millisecond)); n != 0 {
		t.Fatal("rate change must not reschedule the pending tick")
	}
	s.Poll(epoch.Add(time.Second))
	next, _ := s.Next()
	if want := epoch.Add(time.Second + 10*time.Millisecond); !next.Equal(want) {
		t.Fatalf("next=%v, want %v", next, want)
	}
	if len(runs) != 2 {
		t.Fatalf("runs=%d", len(runs))
	}
}

func TestZeroRateStillPolls(t *testing.T) {
	calls := 0
	s := New(Task{Name: "advance", Rate: func() float64 { return 0 }, Run: func(time.Time) { calls++ }})
	s.Poll(epoch)
	next, ok := s.Next()
	if !ok || !next.Equal(epoch.Add(IdleInterval)) {
		t.Fatalf("next=%v, want idle interval", next)
	}
	s.Poll(epoch.Add(IdleInterval))
	if calls != 2 {
		t.Fatalf("calls=%d, want 2", calls)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	s := New(Task{Name: "tick", Rate: func() float64 { return 1000 }, Run: func(time.Time) {
		calls++
		if calls == 5 {
			cancel()
		}
	}})
	err := s.Run(ctx)
	if err != context.Canceled {
		t.Fatalf("Run returned %v", err)
	}
	if calls < 5 {
		t.Fatalf("calls=%d", calls)
	}
}

func TestBeforeRunsAheadOfTasks(t *testing.T) {
	var order []string
	s := New(Task{Name: "draw", Rate: func() float64 { return 1 }, Run: func(time.Time) { order = append(order, "draw") }})
	s.Before = func(time.Time) { order = append(order, "before") }
	s.Poll(epoch)
	s.Poll(epoch.Add(time.Millisecond))
	want := []string{"before", "draw", "before"}
	if len(order) != len(want) {
		t.Fatalf("order=%v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order=%v, want %v", order, want)
		}
	}
}
