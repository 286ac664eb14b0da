// Package loop drives independently rated periodic tasks from a single
// goroutine.
package loop

import (
	"context"
	"math"
	"time"
)

// IdleInterval is how long a task with a zero or negative rate waits before
// it is polled again.
const IdleInterval = 250 * time.Millisecond

// Task is one periodic unit of work. Rate is re-read after every run, so a
// changed rate takes effect from the next tick.
type Task struct {
	Name string
	Rate func() float64
	Run  func(now time.Time)
}

type entry struct {
	task Task
	next time.Time
	runs int64
}

// Scheduler runs tasks cooperatively. Tasks never overlap and nothing is
// interrupted mid-run.
type Scheduler struct {
	// Before, when set, runs at the start of every Poll.
	Before func(now time.Time)

	entries []*entry
}

// New returns a scheduler whose tasks are all due immediately.
func New(tasks ...Task) *Scheduler {
	s := &Scheduler{}
	for _, t := range tasks {
		s.Add(t)
	}
	return s
}

// Add registers a task; it becomes due on the next Poll.
func (s *Scheduler) Add(t Task) {
	if t.Run == nil {
		return
	}
	s.entries = append(s.entries, &entry{task: t})
}

// Poll runs every task whose deadline has passed, in registration order,
// and re-arms each at now + 1/rate. It returns the number of tasks run.
func (s *Scheduler) Poll(now time.Time) int {
	if s.Before != nil {
		s.Before(now)
	}
	ran := 0
	for _, e := range s.entries {
		if now.Before(e.next) {
			continue
		}
		e.task.Run(now)
		e.runs++
		ran++
		e.next = now.Add(interval(e.task.Rate))
	}
	return ran
}

// Next returns the earliest pending deadline.
func (s *Scheduler) Next() (time.Time, bool) {
	var next time.Time
	for i, e := range s.entries {
		if i == 0 || e.next.Before(next) {
			next = e.next
		}
	}
	return next, len(s.entries) > 0
}

// Runs reports how many times the named task has run.
func (s *Scheduler) Runs(name string) int64 {
	for _, e := range s.entries {
		if e.task.Name == name {
			return e.runs
		}
	}
	return 0
}

// Run polls tasks until ctx is cancelled, sleeping on a timer between
// deadlines.
func (s *Scheduler) Run(ctx context.Context) error {
	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-timer.C:
			s.Poll(now)
			next, ok := s.Next()
			if !ok {
				<-ctx.Done()
				return ctx.Err()
			}
			d := time.Until(next)
			if d < 0 {
				d = 0
			}
			timer.Reset(d)
		}
	}
}

func interval(rate func() float64) time.Duration {
	if rate == nil {
		return IdleInterval
	}
	r := rate()
	if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return IdleInterval
	}
	return time.Duration(float64(time.Second) / r)
}
