// Package conformertest provides helpers for testing conformance suites and
// the reports they produce.
package conformertest

import (
	"fmt"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/conformer/pkg/conformer"
	"github.com/roach88/conformer/pkg/conformer/view"
)

// AssertGolden renders rs with v and compares the report against
// testdata/golden/<name>.golden.
//
// To regenerate golden files, run:
//
//	go test ./... -update
func AssertGolden(t *testing.T, name string, v view.View, rs *conformer.ResultSet) {
	t.Helper()

	report, err := v.Render(rs)
	if err != nil {
		t.Fatalf("render %s: %v", name, err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(report))
}

// Event is one entry of a Recorder's log.
type Event struct {
	Kind  string // "factory" or "run"
	Index int    // Per-kind call number, starting at 0
}

func (e Event) String() string {
	return fmt.Sprintf("%s#%d", e.Kind, e.Index)
}

// Recorder logs factory calls and case runs so tests can check the order
// in which the runner drives them.
type Recorder struct {
	mu      sync.Mutex
	events  []Event
	factory int
	runs    int
}

// RecordingFactory wraps factory so every call is logged before it runs.
func RecordingFactory[T any](rec *Recorder, factory conformer.Factory[T]) conformer.Factory[T] {
	return func(tc conformer.TestCase[T]) (T, error) {
		rec.mu.Lock()
		rec.events = append(rec.events, Event{Kind: "factory", Index: rec.factory})
		rec.factory++
		rec.mu.Unlock()
		return factory(tc)
	}
}

// RecordingCase wraps tc so every Run is logged before it executes.
// The wrapper forwards Describer when tc implements it.
func RecordingCase[T any](rec *Recorder, tc conformer.TestCase[T]) conformer.TestCase[T] {
	return &recordingCase[T]{rec: rec, inner: tc}
}

type recordingCase[T any] struct {
	rec   *Recorder
	inner conformer.TestCase[T]
}

func (c *recordingCase[T]) Run(instance T) *conformer.Result {
	c.rec.mu.Lock()
	c.rec.events = append(c.rec.events, Event{Kind: "run", Index: c.rec.runs})
	c.rec.runs++
	c.rec.mu.Unlock()
	return c.inner.Run(instance)
}

func (c *recordingCase[T]) Title() string {
	if d, ok := conformer.Capability[conformer.Describer](c.inner); ok {
		return d.Title()
	}
	return ""
}

func (c *recordingCase[T]) Description() string {
	if d, ok := conformer.Capability[conformer.Describer](c.inner); ok {
		return d.Description()
	}
	return ""
}

// Events returns a copy of the log.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// FactoryCalls returns how many times the factory was invoked.
func (r *Recorder) FactoryCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.factory
}

// Interleaved reports whether every run was immediately preceded by exactly
// one factory call: factory#0, run#0, factory#1, run#1, ...
func (r *Recorder) Interleaved() bool {
	events := r.Events()
	if len(events)%2 != 0 {
		return false
	}
	for i := 0; i < len(events); i += 2 {
		want := i / 2
		if events[i] != (Event{Kind: "factory", Index: want}) || events[i+1] != (Event{Kind: "run", Index: want}) {
			return false
		}
	}
	return true
}
