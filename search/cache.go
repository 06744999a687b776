package search

import (
	"sync"
	"sync/atomic"
)

// Step is one valve-opening decision.
type Step struct {
	// Agent is 0 for the single agent or agent A, 1 for agent B.
	Agent int
	// Valve is the ID of the opened valve.
	Valve string
	// Minute is when the valve starts releasing: arrival plus the minute
	// spent opening it.
	Minute int
	// Released is the pressure this valve releases until the budget ends.
	Released int
}

// Outcome is the best continuation from a state: the additional pressure
// it releases and the decisions that release it. Cached outcomes are
// shared; callers build new slices instead of appending to Steps.
type Outcome struct {
	Gain  int
	Steps []Step
}

// after returns the outcome of taking step first and then o.
func (o Outcome) after(step Step) Outcome {
	steps := make([]Step, 0, len(o.Steps)+1)
	steps = append(steps, step)
	steps = append(steps, o.Steps...)

	return Outcome{Gain: step.Released + o.Gain, Steps: steps}
}

// swapAgents relabels A as B and B as A.
func (o Outcome) swapAgents() Outcome {
	steps := make([]Step, len(o.Steps))
	for i, s := range o.Steps {
		s.Agent = 1 - s.Agent
		steps[i] = s
	}

	return Outcome{Gain: o.Gain, Steps: steps}
}

// Cache memoizes outcomes by state key for the lifetime of one solve.
// There is no eviction. It is safe for concurrent use; when two workers
// store the same key the last write wins, both values being equal.
type Cache[K comparable] struct {
	mu      sync.RWMutex
	entries map[K]Outcome

	hits   atomic.Int64
	misses atomic.Int64
}

// NewCache returns an empty cache sized for about hint entries.
func NewCache[K comparable](hint int) *Cache[K] {
	return &Cache[K]{entries: make(map[K]Outcome, max(hint, 0))}
}

// Lookup returns the outcome cached under k.
func (c *Cache[K]) Lookup(k K) (Outcome, bool) {
	c.mu.RLock()
	o, ok := c.entries[k]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}

	return o, ok
}

// Store records o under k.
func (c *Cache[K]) Store(k K, o Outcome) {
	c.mu.Lock()
	c.entries[k] = o
	c.mu.Unlock()
}

// Len returns the number of cached states.
func (c *Cache[K]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Hits returns how many lookups found an entry.
func (c *Cache[K]) Hits() int64 { return c.hits.Load() }

// Misses returns how many lookups found nothing.
func (c *Cache[K]) Misses() int64 { return c.misses.Load() }
