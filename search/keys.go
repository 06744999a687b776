package search

// File: keys.go
// Role: search states and their cache keys.
//
// A key holds everything that decides the best remaining outcome from a
// state and nothing else: in particular never the pressure released so far,
// so one cached suffix serves every prefix that reaches the state.

// SingleKey identifies a single-agent state.
type SingleKey struct {
	At      uint8  // origin index in the distance table
	Elapsed uint16 // minutes spent
	Opened  uint64 // bit i set iff flow valve i is open
}

// DualKey identifies a dual-agent state.
type DualKey struct {
	AtA      uint8
	ElapsedA uint16
	AtB      uint8
	ElapsedB uint16
	Opened   uint64
}

// agent is the local state of one walker.
type agent struct {
	at      int
	elapsed int
}

// less orders agents by position, then clock.
func (a agent) less(b agent) bool {
	if a.at != b.at {
		return a.at < b.at
	}
	return a.elapsed < b.elapsed
}

// singleState is a single-agent search state. States are values: a
// successor is always a fresh copy.
type singleState struct {
	agent
	opened uint64
}

func (s singleState) key() SingleKey {
	return SingleKey{At: uint8(s.at), Elapsed: uint16(s.elapsed), Opened: s.opened}
}

// dualState is a dual-agent search state; agents[0] is A, agents[1] is B.
type dualState struct {
	agents [2]agent
	opened uint64
}

// key encodes s. With canonical set, the agents are ordered so that
// label-swapped states share a key; swapped reports whether the key lists
// B first.
func (s dualState) key(canonical bool) (k DualKey, swapped bool) {
	a, b := s.agents[0], s.agents[1]
	if canonical && b.less(a) {
		a, b = b, a
		swapped = true
	}

	return DualKey{
		AtA:      uint8(a.at),
		ElapsedA: uint16(a.elapsed),
		AtB:      uint8(b.at),
		ElapsedB: uint16(b.elapsed),
		Opened:   s.opened,
	}, swapped
}
