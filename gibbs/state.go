package gibbs

// State is the chain state: the single mutable mapping from variable ID to
// its current value index. One State exists per sampling run; the Sampler
// owns it exclusively and passes it by reference to each BlockSampler
// invocation. It is not safe for concurrent mutation — per-sweep parallelism
// works on snapshots instead (see Sampler).
type State struct {
	values map[string]int
}

// NewState returns an empty State sized for n variables.
func NewState(n int) *State {
	return &State{values: make(map[string]int, n)}
}

// Value returns the current value index of the variable with the given ID.
func (s *State) Value(id string) (int, bool) {
	v, ok := s.values[id]

	return v, ok
}

// Set records value index v for the variable with the given ID.
func (s *State) Set(id string, v int) {
	s.values[id] = v
}

// Len returns the number of variables the state currently covers.
func (s *State) Len() int { return len(s.values) }

// Snapshot returns an independent copy of the state. Used as the stable
// read view for parallel per-sweep block updates.
func (s *State) Snapshot() *State {
	cp := make(map[string]int, len(s.values))
	for id, v := range s.values {
		cp[id] = v
	}

	return &State{values: cp}
}

// fill overwrites the state with the given assignment.
func (s *State) fill(assignment map[string]int) {
	s.values = make(map[string]int, len(assignment))
	for id, v := range assignment {
		s.values[id] = v
	}
}
