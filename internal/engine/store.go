package engine

import "sort"

// #region store
// Store is the in-memory ledger of every prediction made during the process
// lifetime, keyed by target game. Entries are never evicted: game numbers
// increase monotonically and volume is bounded by operator traffic.
type Store struct {
	byTarget map[int]*Prediction
}

// NewStore creates an empty prediction store.
func NewStore() *Store {
	return &Store{byTarget: make(map[int]*Prediction)}
}

// #endregion store

// #region accessors
// Put inserts a prediction. Returns false when the target game already has
// one; the first prediction for a target wins.
func (s *Store) Put(p *Prediction) bool {
	if _, ok := s.byTarget[p.TargetGame]; ok {
		return false
	}
	s.byTarget[p.TargetGame] = p
	return true
}

// Get retrieves the prediction targeting the given game.
func (s *Store) Get(targetGame int) (*Prediction, bool) {
	p, ok := s.byTarget[targetGame]
	return p, ok
}

// Has reports whether a prediction targets the given game.
func (s *Store) Has(targetGame int) bool {
	_, ok := s.byTarget[targetGame]
	return ok
}

// Len returns the total number of predictions ever made.
func (s *Store) Len() int {
	return len(s.byTarget)
}

// #endregion accessors

// #region pending
// Pending returns all pending predictions in ascending target game order.
// The scan order is not significant to correctness but must be
// deterministic.
func (s *Store) Pending() []*Prediction {
	var out []*Prediction
	for _, p := range s.byTarget {
		if p.Status == StatusPending {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TargetGame < out[j].TargetGame })
	return out
}

// #endregion pending

// #region counts
// Counts tallies predictions by status.
func (s *Store) Counts() map[Status]int {
	counts := make(map[Status]int)
	for _, p := range s.byTarget {
		counts[p.Status]++
	}
	return counts
}

// #endregion counts
