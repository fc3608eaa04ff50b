package patch

import "sync"

// SyncModel is a Model guarded by a read-write mutex. AddSample and Merge hold
// the write lock for the whole update, so Quantise never observes a partially
// applied sample.
type SyncModel struct {
	mu sync.RWMutex
	m  Model
}

// NewSyncModel returns an empty SyncModel.
func NewSyncModel() *SyncModel {
	return &SyncModel{}
}

// AddSample adds one normalised patch.
func (s *SyncModel) AddSample(sample Normalized) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.AddSample(sample)
}

// Merge adds the counters of other.
func (s *SyncModel) Merge(other *Model) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.Merge(other)
}

// Reset clears all counters.
func (s *SyncModel) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.Reset()
}

// Samples returns the number of patches added.
func (s *SyncModel) Samples() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Samples()
}

// Quantise quantises the current counters with DefaultRareThreshold.
func (s *SyncModel) Quantise() (Descriptor, error) {
	return s.QuantiseThreshold(DefaultRareThreshold)
}

// QuantiseThreshold quantises the current counters with threshold.
func (s *SyncModel) QuantiseThreshold(threshold float64) (Descriptor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.QuantiseThreshold(threshold)
}

// Snapshot returns a copy of the current model.
func (s *SyncModel) Snapshot() Model {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m
}
