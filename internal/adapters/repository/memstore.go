package repository

import (
	"context"
	"sync"

	"github.com/okian/internmatch/internal/domain/model"
)

// MemStore is an in-memory Store. Reads take a shared lock, so concurrent
// ranking requests never contend with each other.
type MemStore struct {
	mu       sync.RWMutex
	profiles map[string]model.CandidateProfile
	listings []model.InternshipListing
	byID     map[string]int
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		profiles: make(map[string]model.CandidateProfile),
		byID:     make(map[string]int),
	}
}

// PutProfile inserts or replaces a candidate profile.
func (m *MemStore) PutProfile(profile model.CandidateProfile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[profile.ID] = profile
}

// PutListing appends or replaces an internship listing. Catalog order is
// insertion order.
func (m *MemStore) PutListing(listing model.InternshipListing) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i, ok := m.byID[listing.ID]; ok {
		m.listings[i] = listing
		return
	}
	m.byID[listing.ID] = len(m.listings)
	m.listings = append(m.listings, listing)
}

// GetCandidateProfile returns the profile for id or ErrNotFound.
func (m *MemStore) GetCandidateProfile(_ context.Context, id string) (model.CandidateProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	profile, ok := m.profiles[id]
	if !ok {
		return model.CandidateProfile{}, ErrNotFound
	}
	return profile, nil
}

// ListActiveInternships returns active listings in catalog order.
func (m *MemStore) ListActiveInternships(_ context.Context) ([]model.InternshipListing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.InternshipListing, 0, len(m.listings))
	for _, l := range m.listings {
		if l.Active {
			out = append(out, l)
		}
	}
	return out, nil
}

// GetInternship returns the listing for id or ErrNotFound.
func (m *MemStore) GetInternship(_ context.Context, id string) (model.InternshipListing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.byID[id]
	if !ok {
		return model.InternshipListing{}, ErrNotFound
	}
	return m.listings[i], nil
}

// ProfileCount returns the number of stored profiles.
func (m *MemStore) ProfileCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.profiles)
}

// ListingCount returns the number of stored listings.
func (m *MemStore) ListingCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.listings)
}
