// Package repository defines the profile and catalog store contracts the
// matching engine consumes, with in-memory and sqlite-backed adapters.
package repository

import (
	"context"

	"github.com/okian/internmatch/internal/domain/model"
)

// ProfileStore supplies candidate profiles. The matching engine never
// mutates profiles; they are owned by the profile subsystem.
type ProfileStore interface {
	// GetCandidateProfile returns the profile for id.
	// Returns ErrNotFound if the candidate is unknown.
	GetCandidateProfile(ctx context.Context, id string) (model.CandidateProfile, error)
}

// CatalogStore supplies internship listings. Read-only to the matching
// engine; listings are owned by the catalog subsystem.
type CatalogStore interface {
	// ListActiveInternships returns all active listings in catalog order.
	ListActiveInternships(ctx context.Context) ([]model.InternshipListing, error)

	// GetInternship returns the listing for id, active or not.
	// Returns ErrNotFound if the listing is unknown.
	GetInternship(ctx context.Context, id string) (model.InternshipListing, error)
}

// Store bundles both stores for adapters that back them with one medium.
type Store interface {
	ProfileStore
	CatalogStore
}
