// Package service defines ports implemented by the infrastructure layer.
package service

import (
	"context"
	"fmt"

	"domkarta/internal/domain/entity"
)

// LookupOp names one of the three external lookup operations, so a failure
// can be reported with the operation that caused it.
type LookupOp string

const (
	OpForwardGeocode      LookupOp = "forward_geocode"
	OpReverseGeocode      LookupOp = "reverse_geocode"
	OpLookupFootprintByID LookupOp = "lookup_footprint_by_id"
)

// LookupError is a transport-level failure of a single gateway call. The
// gateway performs no retries; the error propagates to the resolution caller.
type LookupError struct {
	Op  LookupOp
	Err error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("external lookup %s failed: %v", e.Op, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// ReverseResult is the outcome of a reverse geocode: a composed display
// address and, when the returned object can anchor a polygon lookup, its
// source identifier. Either field may be empty.
type ReverseResult struct {
	DisplayAddress string
	SourceID       string
}

// GeocodingService is the external lookup gateway over the map-data provider.
// Each call is a single best-effort request with no retry and no caching;
// failures carry the operation via LookupError and mutate no state.
type GeocodingService interface {
	// ForwardGeocode resolves an address string into ranked candidates.
	// A "no matches" response returns an empty slice, not an error.
	ForwardGeocode(ctx context.Context, address string) ([]entity.ExternalCandidate, error)

	// ReverseGeocode resolves a point into an address and an optional
	// source identifier for a follow-up footprint lookup.
	ReverseGeocode(ctx context.Context, point entity.GeoPoint) (*ReverseResult, error)

	// LookupFootprintByID fetches a precise boundary for a previously
	// captured source identifier. Returns nil when the identifier yields
	// no geometry.
	LookupFootprintByID(ctx context.Context, sourceID string) (*entity.Footprint, error)
}
