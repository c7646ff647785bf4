package entity

import "strings"

// FloorPlan is a single floor-plan image attached to a house.
type FloorPlan struct {
	URL string `json:"url"`
}

// House is the persisted building record. The document store owns the
// canonical copy and assigns the ID; in-memory copies are read-only views
// and must treat store-pushed snapshots as authoritative.
type House struct {
	ID             string      // Assigned by the document store on create.
	Address        string      // Human-readable street address.
	Footprint      Footprint   // Resolved geographic footprint.
	Year           string      // Construction year or year range, e.g. "1958" or "1958-1961".
	BuildingSeries []string    // Deduplicated series tokens, e.g. ["1-515", "II-18"].
	Floors         int         // Number of floors.
	ImageURL       string      // Optional facade photo URL.
	FloorPlans     []FloorPlan // Ordered floor-plan images, empty URLs filtered out.
	ExternalID     string      // Optional map-catalog object reference, e.g. "W123456".
}

// SplitSeries splits a comma-separated building-series string into a
// deduplicated ordered set of trimmed, non-empty tokens. First occurrence
// order is preserved.
func SplitSeries(raw string) []string {
	parts := strings.Split(raw, ",")
	series := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for _, part := range parts {
		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		series = append(series, token)
	}

	return series
}

// JoinSeries renders a series set back into its comma-separated form.
func JoinSeries(series []string) string {
	return strings.Join(series, ", ")
}
