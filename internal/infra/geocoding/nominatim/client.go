// Package nominatim implements the external lookup gateway against a
// Nominatim-compatible HTTP API.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"domkarta/config"
	"domkarta/internal/domain/entity"
	"domkarta/internal/domain/service"

	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// reverseZoom pins reverse geocoding to building granularity.
const reverseZoom = 18

// forwardLimit caps the candidate list of a forward geocode.
const forwardLimit = 5

// userAgent identifies the service to the provider, as its usage policy
// requires.
const userAgent = "domkarta/1.0"

// streetTypePattern strips street-type words from a road name so the
// composed display address reads like a directory entry, not a postal line.
var streetTypePattern = regexp.MustCompile(`(?i)улица|проспект|переулок|площадь|шоссе|бульвар|набережная|проезд`)

type client struct {
	baseURL        string
	countryCodes   string
	acceptLanguage string
	httpClient     *http.Client
	logger         *slog.Logger
}

// NewClient creates the gateway. Each call is one request bounded by the
// configured timeout; there is no retry and no caching.
func NewClient(cfg *config.GeocodingConfig, logger *slog.Logger) service.GeocodingService {
	return &client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		countryCodes:   cfg.CountryCodes,
		acceptLanguage: cfg.AcceptLanguage,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// searchResult is the shared shape of /search and /lookup entries.
// Coordinates arrive as strings.
type searchResult struct {
	OsmType     string          `json:"osm_type"`
	OsmID       int64           `json:"osm_id"`
	Lat         string          `json:"lat"`
	Lon         string          `json:"lon"`
	DisplayName string          `json:"display_name"`
	GeoJSON     json.RawMessage `json:"geojson,omitempty"`
}

type reverseResult struct {
	Error       string `json:"error"`
	OsmType     string `json:"osm_type"`
	OsmID       int64  `json:"osm_id"`
	DisplayName string `json:"display_name"`
	Address     struct {
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
		Road        string `json:"road"`
		HouseNumber string `json:"house_number"`
	} `json:"address"`
}

// ForwardGeocode resolves an address into candidates ranked by the provider.
// The ranking is kept as-is; callers take the first candidate.
func (c *client) ForwardGeocode(ctx context.Context, address string) ([]entity.ExternalCandidate, error) {
	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("polygon_geojson", "1")
	query.Set("addressdetails", "1")
	query.Set("limit", strconv.Itoa(forwardLimit))
	if c.countryCodes != "" {
		query.Set("countrycodes", c.countryCodes)
	}

	var results []searchResult
	if err := c.get(ctx, service.OpForwardGeocode, "/search", query, &results); err != nil {
		return nil, err
	}

	candidates := make([]entity.ExternalCandidate, 0, len(results))
	for _, result := range results {
		candidate, ok := c.toCandidate(result)
		if !ok {
			continue
		}
		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

// ReverseGeocode names a point. The display address is composed from the
// settlement, the road with street-type words removed, and the house number;
// when none of those are present the provider's display name is used whole.
func (c *client) ReverseGeocode(ctx context.Context, point entity.GeoPoint) (*service.ReverseResult, error) {
	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("lat", strconv.FormatFloat(point.Lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(point.Lng, 'f', -1, 64))
	query.Set("zoom", strconv.Itoa(reverseZoom))
	query.Set("addressdetails", "1")

	var result reverseResult
	if err := c.get(ctx, service.OpReverseGeocode, "/reverse", query, &result); err != nil {
		return nil, err
	}

	// The provider reports "nothing here" inside a 200 body.
	if result.Error != "" {
		c.logger.Debug("reverse geocode found nothing",
			slog.Float64("lat", point.Lat),
			slog.Float64("lng", point.Lng),
			slog.String("detail", result.Error),
		)

		return nil, nil
	}

	// A bare positional node cannot anchor a boundary lookup, so its id is
	// not captured.
	var id string
	if result.OsmType != "node" {
		id = sourceID(result.OsmType, result.OsmID)
	}

	return &service.ReverseResult{
		DisplayAddress: composeDisplayAddress(result),
		SourceID:       id,
	}, nil
}

// LookupFootprintByID fetches the boundary of one map object. Identifiers
// are the provider's own, e.g. "W123456" for a way.
func (c *client) LookupFootprintByID(ctx context.Context, id string) (*entity.Footprint, error) {
	query := url.Values{}
	query.Set("osm_ids", id)
	query.Set("format", "json")
	query.Set("polygon_geojson", "1")

	var results []searchResult
	if err := c.get(ctx, service.OpLookupFootprintByID, "/lookup", query, &results); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, nil
	}

	candidate, ok := c.toCandidate(results[0])
	if !ok {
		return nil, nil
	}

	return &candidate.Footprint, nil
}

func (c *client) get(ctx context.Context, op service.LookupOp, path string, query url.Values, out any) error {
	if c.acceptLanguage != "" {
		query.Set("accept-language", c.acceptLanguage)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return &service.LookupError{Op: op, Err: errors.WithStack(err)}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &service.LookupError{Op: op, Err: errors.WithStack(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)

		return &service.LookupError{Op: op, Err: errors.Errorf("unexpected status %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &service.LookupError{Op: op, Err: errors.Wrap(err, "decode response")}
	}

	return nil
}

// toCandidate converts one provider entry into a candidate. A polygon
// geometry wins; anything else falls back to the entry's center point.
// Entries with neither usable geometry nor parsable coordinates are skipped.
func (c *client) toCandidate(result searchResult) (entity.ExternalCandidate, bool) {
	if footprint, ok := c.parseGeometry(result.GeoJSON); ok && footprint.Type == entity.FootprintPolygon {
		return entity.ExternalCandidate{
			Footprint:      footprint,
			SourceID:       sourceID(result.OsmType, result.OsmID),
			DisplayAddress: result.DisplayName,
		}, true
	}

	lat, errLat := strconv.ParseFloat(result.Lat, 64)
	lng, errLng := strconv.ParseFloat(result.Lon, 64)
	if errLat != nil || errLng != nil {
		return entity.ExternalCandidate{}, false
	}

	return entity.ExternalCandidate{
		Footprint:      entity.PointFootprint(entity.GeoPoint{Lat: lat, Lng: lng}),
		SourceID:       sourceID(result.OsmType, result.OsmID),
		DisplayAddress: result.DisplayName,
	}, true
}

func (c *client) parseGeometry(raw json.RawMessage) (entity.Footprint, bool) {
	if len(raw) == 0 {
		return entity.Footprint{}, false
	}

	geometry, err := geojson.UnmarshalGeometry(raw)
	if err != nil {
		c.logger.Debug("discarding unparsable geometry", slog.Any("error", err))

		return entity.Footprint{}, false
	}

	return entity.FromOrbGeometry(geometry.Geometry())
}

func composeDisplayAddress(result reverseResult) string {
	city := result.Address.City
	if city == "" {
		city = result.Address.Town
	}
	if city == "" {
		city = result.Address.Village
	}

	road := strings.TrimSpace(streetTypePattern.ReplaceAllString(result.Address.Road, ""))

	parts := make([]string, 0, 3)
	for _, part := range []string{city, road, result.Address.HouseNumber} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	if len(parts) == 0 {
		return result.DisplayName
	}

	return strings.Join(parts, " ")
}

// sourceID renders the provider's object reference, e.g. ("way", 123456)
// becomes "W123456". Unknown types yield an empty id.
func sourceID(osmType string, osmID int64) string {
	switch osmType {
	case "node":
		return fmt.Sprintf("N%d", osmID)
	case "way":
		return fmt.Sprintf("W%d", osmID)
	case "relation":
		return fmt.Sprintf("R%d", osmID)
	default:
		return ""
	}
}
