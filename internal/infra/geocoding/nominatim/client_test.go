package nominatim

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"domkarta/config"
	"domkarta/internal/domain/entity"
	"domkarta/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) service.GeocodingService {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.GeocodingConfig{
		BaseURL:        server.URL,
		CountryCodes:   "ru",
		AcceptLanguage: "ru",
		Timeout:        2 * time.Second,
	}

	return NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_ForwardGeocode_PolygonCandidate(t *testing.T) {
	var gotQuery map[string]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search", r.URL.Path)
		gotQuery = map[string]string{
			"q":               r.URL.Query().Get("q"),
			"format":          r.URL.Query().Get("format"),
			"polygon_geojson": r.URL.Query().Get("polygon_geojson"),
			"addressdetails":  r.URL.Query().Get("addressdetails"),
			"countrycodes":    r.URL.Query().Get("countrycodes"),
			"accept-language": r.URL.Query().Get("accept-language"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"osm_type": "way",
				"osm_id": 123456,
				"lat": "57.6261",
				"lon": "39.8971",
				"display_name": "10, улица Ленина, Ярославль",
				"geojson": {
					"type": "Polygon",
					"coordinates": [[[39.8971,57.6261],[39.8975,57.6262],[39.8976,57.6259],[39.8971,57.6261]]]
				}
			},
			{
				"osm_type": "node",
				"osm_id": 789,
				"lat": "57.63",
				"lon": "39.90",
				"display_name": "Ярославль"
			}
		]`))
	}))

	candidates, err := client.ForwardGeocode(context.Background(), "Ярославль Ленина 10")
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	assert.Equal(t, map[string]string{
		"q":               "Ярославль Ленина 10",
		"format":          "json",
		"polygon_geojson": "1",
		"addressdetails":  "1",
		"countrycodes":    "ru",
		"accept-language": "ru",
	}, gotQuery)

	first := candidates[0]
	assert.Equal(t, entity.FootprintPolygon, first.Footprint.Type)
	assert.Equal(t, "W123456", first.SourceID)
	assert.Equal(t, entity.GeoPoint{Lat: 57.6261, Lng: 39.8971}, first.Footprint.Points[0])

	second := candidates[1]
	assert.Equal(t, entity.PointFootprint(entity.GeoPoint{Lat: 57.63, Lng: 39.90}), second.Footprint)
	assert.Equal(t, "N789", second.SourceID)
}

func TestClient_ForwardGeocode_MultiPolygonFirstOuterRing(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"osm_type": "relation",
				"osm_id": 42,
				"lat": "57.62",
				"lon": "39.89",
				"display_name": "квартал",
				"geojson": {
					"type": "MultiPolygon",
					"coordinates": [
						[
							[[39.89,57.62],[39.90,57.62],[39.90,57.63],[39.89,57.62]],
							[[39.891,57.621],[39.892,57.621],[39.892,57.622],[39.891,57.621]]
						],
						[
							[[40.0,58.0],[40.1,58.0],[40.1,58.1],[40.0,58.0]]
						]
					]
				}
			}
		]`))
	}))

	candidates, err := client.ForwardGeocode(context.Background(), "квартал")
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	footprint := candidates[0].Footprint
	assert.Equal(t, entity.FootprintPolygon, footprint.Type)
	// Only the outer ring of the first polygon survives.
	require.Len(t, footprint.Points, 4)
	assert.Equal(t, entity.GeoPoint{Lat: 57.62, Lng: 39.89}, footprint.Points[0])
	assert.Equal(t, "R42", candidates[0].SourceID)
}

func TestClient_ForwardGeocode_NoMatchesIsNotAnError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))

	candidates, err := client.ForwardGeocode(context.Background(), "Несуществующая 1")
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestClient_ForwardGeocode_UpstreamFailure(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	_, err := client.ForwardGeocode(context.Background(), "Ленина 10")
	require.Error(t, err)

	var lookupErr *service.LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, service.OpForwardGeocode, lookupErr.Op)
}

func TestClient_ReverseGeocode_ComposedAddress(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		assert.Equal(t, "18", r.URL.Query().Get("zoom"))
		assert.Equal(t, "57.6261", r.URL.Query().Get("lat"))
		assert.Equal(t, "39.8971", r.URL.Query().Get("lon"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"osm_type": "way",
			"osm_id": 123456,
			"display_name": "10, улица Ленина, Ярославль, Россия",
			"address": {
				"city": "Ярославль",
				"road": "улица Ленина",
				"house_number": "10"
			}
		}`))
	}))

	result, err := client.ReverseGeocode(context.Background(), entity.GeoPoint{Lat: 57.6261, Lng: 39.8971})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Ярославль Ленина 10", result.DisplayAddress)
	assert.Equal(t, "W123456", result.SourceID)
}

func TestClient_ReverseGeocode_DisplayNameFallback(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"osm_type": "node",
			"osm_id": 7,
			"display_name": "Ярославская область, Россия",
			"address": {}
		}`))
	}))

	result, err := client.ReverseGeocode(context.Background(), entity.GeoPoint{Lat: 57.9, Lng: 39.5})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Ярославская область, Россия", result.DisplayAddress)
}

func TestClient_ReverseGeocode_NodeHasNoSourceID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"osm_type": "node",
			"osm_id": 98765,
			"display_name": "Ленина, Ярославль",
			"address": {
				"city": "Ярославль",
				"road": "улица Ленина"
			}
		}`))
	}))

	result, err := client.ReverseGeocode(context.Background(), entity.GeoPoint{Lat: 57.6261, Lng: 39.8971})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.SourceID)
}

func TestClient_ReverseGeocode_NothingFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error": "Unable to geocode"}`))
	}))

	result, err := client.ReverseGeocode(context.Background(), entity.GeoPoint{Lat: 0, Lng: 0})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestClient_LookupFootprintByID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/lookup", r.URL.Path)
		assert.Equal(t, "W123456", r.URL.Query().Get("osm_ids"))
		assert.Equal(t, "1", r.URL.Query().Get("polygon_geojson"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"osm_type": "way",
				"osm_id": 123456,
				"lat": "57.6261",
				"lon": "39.8971",
				"display_name": "10, улица Ленина, Ярославль",
				"geojson": {
					"type": "Polygon",
					"coordinates": [[[39.8971,57.6261],[39.8975,57.6262],[39.8976,57.6259],[39.8971,57.6261]]]
				}
			}
		]`))
	}))

	footprint, err := client.LookupFootprintByID(context.Background(), "W123456")
	require.NoError(t, err)
	require.NotNil(t, footprint)
	assert.Equal(t, entity.FootprintPolygon, footprint.Type)
	require.Len(t, footprint.Points, 4)
}

func TestClient_LookupFootprintByID_UnknownID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))

	footprint, err := client.LookupFootprintByID(context.Background(), "W999999")
	require.NoError(t, err)
	assert.Nil(t, footprint)
}
