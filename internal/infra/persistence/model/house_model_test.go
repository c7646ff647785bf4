package model

import (
	"testing"

	"domkarta/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHouseModel_RoundTrip(t *testing.T) {
	house := &entity.House{
		ID:      "h-1",
		Address: "Ленина 10",
		Footprint: entity.PolygonFootprint([]entity.GeoPoint{
			{Lat: 57.6261, Lng: 39.8971},
			{Lat: 57.6262, Lng: 39.8974},
			{Lat: 57.6259, Lng: 39.8976},
		}),
		Year:           "1958-1961",
		BuildingSeries: []string{"1-515", "II-18"},
		Floors:         5,
		ImageURL:       "https://img.example/1.jpg",
		FloorPlans:     []entity.FloorPlan{{URL: "https://img.example/plan1.jpg"}},
		ExternalID:     "W123456",
	}

	restored := FromHouseEntity(house).ToHouseEntity("h-1")

	assert.Equal(t, house, restored)
}

func TestHouseModel_DocumentIDIsNotAField(t *testing.T) {
	house := &entity.House{
		ID:        "assigned-by-store",
		Address:   "Свободы 5",
		Footprint: entity.PointFootprint(entity.GeoPoint{Lat: 57.62, Lng: 39.89}),
	}

	doc := FromHouseEntity(house)

	// The id lives in the document path; converting back without it must not
	// resurrect the original.
	restored := doc.ToHouseEntity("")
	assert.Empty(t, restored.ID)

	require.Equal(t, entity.FootprintPoint, restored.Footprint.Type)
	assert.Equal(t, house.Footprint.Points, restored.Footprint.Points)
}
