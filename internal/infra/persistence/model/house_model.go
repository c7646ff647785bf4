package model

import (
	"domkarta/internal/domain/entity"
)

// GeoPointModel is one coordinate inside a stored footprint.
type GeoPointModel struct {
	Lat float64 `firestore:"lat"`
	Lng float64 `firestore:"lng"`
}

// FootprintModel is the stored footprint shape.
type FootprintModel struct {
	Type   string          `firestore:"type"`
	Points []GeoPointModel `firestore:"points"`
}

// FloorPlanModel is one stored floor-plan entry.
type FloorPlanModel struct {
	URL string `firestore:"url"`
}

// HouseModel is the Firestore document shape of the 'houses' collection.
// The document id is the house id and is not stored as a field.
type HouseModel struct {
	Address        string           `firestore:"address"`
	Coordinates    FootprintModel   `firestore:"coordinates"`
	Year           string           `firestore:"year"`
	BuildingSeries []string         `firestore:"buildingSeries"`
	Floors         int              `firestore:"floors"`
	ImageURL       string           `firestore:"imageUrl,omitempty"`
	FloorPlans     []FloorPlanModel `firestore:"floorPlans,omitempty"`
	ExternalID     string           `firestore:"externalId,omitempty"`
}

// FromHouseEntity converts a domain house into its document shape.
func FromHouseEntity(house *entity.House) *HouseModel {
	points := make([]GeoPointModel, 0, len(house.Footprint.Points))
	for _, p := range house.Footprint.Points {
		points = append(points, GeoPointModel{Lat: p.Lat, Lng: p.Lng})
	}

	plans := make([]FloorPlanModel, 0, len(house.FloorPlans))
	for _, plan := range house.FloorPlans {
		plans = append(plans, FloorPlanModel{URL: plan.URL})
	}

	return &HouseModel{
		Address: house.Address,
		Coordinates: FootprintModel{
			Type:   string(house.Footprint.Type),
			Points: points,
		},
		Year:           house.Year,
		BuildingSeries: house.BuildingSeries,
		Floors:         house.Floors,
		ImageURL:       house.ImageURL,
		FloorPlans:     plans,
		ExternalID:     house.ExternalID,
	}
}

// ToHouseEntity converts a stored document back into the domain shape.
func (m *HouseModel) ToHouseEntity(id string) *entity.House {
	points := make([]entity.GeoPoint, 0, len(m.Coordinates.Points))
	for _, p := range m.Coordinates.Points {
		points = append(points, entity.GeoPoint{Lat: p.Lat, Lng: p.Lng})
	}

	plans := make([]entity.FloorPlan, 0, len(m.FloorPlans))
	for _, plan := range m.FloorPlans {
		plans = append(plans, entity.FloorPlan{URL: plan.URL})
	}

	return &entity.House{
		ID:      id,
		Address: m.Address,
		Footprint: entity.Footprint{
			Type:   entity.FootprintType(m.Coordinates.Type),
			Points: points,
		},
		Year:           m.Year,
		BuildingSeries: m.BuildingSeries,
		Floors:         m.Floors,
		ImageURL:       m.ImageURL,
		FloorPlans:     plans,
		ExternalID:     m.ExternalID,
	}
}
