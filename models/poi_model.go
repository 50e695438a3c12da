package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// GeoJSON points store coordinates as [longitude, latitude].
const (
	longitudeIndex = 0
	latitudeIndex  = 1
)

// GeoPoint is a GeoJSON point. The coordinate slice keeps the wire order
// [longitude, latitude]; callers use the named accessors instead of indexing
// into it.
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

// NewGeoPoint builds a point from latitude and longitude. Both coordinates
// are set in one step so a latitude can never be paired with a stale
// longitude.
func NewGeoPoint(lat, lon float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lon, lat}}
}

// LatLon returns the coordinates by name. ok is false when the wire array is
// missing or does not have exactly two elements.
func (p GeoPoint) LatLon() (lat, lon float64, ok bool) {
	if len(p.Coordinates) != 2 {
		return 0, 0, false
	}
	return p.Coordinates[latitudeIndex], p.Coordinates[longitudeIndex], true
}

// Latitude returns the latitude. The caller must have checked the point is
// well-formed.
func (p GeoPoint) Latitude() float64 {
	return p.Coordinates[latitudeIndex]
}

// Longitude returns the longitude. The caller must have checked the point is
// well-formed.
func (p GeoPoint) Longitude() float64 {
	return p.Coordinates[longitudeIndex]
}

// POIRecord is the stored form of a point of interest. The id is assigned by
// the store on first insert and never changes afterwards.
type POIRecord struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Category string             `bson:"category"`
	Name     string             `bson:"name"`
	Details  *string            `bson:"details,omitempty"`
	Location GeoPoint           `bson:"location"`
}

// POI is the wire representation of a point of interest. The id is never
// serialized; clients address a POI through its href, which is derived from
// the id and the request base URI on every response.
type POI struct {
	ID       string    `json:"-"`
	Href     string    `json:"href,omitempty"`
	Category string    `json:"category"`
	Name     string    `json:"name"`
	Details  *string   `json:"details,omitempty"`
	Location *GeoPoint `json:"location"`
}
