package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"geo-service/utils/errors"
)

// RecordToResource converts a stored record to its wire form. It is total:
// every valid record converts without error. An absent details field stays
// absent, it never becomes an empty string.
func RecordToResource(rec POIRecord) POI {
	poi := POI{
		Category: rec.Category,
		Name:     rec.Name,
		Details:  rec.Details,
	}
	if !rec.ID.IsZero() {
		poi.ID = rec.ID.Hex()
	}
	if len(rec.Location.Coordinates) == 2 {
		loc := rec.Location
		poi.Location = &loc
	}
	return poi
}

// ResourceToRecord converts a wire POI back to a record. Identity comes from
// the explicit id when present, otherwise from the trailing path segment of
// the href; when both are absent the record has no id yet.
func ResourceToRecord(poi POI) (POIRecord, error) {
	id, err := ResolveObjectID(poi.ID, poi.Href)
	if err != nil {
		return POIRecord{}, err
	}
	rec := POIRecord{
		ID:       id,
		Category: poi.Category,
		Name:     poi.Name,
		Details:  poi.Details,
	}
	if poi.Location != nil {
		if lat, lon, ok := poi.Location.LatLon(); ok {
			rec.Location = NewGeoPoint(lat, lon)
		}
	}
	return rec, nil
}

// ResolveObjectID picks the object id out of an explicit id or the tail of an
// href. Both absent yields the zero ObjectID; a value that is not valid
// ObjectID hex yields an invalid-id error.
func ResolveObjectID(id, href string) (primitive.ObjectID, error) {
	raw := id
	if raw == "" && href != "" {
		if i := strings.LastIndex(href, "/"); i > -1 {
			raw = href[i+1:]
		}
	}
	if raw == "" {
		return primitive.NilObjectID, nil
	}
	oid, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, errors.InvalidID(raw)
	}
	return oid, nil
}
