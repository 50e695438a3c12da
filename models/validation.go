package models

import "geo-service/utils/errors"

// ValidatePOI checks the fields a client must supply on create and update.
// It collects one violation per problem instead of stopping at the first.
// A POI without a location is rejected outright; coordinate bounds are
// checked once the location is structurally well-formed.
func ValidatePOI(poi POI) []errors.Violation {
	var violations []errors.Violation
	if poi.Category == "" {
		violations = append(violations, errors.Violation{Message: "category must not be empty", Value: poi.Category})
	}
	if poi.Name == "" {
		violations = append(violations, errors.Violation{Message: "name must not be empty", Value: poi.Name})
	}
	if poi.Location == nil {
		violations = append(violations, errors.Violation{Message: "location is required", Value: nil})
		return violations
	}
	lat, lon, ok := poi.Location.LatLon()
	if !ok {
		violations = append(violations, errors.Violation{Message: "location coordinates must be [longitude, latitude]", Value: poi.Location.Coordinates})
		return violations
	}
	if lat < -90 || lat > 90 {
		violations = append(violations, errors.Violation{Message: "location latitude must be between -90 and 90", Value: lat})
	}
	if lon < -180 || lon > 180 {
		violations = append(violations, errors.Violation{Message: "location longitude must be between -180 and 180", Value: lon})
	}
	return violations
}

// ValidateSearch checks the parameters of a proximity query. The radius is
// given in meters.
func ValidateSearch(lat, lon float64, radiusMeters int) []errors.Violation {
	var violations []errors.Violation
	if lat < -90 || lat > 90 {
		violations = append(violations, errors.Violation{Message: "latitude must be between -90 and 90", Value: lat})
	}
	if lon < -180 || lon > 180 {
		violations = append(violations, errors.Violation{Message: "longitude must be between -180 and 180", Value: lon})
	}
	if radiusMeters < 1 || radiusMeters > 100000 {
		violations = append(violations, errors.Violation{Message: "radius must be between 1 and 100000", Value: radiusMeters})
	}
	return violations
}
