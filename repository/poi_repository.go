package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"geo-service/models"
)

// POIRepository is the narrow persistence surface the service layer depends
// on. Implementations must be safe for concurrent use; per-document atomicity
// of the individual calls is all they guarantee.
type POIRepository interface {
	// Save persists the record. A record without an id is inserted and the
	// store assigns one; a record with an id replaces the stored document,
	// inserting it under that id when absent.
	Save(ctx context.Context, rec models.POIRecord) (models.POIRecord, error)

	// FindByID returns nil when no record exists. With withDetails false the
	// details field is left out of the result by the store; the stored
	// document is untouched.
	FindByID(ctx context.Context, id primitive.ObjectID, withDetails bool) (*models.POIRecord, error)

	// DeleteByID reports whether a record was removed.
	DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error)

	// FindNear returns the records within radiusMeters of the given point,
	// in the order the store's geo index emits them. The same details rule
	// as FindByID applies.
	FindNear(ctx context.Context, lat, lon float64, radiusMeters int, withDetails bool) ([]models.POIRecord, error)

	// Categories returns the distinct category values across all records.
	Categories(ctx context.Context) ([]string, error)

	// CountByCategory counts the records in one category.
	CountByCategory(ctx context.Context, category string) (int64, error)
}
