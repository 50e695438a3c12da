package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"geo-service/models"
)

const poiCollection = "point_of_interest"

// MongoPOIRepository stores POI records in a MongoDB collection with a
// 2dsphere index on the location field.
type MongoPOIRepository struct {
	collection *mongo.Collection
}

func NewMongoPOIRepository(db *mongo.Database) *MongoPOIRepository {
	return &MongoPOIRepository{collection: db.Collection(poiCollection)}
}

// EnsureIndexes creates the 2dsphere index the proximity query depends on.
// Safe to call on every startup.
func (r *MongoPOIRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "location", Value: "2dsphere"}},
	})
	return err
}

func (r *MongoPOIRepository) Save(ctx context.Context, rec models.POIRecord) (models.POIRecord, error) {
	if rec.ID.IsZero() {
		res, err := r.collection.InsertOne(ctx, rec)
		if err != nil {
			return models.POIRecord{}, err
		}
		rec.ID = res.InsertedID.(primitive.ObjectID)
		return rec, nil
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": rec.ID}, rec, opts); err != nil {
		return models.POIRecord{}, err
	}
	return rec, nil
}

func (r *MongoPOIRepository) FindByID(ctx context.Context, id primitive.ObjectID, withDetails bool) (*models.POIRecord, error) {
	opts := options.FindOne()
	if !withDetails {
		opts.SetProjection(bson.M{"details": 0})
	}
	var rec models.POIRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *MongoPOIRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoPOIRepository) FindNear(ctx context.Context, lat, lon float64, radiusMeters int, withDetails bool) ([]models.POIRecord, error) {
	opts := options.Find()
	if !withDetails {
		opts.SetProjection(bson.M{"details": 0})
	}
	cursor, err := r.collection.Find(ctx, nearFilter(lat, lon, radiusMeters), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var recs []models.POIRecord
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *MongoPOIRepository) Categories(ctx context.Context) ([]string, error) {
	values, err := r.collection.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, err
	}
	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

func (r *MongoPOIRepository) CountByCategory(ctx context.Context, category string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"category": category})
}

// nearFilter builds the $near query for a point and a radius in meters. The
// 2dsphere index evaluates the distance on the sphere and returns matches
// nearest first.
func nearFilter(lat, lon float64, radiusMeters int) bson.M {
	return bson.M{
		"location": bson.M{
			"$near": bson.M{
				"$geometry":    models.NewGeoPoint(lat, lon),
				"$maxDistance": radiusMeters,
			},
		},
	}
}
