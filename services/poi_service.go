package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"geo-service/models"
	"geo-service/repository"
	"geo-service/utils/errors"
)

// POIService orchestrates repository calls and record/resource mapping for
// points of interest.
type POIService struct {
	repo repository.POIRepository
}

func NewPOIService(repo repository.POIRepository) *POIService {
	return &POIService{repo: repo}
}

// GetByID loads one POI. With expandDetails false the details field stays
// absent in the result regardless of what is stored; the stored document is
// untouched.
func (s *POIService) GetByID(ctx context.Context, id string, expandDetails bool) (*models.POI, error) {
	oid, err := models.ResolveObjectID(id, "")
	if err != nil {
		return nil, err
	}
	rec, err := s.repo.FindByID(ctx, oid, expandDetails)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.ErrNotFound
	}
	poi := models.RecordToResource(*rec)
	return &poi, nil
}

// Create validates the POI and persists it. The store assigns the id; any id
// or href the client sent along is ignored.
func (s *POIService) Create(ctx context.Context, poi models.POI) (models.POI, error) {
	if violations := models.ValidatePOI(poi); len(violations) > 0 {
		return models.POI{}, errors.Validation(violations)
	}
	rec, err := models.ResourceToRecord(poi)
	if err != nil {
		return models.POI{}, err
	}
	rec.ID = primitive.NilObjectID
	rec, err = s.repo.Save(ctx, rec)
	if err != nil {
		return models.POI{}, err
	}
	return models.RecordToResource(rec), nil
}

// Update replaces every field except the id. When no record exists for the
// given id it creates one under that id and reports created true, so the
// boundary can answer 201 instead of 204.
//
// Known limitation: the existence check and the write are two separate store
// calls. Two concurrent updates for the same new id can both observe it
// absent and both report created. The store's per-document atomicity keeps
// the end state consistent; this layer adds no locking around the pair.
func (s *POIService) Update(ctx context.Context, id string, poi models.POI) (models.POI, bool, error) {
	oid, err := models.ResolveObjectID(id, "")
	if err != nil {
		return models.POI{}, false, err
	}
	if oid.IsZero() {
		return models.POI{}, false, errors.InvalidID(id)
	}
	if violations := models.ValidatePOI(poi); len(violations) > 0 {
		return models.POI{}, false, errors.Validation(violations)
	}
	rec, err := models.ResourceToRecord(poi)
	if err != nil {
		return models.POI{}, false, err
	}
	rec.ID = oid

	existing, err := s.repo.FindByID(ctx, oid, false)
	if err != nil {
		return models.POI{}, false, err
	}
	rec, err = s.repo.Save(ctx, rec)
	if err != nil {
		return models.POI{}, false, err
	}
	return models.RecordToResource(rec), existing == nil, nil
}

// Delete removes one POI. Deleting an id with no record reports not-found
// without touching any state, so a repeated delete answers 404 every time.
func (s *POIService) Delete(ctx context.Context, id string) error {
	oid, err := models.ResolveObjectID(id, "")
	if err != nil {
		return err
	}
	if oid.IsZero() {
		return errors.InvalidID(id)
	}
	removed, err := s.repo.DeleteByID(ctx, oid)
	if err != nil {
		return err
	}
	if !removed {
		return errors.ErrNotFound
	}
	return nil
}

// ListNear returns the POIs within radiusMeters of the given point, in the
// order the store's geo index emits them. Each element honors the same
// details projection rule as GetByID.
func (s *POIService) ListNear(ctx context.Context, lat, lon float64, radiusMeters int, expandDetails bool) ([]models.POI, error) {
	if violations := models.ValidateSearch(lat, lon, radiusMeters); len(violations) > 0 {
		return nil, errors.Validation(violations)
	}
	recs, err := s.repo.FindNear(ctx, lat, lon, radiusMeters, expandDetails)
	if err != nil {
		return nil, err
	}
	pois := make([]models.POI, 0, len(recs))
	for _, rec := range recs {
		pois = append(pois, models.RecordToResource(rec))
	}
	return pois, nil
}

// Categories returns the distinct category values in the store.
func (s *POIService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

// CountByCategory counts the POIs in one category.
func (s *POIService) CountByCategory(ctx context.Context, category string) (int64, error) {
	return s.repo.CountByCategory(ctx, category)
}
