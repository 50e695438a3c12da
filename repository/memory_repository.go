package repository

import (
	"context"
	"math"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"geo-service/models"
)

// MemoryPOIRepository is an in-memory POIRepository for tests and local
// development. Proximity is evaluated with the haversine formula, nearest
// first, mirroring what the 2dsphere index returns.
type MemoryPOIRepository struct {
	mu      sync.RWMutex
	records map[primitive.ObjectID]models.POIRecord
}

func NewMemoryPOIRepository() *MemoryPOIRepository {
	return &MemoryPOIRepository{records: make(map[primitive.ObjectID]models.POIRecord)}
}

func (r *MemoryPOIRepository) Save(_ context.Context, rec models.POIRecord) (models.POIRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	r.records[rec.ID] = rec
	return rec, nil
}

func (r *MemoryPOIRepository) FindByID(_ context.Context, id primitive.ObjectID, withDetails bool) (*models.POIRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	if !withDetails {
		rec.Details = nil
	}
	return &rec, nil
}

func (r *MemoryPOIRepository) DeleteByID(_ context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return false, nil
	}
	delete(r.records, id)
	return true, nil
}

func (r *MemoryPOIRepository) FindNear(_ context.Context, lat, lon float64, radiusMeters int, withDetails bool) ([]models.POIRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	type hit struct {
		rec      models.POIRecord
		distance float64
	}
	var hits []hit
	for _, rec := range r.records {
		recLat, recLon, ok := rec.Location.LatLon()
		if !ok {
			continue
		}
		d := haversineMeters(lat, lon, recLat, recLon)
		if d > float64(radiusMeters) {
			continue
		}
		if !withDetails {
			rec.Details = nil
		}
		hits = append(hits, hit{rec: rec, distance: d})
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].distance < hits[j].distance })
	recs := make([]models.POIRecord, 0, len(hits))
	for _, h := range hits {
		recs = append(recs, h.rec)
	}
	return recs, nil
}

func (r *MemoryPOIRepository) Categories(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]bool)
	var categories []string
	for _, rec := range r.records {
		if !seen[rec.Category] {
			seen[rec.Category] = true
			categories = append(categories, rec.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

func (r *MemoryPOIRepository) CountByCategory(_ context.Context, category string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, rec := range r.records {
		if rec.Category == category {
			count++
		}
	}
	return count, nil
}

// haversineMeters returns the great-circle distance between two coordinate
// pairs in meters.
func haversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusMeters = 6371000.0
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMeters * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
