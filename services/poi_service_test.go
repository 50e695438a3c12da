package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"geo-service/models"
	"geo-service/repository"
	"geo-service/utils/errors"
)

func strptr(s string) *string { return &s }

func newTestService() *POIService {
	return NewPOIService(repository.NewMemoryPOIRepository())
}

func testPOI() models.POI {
	return models.POI{
		Category: "gasstation",
		Name:     "Shell",
		Details:  strptr("open 24/7"),
		Location: &models.GeoPoint{Type: "Point", Coordinates: []float64{13.7301, 51.0308}},
	}
}

func TestCreateAssignsID(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(context.Background(), testPOI())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "gasstation", created.Category)

	loaded, err := svc.GetByID(context.Background(), created.ID, true)
	require.NoError(t, err)
	assert.Equal(t, created.ID, loaded.ID)
	assert.Equal(t, "Shell", loaded.Name)
	require.NotNil(t, loaded.Location)
	assert.Equal(t, []float64{13.7301, 51.0308}, loaded.Location.Coordinates)
}

func TestCreateIgnoresClientID(t *testing.T) {
	svc := newTestService()

	poi := testPOI()
	poi.ID = primitive.NewObjectID().Hex()

	created, err := svc.Create(context.Background(), poi)
	require.NoError(t, err)
	assert.NotEqual(t, poi.ID, created.ID)
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService()

	cases := []models.POI{
		{},
		{Category: "gasstation", Location: testPOI().Location},
		{Name: "Shell", Location: testPOI().Location},
		{Category: "gasstation", Name: "Shell"},
		{Category: "gasstation", Name: "Shell", Location: &models.GeoPoint{Type: "Point", Coordinates: []float64{200, 52.5}}},
	}

	for _, poi := range cases {
		_, err := svc.Create(context.Background(), poi)
		require.Error(t, err)
		apiErr, ok := err.(*errors.APIError)
		require.True(t, ok)
		assert.Equal(t, 400, apiErr.Status)
		assert.NotEmpty(t, apiErr.Violations)
	}
}

func TestGetByIDProjection(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(context.Background(), testPOI())
	require.NoError(t, err)

	collapsed, err := svc.GetByID(context.Background(), created.ID, false)
	require.NoError(t, err)
	assert.Nil(t, collapsed.Details)

	// the stored record is untouched
	expanded, err := svc.GetByID(context.Background(), created.ID, true)
	require.NoError(t, err)
	require.NotNil(t, expanded.Details)
	assert.Equal(t, "open 24/7", *expanded.Details)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetByID(context.Background(), primitive.NewObjectID().Hex(), false)
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestGetByIDInvalidID(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetByID(context.Background(), "not-a-hex-id", false)
	require.Error(t, err)
	apiErr, ok := err.(*errors.APIError)
	require.True(t, ok)
	assert.Equal(t, 400, apiErr.Status)
}

func TestUpdateUpsertDuality(t *testing.T) {
	svc := newTestService()
	id := primitive.NewObjectID().Hex()

	// update on a nonexistent id behaves as create under that id
	updated, created, err := svc.Update(context.Background(), id, testPOI())
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, id, updated.ID)

	loaded, err := svc.GetByID(context.Background(), id, true)
	require.NoError(t, err)
	assert.Equal(t, "Shell", loaded.Name)

	// a second update replaces the fields and keeps the id
	replacement := testPOI()
	replacement.Name = "Aral"
	replacement.Details = nil

	updated, created, err = svc.Update(context.Background(), id, replacement)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, id, updated.ID)

	loaded, err = svc.GetByID(context.Background(), id, true)
	require.NoError(t, err)
	assert.Equal(t, "Aral", loaded.Name)
	assert.Nil(t, loaded.Details)
}

func TestUpdateValidation(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), models.POI{})
	require.Error(t, err)
	apiErr, ok := err.(*errors.APIError)
	require.True(t, ok)
	assert.Equal(t, 400, apiErr.Status)

	_, _, err = svc.Update(context.Background(), "bogus", testPOI())
	require.Error(t, err)
}

func TestDeleteIdempotentReporting(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(context.Background(), testPOI())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	// the record is gone after the first call; every further delete reports
	// not-found without corrupting state
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), errors.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), errors.ErrNotFound)

	_, err = svc.GetByID(context.Background(), created.ID, false)
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestListNear(t *testing.T) {
	svc := newTestService()

	near1 := testPOI()
	near1.Name = "Brandenburg Gate"
	near1.Location = &models.GeoPoint{Type: "Point", Coordinates: []float64{13.377704, 52.516275}}

	near2 := testPOI()
	near2.Name = "Reichstag"
	near2.Location = &models.GeoPoint{Type: "Point", Coordinates: []float64{13.376198, 52.518623}}

	far := testPOI()
	far.Name = "Somewhere in Bavaria"
	far.Location = &models.GeoPoint{Type: "Point", Coordinates: []float64{10.0, 50.0}}

	for _, poi := range []models.POI{near1, near2, far} {
		_, err := svc.Create(context.Background(), poi)
		require.NoError(t, err)
	}

	pois, err := svc.ListNear(context.Background(), 52.516275, 13.377704, 1000, false)
	require.NoError(t, err)
	require.Len(t, pois, 2)

	names := []string{pois[0].Name, pois[1].Name}
	assert.Contains(t, names, "Brandenburg Gate")
	assert.Contains(t, names, "Reichstag")

	// every element honors the details projection rule
	for _, poi := range pois {
		assert.Nil(t, poi.Details)
	}

	expanded, err := svc.ListNear(context.Background(), 52.516275, 13.377704, 1000, true)
	require.NoError(t, err)
	for _, poi := range expanded {
		assert.NotNil(t, poi.Details)
	}
}

func TestListNearValidation(t *testing.T) {
	svc := newTestService()

	for _, args := range [][3]float64{
		{91, 0, 1000},
		{0, 181, 1000},
		{0, 0, 0},
		{0, 0, 100001},
	} {
		_, err := svc.ListNear(context.Background(), args[0], args[1], int(args[2]), false)
		require.Error(t, err)
		apiErr, ok := err.(*errors.APIError)
		require.True(t, ok)
		assert.Equal(t, 400, apiErr.Status)
	}
}

func TestListNearEmptyResult(t *testing.T) {
	svc := newTestService()

	pois, err := svc.ListNear(context.Background(), 0, 0, 1000, false)
	require.NoError(t, err)
	assert.Empty(t, pois)
	assert.NotNil(t, pois)
}

func TestCategoriesAndCounts(t *testing.T) {
	svc := newTestService()

	station := testPOI()
	museum := testPOI()
	museum.Category = "museum"
	museum.Name = "Zwinger"

	for _, poi := range []models.POI{station, museum, museum} {
		_, err := svc.Create(context.Background(), poi)
		require.NoError(t, err)
	}

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"gasstation", "museum"}, categories)

	count, err := svc.CountByCategory(context.Background(), "museum")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = svc.CountByCategory(context.Background(), "castle")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
