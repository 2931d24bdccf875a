package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/commhealth/screening-record-service/internal/person/model"
	"github.com/commhealth/screening-record-service/internal/person/store"
	"github.com/commhealth/screening-record-service/internal/system/log"
	"github.com/commhealth/screening-record-service/test/setup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMongo *setup.TestMongo

func TestMain(m *testing.M) {
	if os.Getenv("INTEGRATION_TESTS") != "true" {
		// Requires a Docker daemon; enabled explicitly via INTEGRATION_TESTS=true.
		os.Exit(0)
	}
	_ = log.Init("ERROR")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var err error
	testMongo, err = setup.SetupTestMongo(ctx)
	if err != nil {
		panic(err)
	}

	code := m.Run()
	testMongo.Teardown(context.Background())
	os.Exit(code)
}

func newStore(t *testing.T) *store.PersonStore {
	t.Helper()
	db := testMongo.Client.Database("personsDB_test_" + t.Name())
	s := store.NewPersonStore(db, "persons")
	require.NoError(t, s.EnsureIndexes(context.Background()))
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
	})
	return s
}

func boolPtr(v bool) *bool {
	return &v
}

func TestUpsertCreatesThenUpdates(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	created, err := s.Upsert(ctx, model.Person{
		IDNumber:    "A123456789",
		Name:        "Chen",
		DateUpdated: "2026-08-28",
	}, model.ItemsPatch{HealthCheck: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = s.Upsert(ctx, model.Person{
		IDNumber:    "A123456789",
		Name:        "Chen Updated",
		DateUpdated: "2026-08-29",
	}, model.ItemsPatch{BC: boolPtr(true)})
	require.NoError(t, err)
	assert.False(t, created)

	person, err := s.FindByIDNumber(ctx, "A123456789")
	require.NoError(t, err)
	require.NotNil(t, person)
	assert.Equal(t, "Chen Updated", person.Name)
	assert.Equal(t, "2026-08-29", person.DateUpdated)
	assert.True(t, person.Items.HealthCheck, "flag from first write survives partial update")
	assert.True(t, person.Items.BC)
	assert.False(t, person.Items.PapSmear, "unset flag defaults to false")
}

func TestFindByIDNumber_Missing(t *testing.T) {
	s := newStore(t)

	person, err := s.FindByIDNumber(context.Background(), "Z999999999")
	require.NoError(t, err)
	assert.Nil(t, person)
}

func TestFindByDateUpdated(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	_, err := s.Upsert(ctx, model.Person{IDNumber: "A123456789", DateUpdated: "2026-08-28"}, model.ItemsPatch{})
	require.NoError(t, err)
	_, err = s.Upsert(ctx, model.Person{IDNumber: "B987654321", DateUpdated: "2026-08-27"}, model.ItemsPatch{})
	require.NoError(t, err)

	all, err := s.FindByDateUpdated(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	matched, err := s.FindByDateUpdated(ctx, "2026-08-27")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "B987654321", matched[0].IDNumber)

	none, err := s.FindByDateUpdated(ctx, "2000-01-01")
	require.NoError(t, err)
	assert.Empty(t, none)
}
