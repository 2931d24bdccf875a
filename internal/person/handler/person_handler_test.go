package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/commhealth/screening-record-service/internal/person/model"
	"github.com/commhealth/screening-record-service/internal/person/service"
	"github.com/commhealth/screening-record-service/internal/system/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

type fakePersonStore struct {
	persons   map[string]model.Person
	findErr   error
	upsertErr error
}

func newFakePersonStore() *fakePersonStore {
	return &fakePersonStore{persons: map[string]model.Person{}}
}

func (f *fakePersonStore) FindByIDNumber(_ context.Context, idNumber string) (*model.Person, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	person, ok := f.persons[idNumber]
	if !ok {
		return nil, nil
	}
	return &person, nil
}

func (f *fakePersonStore) Upsert(_ context.Context, person model.Person, items model.ItemsPatch) (bool, error) {
	if f.upsertErr != nil {
		return false, f.upsertErr
	}
	existing, ok := f.persons[person.IDNumber]
	if ok {
		person.Items = existing.Items.Merge(items)
		f.persons[person.IDNumber] = person
		return false, nil
	}
	person.Items = model.Items{}.Merge(items)
	f.persons[person.IDNumber] = person
	return true, nil
}

func newTestMux(store *fakePersonStore) *http.ServeMux {
	personService := service.NewPersonService(store, time.UTC)
	personHandler := NewPersonHandler(personService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /person/{idNumber}", personHandler.GetPerson)
	mux.HandleFunc("POST /person", personHandler.UpsertPerson)
	return mux
}

func TestUpsertThenGet(t *testing.T) {
	mux := newTestMux(newFakePersonStore())

	body := `{"idNumber":"A123456789","name":"Chen","items":{"healthCheck":true}}`
	req := httptest.NewRequest(http.MethodPost, "/person", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var upsertResponse map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &upsertResponse))
	assert.Equal(t, "created", upsertResponse["message"])

	req = httptest.NewRequest(http.MethodGet, "/person/A123456789", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var getResponse model.GetPersonResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &getResponse))
	assert.Equal(t, "Chen", getResponse.Name)
	assert.Empty(t, getResponse.Birth)
	assert.True(t, getResponse.Items.HealthCheck)
	assert.False(t, getResponse.Items.BC)
	assert.False(t, getResponse.Items.PapSmear)
}

func TestUpsert_SecondWriteReportsUpdated(t *testing.T) {
	mux := newTestMux(newFakePersonStore())

	for i, expected := range []string{"created", "updated"} {
		req := httptest.NewRequest(http.MethodPost, "/person",
			strings.NewReader(`{"idNumber":"A123456789","name":"Chen"}`))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
		var response map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, expected, response["message"])
	}
}

func TestGetPerson_NotFound(t *testing.T) {
	mux := newTestMux(newFakePersonStore())

	req := httptest.NewRequest(http.MethodGet, "/person/Z999999999", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var response map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "not found", response["message"])
}

func TestUpsert_MissingIDNumber(t *testing.T) {
	mux := newTestMux(newFakePersonStore())

	req := httptest.NewRequest(http.MethodPost, "/person", strings.NewReader(`{"name":"Chen"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpsert_UnknownFlagRejected(t *testing.T) {
	mux := newTestMux(newFakePersonStore())

	body := `{"idNumber":"A123456789","items":{"lungScreen":true}}`
	req := httptest.NewRequest(http.MethodPost, "/person", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "lungScreen")
}

func TestUpsert_MalformedBody(t *testing.T) {
	mux := newTestMux(newFakePersonStore())

	req := httptest.NewRequest(http.MethodPost, "/person", strings.NewReader(`{"idNumber":`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
