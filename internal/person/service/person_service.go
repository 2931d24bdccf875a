package service

import (
	"context"
	"net/http"
	"time"

	"github.com/commhealth/screening-record-service/internal/person/model"
	"github.com/commhealth/screening-record-service/internal/system/constants"
	errors2 "github.com/commhealth/screening-record-service/internal/system/errors"
)

// PersonStoreInterface is the store surface the service depends on.
type PersonStoreInterface interface {
	FindByIDNumber(ctx context.Context, idNumber string) (*model.Person, error)
	Upsert(ctx context.Context, person model.Person, items model.ItemsPatch) (bool, error)
}

// PersonService implements lookup and upsert of person records.
type PersonService struct {
	store    PersonStoreInterface
	location *time.Location
}

// NewPersonService creates a new service. The location fixes the timezone
// policy for dateUpdated: one configured zone, formatted as YYYY-MM-DD.
func NewPersonService(store PersonStoreInterface, location *time.Location) *PersonService {
	if location == nil {
		location = time.UTC
	}
	return &PersonService{
		store:    store,
		location: location,
	}
}

// GetPerson fetches a record by national ID.
func (s *PersonService) GetPerson(ctx context.Context, idNumber string) (*model.Person, error) {
	person, err := s.store.FindByIDNumber(ctx, idNumber)
	if err != nil {
		return nil, errors2.NewServerError(errors2.GET_PERSON, err)
	}
	if person == nil {
		return nil, errors2.NewClientError(errors2.PERSON_NOT_FOUND, http.StatusNotFound)
	}
	return person, nil
}

// UpsertPerson creates or updates the record for the request's idNumber.
// dateUpdated is always set to the current date in the configured zone.
// Returns whether a new record was created.
func (s *PersonService) UpsertPerson(ctx context.Context, request model.UpsertPersonRequest) (bool, error) {
	if request.IDNumber == "" {
		return false, errors2.NewClientError(errors2.MISSING_ID_NUMBER, http.StatusBadRequest)
	}

	person := model.Person{
		IDNumber:    request.IDNumber,
		Name:        request.Name,
		Birth:       request.Birth,
		Education:   request.Education,
		Phone:       request.Phone,
		Address:     request.Address,
		DateUpdated: s.today(),
	}

	created, err := s.store.Upsert(ctx, person, request.Items)
	if err != nil {
		return false, errors2.NewServerError(errors2.UPSERT_PERSON, err)
	}
	return created, nil
}

func (s *PersonService) today() string {
	return time.Now().In(s.location).Format(constants.DateLayout)
}
