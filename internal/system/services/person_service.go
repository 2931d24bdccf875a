package services

import (
	"net/http"

	"github.com/commhealth/screening-record-service/internal/person/handler"
)

// PersonService registers the person record endpoints.
type PersonService struct {
	personHandler *handler.PersonHandler
}

func NewPersonService(mux *http.ServeMux, personHandler *handler.PersonHandler) *PersonService {

	instance := &PersonService{
		personHandler: personHandler,
	}
	instance.RegisterRoutes(mux)

	return instance
}

func (s *PersonService) RegisterRoutes(mux *http.ServeMux) {

	mux.HandleFunc("GET /person/{idNumber}", s.personHandler.GetPerson)
	mux.HandleFunc("POST /person", s.personHandler.UpsertPerson)
}
