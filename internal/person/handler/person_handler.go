package handler

import (
	"encoding/json"
	"net/http"

	"github.com/commhealth/screening-record-service/internal/person/model"
	"github.com/commhealth/screening-record-service/internal/person/service"
	errors2 "github.com/commhealth/screening-record-service/internal/system/errors"
	"github.com/commhealth/screening-record-service/internal/system/log"
	"github.com/commhealth/screening-record-service/internal/system/utils"
)

// PersonHandler exposes person record retrieval and upsert endpoints.
type PersonHandler struct {
	personService *service.PersonService
}

// NewPersonHandler creates a new instance of PersonHandler.
func NewPersonHandler(personService *service.PersonService) *PersonHandler {
	return &PersonHandler{
		personService: personService,
	}
}

// GetPerson handles GET /person/{idNumber}.
func (ph *PersonHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	idNumber := r.PathValue("idNumber")
	if idNumber == "" {
		http.Error(w, "Invalid path", http.StatusNotFound)
		return
	}

	person, err := ph.personService.GetPerson(r.Context(), idNumber)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	response := model.GetPersonResponse{
		Name:      person.Name,
		Birth:     person.Birth,
		Education: person.Education,
		Phone:     person.Phone,
		Address:   person.Address,
		Items:     person.Items,
	}
	utils.WriteJSONResponse(w, http.StatusOK, response)
}

// UpsertPerson handles POST /person.
func (ph *PersonHandler) UpsertPerson(w http.ResponseWriter, r *http.Request) {
	var request model.UpsertPersonRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&request); err != nil {
		message := utils.HandleDecodeError(err, "person")
		log.GetLogger().Debug("Failed to decode upsert request", log.Error(err))
		clientError := errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_REQUEST_FORMAT.Code,
			Message:     message,
			Description: errors2.INVALID_REQUEST_FORMAT.Message,
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	created, err := ph.personService.UpsertPerson(r.Context(), request)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	message := "updated"
	if created {
		message = "created"
	}
	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": message})
}
