package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	customerrors "github.com/commhealth/screening-record-service/internal/system/errors"
	"github.com/commhealth/screening-record-service/internal/system/log"
)

// WriteJSONResponse encodes data as the JSON response body with the given status.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// HandleError sends an HTTP error response based on the provided error.
// Client errors carry their own status and message; anything else is reported
// as a generic internal server error and logged with its cause.
func HandleError(w http.ResponseWriter, err error) {
	var clientError *customerrors.ClientError
	if ok := errors.As(err, &clientError); ok {
		WriteJSONResponse(w, clientError.StatusCode, map[string]string{
			"message": clientError.Message,
		})
		return
	}

	var serverError *customerrors.ServerError
	if ok := errors.As(err, &serverError); ok {
		log.GetLogger().Error(serverError.Message,
			log.String("code", serverError.Code),
			log.Error(serverError.Err))
	} else {
		log.GetLogger().Error("Unhandled error", log.Error(err))
	}

	WriteJSONResponse(w, http.StatusInternalServerError, map[string]string{
		"message": "Internal server error",
	})
}
