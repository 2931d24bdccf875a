package errors

const errorPrefix = "SRS-"

var (
	// Server error codes

	GET_PERSON = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while fetching person record.",
	}

	UPSERT_PERSON = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while saving person record.",
	}

	FETCH_EXPORT_RECORDS = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while fetching records for export.",
	}

	RENDER_EXPORT = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while rendering export spreadsheet.",
	}

	// Client error codes

	PERSON_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "11001",
		Message: "not found",
	}

	INVALID_REQUEST_FORMAT = ErrorMessage{
		Code:    errorPrefix + "11002",
		Message: "Invalid request format.",
	}

	MISSING_ID_NUMBER = ErrorMessage{
		Code:    errorPrefix + "11003",
		Message: "idNumber is required.",
	}
)
