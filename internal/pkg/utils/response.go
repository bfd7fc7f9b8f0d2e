package utils

import (
	"errors"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/dto/responses"
	"medrecord-service/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// BuildEnvelopeResponse writes a record-endpoint success envelope. The transport
// status is always 200; the envelope code is informational only.
func BuildEnvelopeResponse(w http.ResponseWriter, data interface{}, message string) {
	response := responses.Envelope{
		Data:    []interface{}{data},
		Code:    constvars.StatusOK,
		Message: message,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(constvars.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// BuildEnvelopeError writes a record-endpoint error envelope. Like the success
// variant it rides on a 200 transport status; callers inspect the envelope code.
func BuildEnvelopeError(w http.ResponseWriter, errText string, code int, message string) {
	response := responses.ErrorEnvelope{
		Error:   errText,
		Code:    code,
		Message: message,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(constvars.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// BuildJSONResponse writes an arbitrary JSON payload with the given transport status.
func BuildJSONResponse(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// BuildRawJSONResponse writes a pre-encoded JSON body verbatim, used when proxying
// an upstream response without re-encoding it.
func BuildRawJSONResponse(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	w.Write(body)
}

// BuildErrorResponse writes a transport-level error body from a CustomError,
// logging dev details through zap. Unclassified errors surface as 500.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		log.Error(customErr.DevMessage,
			zap.String("file", customErr.Location.File),
			zap.Int("line", customErr.Location.Line),
			zap.String("function_name", customErr.Location.FunctionName),
		)
	} else {
		log.Error(err.Error())
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}

	appEnvironment := GetEnvString("APP_ENV", "development")
	if customErr != nil && appEnvironment != "production" {
		response.DevMessage = customErr.DevMessage
	}
	json.NewEncoder(w).Encode(response)
}
