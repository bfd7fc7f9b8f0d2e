package constvars

const (
	LoggingRequestIDKey   = "request_id"
	LoggingDataKey        = "data"
	LoggingPatientIDKey   = "patient_id"
	LoggingUsernameKey    = "username"
	LoggingQueryParamsKey = "query_params"
	LoggingResponseKey    = "response"
	LoggingRequestKey     = "request"
)
