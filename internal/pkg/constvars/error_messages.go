package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"len":      "must be %s characters long",
	"oneof":    "must be one of [%s]",
	"datetime": "must be a valid date in %s format",
	"url":      "must be a valid URL",
	"uuid":     "must be a valid UUID",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"len":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidUsernameOrPassword     = "Invalid credentials"
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientTooManyTokenRequests          = "too many token requests, slow down"
	ErrClientBMIUpstreamFormat             = "Error connecting to BMI API: %s"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseForm          = "cannot parse urlencoded form body"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevReadHTTPResponse         = "failed to read HTTP response body"
	ErrDevServerDeadlineExceeded   = "the server took too long to respond"

	// Validation messages
	ErrDevValidationFailed      = "validation failed"
	ErrDevImageValidationFailed = "image validation failed"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenMissing          = "authorization token is missing"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthUnknownSubject        = "token subject does not resolve to a known user"

	// MongoDB messages
	ErrDevDBFailedToFindDocument     = "failed to find document from database"
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document in database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document from database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database cursor"

	// Redis messages
	ErrDevRedisIncrementValue = "failed to increment value in redis"
	ErrDevRedisExpireKey      = "failed to set expiry on redis key"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"

	// Classifier messages
	ErrDevClassifierDecodeImage   = "failed to decode the uploaded image"
	ErrDevClassifierExecArtifact  = "classifier artifact invocation failed"
	ErrDevClassifierBadPrediction = "classifier artifact returned an unusable prediction"

	// Upstream messages
	ErrDevBMIUpstreamRequest = "BMI upstream request failed"
)
