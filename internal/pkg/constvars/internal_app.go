package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY   ContextKey = "request_id"
	CONTEXT_CURRENT_USER_KEY ContextKey = "current_user"
)

const (
	REQUEST_ID_PREFIX = "MEDREC_SVC_"
)

const (
	MongoCollectionPatients = "patients"
)

const (
	// DateLayoutISO is the calendar-date layout for every persisted date field.
	DateLayoutISO = "2006-01-02"
)

const (
	ScopeReadPatients  = "read:patients"
	ScopeWritePatients = "write:patients"
)

const (
	ClassifierLabelGlioma     = "Glioma"
	ClassifierLabelMeningioma = "Meningioma"
	ClassifierLabelNoTumor    = "No tumor"
	ClassifierLabelPituatary  = "Pituatary"
)

const (
	ClassifierImageSize = 64
)

const (
	AuditQueueName = "patient_record_audit_queue"

	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

const (
	TokenRateLimiterGroup = "token-issuance"
)
