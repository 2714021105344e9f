package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"numeric":  "must be a number",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientUsernameAlreadyExists         = "username already used"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientDoctorNotFound                = "the doctor you selected is not available"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientSlotAlreadyBooked             = "the selected time slot is no longer available"
	ErrClientSlotNotFound                  = "the selected time slot does not exist"
	ErrClientDateOutsideWindow             = "appointments can only be booked up to a week in advance"
	ErrClientRecordNotFound                = "medical record not found"
	ErrClientFileTooLarge                  = "the file you uploaded is too large"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseTime          = "cannot parse time into the given format"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevCannotParseDate          = "cannot parse the requested date"
	ErrDevBuildRequest             = "encountering error while building request DTO"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"

	// Usecase messages
	ErrDevPasswordsDoNotMatch       = "passwords do not match"
	ErrDevEmailAlreadyExists        = "email already exists"
	ErrDevUsernameAlreadyExists     = "username already exists"
	ErrDevUserNotExists             = "user not exists in our system"
	ErrDevDoctorNotExists           = "doctor not exists in our system"
	ErrDevAppointmentNotExists      = "appointment not exists in our system"
	ErrDevSlotNotExists             = "time slot not exists for the given doctor, date and time"
	ErrDevSlotAlreadyBooked         = "time slot already booked"
	ErrDevDateOutsideBookingWindow  = "requested date is outside the booking availability window"
	ErrDevRecordNotExists           = "medical record not exists in our system"
	ErrDevNotificationNotExists     = "notification not exists in our system"
	ErrDevAppointmentNotCancellable = "appointment is not in a cancellable state"

	// Validation messages
	ErrDevValidationFailed           = "validation failed"
	ErrDevInvalidRequestPayload      = "invalid request payload"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthRoleNotAllowed        = "request done by user with a role not allowed for this resource"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	// Minio messages
	ErrDevMinioFailedToCreateObject          = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObjectPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisSetData        = "failed to SET data into redis"
	ErrDevRedisGetData        = "failed to GET data from redis"
	ErrDevRedisGetNoData      = "failed to GET data from redis, there is no data associated with key %s"
	ErrDevRedisDeleteData     = "failed to DELETE data from redis"
	ErrDevRedisStoreSession   = "failed to store session data into redis"
	ErrDevRedisIncrementValue = "failed to INCR data in redis"

	// RabbitMQ messages
	ErrDevQueuePublishMessage         = "failed to publish message into queue"
	ErrDevQueueConsumeMessage         = "failed to consume message from queue"
	ErrDevRabbitMQPublishMessage      = "failed to publish message into queue '%s'"
	ErrDevRabbitMQMessageNotConfirmed = "message not confirmed by broker for queue '%s'"

	// Server messages
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerParseSessionData = "failed to parse session data"
	ErrDevMissingRequestID       = "request id not found in request context"
	ErrDevMissingSessionData     = "session data not found in request context"
)
