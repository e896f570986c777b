package constants

// Roles
const (
	ROLE_ADMIN   = "ADMIN"
	ROLE_MANAGER = "MANAGER"
)

// Response messages
const (
	MISSING_LOGIN_INPUT  = "Username and password are required"
	INVALID_USERNAME     = "Username does not exist"
	INVALID_PASSWORD     = "Incorrect password"
	ACCOUNT_NOT_ACTIVE   = "Account is disabled"
	ERROR_INTERNAL_ERROR = "Internal server error"
	ERROR_INVALID_INPUT  = "Invalid input"
	ERROR_NOT_FOUND      = "Resource not found"

	BOOKING_NOT_FOUND  = "Booking not found"
	SERVICE_NOT_FOUND  = "Service not found"
	DEAL_NOT_FOUND     = "Deal not found"
	USER_NOT_FOUND     = "User not found"
	EMAIL_ALREADY_USED = "Email is already registered"

	DATA_INPUT_IS_NOT_NUMBER = "Parameter must be a number"
)

// Prefix convention for booking service references: "deal-<id>" points at a
// deal, a bare id points at a service.
const DEAL_REFERENCE_PREFIX = "deal-"

// Fallback title when a booking reference cannot be resolved.
const UNKNOWN_SERVICE_TITLE = "Unknown Service"
