/*
Package errs provides custom error types and application-level error code constants.

These error codes are used to clearly identify specific business or system errors
both internally within the server and in communication with clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON format is incorrect (e.g., syntax error).
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004
)

// 2xxx: Account and Message Business Logic Errors
const (
	// ErrInvalidInput indicates a missing or malformed business field
	// (empty username or password, blank message body, bad message id).
	ErrInvalidInput = 2001

	// ErrDuplicateUsername indicates that the requested username is already taken.
	ErrDuplicateUsername = 2002

	// ErrInvalidCredentials indicates a failed login. The same code covers an
	// unknown username and a wrong password so responses cannot be used to
	// enumerate accounts.
	ErrInvalidCredentials = 2003

	// ErrMessageNotFound indicates that the target message id does not exist.
	ErrMessageNotFound = 2101

	// ErrNotMessageOwner indicates the caller is authenticated but does not own
	// the target message, or the message predates ownership tracking.
	ErrNotMessageOwner = 2102
)

// 3xxx: Session Errors
const (
	// ErrUnauthorized indicates a missing, invalid, or expired session.
	ErrUnauthorized = 3001
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000

	// ErrStorage indicates that the underlying data store failed.
	ErrStorage = 5001
)
