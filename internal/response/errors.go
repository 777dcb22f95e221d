package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials   ErrCode = "INVALID_CREDENTIALS"
	ErrNotAuthenticated     ErrCode = "NOT_AUTHENTICATED"
	ErrTokenInvalid         ErrCode = "TOKEN_INVALID"
	ErrOldPasswordIncorrect ErrCode = "OLD_PASSWORD_INCORRECT"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation       ErrCode = "VALIDATION_ERROR"
	ErrInvalidID        ErrCode = "INVALID_ID"
	ErrInvalidImagePath ErrCode = "INVALID_IMAGE_PATH"

	// ─── Conflicts ─────────────────────────────────────────────────────
	ErrProjectExists    ErrCode = "PROJECT_EXISTS"
	ErrClientExists     ErrCode = "CLIENT_EXISTS"
	ErrContactExists    ErrCode = "CONTACT_EXISTS"
	ErrSubscriberExists ErrCode = "SUBSCRIBER_EXISTS"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrAdminNotFound   ErrCode = "ADMIN_NOT_FOUND"
	ErrProjectNotFound ErrCode = "PROJECT_NOT_FOUND"
	ErrRouteNotFound   ErrCode = "ROUTE_NOT_FOUND"

	// ─── Media ─────────────────────────────────────────────────────────
	ErrUnsupportedFile ErrCode = "UNSUPPORTED_FILE_TYPE"
	ErrFileTooLarge    ErrCode = "FILE_TOO_LARGE"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrInvalidCredentials:
		return "Invalid credentials"
	case ErrNotAuthenticated:
		return "Not authenticated"
	case ErrTokenInvalid:
		return "Invalid or expired token"
	case ErrOldPasswordIncorrect:
		return "Old password is incorrect"

	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidImagePath:
		return "Image must be a newly uploaded file or a previously uploaded path."

	case ErrProjectExists:
		return "This project already exists."
	case ErrClientExists:
		return "This client already exists."
	case ErrContactExists:
		return "This contact already exists."
	case ErrSubscriberExists:
		return "This subscriber already exists."

	case ErrAdminNotFound:
		return "Admin not found"
	case ErrProjectNotFound:
		return "Project not found"
	case ErrRouteNotFound:
		return "Route not found"

	case ErrUnsupportedFile:
		return "Unsupported file type. Upload a JPEG, PNG, GIF or WebP image."
	case ErrFileTooLarge:
		return "File size exceeds the upload limit."

	case ErrInternal:
		return "Server error"
	default:
		return "An unexpected error occurred."
	}
}
