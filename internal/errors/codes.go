package errors

// Error code constants, format: CATEGORY_SPECIFIC_DETAIL.
// The admin frontend maps these codes to its own display strings; the
// message field is still always populated with a human-readable fallback.

const (
	// Authentication (AUTH_)
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"

	// Authorization (AUTHZ_)
	AuthzForbidden    = "AUTHZ_FORBIDDEN"
	AuthzRoleNotFound = "AUTHZ_ROLE_NOT_FOUND"
	AuthzAdminOnly    = "AUTHZ_ADMIN_ONLY"

	// Validation (VALIDATION_)
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID    = "VALIDATION_INVALID_ID"
	ValidationRequired     = "VALIDATION_REQUIRED"

	// Configuration (CONFIG_)
	ConfigUnknownAttributeType = "CONFIG_UNKNOWN_ATTRIBUTE_TYPE"

	// Resources (RESOURCE_)
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// Master data (MASTER_)
	MasterAttributeNotFound = "MASTER_ATTRIBUTE_NOT_FOUND"
	MasterDuplicateName     = "MASTER_DUPLICATE_NAME"

	// Products (PRODUCT_)
	ProductNotFound     = "PRODUCT_NOT_FOUND"
	ProductInvalidModel = "PRODUCT_INVALID_MODEL"
	ProductSKUExists    = "PRODUCT_SKU_EXISTS"

	// Stores (STORE_)
	StoreNotFound = "STORE_NOT_FOUND"

	// Sales / purchases (SALE_, PURCHASE_)
	SaleNotFound     = "SALE_NOT_FOUND"
	PurchaseNotFound = "PURCHASE_NOT_FOUND"

	// Recalls (RECALL_)
	RecallNotFound = "RECALL_NOT_FOUND"

	// Uploads (UPLOAD_)
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE"
	UploadFileTooLarge    = "UPLOAD_FILE_TOO_LARGE"
	UploadFailed          = "UPLOAD_FAILED"

	// Internal (INTERNAL_)
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
)
