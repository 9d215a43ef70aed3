package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo pairs an error code with a user-facing message.
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError converts database and infrastructure errors into a code plus a
// message the admin frontend can show as-is. Raw constraint details stay in
// the logs, not in the response.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{Code: InternalServerError, Message: "Something went wrong"}
	}

	errStr := err.Error()
	errLower := strings.ToLower(errStr)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{Code: ResourceNotFound, Message: notFoundMessage(context)}
	}

	// Unique constraint violation (23505)
	if strings.Contains(errLower, "duplicate key") || strings.Contains(errLower, "unique constraint") {
		return parseDuplicateKeyError(errLower)
	}

	// Foreign key constraint violation (23503)
	if strings.Contains(errLower, "foreign key constraint") {
		if strings.Contains(errLower, "still referenced") {
			return ErrorInfo{Code: ResourceConflict, Message: "This record is still referenced and cannot be deleted"}
		}
		return ErrorInfo{Code: ResourceNotFound, Message: "A referenced record does not exist"}
	}

	// Not null constraint violation (23502)
	if strings.Contains(errLower, "null value") && strings.Contains(errLower, "not-null constraint") {
		return ErrorInfo{Code: ValidationRequired, Message: "A required field is missing"}
	}

	// Network / connection failures
	if strings.Contains(errLower, "connection refused") ||
		strings.Contains(errLower, "no such host") ||
		strings.Contains(errLower, "timeout") {
		return ErrorInfo{Code: InternalDatabaseError, Message: "A backing service is unreachable. Please try again"}
	}

	return ErrorInfo{Code: InternalServerError, Message: defaultMessage(context)}
}

func parseDuplicateKeyError(errLower string) ErrorInfo {
	if strings.Contains(errLower, "sku") {
		return ErrorInfo{Code: ProductSKUExists, Message: "A product with this SKU already exists"}
	}
	if strings.Contains(errLower, "email") {
		return ErrorInfo{Code: AuthEmailAlreadyExists, Message: "This email is already in use"}
	}
	if strings.Contains(errLower, "master_attributes") || strings.Contains(errLower, "idx_master_type_name") {
		return ErrorInfo{Code: MasterDuplicateName, Message: "An attribute with this name already exists"}
	}
	return ErrorInfo{Code: ResourceAlreadyExists, Message: "This record already exists"}
}

func notFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	switch {
	case strings.Contains(contextLower, "master"), strings.Contains(contextLower, "attribute"):
		return "Attribute not found"
	case strings.Contains(contextLower, "product"):
		return "Product not found"
	case strings.Contains(contextLower, "store"):
		return "Store not found"
	case strings.Contains(contextLower, "sale"):
		return "Sale not found"
	case strings.Contains(contextLower, "purchase"):
		return "Purchase not found"
	case strings.Contains(contextLower, "recall"):
		return "Recall not found"
	case strings.Contains(contextLower, "user"):
		return "User not found"
	}
	return "Requested record not found"
}

func defaultMessage(context string) string {
	contextLower := strings.ToLower(context)

	switch {
	case strings.Contains(contextLower, "create"):
		return "Failed to save the record. Please try again"
	case strings.Contains(contextLower, "update"):
		return "Failed to update the record. Please try again"
	case strings.Contains(contextLower, "delete"):
		return "Failed to delete the record. Please try again"
	}
	return "Something went wrong. Please try again"
}
