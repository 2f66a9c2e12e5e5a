package apperrors

import (
	"fmt"
	"net/http"
)

// Factories and predefined variables for the storefront domains.

// NotFound builds a 404 for a named resource ("Game", "Cart item", ...).
func NotFound(resource string) *AppError {
	return New(CodeNotFound, "resource", fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

// ErrNotFound wraps a repository miss (e.g. gorm.ErrRecordNotFound) into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists wraps a uniqueness violation into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the generic conflict factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation flags an operation the current state does not allow.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- auth ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"auth",
	"Password must be at least 6 characters",
	http.StatusBadRequest,
)

// --- accounts ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"account",
	"Email already exists",
	http.StatusConflict,
)

// --- catalog ---

var ErrCategoryNameTaken = New(
	CodeAlreadyExists,
	"catalog",
	"Category with this name already exists",
	http.StatusConflict,
)

var ErrGamePriceUnavailable = New(
	CodeInvalidOperation,
	"catalog",
	"Game has no price for this country",
	http.StatusBadRequest,
)

// --- cart & purchases ---

var ErrGameAlreadyOwned = New(
	CodeConflict,
	"cart",
	"Game is already owned by this user",
	http.StatusConflict,
)

var ErrGameFreeToPlay = New(
	CodeInvalidOperation,
	"cart",
	"Free-to-play games cannot be added to the cart",
	http.StatusBadRequest,
)

var ErrInvalidQuantity = New(
	CodeValidationFailed,
	"cart",
	"Quantity must be at least 1",
	http.StatusBadRequest,
)

var ErrCartEmpty = New(
	CodeInvalidOperation,
	"cart",
	"Cart is empty",
	http.StatusBadRequest,
)

// --- subscriptions ---

var ErrPricingTierExists = New(
	CodeAlreadyExists,
	"subscription",
	"Pricing tier for this plan, location and duration already exists",
	http.StatusConflict,
)

var ErrSubscriptionCancelled = New(
	CodeInvalidOperation,
	"subscription",
	"Subscription is already cancelled",
	http.StatusBadRequest,
)
