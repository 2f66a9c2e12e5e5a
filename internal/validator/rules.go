package validator

import (
	"log"

	"gamestore_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules adds the domain validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Startup-time misconfiguration, the app must not come up.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-role': valid account role
	mustRegister("is-role", validateRole)

	// 'is-tier-kind': country or region pricing tier
	mustRegister("is-tier-kind", validateTierKind)
}

func validateRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is handled by 'required'
	}
	switch models.Role(value) {
	case models.RoleUser, models.RoleAdmin:
		return true
	default:
		return false
	}
}

func validateTierKind(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.TierKind(value) {
	case models.TierKindCountry, models.TierKindRegion:
		return true
	default:
		return false
	}
}
