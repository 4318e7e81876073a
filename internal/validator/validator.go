package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/daveylupes/womantech/internal/models"
)

// Validator wraps go-playground/validator with the marketplace's custom
// rules. One instance is created in main and shared by services and
// handlers.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	validate := validator.New()

	v := &Validator{validate: validate}
	v.registerRules()

	return v
}

// Validate runs struct validation and converts failures into
// ValidationErrors. A nil return means the value passed.
func (v *Validator) Validate(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		verrs := ToValidationErrors(err)
		if len(verrs) > 0 {
			return verrs
		}
		return err
	}
	return nil
}

func (v *Validator) registerRules() {
	// Report field names as they appear on the wire.
	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Expose decimal.Decimal to numeric rules (min=0 etc).
	v.validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Role must be one of the closed enumeration.
	v.validate.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		return models.UserRole(fl.Field().String()).Valid()
	})

	// Subscription tier enumeration.
	v.validate.RegisterValidation("subscription_tier", func(fl validator.FieldLevel) bool {
		return models.SubscriptionTier(fl.Field().String()).Valid()
	})

	// Wallet addresses are opaque externally supplied keys; require a
	// non-blank printable token without whitespace.
	v.validate.RegisterValidation("wallet_address", func(fl validator.FieldLevel) bool {
		addr := fl.Field().String()
		if strings.TrimSpace(addr) == "" || len(addr) > 255 {
			return false
		}
		return !strings.ContainsAny(addr, " \t\r\n")
	})
}

// ===== VALIDATION ERRORS =====

type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule,omitempty"`
}

type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e))
	for _, ve := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", ve.Field, ve.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ToValidationErrors converts go-playground field errors into the
// structured form surfaced in 400 responses.
func ToValidationErrors(err error) ValidationErrors {
	var out ValidationErrors

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return out
	}

	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: messageForTag(fe),
			Value:   fe.Value(),
			Rule:    fe.Tag(),
		})
	}
	return out
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "user_role":
		return "must be one of MENTOR, MENTEE, ADMIN"
	case "subscription_tier":
		return "must be one of FREE, BASIC, PREMIUM, ENTERPRISE"
	case "wallet_address":
		return "must be a non-empty address without whitespace"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed rule %q", fe.Tag())
	}
}
