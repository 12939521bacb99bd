package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	_ = validate.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		switch strings.ToUpper(strings.TrimSpace(fl.Field().String())) {
		case "ADMIN", "GESTIONNAIRE", "LIVREUR":
			return true
		}
		return false
	})

	_ = validate.RegisterValidation("colis_type", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "STANDARD", "FRAGILE":
			return true
		}
		return false
	})

	_ = validate.RegisterValidation("vehicule_type", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "PETIT_CAMION", "GRAND_CAMION":
			return true
		}
		return false
	})
}

// ValidateStruct runs the validate tags of a request DTO and collapses
// the violations into a single readable error.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			messages := make([]string, 0, len(fieldErrors))
			for _, fe := range fieldErrors {
				messages = append(messages, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("%s", strings.Join(messages, "; "))
		}
		return err
	}
	return nil
}
