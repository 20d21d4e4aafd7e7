package utils

import (
	"medibook-service/internal/pkg/constvars"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("user_type", validateUserType)
	validate.RegisterValidation("consultation_type", validateConsultationType)
	validate.RegisterValidation("booking_date", validateBookingDate)
	validate.RegisterValidation("booking_time", validateBookingTime)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validateUserType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.RolePatient || value == constvars.RolePractitioner
}

func validateConsultationType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.ConsultationTypeVirtual || value == constvars.ConsultationTypeInPerson
}

func validateBookingDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.BookingDateLayout, fl.Field().String())
	return err == nil
}

func validateBookingTime(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.BookingTimeLayout, fl.Field().String())
	return err == nil
}
