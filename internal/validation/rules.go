package validation

import (
	"log"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	"enrollform/internal/models"
)

// now is a test seam: birth-date rules compare against this clock so
// tests can pin "today".
var now = time.Now

// registerRules installs the custom validation tags. A registration
// failure is a startup-time programming error, so it aborts.
func registerRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register validation tag %q: %v", tag, err)
		}
	}

	mustRegister("strongpassword", validateStrongPassword)
	mustRegister("notfuture", validateNotFuture)
	mustRegister("adult", validateAdult)
	mustRegister("gender", validateGender)
	mustRegister("techarea", validateTechArea)
	mustRegister("degree", validateDegree)
	mustRegister("accepted", validateAccepted)
}

// validateStrongPassword requires at least one upper-case letter, one
// lower-case letter and one digit. Length is checked by the independent
// min rule so both violations can be detected on the same value.
func validateStrongPassword(fl validator.FieldLevel) bool {
	var upper, lower, digit bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

// validateNotFuture rejects birth dates strictly after today. Empty and
// unparseable values pass here; required and adult report those.
func validateNotFuture(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	birth, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return true
	}
	today := now()
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return !birth.After(todayDate)
}

// validateAdult requires an age of at least 18 whole years, with exact
// birthday semantics: the year difference is decremented when today's
// month/day precedes the birth month/day.
func validateAdult(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	birth, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return false
	}

	today := now()
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() ||
		(today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age >= 18
}

// validateGender fails on anything outside the closed set, including
// the empty value: an unselected choice is not a valid choice.
func validateGender(fl validator.FieldLevel) bool {
	return models.Gender(fl.Field().String()).Valid()
}

func validateTechArea(fl validator.FieldLevel) bool {
	return models.ValidTechArea(fl.Field().String())
}

// validateDegree defers the empty value to required.
func validateDegree(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.Degree(value).Valid()
}

func validateAccepted(fl validator.FieldLevel) bool {
	return fl.Field().Bool()
}
