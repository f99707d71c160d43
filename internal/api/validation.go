package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/guttosm/tickercast/internal/domain/models"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the custom binding tags to gin's validator engine.
// Safe to call more than once; every call reports the outcome of the first.
func RegisterValidators() error {
	registerOnce.Do(func() {
		registerErr = registerOn(binding.Validator.Engine())
	})
	return registerErr
}

func registerOn(engine any) error {
	v, ok := engine.(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", engine)
	}
	return v.RegisterValidation("period", validPeriod)
}

// validPeriod accepts the supported history periods. Empty values are left to
// the defaults.
func validPeriod(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || models.Period(s).Valid()
}
