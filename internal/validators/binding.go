package validators

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	MinServiceDuration = 30
	MaxServiceDuration = 90
)

// serviceDuration accepts whole minutes in [MinServiceDuration, MaxServiceDuration].
func serviceDuration(fl validator.FieldLevel) bool {
	v := fl.Field().Int()
	return v >= MinServiceDuration && v <= MaxServiceDuration
}

// Register installs the custom binding rules on gin's validator.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	return v.RegisterValidation("service_duration", serviceDuration)
}
