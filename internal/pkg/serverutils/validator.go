// FILE: internal/pkg/serverutils/validator.go
package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct checks a request DTO against its validate tags and folds
// violations into one readable error.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	msgs := make([]string, len(errs))
	for i, fieldErr := range errs {
		msgs[i] = fmt.Sprintf("field %s failed on %s", fieldErr.Field(), fieldErr.Tag())
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}
