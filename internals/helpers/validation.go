package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrors flattens validator errors into the field→messages map
// JsonValidationError emits. Returns nil when err is nil.
func ValidationErrors(err error) map[string][]string {
	if err == nil {
		return nil
	}
	out := map[string][]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field())
			msg := fe.Tag()
			if fe.Param() != "" {
				msg += "=" + fe.Param()
			}
			out[field] = append(out[field], msg)
		}
		return out
	}
	out["_"] = []string{err.Error()}
	return out
}
