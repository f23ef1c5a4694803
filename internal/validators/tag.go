package validators

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// TagValidator checks a value with a go-playground/validator tag such as
// "required,email" or "min=1,max=10".
type TagValidator struct {
	tag      string
	validate *validator.Validate
}

// NewTagValidator returns a validator for the given rule tag.
func NewTagValidator(tag string) *TagValidator {
	return &TagValidator{tag: tag, validate: validator.New()}
}

func (v *TagValidator) Validate(value any) (any, error) {
	if err := v.validate.Var(value, v.tag); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidValue, v.tag, err)
	}
	return value, nil
}

// Tag returns the rule tag.
func (v *TagValidator) Tag() string {
	return v.tag
}
