package review

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidReview = errors.New("invalid review")

var validate = validator.New()

// Validate checks the overall rating and every present sub-rating are within 1..5.
func Validate(r Review) error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidReview, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fmt.Errorf("%w: out of range: %s", ErrInvalidReview, strings.Join(fields, ", "))
}
