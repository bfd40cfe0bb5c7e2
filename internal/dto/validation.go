package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/SscSPs/finsight/internal/apperrors"
	"github.com/SscSPs/finsight/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom binding tags used by the request
// payloads in this package and reports field names by their json/form keys.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(wireFieldName)

	if err := v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return domain.Category(fl.Field().String()).IsValid()
	}); err != nil {
		return fmt.Errorf("failed to register category validator: %w", err)
	}
	if err := v.RegisterValidation("budgetcategory", func(fl validator.FieldLevel) bool {
		return domain.Category(fl.Field().String()).IsBudgetable()
	}); err != nil {
		return fmt.Errorf("failed to register budgetcategory validator: %w", err)
	}
	return nil
}

func wireFieldName(fld reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// BindingError converts an error returned by gin's ShouldBind* family into a
// field-level ValidationError.
func BindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]apperrors.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, apperrors.FieldError{Field: fe.Field(), Message: describeFieldError(fe)})
		}
		return apperrors.NewValidationError(fields...)
	}
	return apperrors.NewValidationError(apperrors.FieldError{Field: "request", Message: err.Error()})
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "category":
		return "must be one of: " + joinCategories(domain.Categories())
	case "budgetcategory":
		var cats []domain.Category
		for _, c := range domain.Categories() {
			if c.IsBudgetable() {
				cats = append(cats, c)
			}
		}
		return "must be one of: " + joinCategories(cats)
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func joinCategories(cats []domain.Category) string {
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
