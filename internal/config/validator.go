package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/at-ishikawa/randomwords/internal/generator"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("length_tier", isLengthTier); err != nil {
		return nil, nil, fmt.Errorf("failed to register length_tier validation: %w", err)
	}
	if err := validate.RegisterTranslation("length_tier", trans, func(ut ut.Translator) error {
		return ut.Add("length_tier", "{0} must be one of short, medium, long or very_long", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("length_tier", strings.TrimPrefix(fe.Namespace(), "Config."))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register length_tier translation: %w", err)
	}

	return validate, trans, nil
}

// isLengthTier accepts a tier name or any prefix that ParseLengthTier resolves.
func isLengthTier(fl validator.FieldLevel) bool {
	_, err := generator.ParseLengthTier(fl.Field().String())
	return err == nil
}
