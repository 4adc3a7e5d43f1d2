package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/mod/semver"

	"github.com/alexisbeaulieu97/datebox/internal/dateserial"
	"github.com/alexisbeaulieu97/datebox/internal/datetime"
	dberrors "github.com/alexisbeaulieu97/datebox/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	isoCodec      = dateserial.New(time.UTC)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("iso_date", func(fl validator.FieldLevel) bool {
			return isoCodec.Deserialize(dateserial.String(fl.Field().String())).IsValid()
		})

		_ = v.RegisterValidation("ldml", func(fl validator.FieldLevel) bool {
			return datetime.ValidatePattern(fl.Field().String()) == nil
		})

		_ = v.RegisterValidation("serialization_format", func(fl validator.FieldLevel) bool {
			return validSerializationFormat(fl.Field().String())
		})

		_ = v.RegisterValidation("platform_version", func(fl validator.FieldLevel) bool {
			version := strings.TrimPrefix(strings.TrimSpace(fl.Field().String()), "v")
			return semver.IsValid("v" + version)
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

func validSerializationFormat(format string) bool {
	if dateserial.FormatTag(format) == dateserial.FormatNumber {
		return true
	}
	if !strings.HasPrefix(format, "yyyy") {
		return false
	}
	if !strings.Contains(format, "'") {
		format = strings.Replace(format, "T", "'T'", 1)
	}
	return datetime.ValidatePattern(format) == nil
}

// ValidateConfig performs schema and cross-field validation on an options document.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return dberrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.Min != "" && cfg.Max != "" {
		min := isoCodec.Deserialize(dateserial.String(cfg.Min))
		max := isoCodec.Deserialize(dateserial.String(cfg.Max))
		if max.Time().Before(min.Time()) {
			return dberrors.NewValidationError("max", fmt.Sprintf("max %q is earlier than min %q", cfg.Max, cfg.Min), nil)
		}
	}

	for i, rule := range cfg.Rules {
		for _, other := range cfg.Rules[:i] {
			if rule == other {
				return dberrors.NewValidationError(fmt.Sprintf("rules[%d]", i), fmt.Sprintf("duplicate rule %q", rule), nil)
			}
		}
	}

	if cfg.hasRule("future") && cfg.hasRule("past") {
		return dberrors.NewValidationError("rules", "future and past cannot both apply", nil)
	}

	return nil
}

func (c *Config) hasRule(name string) bool {
	for _, rule := range c.Rules {
		if rule == name {
			return true
		}
	}
	return false
}

// convertValidationError normalizes validator errors into options validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return dberrors.NewValidationError(field, msg, err)
	}

	return dberrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part[:1])+part[1:])
	}
	return strings.Join(lowered, ".")
}
