package config

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
)

const (
	DefaultOutputExt = ".mdx"
	DefaultParallel  = 4

	templatePlaceholder = "{{content}}"
)

// Config holds all transpiler settings. Component tag names, import
// declarations, and the heading-title pattern table are a configuration
// surface; the built-ins apply when the file leaves them unset.
type Config struct {
	OutputExt         string     `koanf:"output_ext"          validate:"omitempty,startswith=."`
	Parallel          int        `koanf:"parallel"            validate:"omitempty,min=1,max=64"`
	Backup            bool       `koanf:"backup"`
	EnhanceCodeTitles bool       `koanf:"enhance_code_titles"`
	Components        Components `koanf:"components"`
	CodeTitles        CodeTitles `koanf:"code_titles"`
	ConfigDir         string     `koanf:"-"`

	titlePatterns []*regexp.Regexp
}

// Components configures custom annotation types: a markup template per
// type (with a single {{content}} placeholder) and the import declaration
// registered when the type is emitted. Import entries for built-in types
// override the default declarations.
type Components struct {
	Custom  map[string]string `koanf:"custom"`
	Imports map[string]string `koanf:"imports"`
}

// CodeTitles configures the heading-derived-title classifier used when
// reverting code-block titles. Patterns replace the built-in table
// entirely when set.
type CodeTitles struct {
	Patterns []string `koanf:"patterns"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		OutputExt:         DefaultOutputExt,
		Parallel:          DefaultParallel,
		Backup:            true,
		EnhanceCodeTitles: true,
	}
}

func (c *Config) ApplyDefaults() {
	if c.OutputExt == "" {
		c.OutputExt = DefaultOutputExt
	}
	if c.Parallel == 0 {
		c.Parallel = DefaultParallel
	}
}

func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			return mapValidationError(validationErrors[0])
		}

		return oops.
			Code("CONFIG_INVALID").
			Wrapf(err, "validating config")
	}

	for name, tmpl := range c.Components.Custom {
		if !strings.Contains(tmpl, templatePlaceholder) {
			return oops.
				Code("CONFIG_INVALID").
				With("component", name).
				Hint("Custom component templates must contain a {{content}} placeholder").
				Errorf("template for custom component %q has no {{content}} placeholder", name)
		}
	}

	c.titlePatterns = nil
	for _, pattern := range c.CodeTitles.Patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return oops.
				Code("CONFIG_INVALID").
				With("pattern", pattern).
				Hint("code_titles.patterns entries must be valid Go regular expressions").
				Wrapf(err, "compiling code title pattern %q", pattern)
		}
		c.titlePatterns = append(c.titlePatterns, re)
	}

	return nil
}

func mapValidationError(fe validator.FieldError) error {
	field := strings.ToLower(fe.Field())

	switch field {
	case "outputext":
		return oops.
			Code("CONFIG_INVALID").
			With("field", "output_ext").
			With("value", fe.Value()).
			Hint(`output_ext must start with a dot, e.g. ".mdx"`).
			Errorf("invalid output extension %v", fe.Value())

	case "parallel":
		return oops.
			Code("CONFIG_INVALID").
			With("field", "parallel").
			With("value", fe.Value()).
			Hint("parallel must be between 1 and 64").
			Errorf("invalid parallel value %v", fe.Value())

	default:
		return oops.
			Code("CONFIG_INVALID").
			With("field", field).
			With("tag", fe.Tag()).
			Errorf("validation failed for field %q", field)
	}
}

// TitlePatterns returns the compiled heading-title classification table,
// or nil when the built-in defaults should apply.
func (c *Config) TitlePatterns() []*regexp.Regexp {
	return c.titlePatterns
}
