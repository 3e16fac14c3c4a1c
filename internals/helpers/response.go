// file: internals/helpers/response.go
package helper

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// NewValidator reports field errors under the form/json name the client sent.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	return v
}

// ValidationErrorsToMap: validator.ValidationErrors → field → tags.
// Error lain (bukan ValidationErrors) dikembalikan di key "_".
func ValidationErrorsToMap(err error) map[string][]string {
	out := map[string][]string{}
	if err == nil {
		return out
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range ve {
		key := fe.Field()
		if ns := fe.Namespace(); strings.Contains(ns, "[") {
			// dive: pakai namespace tanpa nama struct root (subjects[1].marks)
			if i := strings.Index(ns, "."); i >= 0 {
				key = ns[i+1:]
			}
		}
		out[key] = append(out[key], fe.Tag())
	}
	return out
}

// FieldNames returns the keys of a field-error map in sorted order.
func FieldNames(fieldErrors map[string][]string) []string {
	names := make([]string, 0, len(fieldErrors))
	for k := range fieldErrors {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// PlainText sends a text/plain body with the given status.
func PlainText(c *fiber.Ctx, code int, message string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(code).SendString(message)
}
