package dto

import (
	"net/url"
	"reflect"
	"strings"
	"unicode"

	"localpay-gateway/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}

// Register installs the custom validations on v.
func Register(v *validator.Validate) {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	_ = v.RegisterValidation("safe_url", validateSafeURL)
	_ = v.RegisterValidation("amount_gt0", validateAmountGT0)
	_ = v.RegisterValidation("strategy", validateStrategy)
}

// decimalValue lets tags see a decimal as its string form.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

// validateSafeURL accepts only http/https URLs.
func validateSafeURL(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return true // optional field; use "required" tag to enforce presence
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

func validateAmountGT0(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && d.IsPositive()
}

func validateStrategy(fl validator.FieldLevel) bool {
	_, ok := domain.ParseStrategy(fl.Field().String())
	return ok
}

// SanitizeStruct trims whitespace and drops control characters from every
// exported string field (including *string) of a struct pointer. Fields
// tagged `sanitize:"-"` are only trimmed. Values are stored as given;
// escaping belongs to whoever renders them.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		clean := sanitize
		if rt.Field(i).Tag.Get("sanitize") == "-" {
			clean = strings.TrimSpace
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(clean(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			switch elem.Kind() {
			case reflect.String:
				elem.SetString(clean(elem.String()))
			case reflect.Struct:
				sanitizeFields(elem)
			}
		}
	}
}

func sanitize(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s))
}
