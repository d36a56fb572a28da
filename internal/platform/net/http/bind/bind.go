// Package bind decodes request bodies and validates them with go-playground/validator
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "careerpath/internal/platform/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"
)

// Validator pairs the validator with its english translator
type Validator struct {
	V     *validator.Validate
	Trans ut.Translator
}

var (
	vOnce sync.Once
	vInst *Validator
)

// Get returns the process-wide validator, building it on first use
func Get() *Validator {
	vOnce.Do(func() {
		loc := en.New()
		trans, _ := ut.New(loc, loc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		_ = entrans.RegisterDefaultTranslations(v, trans)
		short(v, trans, "min", "{0} must be at least {1}")
		short(v, trans, "max", "{0} must be at most {1}")

		vInst = &Validator{V: v, Trans: trans}
	})
	return vInst
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

func short(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

// Validate runs struct validation and returns a Validation error naming the first bad field
func Validate(v any) error {
	err := Get().V.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return perr.WithField(perr.Validationf("%s", fe.Translate(Get().Trans)), fe.Field())
	}
	// InvalidValidationError means a non-struct was passed; nothing to check
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		return nil
	}
	return perr.Validationf("%v", err)
}

// JSONOptions tunes ParseJSON
type JSONOptions struct {
	MaxBytes        int64
	DisallowUnknown bool
	AllowEmptyBody  bool
	SkipValidation  bool
}

// Strict rejects unknown fields and empty bodies
var Strict = JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}

// Lenient ignores unknown fields and treats an empty body as {}
var Lenient = JSONOptions{MaxBytes: 1 << 20, AllowEmptyBody: true}

// ParseJSON decodes r's body into T and validates it; the first option wins, default Strict
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero, dst T
	o := Strict
	if len(opts) > 0 {
		o = opts[0]
	}
	if r.Body == nil || r.Body == http.NoBody {
		if o.AllowEmptyBody {
			return dst, validated(dst, o)
		}
		return zero, perr.JSONErrf("request body is empty")
	}
	defer r.Body.Close()

	var body io.Reader = r.Body
	if o.MaxBytes > 0 {
		body = io.LimitReader(r.Body, o.MaxBytes)
	}
	dec := json.NewDecoder(body)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(&dst); err != nil {
		if errors.Is(err, io.EOF) {
			if o.AllowEmptyBody {
				return dst, validated(dst, o)
			}
			return zero, perr.JSONErrf("request body is empty")
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return zero, perr.JSONErrf("invalid JSON: unexpected trailing data")
	}
	if err := validated(dst, o); err != nil {
		return zero, err
	}
	return dst, nil
}

func validated(v any, o JSONOptions) error {
	if o.SkipValidation {
		return nil
	}
	return Validate(v)
}
