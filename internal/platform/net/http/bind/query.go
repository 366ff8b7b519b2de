package bind

import (
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"sync"

	perr "moviesearch/internal/platform/errors"
	pstrings "moviesearch/internal/platform/strings"
)

// queryField is one settable struct field and the parameter that feeds it
type queryField struct {
	index []int
	name  string
}

var queryPlans sync.Map // reflect.Type -> []queryField

// ParseQuery fills T from the URL query using `query:"name"` tags, then validates it.
// Supported field kinds: string, []string (repeatable or comma separated),
// bool, int, float64 and pointers to the scalar kinds (nil when the key is absent).
func ParseQuery[T any](r *http.Request) (T, error) {
	var dst T
	if err := DecodeQuery(r.URL.Query(), &dst); err != nil {
		var zero T
		return zero, err
	}
	if err := Validate(dst); err != nil {
		var zero T
		return zero, err
	}
	return dst, nil
}

// DecodeQuery binds vals into the struct pointed to by dst without validating
func DecodeQuery(vals url.Values, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return perr.Newf(perr.ErrorCodeUnknown, "bind: query target must be a struct pointer, got %T", dst)
	}
	rv = rv.Elem()
	for _, f := range planFor(rv.Type()) {
		raw, ok := vals[f.name]
		if !ok {
			continue
		}
		if err := setField(rv.FieldByIndex(f.index), raw); err != nil {
			return perr.WithField(err, f.name)
		}
	}
	return nil
}

func planFor(t reflect.Type) []queryField {
	if p, ok := queryPlans.Load(t); ok {
		return p.([]queryField)
	}
	var plan []queryField
	for i := range t.NumField() {
		sf := t.Field(i)
		name, _, _ := strings.Cut(sf.Tag.Get("query"), ",")
		if name == "" || name == "-" || !sf.IsExported() {
			continue
		}
		plan = append(plan, queryField{index: sf.Index, name: name})
	}
	queryPlans.Store(t, plan)
	return plan
}

func setField(fv reflect.Value, raw []string) error {
	if fv.Kind() == reflect.Slice && fv.Type().Elem().Kind() == reflect.String {
		fv.Set(reflect.ValueOf(pstrings.SplitCSV(raw...)))
		return nil
	}
	if fv.Kind() == reflect.String {
		fv.SetString(raw[len(raw)-1]) // search text keeps its spaces
		return nil
	}
	s := strings.TrimSpace(raw[len(raw)-1])
	if fv.Kind() == reflect.Pointer {
		if s == "" {
			return nil // "?imdb_min=" is the same as leaving it out
		}
		p := reflect.New(fv.Type().Elem())
		if err := setScalar(p.Elem(), s); err != nil {
			return err
		}
		fv.Set(p)
		return nil
	}
	return setScalar(fv, s)
}

func setScalar(fv reflect.Value, s string) error {
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(s)
	case reflect.Bool:
		if s == "" {
			fv.SetBool(true)
			return nil
		}
		b, err := strconv.ParseBool(s)
		if err != nil {
			return perr.Validationf("must be true or false")
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int64, reflect.Int32:
		n, err := strconv.ParseInt(s, 10, fv.Type().Bits())
		if err != nil {
			return perr.Validationf("must be an integer")
		}
		fv.SetInt(n)
	case reflect.Float64, reflect.Float32:
		f, err := strconv.ParseFloat(s, fv.Type().Bits())
		if err != nil {
			return perr.Validationf("must be a number")
		}
		fv.SetFloat(f)
	default:
		return perr.Newf(perr.ErrorCodeUnknown, "bind: unsupported query field kind %s", fv.Kind())
	}
	return nil
}
