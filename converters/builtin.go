package converters

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"formbind/binding"
	"formbind/result"
)

// Trim is a string-to-string converter that trims surrounding whitespace on
// the model direction and presents values unchanged.
func Trim() binding.Converter[string, string] {
	return FromFuncs(
		func(s string, _ binding.Context) result.Result[string] {
			return result.Ok(strings.TrimSpace(s))
		},
		func(s string, _ binding.Context) string { return s },
	)
}

// StringToInt parses decimal integers, rejecting malformed input with the
// fallback message.
func StringToInt(fallback string) binding.Converter[string, int] {
	return FromFuncs(
		func(s string, _ binding.Context) result.Result[int] {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return result.Error[int](fallback)
			}

			return result.Ok(n)
		},
		func(n int, _ binding.Context) string { return strconv.Itoa(n) },
	)
}

// commaLocales lists languages whose decimal separator is the comma; the
// matcher lets regional variants (de-AT, fr-CA, ...) match their base.
var commaLocales = language.NewMatcher([]language.Tag{
	language.German,
	language.French,
	language.Spanish,
	language.Italian,
	language.Portuguese,
	language.Dutch,
	language.Polish,
	language.Russian,
	language.Swedish,
	language.Turkish,
})

func usesCommaDecimal(tag language.Tag) bool {
	if tag == language.Und {
		return false
	}

	_, _, conf := commaLocales.Match(tag)

	return conf >= language.High
}

// StringToFloat parses floating-point numbers, honouring the context
// locale's decimal separator, and presents them back the same way.
func StringToFloat(fallback string) binding.Converter[string, float64] {
	return FromFuncs(
		func(s string, ctx binding.Context) result.Result[float64] {
			s = strings.TrimSpace(s)
			if usesCommaDecimal(ctx.Locale()) {
				s = strings.ReplaceAll(s, ",", ".")
			}

			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return result.Error[float64](fallback)
			}

			return result.Ok(f)
		},
		func(f float64, ctx binding.Context) string {
			s := strconv.FormatFloat(f, 'f', -1, 64)
			if usesCommaDecimal(ctx.Locale()) {
				s = strings.ReplaceAll(s, ".", ",")
			}

			return s
		},
	)
}

// DefaultDateLayout is used by StringToDate when no layout is given.
const DefaultDateLayout = "2006-01-02"

// StringToDate parses dates with the given layout, rejecting malformed
// input with the fallback message.
func StringToDate(layout, fallback string) binding.Converter[string, time.Time] {
	if layout == "" {
		layout = DefaultDateLayout
	}

	return FromFuncs(
		func(s string, _ binding.Context) result.Result[time.Time] {
			t, err := time.Parse(layout, strings.TrimSpace(s))
			if err != nil {
				return result.Error[time.Time](fallback)
			}

			return result.Ok(t)
		},
		func(t time.Time, _ binding.Context) string { return t.Format(layout) },
	)
}
