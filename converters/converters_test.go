package converters_test

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"formbind/binding"
	"formbind/converters"
	"formbind/result"
)

var enCtx = binding.NewContext(language.English)

func TestStringToInt(t *testing.T) {
	conv := converters.StringToInt("Must enter a number")

	res := conv.ToModel("1990", enCtx)
	require.False(t, res.IsError())
	assert.Equal(t, 1990, res.Value())

	res = conv.ToModel(" 42 ", enCtx)
	assert.Equal(t, 42, res.Value())

	res = conv.ToModel("19x9", enCtx)
	require.True(t, res.IsError())
	msg, _ := res.Message()
	assert.Equal(t, "Must enter a number", msg)

	assert.Equal(t, "1990", conv.ToPresentation(1990, enCtx))
}

func TestStringToFloatLocaleDecimal(t *testing.T) {
	conv := converters.StringToFloat("not a number")
	deCtx := binding.NewContext(language.MustParse("de-AT"))

	res := conv.ToModel("3,14", deCtx)
	require.False(t, res.IsError(), "comma decimal must parse under a German locale")
	assert.InDelta(t, 3.14, res.Value(), 1e-9)

	assert.Equal(t, "3,14", conv.ToPresentation(3.14, deCtx))

	res = conv.ToModel("3.14", enCtx)
	require.False(t, res.IsError())
	assert.Equal(t, "3.14", conv.ToPresentation(3.14, enCtx))

	res = conv.ToModel("abc", enCtx)
	assert.True(t, res.IsError())
}

func TestStringToDateRoundTrip(t *testing.T) {
	conv := converters.StringToDate("", "Enter a date")

	res := conv.ToModel("2024-01-10", enCtx)
	require.False(t, res.IsError())
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), res.Value())
	assert.Equal(t, "2024-01-10", conv.ToPresentation(res.Value(), enCtx))

	res = conv.ToModel("10.01.2024", enCtx)
	require.True(t, res.IsError())
	msg, _ := res.Message()
	assert.Equal(t, "Enter a date", msg)
}

func TestFallibleAdapter(t *testing.T) {
	conv := converters.Fallible(strconv.Atoi, strconv.Itoa, "")

	res := conv.ToModel("7", enCtx)
	assert.Equal(t, 7, res.Value())

	// Without a fallback the underlying error text is exposed.
	res = conv.ToModel("x", enCtx)
	require.True(t, res.IsError())
	msg, _ := res.Message()
	assert.Contains(t, msg, "invalid syntax")

	withFallback := converters.Fallible(strconv.Atoi, strconv.Itoa, "numbers only")
	res = withFallback.ToModel("x", enCtx)
	msg, _ = res.Message()
	assert.Equal(t, "numbers only", msg)
}

func TestCheckedAdapter(t *testing.T) {
	parse := func(s string) (rune, bool) {
		r := []rune(s)
		if len(r) != 1 {
			return 0, false
		}
		return r[0], true
	}

	conv := converters.Checked(parse, func(r rune) string { return string(r) }, "one character only")

	res := conv.ToModel("a", enCtx)
	assert.Equal(t, 'a', res.Value())

	res = conv.ToModel("abc", enCtx)
	require.True(t, res.IsError())
	msg, _ := res.Message()
	assert.Equal(t, "one character only", msg)
}

// panicky fails with a panic instead of a result, standing in for a
// user-written transform with an unchecked fault.
func panicky(s string, _ binding.Context) result.Result[int] {
	if s == "boom" {
		panic(errors.New("internal parser state corrupt"))
	}

	return result.Ok(len(s))
}

func TestModelFaultSubstitution(t *testing.T) {
	conv := converters.FromFuncs(panicky, func(n int, _ binding.Context) string { return "" })

	// No fallback configured: the raw fault text is used.
	res := conv.ToModel("boom", enCtx)
	require.True(t, res.IsError())
	msg, _ := res.Message()
	assert.Equal(t, "internal parser state corrupt", msg)

	// A configured fallback hides the internal text.
	wrapped := converters.Recover(conv, "Value could not be processed")
	res = wrapped.ToModel("boom", enCtx)
	require.True(t, res.IsError())
	msg, _ = res.Message()
	assert.Equal(t, "Value could not be processed", msg)

	res = wrapped.ToModel("ok", enCtx)
	assert.Equal(t, 2, res.Value())
}

func TestPresentationFaultPropagates(t *testing.T) {
	conv := converters.FromFuncs(
		func(s string, _ binding.Context) result.Result[int] { return result.Ok(len(s)) },
		func(n int, _ binding.Context) string { panic("model diverged from its validity invariant") },
	)

	assert.Panics(t, func() {
		conv.ToPresentation(1, enCtx)
	}, "presentation faults are logic defects and must not be swallowed")
}

func TestTrim(t *testing.T) {
	conv := converters.Trim()

	res := conv.ToModel("  padded  ", enCtx)
	assert.Equal(t, "padded", res.Value())
	assert.Equal(t, "padded", conv.ToPresentation("padded", enCtx))
}
