package result_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formbind/result"
)

func ExampleResult() {
	ok := result.Ok(42)
	fmt.Println(ok.IsError(), ok.Value())

	bad := result.Error[int]("not a number")
	msg, isErr := bad.Message()
	fmt.Println(bad.IsError(), isErr, msg)

	doubled := result.Map(ok, func(v int) int { return v * 2 })
	fmt.Println(doubled.Value())

	parsed := result.FlatMap(result.Ok("19x9"), func(s string) result.Result[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return result.Error[int]("malformed")
		}
		return result.Ok(n)
	})
	msg, _ = parsed.Message()
	fmt.Println(msg)

	// Output:
	// false 42
	// true true not a number
	// 84
	// malformed
}

func TestValuePanicsOnError(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "Value on an error result must panic")
		assert.Equal(t, result.ErrNoValue, r)
	}()

	result.Error[string]("boom").Value()
}

func TestMessageAbsentOnOk(t *testing.T) {
	msg, isErr := result.Ok("fine").Message()
	assert.False(t, isErr)
	assert.Empty(t, msg)
}

func TestShortCircuit(t *testing.T) {
	calls := 0
	r := result.FlatMap(result.Error[int]("halt"), func(int) result.Result[string] {
		calls++
		return result.Ok("never")
	})

	require.True(t, r.IsError())
	msg, _ := r.Message()
	assert.Equal(t, "halt", msg)
	assert.Zero(t, calls, "transform must not observe a failed value")

	u := result.Map(result.Error[int]("halt"), func(v int) int { return v })
	assert.True(t, u.IsError())
}
