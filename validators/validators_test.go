package validators_test

import (
	"testing"

	"golang.org/x/text/language"

	"formbind/binding"
	"formbind/validators"
)

var ctx = binding.NewContext(language.English)

func TestEmail(t *testing.T) {
	v := validators.Email("bad email")

	tests := []struct {
		input string
		valid bool
	}{
		{"a@acme.com", true},
		{"first.last@sub.example.org", true},
		{"not-an-email", false},
		{"@acme.com", false},
		{"a@acme", false},
		{"a b@acme.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := v.Validate(tt.input, ctx)
			if res.IsError() == tt.valid {
				t.Errorf("Email(%q): valid=%v, want %v", tt.input, !res.IsError(), tt.valid)
			}

			// A passing validator must echo its input unchanged.
			if !res.IsError() && res.Value() != tt.input {
				t.Errorf("Email(%q) transformed the value to %q", tt.input, res.Value())
			}
		})
	}
}

func TestNotEmpty(t *testing.T) {
	v := validators.NotEmpty("required")

	for input, valid := range map[string]bool{
		"x":    true,
		" x ":  true,
		"":     false,
		"   ":  false,
		"\t\n": false,
	} {
		res := v.Validate(input, ctx)
		if res.IsError() == valid {
			t.Errorf("NotEmpty(%q): valid=%v, want %v", input, !res.IsError(), valid)
		}
	}
}

func TestStringLength(t *testing.T) {
	v := validators.StringLength(2, 4, "bad length")

	tests := []struct {
		input string
		valid bool
	}{
		{"ab", true},
		{"abcd", true},
		{"a", false},
		{"abcde", false},
		{"äöü", true}, // runes, not bytes
	}

	for _, tt := range tests {
		res := v.Validate(tt.input, ctx)
		if res.IsError() == tt.valid {
			t.Errorf("StringLength(%q): valid=%v, want %v", tt.input, !res.IsError(), tt.valid)
		}
	}
}

func TestRange(t *testing.T) {
	v := validators.Range(0, 150, "out of range")

	for input, valid := range map[int]bool{
		0:   true,
		150: true,
		75:  true,
		-1:  false,
		151: false,
	} {
		res := v.Validate(input, ctx)
		if res.IsError() == valid {
			t.Errorf("Range(%d): valid=%v, want %v", input, !res.IsError(), valid)
		}

		if !res.IsError() && res.Value() != input {
			t.Errorf("Range(%d) transformed the value to %d", input, res.Value())
		}
	}
}

func TestDynamicMessage(t *testing.T) {
	v := validators.Min(18)

	res := v.Validate(16, ctx)
	if !res.IsError() {
		t.Fatal("expected 16 to fail Min(18)")
	}

	msg, _ := res.Message()
	want := "value 16 is below minimum 18"
	if msg != want {
		t.Errorf("message = %q, want %q", msg, want)
	}
}

func TestAllFailFast(t *testing.T) {
	secondRan := false

	first := validators.New(func(string) bool { return false }, "first says no")
	second := validators.New(func(string) bool {
		secondRan = true
		return true
	}, "unused")

	res := validators.All(first, second).Validate("x", ctx)
	if !res.IsError() {
		t.Fatal("composite must fail when a child fails")
	}

	msg, _ := res.Message()
	if msg != "first says no" {
		t.Errorf("message = %q, want the first failure", msg)
	}

	if secondRan {
		t.Error("children after the first failure must not run")
	}
}

func TestAllPassEchoesInput(t *testing.T) {
	v := validators.All(
		validators.NotEmpty("required"),
		validators.StringLength(1, 10, "bad length"),
	)

	res := v.Validate("hello", ctx)
	if res.IsError() {
		t.Fatal("expected pass")
	}

	if res.Value() != "hello" {
		t.Errorf("composite transformed the value to %q", res.Value())
	}
}
