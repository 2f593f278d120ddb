package fieldtest_test

import (
	"fmt"

	"formbind/fieldtest"
)

func ExampleField() {
	field := fieldtest.New("initial")

	changes := 0
	field.OnValueChange(func() { changes++ })

	field.SetValue("edited")
	fmt.Println(field.Value(), changes)

	// Output:
	// edited 1
}

func ExampleSource() {
	source := fieldtest.NewSource()

	email := source.Get("email")
	email.SetValue("a@acme.com")

	same := source.Get("email")
	fmt.Println(same.Value(), source.Get("other").Value() == "", len(source.Names()))

	// Output:
	// a@acme.com true 2
}
