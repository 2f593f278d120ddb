package forms

import "time"

// Document is the map-backed business object a built form binds to,
// keyed by field name. Values hold the converted model types.
type Document map[string]any

func NewDocument() Document {
	return make(Document)
}

// property returns typed accessors for one document key. A missing or
// differently-typed value reads as the zero value.
func property[T any](name string) (get func(*Document) T, set func(*Document, T)) {
	get = func(d *Document) T {
		v, _ := (*d)[name].(T)
		return v
	}
	set = func(d *Document, v T) {
		(*d)[name] = v
	}

	return get, set
}

// Int reads an int property.
func (d Document) Int(name string) int {
	v, _ := d[name].(int)
	return v
}

// Float reads a float property.
func (d Document) Float(name string) float64 {
	v, _ := d[name].(float64)
	return v
}

// String reads a string property.
func (d Document) String(name string) string {
	v, _ := d[name].(string)
	return v
}

// Date reads a time property.
func (d Document) Date(name string) time.Time {
	v, _ := d[name].(time.Time)
	return v
}
