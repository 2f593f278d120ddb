package binding

import "golang.org/x/text/language"

// Context is the opaque bag handed unchanged to every validator and
// converter invocation. It carries a locale hint plus arbitrary keyed
// values; pipeline code never consults ambient state instead.
type Context struct {
	locale language.Tag
	values map[string]any
}

func defaultLocale() language.Tag { return language.Und }

// NewContext returns a context carrying the given locale hint.
func NewContext(locale language.Tag) Context {
	return Context{locale: locale}
}

func (c Context) Locale() language.Tag { return c.locale }

// WithValue returns a copy of the context with key set to value.
func (c Context) WithValue(key string, value any) Context {
	next := Context{locale: c.locale, values: make(map[string]any, len(c.values)+1)}
	for k, v := range c.values {
		next.values[k] = v
	}
	next.values[key] = value

	return next
}

// Value returns the value stored under key, if any.
func (c Context) Value(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}
