package forms

import (
	"fmt"
	"math"
	"time"

	"formbind/binding"
	"formbind/converters"
	"formbind/validators"
)

// FieldSource hands out the input fields a built form binds to.
type FieldSource interface {
	StringField(name string) binding.Field[string]
}

// BuiltForm is an assembled binder plus its bindings by field name.
type BuiltForm struct {
	Binder   *binding.Binder[Document]
	Bindings map[string]*binding.Binding[Document]
}

// Build validates the definition and assembles a binder over a Document.
// Each field's chain is: optional trim, raw-input rules in declared order,
// the type conversion, then model rules.
func Build(f *Form, fields FieldSource) (*BuiltForm, error) {
	if diags := Validate(f); diags.HasErrors() {
		return nil, diags.Error()
	}

	binder := binding.NewBinder[Document]()
	built := &BuiltForm{
		Binder:   binder,
		Bindings: make(map[string]*binding.Binding[Document], len(f.Fields)),
	}

	for i := range f.Fields {
		fd := &f.Fields[i]
		built.Bindings[fd.Name] = buildField(binder, fd, fields.StringField(fd.Name))
	}

	return built, nil
}

func buildField(
	binder *binding.Binder[Document],
	fd *FieldDef,
	field binding.Field[string],
) *binding.Binding[Document] {
	bb := binding.ForField(binder, field).WithLabel(fd.Name)

	if fd.Trim {
		bb = binding.WithConverter(bb, converters.Trim())
	}

	for i := range fd.Rules {
		r := &fd.Rules[i]
		if knownRules[r.Rule].stage == stageRaw {
			bb = bb.WithValidator(rawRule(r))
		}
	}

	switch fd.Type {
	case TypeInt:
		ib := binding.WithConverter(bb, converters.StringToInt(fallbackFor(fd)))
		for i := range fd.Rules {
			r := &fd.Rules[i]
			if r.Rule == RuleRange {
				ib = ib.WithValidator(intRange(r))
			}
		}
		get, set := property[int](fd.Name)

		return ib.Bind(get, set)

	case TypeFloat:
		fb := binding.WithConverter(bb, converters.StringToFloat(fallbackFor(fd)))
		for i := range fd.Rules {
			r := &fd.Rules[i]
			if r.Rule == RuleRange {
				fb = fb.WithValidator(floatRange(r))
			}
		}
		get, set := property[float64](fd.Name)

		return fb.Bind(get, set)

	case TypeDate:
		db := binding.WithConverter(bb, converters.StringToDate(fd.Layout, fallbackFor(fd)))
		get, set := property[time.Time](fd.Name)

		return db.Bind(get, set)

	default: // TypeString, already validated
		get, set := property[string](fd.Name)

		return bb.Bind(get, set)
	}
}

// fallbackFor picks the conversion-failure message for a field.
func fallbackFor(fd *FieldDef) string {
	if fd.Fallback != "" {
		return fd.Fallback
	}

	switch fd.Type {
	case TypeInt:
		return "must be a whole number"
	case TypeFloat:
		return "must be a number"
	case TypeDate:
		layout := fd.Layout
		if layout == "" {
			layout = converters.DefaultDateLayout
		}

		return "must be a date like " + layout
	default:
		return ""
	}
}

// rawRule builds the validator for a raw-input-stage rule. The definition
// already passed Validate, so parameters are present and well-formed.
func rawRule(r *RuleDef) binding.Validator[string] {
	switch r.Rule {
	case RuleRequired:
		return validators.NotEmpty(messageOr(r, "must not be empty"))
	case RuleEmail:
		return validators.Email(messageOr(r, "does not look like a valid email address"))
	case RulePattern:
		return validators.Pattern(r.Pattern, messageOr(r, "has an invalid format"))
	case RuleLength:
		min, max := intBounds(r, 0, math.MaxInt)
		return validators.StringLength(min, max,
			messageOr(r, boundsMessage(r, min, max)+" characters"))
	default:
		panic(fmt.Errorf("rule %q is not a raw-input rule", r.Rule))
	}
}

func intRange(r *RuleDef) binding.Validator[int] {
	min, max := intBounds(r, math.MinInt, math.MaxInt)
	return validators.Range(min, max, messageOr(r, boundsMessage(r, min, max)))
}

func floatRange(r *RuleDef) binding.Validator[float64] {
	min, max := floatBounds(r)
	return validators.Range(min, max, messageOr(r, boundsMessage(r, min, max)))
}

// boundsMessage phrases a default message from the declared bounds only, so
// an open side never surfaces its sentinel value. Validate already rejected
// rules with neither bound.
func boundsMessage[T any](r *RuleDef, min, max T) string {
	switch {
	case r.Min != nil && r.Max != nil:
		return fmt.Sprintf("must be between %v and %v", min, max)
	case r.Min != nil:
		return fmt.Sprintf("must be at least %v", min)
	default:
		return fmt.Sprintf("must be at most %v", max)
	}
}

func intBounds(r *RuleDef, lo, hi int) (int, int) {
	if r.Min != nil {
		lo = int(*r.Min)
	}
	if r.Max != nil {
		hi = int(*r.Max)
	}

	return lo, hi
}

func floatBounds(r *RuleDef) (float64, float64) {
	lo, hi := -math.MaxFloat64, math.MaxFloat64
	if r.Min != nil {
		lo = *r.Min
	}
	if r.Max != nil {
		hi = *r.Max
	}

	return lo, hi
}

func messageOr(r *RuleDef, fallback string) string {
	if r.Message != "" {
		return r.Message
	}

	return fallback
}
