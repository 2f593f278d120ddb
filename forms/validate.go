package forms

import (
	"fmt"
	"regexp"

	"formbind/internal/diagnostic"
)

// Validate structurally checks a form definition. It accumulates every
// finding instead of stopping at the first, so a definition can be fixed in
// one pass.
func Validate(f *Form) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("form_is_nil", "form definition is nil", "")
		return res
	}

	if len(f.Fields) == 0 {
		res.AddWarning("no_fields", "form defines no fields", "")
	}

	seen := map[string]struct{}{}

	for i := range f.Fields {
		fd := &f.Fields[i]

		if fd.Name == "" {
			res.AddError("missing_field_name", fmt.Sprintf("field #%d has no name", i+1), "")
			continue
		}

		if _, dup := seen[fd.Name]; dup {
			res.AddError("duplicate_field", fmt.Sprintf("field %q declared twice", fd.Name), fd.Name)
			continue
		}
		seen[fd.Name] = struct{}{}

		validateFieldDef(res, fd)
	}

	return res
}

func validateFieldDef(res *diagnostic.Diagnostics, fd *FieldDef) {
	switch fd.Type {
	case TypeString, TypeInt, TypeFloat, TypeDate:
	default:
		res.AddError("unknown_type",
			fmt.Sprintf("unknown field type %q", fd.Type),
			fd.Name,
			suggest(string(fd.Type), fieldTypeNames())...)

		return
	}

	if fd.Layout != "" && fd.Type != TypeDate {
		res.AddWarning("layout_ignored",
			fmt.Sprintf("layout has no effect on a %s field", fd.Type), fd.Name)
	}

	if fd.Fallback != "" && fd.Type == TypeString {
		res.AddWarning("fallback_ignored",
			"fallback has no effect on a string field, nothing converts", fd.Name)
	}

	for i := range fd.Rules {
		validateRuleDef(res, fd, &fd.Rules[i])
	}
}

func validateRuleDef(res *diagnostic.Diagnostics, fd *FieldDef, r *RuleDef) {
	spec, ok := knownRules[r.Rule]
	if !ok {
		res.AddError("unknown_rule",
			fmt.Sprintf("unknown rule %q", r.Rule),
			fd.Name,
			suggest(r.Rule, ruleNames())...)

		return
	}

	if !spec.appliesTo[fd.Type] {
		res.AddError("rule_not_applicable",
			fmt.Sprintf("rule %q does not apply to a %s field", r.Rule, fd.Type),
			fd.Name)

		return
	}

	if spec.needsPattern {
		if r.Pattern == "" {
			res.AddError("missing_pattern",
				fmt.Sprintf("rule %q requires a pattern", r.Rule), fd.Name)
		} else if _, err := regexp.Compile(r.Pattern); err != nil {
			res.AddError("invalid_pattern",
				fmt.Sprintf("rule %q pattern does not compile: %v", r.Rule, err), fd.Name)
		}
	}

	if spec.needsBounds {
		if r.Min == nil && r.Max == nil {
			res.AddError("missing_bounds",
				fmt.Sprintf("rule %q requires min, max, or both", r.Rule), fd.Name)
		} else if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
			res.AddError("inverted_bounds",
				fmt.Sprintf("rule %q has min %v above max %v", r.Rule, *r.Min, *r.Max), fd.Name)
		}
	}

	if !spec.needsPattern && r.Pattern != "" {
		res.AddWarning("pattern_ignored",
			fmt.Sprintf("rule %q ignores its pattern", r.Rule), fd.Name)
	}
}
