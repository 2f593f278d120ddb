package forms

import "sort"

// Rule catalog names.
const (
	RuleRequired = "required"
	RuleEmail    = "email"
	RulePattern  = "pattern"
	RuleLength   = "length"
	RuleRange    = "range"
)

// ruleStage says whether a rule inspects the raw input string (before
// conversion) or the converted model value.
type ruleStage int

const (
	stageRaw ruleStage = iota
	stageModel
)

// ruleSpec describes one catalog entry: where it runs, what field types it
// applies to, and which parameters it needs.
type ruleSpec struct {
	stage        ruleStage
	appliesTo    map[FieldType]bool
	needsPattern bool
	needsBounds  bool
}

func anyType() map[FieldType]bool {
	return map[FieldType]bool{TypeString: true, TypeInt: true, TypeFloat: true, TypeDate: true}
}

var knownRules = map[string]ruleSpec{
	RuleRequired: {stage: stageRaw, appliesTo: anyType()},
	RuleEmail:    {stage: stageRaw, appliesTo: map[FieldType]bool{TypeString: true}},
	RulePattern:  {stage: stageRaw, appliesTo: map[FieldType]bool{TypeString: true}, needsPattern: true},
	RuleLength:   {stage: stageRaw, appliesTo: map[FieldType]bool{TypeString: true}, needsBounds: true},
	RuleRange:    {stage: stageModel, appliesTo: map[FieldType]bool{TypeInt: true, TypeFloat: true}, needsBounds: true},
}

// ruleNames returns the catalog names in stable order.
func ruleNames() []string {
	names := make([]string, 0, len(knownRules))
	for name := range knownRules {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// fieldTypeNames returns the supported field types in stable order.
func fieldTypeNames() []string {
	return []string{string(TypeDate), string(TypeFloat), string(TypeInt), string(TypeString)}
}
