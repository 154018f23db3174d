package validation

// FieldSpec is the validation contract for one form field. Rules run in
// declared order and the first failure becomes the field's error. Optional
// fields skip their rules entirely while blank, so an untouched optional
// field never fails. Rules only see the siblings named in DependsOn.
type FieldSpec struct {
	Name      string
	Optional  bool
	Rules     []Rule
	DependsOn []string
}

// Result maps field name to error message; absence means the field is
// valid.
type Result map[string]string

// Valid reports whether the whole form passed.
func (r Result) Valid() bool {
	return len(r) == 0
}

// Validate runs every spec against values and collects the first failing
// rule's message per field. It never mutates its inputs.
func Validate(values map[string]string, specs []FieldSpec) Result {
	result := Result{}

	for _, spec := range specs {
		value := values[spec.Name]

		if spec.Optional && value == "" {
			continue
		}

		siblings := resolveSiblings(values, spec.DependsOn)

		for _, rule := range spec.Rules {
			if msg := rule(value, siblings); msg != "" {
				result[spec.Name] = msg
				break
			}
		}
	}

	return result
}

func resolveSiblings(values map[string]string, dependsOn []string) map[string]string {
	siblings := make(map[string]string, len(dependsOn))
	for _, name := range dependsOn {
		siblings[name] = values[name]
	}
	return siblings
}
