package wit

import "fmt"

// ValidationError reports a name collision inside a composite type.
type ValidationError struct {
	Path    string // dotted path from the root, e.g. "fields.user.cases"
	Name    string // the duplicated field or case name
	Message string
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// Validate checks that field and case names are unique within each Record,
// Variant, and Enum in the tree. Producers are expected to guarantee this;
// Validate is the guard at decoding boundaries.
//
// Validate is a pure function with no side effects.
func Validate(t Typ) error {
	return validate(t, "")
}

func validate(t Typ, path string) error {
	switch v := t.(type) {
	case nil, Prim, Unrecognized:
		return nil
	case Enum:
		return checkUnique(v.Cases, path, "enum case")
	case List:
		return validate(v.Elem, join(path, "elem"))
	case Option:
		return validate(v.Some, join(path, "some"))
	case Result:
		if err := validate(v.Ok, join(path, "ok")); err != nil {
			return err
		}
		return validate(v.Err, join(path, "err"))
	case Tuple:
		for i, elem := range v.Elems {
			if err := validate(elem, join(path, fmt.Sprintf("%d", i))); err != nil {
				return err
			}
		}
		return nil
	case Record:
		names := make([]string, len(v.Fields))
		for i, f := range v.Fields {
			names[i] = f.Name
		}
		if err := checkUnique(names, path, "field"); err != nil {
			return err
		}
		for _, f := range v.Fields {
			if err := validate(f.Typ, join(path, f.Name)); err != nil {
				return err
			}
		}
		return nil
	case Variant:
		names := make([]string, len(v.Cases))
		for i, c := range v.Cases {
			names[i] = c.Name
		}
		if err := checkUnique(names, path, "case"); err != nil {
			return err
		}
		for _, c := range v.Cases {
			if c.Typ == nil {
				continue
			}
			if err := validate(c.Typ, join(path, c.Name)); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

func checkUnique(names []string, path, what string) error {
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			return &ValidationError{
				Path:    path,
				Name:    n,
				Message: fmt.Sprintf("duplicate %s name %q", what, n),
			}
		}
		seen[n] = true
	}
	return nil
}

func join(path, elem string) string {
	if path == "" {
		return elem
	}
	return path + "." + elem
}
