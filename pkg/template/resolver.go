package template

import (
	"encoding/json"
	"fmt"
	"strings"
)

const maxVariableDepth = 8

// Resolver evaluates the subset of the template language used in exported resource names and
// resource ids: parameters, variables, concat, resourceId, toLower and toUpper.
type Resolver struct {
	Parameters map[string]*Parameter
	Variables  Object
}

// ResourceID identifies a resource by its fully qualified type and name. Child resources have
// slash separated types and names.
type ResourceID struct {
	Type string
	Name string
}

// Resolve parses and evaluates a template string to its literal value.
func (r Resolver) Resolve(s string) (string, error) {
	expr, err := ParseExpression(s)
	if err != nil {
		return "", err
	}

	return r.evaluate(expr, 0)
}

// Evaluate evaluates a parsed expression to a string.
func (r Resolver) Evaluate(expr Expression) (string, error) {
	return r.evaluate(expr, 0)
}

// ResourceID resolves a template string that denotes a resource id, either through a
// resourceId(...) call or as a literal /subscriptions/.../providers/... path.
func (r Resolver) ResourceID(s string) (ResourceID, error) {
	id, err := r.Resolve(s)
	if err != nil {
		return ResourceID{}, err
	}

	return ParseResourceID(id)
}

// ParseResourceID splits an ARM resource id into type and name.
func ParseResourceID(id string) (ResourceID, error) {
	rest := id
	if i := strings.LastIndex(strings.ToLower(id), "/providers/"); i >= 0 {
		rest = id[i+len("/providers/"):]
	}

	segments := strings.Split(strings.Trim(rest, "/"), "/")
	// namespace, then type/name pairs
	if len(segments) < 3 || len(segments)%2 == 0 {
		return ResourceID{}, fmt.Errorf("%q is not a resource id", id)
	}

	types := []string{segments[0]}
	var names []string
	for i := 1; i < len(segments); i += 2 {
		types = append(types, segments[i])
		names = append(names, segments[i+1])
	}

	return ResourceID{Type: strings.Join(types, "/"), Name: strings.Join(names, "/")}, nil
}

func (r Resolver) evaluate(expr Expression, depth int) (string, error) {
	switch e := expr.(type) {
	case StringLiteral:
		return e.Value, nil
	case NumberLiteral:
		return e.Value, nil
	case Call:
		if len(e.Accessors) > 0 {
			return "", fmt.Errorf("property access on %s() is not supported", e.Name)
		}
		return r.call(e, depth)
	default:
		return "", fmt.Errorf("unsupported expression %T", expr)
	}
}

func (r Resolver) call(c Call, depth int) (string, error) {
	args := make([]string, 0, len(c.Args))
	for _, a := range c.Args {
		v, err := r.evaluate(a, depth)
		if err != nil {
			return "", err
		}
		args = append(args, v)
	}

	switch strings.ToLower(c.Name) {
	case "parameters":
		if len(args) != 1 {
			return "", fmt.Errorf("parameters() takes one argument")
		}
		return r.parameter(args[0])
	case "variables":
		if len(args) != 1 {
			return "", fmt.Errorf("variables() takes one argument")
		}
		return r.variable(args[0], depth)
	case "concat":
		return strings.Join(args, ""), nil
	case "tolower":
		if len(args) != 1 {
			return "", fmt.Errorf("toLower() takes one argument")
		}
		return strings.ToLower(args[0]), nil
	case "toupper":
		if len(args) != 1 {
			return "", fmt.Errorf("toUpper() takes one argument")
		}
		return strings.ToUpper(args[0]), nil
	case "resourceid":
		return resourceID(args)
	default:
		return "", fmt.Errorf("function %s() is not supported", c.Name)
	}
}

// Parameter returns the declaration of name, matched case-insensitively.
func (r Resolver) Parameter(name string) (*Parameter, bool) {
	if p, ok := r.Parameters[name]; ok {
		return p, true
	}

	for k, p := range r.Parameters {
		if strings.EqualFold(k, name) {
			return p, true
		}
	}

	return nil, false
}

func (r Resolver) parameter(name string) (string, error) {
	p, ok := r.Parameter(name)
	if !ok {
		return "", fmt.Errorf("parameter %q is not declared", name)
	}

	s, ok := scalarString(p.DefaultValue)
	if !ok {
		return "", fmt.Errorf("parameter %q has no string default value", name)
	}

	return s, nil
}

func (r Resolver) variable(name string, depth int) (string, error) {
	if depth >= maxVariableDepth {
		return "", fmt.Errorf("variable %q nests too deeply", name)
	}

	val, ok := r.Variables[name]
	if !ok {
		for k, v := range r.Variables {
			if strings.EqualFold(k, name) {
				val, ok = v, true
				break
			}
		}
	}
	if !ok {
		return "", fmt.Errorf("variable %q is not declared", name)
	}

	s, ok := scalarString(val)
	if !ok {
		return "", fmt.Errorf("variable %q is not a string", name)
	}

	expr, err := ParseExpression(s)
	if err != nil {
		return "", err
	}

	return r.evaluate(expr, depth+1)
}

// resourceID builds an id from resourceId([subscriptionId], [resourceGroupName], type, names...).
func resourceID(args []string) (string, error) {
	typeIdx := -1
	for i, a := range args {
		if strings.Contains(a, "/") && strings.Contains(strings.SplitN(a, "/", 2)[0], ".") {
			typeIdx = i
			break
		}
	}

	if typeIdx < 0 || typeIdx > 2 || typeIdx == len(args)-1 {
		return "", fmt.Errorf("resourceId(%s) has no resource type", strings.Join(args, ", "))
	}

	typeSegments := strings.Split(args[typeIdx], "/")
	names := args[typeIdx+1:]
	if len(names) != len(typeSegments)-1 {
		return "", fmt.Errorf("resourceId(%s) has %d names for type %s", strings.Join(args, ", "), len(names), args[typeIdx])
	}

	b := strings.Builder{}
	switch typeIdx {
	case 2:
		fmt.Fprintf(&b, "/subscriptions/%s/resourceGroups/%s", args[0], args[1])
	case 1:
		fmt.Fprintf(&b, "/resourceGroups/%s", args[0])
	}

	b.WriteString("/providers/")
	b.WriteString(typeSegments[0])
	for i, name := range names {
		fmt.Fprintf(&b, "/%s/%s", typeSegments[i+1], name)
	}

	return b.String(), nil
}

func scalarString(v interface{}) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	default:
		return "", false
	}
}
