package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Resource types the transformer works with.
const (
	VirtualMachineType   = "Microsoft.Compute/virtualMachines"
	NetworkInterfaceType = "Microsoft.Network/networkInterfaces"
)

// Template is an exported resource group deployment template. Keys the tool does not edit are
// kept in Extra and written back untouched.
type Template struct {
	Schema         string
	ContentVersion string
	Parameters     map[string]*Parameter
	Variables      Object
	Resources      []*Resource
	Extra          Object
}

// Parameter is a template parameter declaration.
type Parameter struct {
	Type         string
	DefaultValue interface{}
	Extra        Object
}

// Resource is a single resource declaration.
type Resource struct {
	Type       string
	Name       string
	APIVersion string
	Location   string
	DependsOn  []string
	Properties Object
	Extra      Object
}

// IsType compares the resource type case-insensitively, the way ARM does.
func (r *Resource) IsType(t string) bool {
	return strings.EqualFold(r.Type, t)
}

// Parse decodes a template. Numbers are kept as json.Number so they are written back verbatim.
func Parse(data []byte) (*Template, error) {
	raw, err := decodeObject(data)
	if err != nil {
		return nil, fmt.Errorf("template is not a JSON object: %w", err)
	}

	t := &Template{Parameters: map[string]*Parameter{}}

	t.Schema = takeString(raw, "$schema")
	t.ContentVersion = takeString(raw, "contentVersion")

	if params, ok := asObject(raw["parameters"]); ok {
		for name, val := range params {
			decl, ok := asObject(val)
			if !ok {
				return nil, fmt.Errorf("parameter %q is not an object", name)
			}
			t.Parameters[name] = newParameter(decl)
		}
	}
	delete(raw, "parameters")

	if vars, ok := asObject(raw["variables"]); ok {
		t.Variables = vars
	}
	delete(raw, "variables")

	if items, ok := raw["resources"].([]interface{}); ok {
		for i, item := range items {
			decl, ok := asObject(item)
			if !ok {
				return nil, fmt.Errorf("resource %d is not an object", i)
			}
			t.Resources = append(t.Resources, newResource(decl))
		}
	}
	delete(raw, "resources")

	t.Extra = raw

	return t, nil
}

// Encode writes the template with four-space indentation and without HTML escaping, matching
// the way exported templates are laid out.
func (t *Template) Encode() ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")

	if err := enc.Encode(t); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Clone returns a copy of t that shares no values with it. Parameter defaults, variables and
// resource properties are copied at every depth.
func (t *Template) Clone() (*Template, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// MarshalJSON implements json.Marshaler.
func (t *Template) MarshalJSON() ([]byte, error) {
	out := clone(t.Extra)

	if t.Schema != "" {
		out["$schema"] = t.Schema
	}
	if t.ContentVersion != "" {
		out["contentVersion"] = t.ContentVersion
	}

	params := Object{}
	for name, p := range t.Parameters {
		params[name] = p
	}
	out["parameters"] = params

	if t.Variables != nil {
		out["variables"] = t.Variables
	}

	resources := t.Resources
	if resources == nil {
		resources = []*Resource{}
	}
	out["resources"] = resources

	return marshal(out)
}

// ParameterNames returns parameter names in sorted order.
func (t *Template) ParameterNames() []string {
	names := make([]string, 0, len(t.Parameters))
	for name := range t.Parameters {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// ResourcesOfType returns the resources of the given type in template order.
func (t *Template) ResourcesOfType(resourceType string) []*Resource {
	var out []*Resource
	for _, r := range t.Resources {
		if r.IsType(resourceType) {
			out = append(out, r)
		}
	}

	return out
}

// Resolver returns a Resolver over this template's parameters and variables.
func (t *Template) Resolver() Resolver {
	return Resolver{Parameters: t.Parameters, Variables: t.Variables}
}

// MarshalJSON implements json.Marshaler.
func (p *Parameter) MarshalJSON() ([]byte, error) {
	out := clone(p.Extra)
	if p.Type != "" {
		out["type"] = p.Type
	}
	if p.DefaultValue != nil {
		out["defaultValue"] = p.DefaultValue
	}

	return marshal(out)
}

// MarshalJSON implements json.Marshaler.
func (r *Resource) MarshalJSON() ([]byte, error) {
	out := clone(r.Extra)

	out["type"] = r.Type
	out["name"] = r.Name
	if r.APIVersion != "" {
		out["apiVersion"] = r.APIVersion
	}
	if r.Location != "" {
		out["location"] = r.Location
	}
	if r.DependsOn != nil {
		out["dependsOn"] = r.DependsOn
	}
	if r.Properties != nil {
		out["properties"] = r.Properties
	}

	return marshal(out)
}

func newParameter(decl Object) *Parameter {
	p := &Parameter{}
	p.Type = takeString(decl, "type")
	if v, ok := decl["defaultValue"]; ok {
		p.DefaultValue = v
		delete(decl, "defaultValue")
	}
	p.Extra = decl

	return p
}

func newResource(decl Object) *Resource {
	r := &Resource{}
	r.Type = takeString(decl, "type")
	r.Name = takeString(decl, "name")
	r.APIVersion = takeString(decl, "apiVersion")
	r.Location = takeString(decl, "location")

	if deps, ok := decl["dependsOn"].([]interface{}); ok {
		r.DependsOn = make([]string, 0, len(deps))
		for _, d := range deps {
			if s, ok := d.(string); ok {
				r.DependsOn = append(r.DependsOn, s)
			}
		}
		delete(decl, "dependsOn")
	}

	if props, ok := asObject(decl["properties"]); ok {
		r.Properties = props
		delete(decl, "properties")
	}

	r.Extra = decl

	return r
}

func decodeObject(data []byte) (Object, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	raw := map[string]interface{}{}
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}

	return raw, nil
}

// takeString removes key from o and returns it when it holds a string. Non-string values are
// left in place so they are written back unchanged.
func takeString(o Object, key string) string {
	s, ok := o[key].(string)
	if !ok {
		return ""
	}

	delete(o, key)
	return s
}

// marshal is json.Marshal without HTML escaping. Nested Marshalers must use it too, since the
// outer encoder never unescapes their output.
func marshal(v interface{}) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func clone(o Object) Object {
	out := make(Object, len(o)+6)
	for k, v := range o {
		out[k] = v
	}

	return out
}
