package template

// Object is a decoded JSON object. Templates keep free-form sections (resource properties,
// variables, unknown keys) as Objects and edit them through the path helpers below.
type Object map[string]interface{}

// Get returns the value found by walking path through nested objects.
func (o Object) Get(path ...string) (interface{}, bool) {
	if o == nil {
		return nil, false
	}

	if len(path) == 0 {
		return o, true
	}

	cur := o
	for i, key := range path {
		val, ok := cur[key]
		if !ok {
			return nil, false
		}

		if i == len(path)-1 {
			return val, true
		}

		next, ok := asObject(val)
		if !ok {
			return nil, false
		}
		cur = next
	}

	return nil, false
}

// Has reports whether path exists, regardless of its value.
func (o Object) Has(path ...string) bool {
	_, ok := o.Get(path...)
	return ok
}

// Object returns the nested object at path, or nil when path is missing or not an object.
func (o Object) Object(path ...string) Object {
	val, ok := o.Get(path...)
	if !ok {
		return nil
	}

	obj, _ := asObject(val)
	return obj
}

// Array returns the nested array at path, or nil.
func (o Object) Array(path ...string) []interface{} {
	val, ok := o.Get(path...)
	if !ok {
		return nil
	}

	arr, _ := val.([]interface{})
	return arr
}

// String returns the string at path.
func (o Object) String(path ...string) (string, bool) {
	val, ok := o.Get(path...)
	if !ok {
		return "", false
	}

	s, ok := val.(string)
	return s, ok
}

// Set stores value at path, creating intermediate objects as needed. Intermediate values that
// are not objects are replaced.
func (o Object) Set(value interface{}, path ...string) {
	if o == nil || len(path) == 0 {
		return
	}

	cur := o
	for _, key := range path[:len(path)-1] {
		next, ok := asObject(cur[key])
		if !ok {
			next = Object{}
			cur[key] = next
		}
		cur = next
	}

	cur[path[len(path)-1]] = value
}

// Delete removes the key at path and reports whether it was present.
func (o Object) Delete(path ...string) bool {
	if len(path) == 0 {
		return false
	}

	parent := o.Object(path[:len(path)-1]...)
	if parent == nil {
		return false
	}

	key := path[len(path)-1]
	if _, ok := parent[key]; !ok {
		return false
	}

	delete(parent, key)
	return true
}

// Objects returns the elements of the array at path that are objects.
func (o Object) Objects(path ...string) []Object {
	var out []Object
	for _, item := range o.Array(path...) {
		if obj, ok := asObject(item); ok {
			out = append(out, obj)
		}
	}

	return out
}

// asObject normalizes the two shapes a JSON object takes after decoding or editing.
func asObject(v interface{}) (Object, bool) {
	switch t := v.(type) {
	case Object:
		return t, t != nil
	case map[string]interface{}:
		return Object(t), t != nil
	default:
		return nil, false
	}
}
