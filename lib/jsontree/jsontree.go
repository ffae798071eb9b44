// Package jsontree provides safe navigation over decoded JSON
// (the `any` trees produced by encoding/json). every lookup on a
// missing or mistyped value yields a zero Node instead of a panic,
// which keeps defaulting policy for half-formed API responses in
// one place.
package jsontree

type Node struct {
	value  any
	exists bool
}

func From(v any) Node {
	return Node{value: v, exists: true}
}

// Get traverses nested JSON objects by key. any segment that is
// missing, or any intermediate value that is not an object, yields
// a Node that exists == false.
func (n Node) Get(keys ...string) Node {
	current := n
	for _, key := range keys {
		if !current.exists {
			return Node{}
		}
		obj, ok := current.value.(map[string]any)
		if !ok {
			return Node{}
		}
		v, ok := obj[key]
		if !ok {
			return Node{}
		}
		current = Node{value: v, exists: true}
	}
	return current
}

func (n Node) Exists() bool {
	return n.exists
}

func (n Node) IsNull() bool {
	return !n.exists || n.value == nil
}

// String returns the underlying value only when it is an actual
// JSON string, otherwise `def`. notably a JSON boolean never
// stringifies, which callers rely on for exact string compares.
func (n Node) String(def string) string {
	s, ok := n.value.(string)
	if !n.exists || !ok {
		return def
	}
	return s
}

func (n Node) IsObject() bool {
	_, ok := n.value.(map[string]any)
	return n.exists && ok
}

// List returns the elements of a JSON array, or nil when the value
// is absent or not an array.
func (n Node) List() []Node {
	arr, ok := n.value.([]any)
	if !n.exists || !ok {
		return nil
	}
	out := make([]Node, len(arr))
	for i, v := range arr {
		out[i] = Node{value: v, exists: true}
	}
	return out
}

// Truthy mirrors loose truthiness for API result fields: null,
// false, zero, empty string/array/object are all falsy.
func (n Node) Truthy() bool {
	if !n.exists || n.value == nil {
		return false
	}
	switch v := n.value.(type) {
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	case map[string]any:
		return len(v) > 0
	case []any:
		return len(v) > 0
	}
	return true
}
