package domain

import (
	"fmt"
	"reflect"
)

// Default field names used when a host does not configure them
const (
	DefaultUniqueKey  = "_id"
	DefaultDisplayKey = "name"
	DisabledField     = "disabled"
)

// Key identifies an item. Hosts use strings or numbers; identity is ==.
type Key = any

// Item is a selectable entry. The field names holding the key and the
// display text are configured through Fields.
type Item map[string]any

// Fields names the item fields holding the unique key and the display text
type Fields struct {
	UniqueKey  string
	DisplayKey string
}

// DefaultFields returns the field names used when none are configured
func DefaultFields() Fields {
	return Fields{UniqueKey: DefaultUniqueKey, DisplayKey: DefaultDisplayKey}
}

// WithDefaults fills empty field names
func (f Fields) WithDefaults() Fields {
	if f.UniqueKey == "" {
		f.UniqueKey = DefaultUniqueKey
	}
	if f.DisplayKey == "" {
		f.DisplayKey = DefaultDisplayKey
	}
	return f
}

// Key returns the item's unique key, or nil if the field is missing
func (f Fields) Key(item Item) Key {
	if item == nil {
		return nil
	}
	return item[f.UniqueKey]
}

// Display returns the item's display text. ok is false when the field is
// missing, empty or not a string.
func (f Fields) Display(item Item) (string, bool) {
	if item == nil {
		return "", false
	}
	s, ok := item[f.DisplayKey].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Disabled reports whether the item carries a true disabled flag
func (item Item) Disabled() bool {
	d, _ := item[DisabledField].(bool)
	return d
}

// FindItem returns the first item whose key equals key
func (f Fields) FindItem(items []Item, key Key) (Item, bool) {
	for _, item := range items {
		if KeysEqual(f.Key(item), key) {
			return item, true
		}
	}
	return nil, false
}

// KeyString formats a key for display and output
func KeyString(key Key) string {
	if key == nil {
		return ""
	}
	if s, ok := key.(string); ok {
		return s
	}
	return fmt.Sprint(key)
}

// KeysEqual compares two keys by identity. Values of uncomparable types,
// which only come from malformed item data, never match.
func KeysEqual(a, b Key) bool {
	if a == nil || b == nil {
		return false
	}
	if !reflect.TypeOf(a).Comparable() {
		return false
	}
	return a == b
}
