package logic

import (
	"strings"

	"multiselect/internal/domain"
)

// Contains reports whether key is part of the selection
func Contains(selected []domain.Key, key domain.Key) bool {
	for _, k := range selected {
		if domain.KeysEqual(k, key) {
			return true
		}
	}
	return false
}

// Toggle returns the selection after the user picks key.
// In single mode the result is always exactly [key]. Otherwise key is
// removed when present and appended when not; other keys keep their order.
func Toggle(selected []domain.Key, key domain.Key, single bool) []domain.Key {
	if single {
		return []domain.Key{key}
	}
	if Contains(selected, key) {
		return Remove(selected, key)
	}
	next := make([]domain.Key, 0, len(selected)+1)
	next = append(next, selected...)
	return append(next, key)
}

// Remove returns the selection without key
func Remove(selected []domain.Key, key domain.Key) []domain.Key {
	next := make([]domain.Key, 0, len(selected))
	for _, k := range selected {
		if !domain.KeysEqual(k, key) {
			next = append(next, k)
		}
	}
	return next
}

// Clear returns an empty selection
func Clear() []domain.Key {
	return []domain.Key{}
}

// NewItemKey derives a key from search text: words joined by hyphens
func NewItemKey(text string) string {
	return strings.Join(strings.Fields(text), "-")
}

// AddItem synthesizes an item from search text and returns the extended item
// list and selection. ok is false when the text holds no words.
func AddItem(items []domain.Item, selected []domain.Key, fields domain.Fields, text string) (newItems []domain.Item, newSelected []domain.Key, ok bool) {
	key := NewItemKey(text)
	if key == "" {
		return nil, nil, false
	}

	item := domain.Item{
		fields.UniqueKey:  key,
		fields.DisplayKey: text,
	}

	newItems = make([]domain.Item, 0, len(items)+1)
	newItems = append(newItems, items...)
	newItems = append(newItems, item)

	newSelected = make([]domain.Key, 0, len(selected)+1)
	newSelected = append(newSelected, selected...)
	newSelected = append(newSelected, key)

	return newItems, newSelected, true
}
