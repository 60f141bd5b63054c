package logic

import (
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"multiselect/internal/domain"
)

// FilterMethod selects how search text is matched against display values
type FilterMethod int

const (
	// FilterPartial matches any whitespace, hyphen or colon separated term
	FilterPartial FilterMethod = iota
	// FilterFull matches the whole trimmed search text as a substring
	FilterFull
)

// String returns the configuration name of the method
func (m FilterMethod) String() string {
	switch m {
	case FilterFull:
		return "full"
	default:
		return "partial"
	}
}

// ParseFilterMethod maps a configuration name to a method.
// Unknown names fall back to FilterPartial.
func ParseFilterMethod(name string) FilterMethod {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "full":
		return FilterFull
	default:
		return FilterPartial
	}
}

var termSeparators = regexp.MustCompile(`[ \-:]+`)

// patternCache holds compiled partial-match patterns keyed by search text.
// A filter runs on every keystroke, usually with the same term as the
// previous render.
var patternCache, _ = lru.New[string, *regexp.Regexp](64)

// FilterItems returns the items whose display value matches term.
// The input slice is never modified.
func FilterItems(items []domain.Item, fields domain.Fields, term string, method FilterMethod) []domain.Item {
	switch method {
	case FilterFull:
		return filterFull(items, fields, term)
	default:
		return filterPartial(items, fields, term)
	}
}

// MatchPattern builds the case-insensitive alternation used by FilterPartial.
// It returns nil when the term holds no searchable text.
func MatchPattern(term string) *regexp.Regexp {
	key := strings.TrimSpace(term)
	if re, ok := patternCache.Get(key); ok {
		return re
	}

	var parts []string
	for _, p := range termSeparators.Split(key, -1) {
		if p != "" {
			parts = append(parts, regexp.QuoteMeta(p))
		}
	}
	if len(parts) == 0 {
		return nil
	}

	re := regexp.MustCompile(`(?i)(` + strings.Join(parts, "|") + `)`)
	patternCache.Add(key, re)
	return re
}

func filterPartial(items []domain.Item, fields domain.Fields, term string) []domain.Item {
	re := MatchPattern(term)
	filtered := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if re == nil {
			filtered = append(filtered, item)
			continue
		}
		display, ok := fields.Display(item)
		if ok && re.MatchString(display) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func filterFull(items []domain.Item, fields domain.Fields, term string) []domain.Item {
	needle := strings.ToLower(strings.TrimSpace(term))
	filtered := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if needle == "" {
			filtered = append(filtered, item)
			continue
		}
		display, ok := fields.Display(item)
		if ok && strings.Contains(strings.ToLower(display), needle) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// VisibleItems applies the search filter, then drops already selected items
// when removeSelected is set. An empty term keeps every item.
func VisibleItems(items []domain.Item, selected []domain.Key, fields domain.Fields, term string, method FilterMethod, removeSelected bool) []domain.Item {
	visible := items
	if term != "" {
		visible = FilterItems(items, fields, term, method)
	}
	if !removeSelected {
		return visible
	}

	kept := make([]domain.Item, 0, len(visible))
	for _, item := range visible {
		if !Contains(selected, fields.Key(item)) {
			kept = append(kept, item)
		}
	}
	return kept
}

// HasExactMatch reports whether any item's display value equals term exactly
func HasExactMatch(items []domain.Item, fields domain.Fields, term string) bool {
	for _, item := range items {
		if display, ok := fields.Display(item); ok && display == term {
			return true
		}
	}
	return false
}
