package reconcile

import (
	"sort"
	"strconv"
	"strings"
)

// OptionKey is the normalized identity of a variant's option set.
// It is built from the (category, value) pairs sorted by category, so two
// option maps with the same pairs produce the same key regardless of order.
// Categories and values are quoted individually, so separator characters
// inside a value cannot make two different option sets share a key.
type OptionKey string

// NewOptionKey builds the normalized key for an option map.
// An empty map yields the zero key, which never matches anything.
func NewOptionKey(options map[string]string) OptionKey {
	if len(options) == 0 {
		return ""
	}

	categories := make([]string, 0, len(options))
	for category := range options {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	pairs := make([]string, 0, len(categories))
	for _, category := range categories {
		pairs = append(pairs, strconv.Quote(category)+"="+strconv.Quote(options[category]))
	}
	return OptionKey(strings.Join(pairs, "|"))
}

// IsZero reports whether the key was built from an empty option map.
func (k OptionKey) IsZero() bool {
	return k == ""
}
