package usecase

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// sortByText orders items by the given keys using pt-BR collation, so
// "Águia" sorts next to "Aguia" and case is ignored. Later keys break ties.
func sortByText[T any](items []T, keys ...func(T) string) {
	c := collate.New(language.BrazilianPortuguese, collate.IgnoreCase, collate.Loose)
	sort.SliceStable(items, func(i, j int) bool {
		for _, key := range keys {
			if cmp := c.CompareString(key(items[i]), key(items[j])); cmp != 0 {
				return cmp < 0
			}
		}
		return false
	})
}
