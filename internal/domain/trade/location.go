package trade

import (
	"sort"
	"strconv"
	"strings"
)

// LocationKind identifies where in the stockroom an item is stored
type LocationKind string

const (
	KindAisle LocationKind = "Pasillo"
	KindTable LocationKind = "Mesa"
	KindRack  LocationKind = "R colgada"
)

// Sort rank per kind; anything unparseable sorts last
const (
	rankAisle      = 1
	rankTable      = 2
	rankRack       = 3
	rankUnassigned = 999
)

// Location is a parsed stockroom position
type Location struct {
	Kind   LocationKind
	Number int
}

// String renders the location back to its stored form
func (l Location) String() string {
	return string(l.Kind) + " " + strconv.Itoa(l.Number)
}

func (l Location) rank() int {
	switch l.Kind {
	case KindAisle:
		return rankAisle
	case KindTable:
		return rankTable
	case KindRack:
		return rankRack
	}
	return rankUnassigned
}

// ParseLocation parses a stored location string ("Pasillo 3", "Mesa 12",
// "R colgada 1"). Kind matching is case-insensitive; the number must be a
// positive integer. Returns false for anything else, including the empty
// string (unassigned).
func ParseLocation(s string) (Location, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Location{}, false
	}

	for _, kind := range []LocationKind{KindAisle, KindTable, KindRack} {
		prefix := string(kind) + " "
		if len(s) <= len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(s[len(prefix):]))
		if err != nil || n <= 0 {
			return Location{}, false
		}
		return Location{Kind: kind, Number: n}, true
	}
	return Location{}, false
}

// LocatedItem pairs an item with its original position in the owning order's
// item list. Downstream edit/toggle/note operations address items by that
// position, so a sorted view must never lose it.
type LocatedItem struct {
	Index int
	Item  OrderItem
}

// SortByLocation returns the items ordered for picking: aisles first, then
// tables, then hanging racks, each ascending by number; items without a
// parseable location go last. The sort is stable (ties keep their original
// relative order) and the input slice is not modified.
func SortByLocation(items []OrderItem) []LocatedItem {
	located := make([]LocatedItem, len(items))
	for i, item := range items {
		located[i] = LocatedItem{Index: i, Item: item}
	}

	sort.SliceStable(located, func(i, j int) bool {
		a, aok := ParseLocation(located[i].Item.Location)
		b, bok := ParseLocation(located[j].Item.Location)

		ar, an := rankUnassigned, 0
		if aok {
			ar, an = a.rank(), a.Number
		}
		br, bn := rankUnassigned, 0
		if bok {
			br, bn = b.rank(), b.Number
		}

		if ar != br {
			return ar < br
		}
		return an < bn
	})

	return located
}
