package trade

import (
	"fmt"
	"strconv"
	"time"
)

// folioPrefix precedes every order folio
const folioPrefix = "PED-"

// FormatFolio builds the folio for the next order given the number of orders
// already in the store: existing count plus one, zero-padded to four digits.
// Counters past 9999 simply grow wider ("PED-10001").
//
// Count-then-write is not collision-proof: two writers counting at the same
// time mint the same folio. The store has no sequence primitive, so this
// matches the original numbering scheme as-is.
func FormatFolio(existingCount int) string {
	return folioPrefix + fmt.Sprintf("%04d", existingCount+1)
}

// FallbackFolio builds a unique-enough folio from the clock for when the
// order count cannot be obtained
func FallbackFolio(now time.Time) string {
	return folioPrefix + strconv.FormatInt(now.UnixMilli(), 10)
}
