package grid

import (
	"fmt"
	"time"
)

// maxNameAttempts bounds the " (k)" suffix search before falling back to a
// time-based name.
const maxNameAttempts = 100

// SheetName resolves a destination name against the names already present in
// the output: the base name when free, otherwise "base (k)" for the smallest
// unused k, and past maxNameAttempts a time-suffixed name that cannot
// collide with any earlier run.
func SheetName(base string, taken func(string) bool) string {
	return sheetNameAt(base, taken, time.Now)
}

func sheetNameAt(base string, taken func(string) bool, now func() time.Time) string {
	if !taken(base) {
		return base
	}
	for k := 1; k <= maxNameAttempts; k++ {
		if name := fmt.Sprintf("%s (%d)", base, k); !taken(name) {
			return name
		}
	}
	return fmt.Sprintf("%s %d", base, now().UnixNano())
}
