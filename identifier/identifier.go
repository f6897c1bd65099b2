package identifier

import (
	"fmt"
	"math"
)

// SerialForm derives the shortened form of an analysis identifier: the first
// three characters, the two characters starting at the rounded midpoint
// (halves round to even), and the last four, joined by hyphens. The boolean
// is false when the identifier is too short for any of those slices; callers
// omit the derived attribute in that case.
func SerialForm(id string) (string, bool) {
	if len(id) < 4 {
		return "", false
	}

	mid := int(math.RoundToEven(float64(len(id)) / 2))
	if mid+2 > len(id) {
		return "", false
	}

	return fmt.Sprintf("%s-%s-%s", id[:3], id[mid:mid+2], id[len(id)-4:]), true
}
