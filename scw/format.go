// SPDX-License-Identifier: MIT

package scw

import (
	"strconv"
	"strings"
)

// FormatVector renders v as comma-joined elements with the shortest
// representation that round-trips ("0.5,-1,2").
func FormatVector(v []float64) string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = strconv.FormatFloat(e, 'g', -1, 64)
	}

	return strings.Join(parts, ",")
}
