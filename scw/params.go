// SPDX-License-Identifier: MIT

package scw

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// NewParams validates c and eta and derives phi and vphi.
//
// Errors:
//   - ErrConfiguration when c is not a positive finite number or eta is not
//     strictly inside (0,1).
func NewParams(c, eta float64) (Params, error) {
	if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
		return Params{}, fmt.Errorf("%w: c must be positive and finite, got %v", ErrConfiguration, c)
	}
	if math.IsNaN(eta) || eta <= 0 || eta >= 1 {
		return Params{}, fmt.Errorf("%w: eta must be in (0,1), got %v", ErrConfiguration, eta)
	}

	phi := distuv.UnitNormal.Quantile(eta)

	return Params{
		C:    c,
		Eta:  eta,
		Phi:  phi,
		VPhi: 1 + phi*phi/2,
	}, nil
}
