package core

import (
	"fmt"
	"math"

	"github.com/insarlabs/tropodelay/model"
)

const (
	// Rd is the specific gas constant for dry air, J/(kg·K).
	Rd = 287.06
	// StandardGravity converts geopotential to height, m/s².
	StandardGravity = 9.80665
	// virtualTempFactor enters the moist (virtual) temperature
	// t_v = t*(1 + factor*q).
	virtualTempFactor = 0.609133
)

func hybridCoefficients(n model.LevelCount) (a, b []float64, err error) {
	switch n {
	case model.Levels60:
		return hybridA60[:], hybridB60[:], nil
	case model.Levels137:
		return hybridA137[:], hybridB137[:], nil
	default:
		return nil, nil, fmt.Errorf("%w: unsupported hybrid level count %d (want 60 or 137)", ErrConfig, n)
	}
}

// LevelHeights converts one column of hybrid model levels to physical height
// and pressure per level via hydrostatic integration from the surface up.
//
// The returned slices are ordered like the input, model top (level 1) first:
// heights strictly decreasing with index, pressures strictly increasing. The
// formulation follows the ECMWF model-level geopotential computation exactly,
// including the top-level special case where the level-0 half pressure is
// undefined.
func LevelHeights(p *model.HybridLevelProfile) (heights, pressures []float64, err error) {
	a, b, err := hybridCoefficients(p.Levels)
	if err != nil {
		return nil, nil, err
	}
	n := int(p.Levels)
	if len(p.T) != n || len(p.Q) != n {
		return nil, nil, fmt.Errorf("%w: profile has %d temperature and %d humidity levels, want %d",
			ErrConfig, len(p.T), len(p.Q), n)
	}

	heights = make([]float64, n)
	pressures = make([]float64, n)

	sp := math.Exp(p.LnSP)

	// Half-level pressure below the current level; starts at the surface.
	phBelow := a[n] + b[n]*sp
	zHalf := 0.0

	for lev := n; lev >= 1; lev-- {
		tVirt := p.T[lev-1] * (1 + virtualTempFactor*p.Q[lev-1])
		phLev := a[lev-1] + b[lev-1]*sp

		var dlogP, alpha float64
		if lev == 1 {
			// The pressure at the model top half-level is zero; substitute
			// 0.1 Pa and alpha = ln 2.
			dlogP = math.Log(phBelow / 0.1)
			alpha = math.Ln2
		} else {
			dlogP = math.Log(phBelow / phLev)
			alpha = 1 - phLev/(phBelow-phLev)*dlogP
		}

		tRd := tVirt * Rd

		// Geopotential of this full level, then on to the next half level.
		zFull := zHalf + tRd*alpha
		heights[lev-1] = zFull / StandardGravity
		pressures[lev-1] = phLev
		zHalf += tRd * dlogP

		phBelow = phLev
	}

	return heights, pressures, nil
}
