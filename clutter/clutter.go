// Package clutter implements the ClutterStage external collaborator
// (Section 4.5): a height-gain pre-stage that reshapes the raw profile
// into an effective sub-profile and effective antenna heights, and
// returns a pair of additive clutter losses. The core consumes only the
// Stage interface below.
package clutter

import (
	"math"

	"github.com/trentholliday/p452/path"
)

// Category names the clutter category table entries (Table 4), in the
// fixed order the nominal height/distance table is indexed by.
type Category int

const (
	NoClutter Category = iota
	HighCropFields
	ParkLand
	IrregularlySpacedSparseTrees
	OrchardRegularlySpaced
	SparseHouses
	VillageCentre
	DeciduousTreesIrregularlySpaced
	DeciduousTreesRegularlySpaced
	MixedTreeForest
	ConiferousTreesIrregularlySpaced
	ConiferousTreesRegularlySpaced
	TropicalRainForest
	Suburban
	DenseSuburban
	Urban
	DenseUrban
	HighRiseUrban
	IndustrialZone
)

// nominal holds a clutter category's nominal height (m) and nominal
// standoff distance (km) from Table 4.
type nominal struct {
	heightM  float64
	distKm   float64
}

var clutterTable = []nominal{
	NoClutter:                       {0.0, 0.0},
	HighCropFields:                  {4.0, 0.1},
	ParkLand:                        {4.0, 0.1},
	IrregularlySpacedSparseTrees:    {4.0, 0.1},
	OrchardRegularlySpaced:          {4.0, 0.1},
	SparseHouses:                    {4.0, 0.1},
	VillageCentre:                   {5.0, 0.07},
	DeciduousTreesIrregularlySpaced: {15.0, 0.05},
	DeciduousTreesRegularlySpaced:   {15.0, 0.05},
	MixedTreeForest:                 {15.0, 0.05},
	ConiferousTreesIrregularlySpaced: {20.0, 0.05},
	ConiferousTreesRegularlySpaced:  {20.0, 0.05},
	TropicalRainForest:              {20.0, 0.03},
	Suburban:                        {9.0, 0.025},
	DenseSuburban:                   {12.0, 0.02},
	Urban:                           {20.0, 0.02},
	DenseUrban:                      {25.0, 0.02},
	HighRiseUrban:                   {35.0, 0.02},
	IndustrialZone:                  {20.0, 0.05},
}

// Output bundles everything a ClutterStage returns to the core (Section
// 3.5): the effective sub-path, the effective antenna heights above
// ground on its endpoints, and the additive clutter losses.
type Output struct {
	EffectivePath       path.Path
	EffectiveTxHeightM  float64
	EffectiveRxHeightM  float64
	TxClutterLossDB     float64
	RxClutterLossDB     float64
}

// Stage is the narrow interface the core consumes. Implementations must
// preserve path monotonicity and zone tags on the returned sub-path.
type Stage interface {
	Apply(freqGHz float64, raw path.Path, heightTxAglM, heightRxAglM float64, txCategory, rxCategory Category) (Output, error)
}

// NominalHeightGainStage is the default Stage, grounded on Section 4.5.4's
// height-gain correction: an antenna shorter than its nominal clutter
// height is shielded by a table-driven additive loss (Eq 57, 57a), and the
// sub-path used by the rest of the core is clipped inward past each
// clutter's nominal standoff distance with the clutter height substituted
// for the real antenna height above ground.
type NominalHeightGainStage struct{}

// Apply implements Stage.
func (NominalHeightGainStage) Apply(freqGHz float64, raw path.Path, heightTxAglM, heightRxAglM float64, txCategory, rxCategory Category) (Output, error) {
	txNom := clutterTable[txCategory]
	rxNom := clutterTable[rxCategory]

	pts := raw.Points()
	index1 := 0
	index2 := len(pts) // sentinel: last valid point is before this index

	hgHeightTx := heightTxAglM
	hgHeightRx := heightRxAglM
	var txLoss, rxLoss float64

	ffc := 0.25 + 0.375*(1+math.Tanh(7.5*(freqGHz-0.5))) // Eq 57a

	if txNom.heightM > heightTxAglM {
		txLoss = 10.25*ffc*math.Exp(-txNom.distKm)*(1-math.Tanh(6*(heightTxAglM/txNom.heightM-0.625))) - 0.33 // Eq 57
		index1 = len(pts) - 1 // not-found fallback: clamp to the last valid index
		for i, pt := range pts {
			if pt.DistanceKm >= txNom.distKm {
				index1 = i
				break
			}
		}
		hgHeightTx = txNom.heightM
	}

	if rxNom.heightM > heightRxAglM {
		rxLoss = 10.25*ffc*math.Exp(-rxNom.distKm)*(1-math.Tanh(6*(heightRxAglM/rxNom.heightM-0.625))) - 0.33 // Eq 57
		rxClutterLoc := raw.TotalKm() - rxNom.distKm
		index2 = 0
		for i, pt := range pts {
			if pt.DistanceKm > rxClutterLoc {
				index2 = i
				break
			}
		}
		hgHeightRx = rxNom.heightM
	}

	offset := pts[index1].DistanceKm
	sub := make([]path.ProfilePoint, 0, index2-index1)
	for _, pt := range pts[index1:index2] {
		sub = append(sub, path.ProfilePoint{
			DistanceKm: pt.DistanceKm - offset,
			HeightASLm: pt.HeightASLm,
			Zone:       pt.Zone,
		})
	}

	effPath, err := path.NewPath(sub)
	if err != nil {
		return Output{}, err
	}

	return Output{
		EffectivePath:      effPath,
		EffectiveTxHeightM: hgHeightTx,
		EffectiveRxHeightM: hgHeightRx,
		TxClutterLossDB:    txLoss,
		RxClutterLossDB:    rxLoss,
	}, nil
}
