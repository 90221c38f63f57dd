// Package clearair implements TotalPredictor (Section 4.6): the top-level
// entry point that constructs a LinkParameters bundle once per link,
// validates it, and combines the four mechanism outputs — line-of-sight,
// diffraction, anomalous propagation, and troposcatter — into the final
// basic transmission loss.
package clearair

import (
	"errors"
	"math"

	perrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/trentholliday/p452/anomalous"
	"github.com/trentholliday/p452/basicloss"
	"github.com/trentholliday/p452/clutter"
	"github.com/trentholliday/p452/diffraction"
	"github.com/trentholliday/p452/gas"
	"github.com/trentholliday/p452/numeric"
	"github.com/trentholliday/p452/path"
	"github.com/trentholliday/p452/tropo"
)

// Sentinel errors the predictor's validation boundary can return.
var (
	// ErrInvalidTimePercent signals p outside the predictor's valid range.
	ErrInvalidTimePercent = errors.New("clearair: time percent must be in (0, 50]")
	// ErrInvalidGeometry signals an empty/degenerate path, non-monotonic
	// distances, an antenna below ground, or coincident terminals.
	ErrInvalidGeometry = errors.New("clearair: invalid path geometry")
	// ErrInvalidEnvironment signals a non-physical temperature, pressure,
	// delta-N at or past the singular effective-radius value, or a center
	// latitude outside [-90, 90].
	ErrInvalidEnvironment = errors.New("clearair: invalid environmental parameters")
	// ErrUnsupportedPolarisation is reserved for a future polarisation
	// variant the predictor does not yet implement.
	ErrUnsupportedPolarisation = errors.New("clearair: unsupported polarisation")
)

// etaDuctingLOSBlend is eta in the step-3 soft-maximum blend of ducting
// loss against LOS-plus-multipath loss (Section 4.6, step 3).
const etaDuctingLOSBlend = 2.5

// Polarization re-exports diffraction.Polarization: the only predictor that
// branches on it is the first-term spherical diffraction kernel.
type Polarization = diffraction.Polarization

const (
	Horizontal = diffraction.Horizontal
	Vertical   = diffraction.Vertical
	Circular   = diffraction.Circular
)

// LinkParameters bundles everything TotalPredictor needs for one
// prediction (Section 6.2). Numeric units are degrees, km, m, GHz, K, hPa,
// dBi.
type LinkParameters struct {
	RawPath          path.Path
	HeightTxAGLm     float64
	HeightRxAGLm     float64
	CenterLatDeg     float64
	FreqGHz          float64
	PPercent         float64
	Polarization     Polarization
	TempK            float64
	DryPressureHPa   float64
	DistCoastTxKm    float64
	DistCoastRxKm    float64
	DeltaN           float64
	N0               float64
	TxHorizonGainDBi float64
	RxHorizonGainDBi float64
	TxClutter        clutter.Category
	RxClutter        clutter.Category
}

// TotalPredictor is the single entry point: constructed once per link, it
// validates LinkParameters and exposes Predict for the aggregate loss.
type TotalPredictor struct {
	params  LinkParameters
	link    gas.Link
	clutter clutter.Stage
	// logger is an optional debug-only instrumentation seam: when non-nil,
	// Predict emits one debug line per mechanism output. Never gates
	// control flow.
	logger *zap.SugaredLogger
}

// New validates params and returns a TotalPredictor. link and clutterStage
// are the external GasLink and ClutterStage collaborators (Section 6.1); a
// nil link defaults to gas.DefaultLink{}, a nil clutterStage defaults to
// clutter.NominalHeightGainStage{}. logger may be nil.
func New(params LinkParameters, link gas.Link, clutterStage clutter.Stage, logger *zap.SugaredLogger) (*TotalPredictor, error) {
	if err := validate(params); err != nil {
		return nil, err
	}
	if link == nil {
		link = gas.DefaultLink{}
	}
	if clutterStage == nil {
		clutterStage = clutter.NominalHeightGainStage{}
	}
	return &TotalPredictor{params: params, link: link, clutter: clutterStage, logger: logger}, nil
}

func validate(p LinkParameters) error {
	if p.RawPath.Len() == 0 {
		return perrors.Wrap(ErrInvalidGeometry, "empty path")
	}
	if p.RawPath.TotalKm() <= 0 {
		return perrors.Wrap(ErrInvalidGeometry, "Tx and Rx are at the same location")
	}
	if p.HeightTxAGLm < 0 || p.HeightRxAGLm < 0 {
		return perrors.Wrap(ErrInvalidGeometry, "antenna height below ground")
	}
	if p.PPercent <= 0 || p.PPercent > 50 {
		return perrors.Wrapf(ErrInvalidTimePercent, "got %v", p.PPercent)
	}
	if math.Abs(p.CenterLatDeg) > 90 {
		return perrors.Wrapf(ErrInvalidEnvironment, "center latitude %v outside [-90, 90]", p.CenterLatDeg)
	}
	if p.DeltaN >= 157 {
		return perrors.Wrapf(ErrInvalidEnvironment, "deltaN %v gives a singular effective Earth radius", p.DeltaN)
	}
	if p.TempK <= 0 {
		return perrors.Wrapf(ErrInvalidEnvironment, "non-physical temperature %v K", p.TempK)
	}
	if p.DryPressureHPa <= 0 {
		return perrors.Wrapf(ErrInvalidEnvironment, "non-physical dry pressure %v hPa", p.DryPressureHPa)
	}
	return nil
}

// Predict runs the full Section 4.6 combiner and returns the basic
// transmission loss in dB.
func (t *TotalPredictor) Predict() (float64, error) {
	p := t.params

	clut, err := t.clutter.Apply(p.FreqGHz, p.RawPath, p.HeightTxAGLm, p.HeightRxAGLm, p.TxClutter, p.RxClutter)
	if err != nil {
		return 0, perrors.Wrap(err, "clutter stage")
	}
	effPath := clut.EffectivePath
	heightTxASLm := effPath.First().HeightASLm + clut.EffectiveTxHeightM
	heightRxASLm := effPath.Last().HeightASLm + clut.EffectiveRxHeightM

	fracOverSea := effPath.FractionOverSea()
	longestInlandKm := effPath.LongestContiguousInlandKm()
	beta0Percent, err := effPath.Beta0Percent(p.CenterLatDeg)
	if err != nil {
		return 0, perrors.Wrap(ErrInvalidEnvironment, err.Error())
	}

	effRadius50Km := path.MedianEffectiveRadiusKm(p.DeltaN)
	horizon50 := effPath.HorizonAnglesAndDistances(heightTxASLm, heightRxASLm, effRadius50Km)

	// Step: BasicLosPredictor.
	los, err := basicloss.Predict(t.link, effPath.TotalKm(), heightTxASLm, heightRxASLm, p.FreqGHz, p.TempK,
		p.DryPressureHPa, fracOverSea, p.PPercent, beta0Percent, horizon50.DLtKm, horizon50.DLrKm)
	if err != nil {
		return 0, perrors.Wrap(err, "basic LOS predictor")
	}
	t.debug("basic-los", "LBfsgDB", los.LBfsgDB, "LB0pDB", los.LB0pDB)

	// Step: DiffractionPredictor.
	diff, err := diffraction.Predict(effPath, heightTxASLm, heightRxASLm, p.FreqGHz, effRadius50Km,
		fracOverSea, p.PPercent, beta0Percent, p.Polarization)
	if err != nil {
		return 0, perrors.Wrap(err, "diffraction predictor")
	}
	t.debug("diffraction", "LossMedianDB", diff.LossMedianDB, "LossPDB", diff.LossPDB)

	// Step: AnomalousPropPredictor.
	anom, err := anomalous.Predict(t.link, effPath, horizon50, p.FreqGHz, heightTxASLm, heightRxASLm,
		fracOverSea, effRadius50Km, p.DistCoastTxKm, p.DistCoastRxKm, p.TempK, p.DryPressureHPa,
		longestInlandKm, p.PPercent, beta0Percent)
	if err != nil {
		return 0, perrors.Wrap(err, "anomalous propagation predictor")
	}
	t.debug("anomalous", "TotalLossDB", anom.TotalLossDB)

	// Step: TroposcatterPredictor, using the true (unmodified) horizon angles.
	lBs, err := tropo.Predict(t.link, effPath.TotalKm(), heightTxASLm, heightRxASLm, p.FreqGHz,
		horizon50.ThetaTMrad, horizon50.ThetaRMrad, effRadius50Km, p.N0,
		p.TxHorizonGainDBi, p.RxHorizonGainDBi, p.TempK, p.DryPressureHPa, p.PPercent)
	if err != nil {
		return 0, perrors.Wrap(err, "troposcatter predictor")
	}
	t.debug("troposcatter", "LBsDB", lBs)

	sTimActual, sTr := diffraction.ActualPathSlopes(effPath, heightTxASLm, heightRxASLm, effRadius50Km)

	lB := combine(effPath.TotalKm(), p.PPercent, beta0Percent, fracOverSea, sTimActual, sTr, los, diff, anom.TotalLossDB, lBs)

	total := lB + clut.TxClutterLossDB + clut.RxClutterLossDB
	t.debug("combined", "LbDB", total)
	return total, nil
}

func (t *TotalPredictor) debug(mechanism string, kv ...interface{}) {
	if t.logger == nil {
		return
	}
	t.logger.Debugw("p452 mechanism output", append([]interface{}{"mechanism", mechanism}, kv...)...)
}

// combine implements Section 4.6 steps 1-8, the interpolation among the
// four non-troposcatter-arm mechanism outputs and the final soft-minimum
// blend against the troposcatter loss.
func combine(dTotKm, pPercent, beta0Percent, fracOverSea, sTimActual, sTr float64, los basicloss.Result, diff diffraction.Result, lBaDucting, lBs float64) float64 {
	// Step 1
	lBd50 := los.LBfsgDB + diff.LossMedianDB
	lBd := los.LB0pDB + diff.LossPDB

	// Step 2: LOS + oversea sub-path diffraction floor.
	var lMinb0p float64
	if pPercent < beta0Percent {
		lMinb0p = los.LB0pDB + (1-fracOverSea)*diff.LossPDB
	} else {
		fi := 1.0
		if pPercent > beta0Percent {
			fi = numeric.InvCumNorm(pPercent/100.0) / numeric.InvCumNorm(beta0Percent/100.0)
		}
		lB0Beta := los.LB0Beta + (1-fracOverSea)*diff.LossPDB
		lMinb0p = numeric.Interpolate1D(lBd50, lB0Beta, fi)
	}

	// Step 3: soft-max of ducting loss and LOS+multipath loss — the
	// combination is dominated by whichever mechanism's loss is larger.
	lMinbap := numeric.LogSumExp(lBaDucting, los.LB0pDB, etaDuctingLOSBlend)

	// Step 4: path-length blend.
	fk := 1 - 0.5*(1+math.Tanh(3*0.5*(dTotKm-20)/20))

	// Step 5
	var lBda float64
	if lMinbap <= lBd {
		lBda = lMinbap + fk*(lBd-lMinbap)
	} else {
		lBda = lBd
	}

	// Step 6: slope blend, using the same Tx-side and direct slopes the
	// knife-edge solver compares (Eq 14, 15), evaluated here at a_e50.
	fj := 1 - 0.5*(1+math.Tanh(3*0.8*(sTimActual-sTr)/0.3))

	// Step 7
	lBam := lBda + fj*(lMinb0p-lBda)

	// Step 8
	return -5*math.Log10(math.Pow(10, -0.2*lBs)+math.Pow(10, -0.2*lBam))
}
