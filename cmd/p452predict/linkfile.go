package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/trentholliday/p452/clearair"
	"github.com/trentholliday/p452/clutter"
	ppath "github.com/trentholliday/p452/path"
)

// profilePointFile is the on-disk shape of one terrain sample. Zone is a
// free-form string ("sea", "coastal", "inland") rather than the numeric
// ZoneType, so link files stay readable by hand.
type profilePointFile struct {
	DistanceKm float64 `json:"distance_km"`
	HeightASLm float64 `json:"height_asl_m"`
	Zone       string  `json:"zone"`
}

// linkFile is the on-disk shape of a LinkParameters bundle, decoded with
// the standard library's encoding/json (Section AMBIENT STACK: no richer
// config format appears anywhere in the retrieved pack for this shape of
// input).
type linkFile struct {
	Profile          []profilePointFile `json:"profile"`
	HeightTxAGLm     float64            `json:"height_tx_agl_m"`
	HeightRxAGLm     float64            `json:"height_rx_agl_m"`
	CenterLatDeg     float64            `json:"center_lat_deg"`
	FreqGHz          float64            `json:"freq_ghz"`
	PPercent         float64            `json:"p_percent"`
	Polarization     string             `json:"polarization"`
	TempK            float64            `json:"temp_k"`
	DryPressureHPa   float64            `json:"dry_pressure_hpa"`
	DistCoastTxKm    float64            `json:"dist_coast_tx_km"`
	DistCoastRxKm    float64            `json:"dist_coast_rx_km"`
	DeltaN           float64            `json:"delta_n"`
	N0               float64            `json:"n0"`
	TxHorizonGainDBi float64            `json:"tx_horizon_gain_dbi"`
	RxHorizonGainDBi float64            `json:"rx_horizon_gain_dbi"`
	TxClutter        string             `json:"tx_clutter"`
	RxClutter        string             `json:"rx_clutter"`
}

func loadLinkParameters(path string) (clearair.LinkParameters, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return clearair.LinkParameters{}, errors.Wrapf(err, "read link file %q", path)
	}
	var lf linkFile
	if err := json.Unmarshal(raw, &lf); err != nil {
		return clearair.LinkParameters{}, errors.Wrapf(err, "decode link file %q", path)
	}
	return lf.toLinkParameters()
}

func (lf linkFile) toLinkParameters() (clearair.LinkParameters, error) {
	pts := make([]ppath.ProfilePoint, len(lf.Profile))
	for i, pt := range lf.Profile {
		zone, err := parseZone(pt.Zone)
		if err != nil {
			return clearair.LinkParameters{}, errors.Wrapf(err, "profile point %d", i)
		}
		pts[i] = ppath.ProfilePoint{DistanceKm: pt.DistanceKm, HeightASLm: pt.HeightASLm, Zone: zone}
	}
	prof, err := ppath.NewPath(pts)
	if err != nil {
		return clearair.LinkParameters{}, errors.Wrap(err, "profile")
	}

	pol, err := parsePolarization(lf.Polarization)
	if err != nil {
		return clearair.LinkParameters{}, err
	}
	txClutter, err := parseClutter(lf.TxClutter)
	if err != nil {
		return clearair.LinkParameters{}, errors.Wrap(err, "tx_clutter")
	}
	rxClutter, err := parseClutter(lf.RxClutter)
	if err != nil {
		return clearair.LinkParameters{}, errors.Wrap(err, "rx_clutter")
	}

	return clearair.LinkParameters{
		RawPath:          prof,
		HeightTxAGLm:     lf.HeightTxAGLm,
		HeightRxAGLm:     lf.HeightRxAGLm,
		CenterLatDeg:     lf.CenterLatDeg,
		FreqGHz:          lf.FreqGHz,
		PPercent:         lf.PPercent,
		Polarization:     pol,
		TempK:            lf.TempK,
		DryPressureHPa:   lf.DryPressureHPa,
		DistCoastTxKm:    lf.DistCoastTxKm,
		DistCoastRxKm:    lf.DistCoastRxKm,
		DeltaN:           lf.DeltaN,
		N0:               lf.N0,
		TxHorizonGainDBi: lf.TxHorizonGainDBi,
		RxHorizonGainDBi: lf.RxHorizonGainDBi,
		TxClutter:        txClutter,
		RxClutter:        rxClutter,
	}, nil
}

func parseZone(s string) (ppath.ZoneType, error) {
	switch s {
	case "", "inland":
		return ppath.Inland, nil
	case "sea":
		return ppath.Sea, nil
	case "coastal":
		return ppath.CoastalLand, nil
	default:
		return 0, errors.Errorf("unknown zone %q", s)
	}
}

func parsePolarization(s string) (clearair.Polarization, error) {
	switch s {
	case "", "horizontal":
		return clearair.Horizontal, nil
	case "vertical":
		return clearair.Vertical, nil
	case "circular":
		return clearair.Circular, nil
	default:
		return 0, errors.Errorf("polarization: unknown value %q", s)
	}
}

var clutterByName = map[string]clutter.Category{
	"none":                              clutter.NoClutter,
	"high_crop_fields":                  clutter.HighCropFields,
	"park_land":                         clutter.ParkLand,
	"irregularly_spaced_sparse_trees":   clutter.IrregularlySpacedSparseTrees,
	"orchard_regularly_spaced":          clutter.OrchardRegularlySpaced,
	"sparse_houses":                     clutter.SparseHouses,
	"village_centre":                    clutter.VillageCentre,
	"deciduous_trees_irregularly_spaced": clutter.DeciduousTreesIrregularlySpaced,
	"deciduous_trees_regularly_spaced":   clutter.DeciduousTreesRegularlySpaced,
	"mixed_tree_forest":                 clutter.MixedTreeForest,
	"coniferous_trees_irregularly_spaced": clutter.ConiferousTreesIrregularlySpaced,
	"coniferous_trees_regularly_spaced":   clutter.ConiferousTreesRegularlySpaced,
	"tropical_rain_forest":              clutter.TropicalRainForest,
	"suburban":                          clutter.Suburban,
	"dense_suburban":                    clutter.DenseSuburban,
	"urban":                             clutter.Urban,
	"dense_urban":                       clutter.DenseUrban,
	"high_rise_urban":                   clutter.HighRiseUrban,
	"industrial_zone":                   clutter.IndustrialZone,
}

func parseClutter(s string) (clutter.Category, error) {
	if s == "" {
		return clutter.NoClutter, nil
	}
	cat, ok := clutterByName[s]
	if !ok {
		return 0, errors.Errorf("unknown clutter category %q", s)
	}
	return cat, nil
}
