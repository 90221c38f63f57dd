package anomalous

import (
	"math"
	"testing"

	"github.com/trentholliday/p452/gas"
	"github.com/trentholliday/p452/path"
)

func flatPath(totalKm float64, n int) path.Path {
	pts := make([]path.ProfilePoint, n)
	step := totalKm / float64(n-1)
	for i := 0; i < n; i++ {
		pts[i] = path.ProfilePoint{DistanceKm: float64(i) * step, HeightASLm: 0, Zone: path.Inland}
	}
	p, err := path.NewPath(pts)
	if err != nil {
		panic(err)
	}
	return p
}

func TestEffectiveHeights_FlooredAtOneMeter(t *testing.T) {
	p := flatPath(100, 5)
	effTx, effRx := EffectiveHeights(p, 0.5, 0.5)
	if effTx != minEffectiveDuctingHeightM || effRx != minEffectiveDuctingHeightM {
		t.Errorf("effective heights below 1m should be floored, got tx=%f rx=%f", effTx, effRx)
	}
}

func TestEffectiveHeights_AboveFloorPassesThrough(t *testing.T) {
	p := flatPath(100, 5)
	effTx, effRx := EffectiveHeights(p, 50, 60)
	if math.Abs(effTx-50) > 1e-9 || math.Abs(effRx-60) > 1e-9 {
		t.Errorf("flat zero-height profile should leave antenna heights unchanged, got tx=%f rx=%f", effTx, effRx)
	}
}

func TestTerrainRoughnessM_ZeroOnFlatProfile(t *testing.T) {
	p := flatPath(100, 11)
	got := TerrainRoughnessM(p, 10, 10)
	if got > 1e-9 {
		t.Errorf("a flat profile should have zero terrain roughness, got %f", got)
	}
}

func TestTerrainRoughnessM_PositiveWithObstruction(t *testing.T) {
	pts := []path.ProfilePoint{
		{DistanceKm: 0, HeightASLm: 0, Zone: path.Inland},
		{DistanceKm: 50, HeightASLm: 500, Zone: path.Inland},
		{DistanceKm: 100, HeightASLm: 0, Zone: path.Inland},
	}
	p, err := path.NewPath(pts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := TerrainRoughnessM(p, 10, 10)
	if got <= 0 {
		t.Errorf("a path with a tall mid-point obstruction should have positive terrain roughness, got %f", got)
	}
}

func TestPredict_TotalIsSumOfComponents(t *testing.T) {
	p := flatPath(150, 5)
	horizon := p.HorizonAnglesAndDistances(50, 50, 8500)
	var link gas.DefaultLink

	res, err := Predict(link, p, horizon, 2, 50, 50, 0.2, 8500, 0, 0, 288.15, 1013, 50, 10, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sum := res.FixedCouplingLossDB + res.TimePercentAndAngularLossDB + res.GasLossDB
	if math.Abs(sum-res.TotalLossDB) > 1e-9 {
		t.Errorf("TotalLossDB should equal the sum of its components, got %f vs %f", res.TotalLossDB, sum)
	}
}

func TestPredict_HigherFrequencyIncreasesGasLoss(t *testing.T) {
	p := flatPath(150, 5)
	horizon := p.HorizonAnglesAndDistances(50, 50, 8500)
	var link gas.DefaultLink

	low, err := Predict(link, p, horizon, 2, 50, 50, 0.2, 8500, 0, 0, 288.15, 1013, 50, 10, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	high, err := Predict(link, p, horizon, 22.235, 50, 50, 0.2, 8500, 0, 0, 288.15, 1013, 50, 10, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if high.GasLossDB <= low.GasLossDB {
		t.Errorf("gas loss near the water-vapor line should exceed that at 2 GHz: low=%f high=%f", low.GasLossDB, high.GasLossDB)
	}
}
