package tropo

import (
	"errors"
	"math"
	"testing"

	"github.com/trentholliday/p452/gas"
)

func TestPredict_RejectsOutOfRangeTimePercent(t *testing.T) {
	var link gas.DefaultLink
	if _, err := Predict(link, 200, 50, 50, 2, 5, 5, 8500, 320, 0, 0, 288.15, 1013, 60); !errors.Is(err, ErrInvalidTimePercent) {
		t.Errorf("expected ErrInvalidTimePercent for p=60, got %v", err)
	}
	if _, err := Predict(link, 200, 50, 50, 2, 5, 5, 8500, 320, 0, 0, 288.15, 1013, 0); !errors.Is(err, ErrInvalidTimePercent) {
		t.Errorf("expected ErrInvalidTimePercent for p=0, got %v", err)
	}
}

func TestPredict_IncreasesWithDistance(t *testing.T) {
	var link gas.DefaultLink
	near, err := Predict(link, 150, 50, 50, 2, 5, 5, 8500, 320, 0, 0, 288.15, 1013, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	far, err := Predict(link, 300, 50, 50, 2, 5, 5, 8500, 320, 0, 0, 288.15, 1013, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if far <= near {
		t.Errorf("troposcatter loss should increase with distance: near=%f far=%f", near, far)
	}
}

func TestPredict_HigherHorizonGainsReduceNeitherTermIncorrectly(t *testing.T) {
	var link gas.DefaultLink
	lowGain, err := Predict(link, 200, 50, 50, 2, 5, 5, 8500, 320, 0, 0, 288.15, 1013, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	highGain, err := Predict(link, 200, 50, 50, 2, 5, 5, 8500, 320, 20, 20, 288.15, 1013, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(highGain-lowGain) < 1e-9 {
		t.Errorf("aperture-to-medium coupling loss should respond to horizon gain, got equal values %f", lowGain)
	}
}
