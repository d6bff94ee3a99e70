package polyline_test

import (
	"reflect"
	"testing"

	"github.com/dphilipson/graphs-and-paths/geom"
	"github.com/dphilipson/graphs-and-paths/polyline"
)

func TestCumulativeDistances(t *testing.T) {
	locs := []geom.Location{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 3, Y: 10}}
	got := polyline.CumulativeDistances(locs)
	want := []float64{0, 5, 11}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CumulativeDistances = %v, want %v", got, want)
	}
}

func TestCumulativeDistancesSinglePoint(t *testing.T) {
	got := polyline.CumulativeDistances([]geom.Location{{X: 1, Y: 1}})
	want := []float64{0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CumulativeDistances = %v, want %v", got, want)
	}
}

func TestFindFloorIndex(t *testing.T) {
	sorted := []float64{0, 5, 11, 11, 20}

	cases := []struct {
		x    float64
		want int
	}{
		{-1, -1},
		{0, 0},
		{3, 0},
		{5, 1},
		{10, 1},
		{11, 3},
		{15, 3},
		{20, 4},
		{100, 4},
	}
	for _, c := range cases {
		if got := polyline.FindFloorIndex(sorted, c.x); got != c.want {
			t.Fatalf("FindFloorIndex(%v, %v) = %v, want %v", sorted, c.x, got, c.want)
		}
	}
}

func TestDedupeLocations(t *testing.T) {
	locs := []geom.Location{
		{X: 0, Y: 0},
		{X: 0, Y: 0},
		{X: 1, Y: 1},
		{X: 1, Y: 1},
		{X: 1, Y: 1},
		{X: 2, Y: 2},
	}
	want := []geom.Location{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}
	got := polyline.DedupeLocations(locs)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DedupeLocations = %v, want %v", got, want)
	}
}

func TestDedupeLocationsEmpty(t *testing.T) {
	got := polyline.DedupeLocations(nil)
	if len(got) != 0 {
		t.Fatalf("DedupeLocations(nil) = %v, want empty", got)
	}
}
