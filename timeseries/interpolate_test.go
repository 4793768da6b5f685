/*
Copyright © 2026 the Inflow authors.
This file is part of Inflow.

Inflow is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Inflow is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Inflow.  If not, see <http://www.gnu.org/licenses/>.
*/

package timeseries

import (
	"math"
	"reflect"
	"testing"
)

func testStore() *Store {
	return &Store{
		name:    "test.dat",
		species: []string{"H2", "O2"},
		records: []Record{
			{Time: 0, MassQuantity: 1, StagTemp: 300, SpeciesFractions: []float64{0.5, 0.5}},
			{Time: 10, MassQuantity: 2, StagTemp: 350, SpeciesFractions: []float64{0.2, 0.8}},
		},
	}
}

func recordsEqual(a, b Record, tol float64) bool {
	if math.Abs(a.Time-b.Time) > tol ||
		math.Abs(a.MassQuantity-b.MassQuantity) > tol ||
		math.Abs(a.StagTemp-b.StagTemp) > tol ||
		len(a.SpeciesFractions) != len(b.SpeciesFractions) {
		return false
	}
	for i := range a.SpeciesFractions {
		if math.Abs(a.SpeciesFractions[i]-b.SpeciesFractions[i]) > tol {
			return false
		}
	}
	return true
}

func TestInterpolate(t *testing.T) {
	s := testStore()
	tests := []struct {
		t    float64
		want Record
	}{
		// Flat extrapolation below the range.
		{t: -1, want: s.records[0]},
		// Endpoint continuity.
		{t: 0, want: s.records[0]},
		{t: 10, want: s.records[1]},
		// Affine blend inside the range.
		{t: 5, want: Record{Time: 5, MassQuantity: 1.5, StagTemp: 325, SpeciesFractions: []float64{0.35, 0.65}}},
		{t: 2.5, want: Record{Time: 2.5, MassQuantity: 1.25, StagTemp: 312.5, SpeciesFractions: []float64{0.425, 0.575}}},
		// Flat extrapolation above the range.
		{t: 20, want: s.records[1]},
	}
	for _, tt := range tests {
		have := s.Interpolate(tt.t)
		if !recordsEqual(have, tt.want, 1e-14) {
			t.Errorf("t=%g: have %+v, want %+v", tt.t, have, tt.want)
		}
	}
}

func TestInterpolate_extrapolationExact(t *testing.T) {
	// Extrapolated values must equal the endpoint records exactly,
	// field by field, not merely within tolerance.
	s := testStore()
	if have := s.Interpolate(-100); !reflect.DeepEqual(have, s.records[0]) {
		t.Errorf("below range: have %+v, want %+v", have, s.records[0])
	}
	if have := s.Interpolate(1e6); !reflect.DeepEqual(have, s.records[1]) {
		t.Errorf("above range: have %+v, want %+v", have, s.records[1])
	}
}

func TestInterpolate_monotonicBlend(t *testing.T) {
	// Every interpolated field must lie between its two endpoint
	// values for query times inside an interval.
	s := testStore()
	for _, q := range []float64{0.1, 1, 3.7, 5, 8.2, 9.9} {
		rec := s.Interpolate(q)
		checkBetween := func(field string, v, a, b float64) {
			if v < math.Min(a, b) || v > math.Max(a, b) {
				t.Errorf("t=%g: %s=%g outside [%g, %g]", q, field, v, a, b)
			}
		}
		checkBetween("mass quantity", rec.MassQuantity, s.records[0].MassQuantity, s.records[1].MassQuantity)
		checkBetween("stagnation temperature", rec.StagTemp, s.records[0].StagTemp, s.records[1].StagTemp)
		for i := range rec.SpeciesFractions {
			checkBetween("mass fraction", rec.SpeciesFractions[i],
				s.records[0].SpeciesFractions[i], s.records[1].SpeciesFractions[i])
		}
	}
}

func TestInterpolate_singleRecord(t *testing.T) {
	s := &Store{
		name:    "single.dat",
		species: []string{"N2"},
		records: []Record{
			{Time: 3, MassQuantity: 0.7, StagTemp: 400, SpeciesFractions: []float64{1}},
		},
	}
	for _, q := range []float64{-1e9, 0, 3, 100, 1e9} {
		if have := s.Interpolate(q); !reflect.DeepEqual(have, s.records[0]) {
			t.Errorf("t=%g: have %+v, want %+v", q, have, s.records[0])
		}
	}
}

func TestInterpolate_repeatedTime(t *testing.T) {
	// Records are allowed to share a time stamp (a step change); a
	// query at the shared time returns the earlier record rather
	// than dividing by a zero interval width.
	s := &Store{
		name:    "step.dat",
		species: []string{"N2"},
		records: []Record{
			{Time: 0, MassQuantity: 1, StagTemp: 300, SpeciesFractions: []float64{1}},
			{Time: 5, MassQuantity: 1, StagTemp: 300, SpeciesFractions: []float64{1}},
			{Time: 5, MassQuantity: 2, StagTemp: 350, SpeciesFractions: []float64{1}},
			{Time: 9, MassQuantity: 2, StagTemp: 350, SpeciesFractions: []float64{1}},
		},
	}
	if have := s.Interpolate(5); !reflect.DeepEqual(have, s.records[1]) {
		t.Errorf("t=5: have %+v, want %+v", have, s.records[1])
	}
	want := Record{Time: 7, MassQuantity: 2, StagTemp: 350, SpeciesFractions: []float64{1}}
	if have := s.Interpolate(7); !recordsEqual(have, want, 1e-14) {
		t.Errorf("t=7: have %+v, want %+v", have, want)
	}
}

func TestInterpolate_doesNotAliasStore(t *testing.T) {
	s := testStore()
	rec := s.Interpolate(-1)
	rec.SpeciesFractions[0] = 99
	if s.records[0].SpeciesFractions[0] != 0.5 {
		t.Error("modifying an interpolated record changed the store")
	}
}
