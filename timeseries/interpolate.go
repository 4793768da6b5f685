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

import "gonum.org/v1/gonum/floats"

// Interpolate returns the boundary values at time t, linearly
// interpolating between the two records bracketing t. Queries before
// the first record return the first record and queries after the last
// record return the last record, so a value is produced for any t.
// The blended mass fractions are not re-normalized, so floating-point
// error can make their sum differ slightly from 1.
func (s *Store) Interpolate(t float64) Record {
	if t < s.records[0].Time {
		return s.records[0].clone()
	}
	for i := 0; i < len(s.records)-1; i++ {
		lo, hi := s.records[i], s.records[i+1]
		if lo.Time <= t && t <= hi.Time {
			if hi.Time == lo.Time { // Zero-width interval.
				return lo.clone()
			}
			return blend(lo, hi, (t-lo.Time)/(hi.Time-lo.Time))
		}
	}
	return s.records[len(s.records)-1].clone()
}

// blend returns the affine combination (1-frac)*lo + frac*hi of every
// field in the two records.
func blend(lo, hi Record, frac float64) Record {
	sf := 1 - frac
	o := Record{
		Time:             sf*lo.Time + frac*hi.Time,
		MassQuantity:     sf*lo.MassQuantity + frac*hi.MassQuantity,
		StagTemp:         sf*lo.StagTemp + frac*hi.StagTemp,
		SpeciesFractions: make([]float64, len(lo.SpeciesFractions)),
	}
	copy(o.SpeciesFractions, lo.SpeciesFractions)
	floats.Scale(sf, o.SpeciesFractions)
	floats.AddScaled(o.SpeciesFractions, frac, hi.SpeciesFractions)
	return o
}
