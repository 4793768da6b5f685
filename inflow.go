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

// Package inflow supplies time-varying inflow boundary conditions for
// reacting-flow simulations. A boundary's mass rate, stagnation
// temperature, and species composition are read from a transient data
// file and interpolated to the simulation clock each time step,
// replacing the constant values a boundary condition would otherwise
// use.
package inflow

import (
	"fmt"

	"github.com/ctessum/unit"

	"github.com/spatialmodel/inflow/timeseries"
)

// Version gives the version number.
const Version = "1.1.0"

// Mode specifies how the mass quantity column of a transient data file
// is to be interpreted. The file format itself does not distinguish
// between a flow rate and a flux; the distinction comes from which
// boundary option referenced the file.
type Mode int

const (
	// MassFlowRate treats the mass quantity as a total mass flow
	// rate across the boundary [kg/s].
	MassFlowRate Mode = iota

	// MassFlux treats the mass quantity as a mass flow rate per unit
	// boundary area [kg/(s m2)].
	MassFlux
)

func (m Mode) String() string {
	switch m {
	case MassFlowRate:
		return "mass flow rate"
	case MassFlux:
		return "mass flux"
	default:
		return fmt.Sprintf("unknown mode %d", int(m))
	}
}

// Dimensions returns the SI dimensions of the mass quantity in mode m.
func (m Mode) Dimensions() unit.Dimensions {
	switch m {
	case MassFlux:
		return unit.Dimensions{unit.MassDim: 1, unit.TimeDim: -1, unit.LengthDim: -2}
	default:
		return unit.Dimensions{unit.MassDim: 1, unit.TimeDim: -1}
	}
}

// A Boundary holds the transient data for one inflow boundary. It is
// immutable after construction, so a single Boundary may be queried
// from multiple goroutines without synchronization.
type Boundary struct {
	store *timeseries.Store
	mode  Mode
	mech  Mechanism

	// activeSpecies is the number of file species being tracked; it
	// is zero for single-species simulations, which ignore the
	// composition data in the file.
	activeSpecies int

	// speciesIndex maps file-local species slots to mechanism
	// species indices.
	speciesIndex []int
}

// NewBoundary creates a transient inflow boundary from the data file
// at path, interpreting the mass quantity column according to mode.
// maxSpecies limits the number of species the file may declare
// (timeseries.DefaultMaxSpecies if <= 0), and m is the simulation's
// chemical mechanism. All ingestion and species-mapping failures are
// returned as errors; it is up to the caller to decide whether a
// failure should end the run.
func NewBoundary(path string, mode Mode, maxSpecies int, m Mechanism) (*Boundary, error) {
	store, err := timeseries.LoadFile(path, maxSpecies)
	if err != nil {
		return nil, err
	}
	return newBoundary(store, mode, m)
}

func newBoundary(store *timeseries.Store, mode Mode, m Mechanism) (*Boundary, error) {
	active, index, err := speciesIndexMap(store.SpeciesNames(), m, store.Name())
	if err != nil {
		return nil, err
	}
	return &Boundary{
		store:         store,
		mode:          mode,
		mech:          m,
		activeSpecies: active,
		speciesIndex:  index,
	}, nil
}

// Mode returns the interpretation of the boundary's mass quantity.
func (b *Boundary) Mode() Mode { return b.mode }

// Store returns the underlying time series.
func (b *Boundary) Store() *timeseries.Store { return b.store }

// BoundaryValues holds the interpolated boundary condition values for
// one query time.
type BoundaryValues struct {
	// MassQuantity is the interpolated mass flow rate [kg/s] or mass
	// flux [kg/(s m2)], depending on the boundary's Mode.
	MassQuantity *unit.Unit

	// StagTemp is the interpolated stagnation temperature [K].
	StagTemp *unit.Unit

	// MassFractions holds one mass fraction per mechanism species,
	// in mechanism index order. Mechanism species that do not appear
	// in the data file have a fraction of zero.
	MassFractions []float64
}

// Values returns the boundary condition values at simulation time t
// [s], interpolating between the records in the transient data file
// and holding the endpoint values for times outside the file's range.
func (b *Boundary) Values(t float64) *BoundaryValues {
	rec := b.store.Interpolate(t)
	v := &BoundaryValues{
		MassQuantity:  unit.New(rec.MassQuantity, b.mode.Dimensions()),
		StagTemp:      unit.New(rec.StagTemp, unit.Kelvin),
		MassFractions: make([]float64, b.mech.Len()),
	}
	if b.activeSpecies == 0 {
		// Single-species simulation: the whole stream is the one
		// species regardless of the file's composition data.
		v.MassFractions[0] = 1
		return v
	}
	for i := 0; i < b.activeSpecies; i++ {
		v.MassFractions[b.speciesIndex[i]] += rec.SpeciesFractions[i]
	}
	return v
}
