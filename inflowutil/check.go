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

package inflowutil

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/GaryBoone/GoStats/stats"
	"github.com/sirupsen/logrus"

	"github.com/spatialmodel/inflow"
	"github.com/spatialmodel/inflow/timeseries"
)

// Log is the logger used by the commands in this package.
var Log = logrus.StandardLogger()

// Check parses the transient data file at path, verifies that its
// record times are ascending, and writes a summary of its contents
// to w.
func Check(w io.Writer, path string, maxSpecies int) error {
	Log.Infof("checking transient data file %s", path)
	s, err := timeseries.LoadFile(path, maxSpecies)
	if err != nil {
		return err
	}
	if err := s.CheckMonotonic(); err != nil {
		return err
	}

	times := make([]float64, s.Len())
	massQuantity := make([]float64, s.Len())
	stagTemp := make([]float64, s.Len())
	for i := 0; i < s.Len(); i++ {
		rec := s.Record(i)
		times[i] = rec.Time
		massQuantity[i] = rec.MassQuantity
		stagTemp[i] = rec.StagTemp
	}

	fmt.Fprintf(w, "file: %s\n", path)
	fmt.Fprintf(w, "records: %d\n", s.Len())
	fmt.Fprintf(w, "time range: %g s to %g s\n", times[0], times[len(times)-1])
	if names := s.SpeciesNames(); len(names) == 0 {
		fmt.Fprintln(w, "species: none (fully mixed)")
	} else {
		fmt.Fprintf(w, "species (%d): %s\n", len(names), strings.Join(names, " "))
	}

	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "column\tmin\tmax\tmean\tstddev")
	writeStats(tw, "mass quantity", massQuantity)
	writeStats(tw, "stagnation temperature [K]", stagTemp)
	return tw.Flush()
}

func writeStats(w io.Writer, name string, data []float64) {
	var d stats.Stats
	d.UpdateArray(data)
	fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\n", name, d.Min(), d.Max(), d.Mean(), d.SampleStandardDeviation())
}

// Eval parses the transient data file at path and writes the
// interpolated boundary values at simulation time t to w. The species
// mass fractions are reported against the file's own species list.
func Eval(w io.Writer, path string, mode inflow.Mode, maxSpecies int, t float64) error {
	s, err := timeseries.LoadFile(path, maxSpecies)
	if err != nil {
		return err
	}
	rec := s.Interpolate(t)

	quantity := "mass flow rate [kg/s]"
	if mode == inflow.MassFlux {
		quantity = "mass flux [kg/(s m2)]"
	}
	fmt.Fprintf(w, "time: %g s\n", t)
	fmt.Fprintf(w, "%s: %g\n", quantity, rec.MassQuantity)
	fmt.Fprintf(w, "stagnation temperature [K]: %g\n", rec.StagTemp)
	names := s.SpeciesNames()
	for i, f := range rec.SpeciesFractions {
		name := "mixture"
		if i < len(names) {
			name = names[i]
		}
		fmt.Fprintf(w, "mass fraction %s: %g\n", name, f)
	}
	return nil
}

// Validate runs the boundary-option checks over each configured
// boundary and verifies that every referenced transient data file
// parses with ascending record times. Boundaries that do not reference
// a transient data file are reported as skipped. Data files shared by
// several boundaries are parsed only once.
func Validate(w io.Writer, boundaries map[string]inflow.Options, maxSpecies int) error {
	names := make([]string, 0, len(boundaries))
	for name := range boundaries {
		names = append(names, name)
	}
	sort.Strings(names)

	cache := inflow.NewStoreCache(maxSpecies, len(boundaries))
	for _, name := range names {
		path, mode, err := boundaries[name].CheckTransient()
		if err == inflow.ErrNotTransient {
			fmt.Fprintf(w, "%s: no transient data file; skipping\n", name)
			continue
		}
		if err != nil {
			return fmt.Errorf("inflow: boundary %s: %v", name, err)
		}
		s, err := cache.Store(path)
		if err != nil {
			return fmt.Errorf("inflow: boundary %s: %v", name, err)
		}
		if err := s.CheckMonotonic(); err != nil {
			return fmt.Errorf("inflow: boundary %s: %v", name, err)
		}
		fmt.Fprintf(w, "%s: %s from %s (%d records)\n", name, mode, path, s.Len())
	}
	return nil
}
