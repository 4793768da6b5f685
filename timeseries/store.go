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

// Package timeseries reads transient inflow boundary-condition data
// files and interpolates the values they hold to arbitrary simulation
// times. A data file holds a header declaring the species it covers
// followed by time-stamped records of mass quantity, stagnation
// temperature, and species mass fractions. All quantities are in SI
// units.
package timeseries

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/floats"
)

// DefaultMaxSpecies is the default limit on the number of species a
// data file may declare.
const DefaultMaxSpecies = 20

// A Record holds the boundary values at one point in time.
type Record struct {
	// Time is the elapsed simulation time [s].
	Time float64

	// MassQuantity is either a mass flow rate [kg/s] or a mass flux
	// [kg/(s m2)]; the file format does not distinguish between the
	// two, so the distinction is made by whichever boundary option
	// referenced the file.
	MassQuantity float64

	// StagTemp is the stagnation temperature [K].
	StagTemp float64

	// SpeciesFractions holds the mass fraction of each species
	// declared in the file header, normalized to sum to 1.
	SpeciesFractions []float64
}

// A Store holds the ordered sequence of records parsed from one
// transient data file. It is immutable after construction and
// therefore safe for concurrent use.
type Store struct {
	name    string
	species []string
	records []Record
}

// LoadFile reads the transient data file at path. maxSpecies limits
// the number of species the file may declare; if maxSpecies <= 0,
// DefaultMaxSpecies is used.
func LoadFile(path string, maxSpecies int) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("timeseries: opening transient data file: %v", err)
	}
	defer f.Close()
	return Load(f, path, maxSpecies)
}

// Load reads a transient data file from r, where name identifies the
// data source in error messages. The format is a sequence of
// whitespace-separated tokens:
//
//	numSpecies
//	<numSpecies species names>
//	numRecords
//	<numRecords rows of: time massQuantity stagTemp fractions...>
//
// The mass fractions in each record are normalized so that they
// sum to 1 regardless of how they were given in the file.
func Load(r io.Reader, name string, maxSpecies int) (*Store, error) {
	if maxSpecies <= 0 {
		maxSpecies = DefaultMaxSpecies
	}
	scan := bufio.NewScanner(r)
	scan.Split(bufio.ScanWords)

	next := func(what string) (string, error) {
		if !scan.Scan() {
			if err := scan.Err(); err != nil {
				return "", fmt.Errorf("timeseries: in file %s: reading %s: %v", name, what, err)
			}
			return "", fmt.Errorf("timeseries: in file %s: unexpected end of file while reading %s", name, what)
		}
		return scan.Text(), nil
	}
	nextInt := func(what string) (int, error) {
		tok, err := next(what)
		if err != nil {
			return 0, err
		}
		i, err := strconv.Atoi(tok)
		if err != nil {
			return 0, fmt.Errorf("timeseries: in file %s: reading %s: invalid integer '%s'", name, what, tok)
		}
		return i, nil
	}
	nextFloat := func(what string) (float64, error) {
		tok, err := next(what)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return 0, fmt.Errorf("timeseries: in file %s: reading %s: invalid number '%s'", name, what, tok)
		}
		return v, nil
	}

	nSpecies, err := nextInt("species count")
	if err != nil {
		return nil, err
	}
	if nSpecies < 0 {
		return nil, fmt.Errorf("timeseries: in file %s: negative species count %d", name, nSpecies)
	}
	if nSpecies > maxSpecies {
		return nil, fmt.Errorf("timeseries: in file %s: %d species, but no more than %d are allowed", name, nSpecies, maxSpecies)
	}

	species := make([]string, nSpecies)
	for i := range species {
		if species[i], err = next(fmt.Sprintf("species name %d", i)); err != nil {
			return nil, err
		}
	}

	nRecords, err := nextInt("record count")
	if err != nil {
		return nil, err
	}
	if nRecords < 1 {
		return nil, fmt.Errorf("timeseries: in file %s: file contains %d records but at least 1 is required", name, nRecords)
	}

	records := make([]Record, nRecords)
	for i := range records {
		rec := &records[i]
		if rec.Time, err = nextFloat(fmt.Sprintf("record %d: time", i)); err != nil {
			return nil, err
		}
		if rec.MassQuantity, err = nextFloat(fmt.Sprintf("record %d: mass quantity", i)); err != nil {
			return nil, err
		}
		if rec.StagTemp, err = nextFloat(fmt.Sprintf("record %d: stagnation temperature", i)); err != nil {
			return nil, err
		}
		// Files declaring no species are assumed to describe a
		// single fully-mixed stream, so the first fraction slot is
		// seeded with 1 before any declared values overwrite it.
		nSlots := nSpecies
		if nSlots == 0 {
			nSlots = 1
		}
		rec.SpeciesFractions = make([]float64, nSlots)
		rec.SpeciesFractions[0] = 1
		for j := 0; j < nSpecies; j++ {
			if rec.SpeciesFractions[j], err = nextFloat(fmt.Sprintf("record %d: mass fraction %d", i, j)); err != nil {
				return nil, err
			}
		}
		sum := floats.Sum(rec.SpeciesFractions)
		if sum == 0 {
			return nil, fmt.Errorf("timeseries: in file %s: record %d: species mass fractions sum to zero", name, i)
		}
		floats.Scale(1/sum, rec.SpeciesFractions)
	}

	return &Store{name: name, species: species, records: records}, nil
}

// Name returns the name of the data source this store was read from,
// typically a file path.
func (s *Store) Name() string { return s.name }

// SpeciesNames returns the names of the species declared in the data
// file header, in the order their mass fractions appear in each record.
func (s *Store) SpeciesNames() []string { return s.species }

// Len returns the number of records in the store.
func (s *Store) Len() int { return len(s.records) }

// Record returns a copy of record i.
func (s *Store) Record(i int) Record { return s.records[i].clone() }

func (r Record) clone() Record {
	o := r
	o.SpeciesFractions = make([]float64, len(r.SpeciesFractions))
	copy(o.SpeciesFractions, r.SpeciesFractions)
	return o
}

// CheckMonotonic returns an error if the record times are not in
// ascending order. Interpolation assumes ascending times but does not
// verify them, so callers validating user-supplied data should run
// this check before use.
func (s *Store) CheckMonotonic() error {
	for i := 1; i < len(s.records); i++ {
		if s.records[i].Time < s.records[i-1].Time {
			return fmt.Errorf("timeseries: in file %s: record %d: time %g is earlier than the preceding time %g",
				s.name, i, s.records[i].Time, s.records[i-1].Time)
		}
	}
	return nil
}
