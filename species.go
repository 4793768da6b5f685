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

package inflow

import "fmt"

// UnknownSpeciesError is returned when a species named in a transient
// data file is not part of the simulation's chemical mechanism.
type UnknownSpeciesError struct {
	File    string
	Species string
}

func (e UnknownSpeciesError) Error() string {
	return fmt.Sprintf("inflow: in file %s: species %s is not part of the chemical mechanism", e.File, e.Species)
}

// speciesIndexMap resolves each species declared in a transient data
// file to its index within mechanism m. If the mechanism holds only a
// single species the composition data in the file is irrelevant, so
// zero active species and an all-zero index map are returned without
// resolving any names. Otherwise any unresolvable name is fatal:
// composition data is meaningless if any component cannot be placed.
func speciesIndexMap(names []string, m Mechanism, file string) (active int, index []int, err error) {
	index = make([]int, len(names))
	if m.Len() == 1 {
		return 0, index, nil
	}
	for i, name := range names {
		j := m.SpeciesIndex(name)
		if j < 0 {
			return 0, nil, UnknownSpeciesError{File: file, Species: name}
		}
		index[i] = j
	}
	return len(names), index, nil
}
