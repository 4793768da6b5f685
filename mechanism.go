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

// Mechanism is an interface for the host simulation's chemistry model.
// It provides the species bookkeeping needed to map the composition
// data in a transient data file onto the simulation's species.
type Mechanism interface {
	// SpeciesIndex returns the index of the named species within the
	// mechanism, or a negative number if the mechanism does not
	// include the species.
	SpeciesIndex(name string) int

	// Len returns the number of species in the mechanism.
	Len() int
}
