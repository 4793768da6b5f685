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

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cast"
)

// Option keys recognized on an inflow boundary. The two *File options
// name transient data files; the remaining options carry the ordinary
// constant boundary values that a transient file replaces.
const (
	OptionMassFlowRateFile = "MassFlowRateFile"
	OptionMassFluxFile     = "MassFluxFile"

	OptionMassFlowRate    = "MassFlowRate"
	OptionMassFlux        = "MassFlux"
	OptionStagTemperature = "StagTemperature"
	OptionMassFractions   = "MassFractions"
)

// constantOptions are the constant-value options that become invalid
// once a transient data file is attached to a boundary.
var constantOptions = []string{
	OptionMassFlowRate,
	OptionMassFlux,
	OptionStagTemperature,
	OptionMassFractions,
}

// ErrNotTransient is returned by CheckTransient for boundaries that do
// not reference a transient data file; certification of such
// boundaries is deferred to other checks.
var ErrNotTransient = errors.New("inflow: boundary does not reference a transient data file")

// Options holds the option set attached to one inflow boundary, keyed
// by option name.
type Options map[string]interface{}

// CheckTransient validates the transient-data portion of the option
// set and, when valid, returns the data file path and the mass
// quantity interpretation mode. At most one of OptionMassFlowRateFile
// and OptionMassFluxFile may be present; whichever is present excludes
// all of the constant-value options. If neither is present,
// ErrNotTransient is returned. The named file must exist and be
// openable; this duplicates a check performed again at ingestion time,
// but reporting it here gives the user a configuration-stage
// diagnostic before the simulation starts.
func (o Options) CheckTransient() (path string, mode Mode, err error) {
	_, hasRate := o[OptionMassFlowRateFile]
	_, hasFlux := o[OptionMassFluxFile]

	var key string
	switch {
	case hasRate && hasFlux:
		return "", 0, fmt.Errorf("inflow: options %s and %s are mutually exclusive", OptionMassFlowRateFile, OptionMassFluxFile)
	case hasRate:
		key, mode = OptionMassFlowRateFile, MassFlowRate
	case hasFlux:
		key, mode = OptionMassFluxFile, MassFlux
	default:
		return "", 0, ErrNotTransient
	}

	for _, c := range constantOptions {
		if _, ok := o[c]; ok {
			return "", 0, fmt.Errorf("inflow: option %s may not be combined with %s", c, key)
		}
	}

	path, err = cast.ToStringE(o[key])
	if err != nil || path == "" {
		return "", 0, fmt.Errorf("inflow: option %s must name a transient data file, but is '%v'", key, o[key])
	}
	f, err := os.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("inflow: option %s: cannot open transient data file: %v", key, err)
	}
	f.Close()
	return path, mode, nil
}
