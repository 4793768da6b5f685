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
	"os"

	"github.com/BurntSushi/toml"

	"github.com/spatialmodel/inflow"
)

// BoundaryConfig holds the boundary option sets read from a
// configuration file.
type BoundaryConfig struct {
	// Boundaries maps boundary names to their option sets. Option
	// names are case-sensitive; file names within the options may
	// contain environment variables.
	Boundaries map[string]inflow.Options
}

// ReadBoundaryConfig reads the boundary option sets from the TOML
// configuration file at path.
func ReadBoundaryConfig(path string) (map[string]inflow.Options, error) {
	f, err := os.Open(os.ExpandEnv(path))
	if err != nil {
		return nil, fmt.Errorf("inflow: opening boundary configuration file: %v", err)
	}
	defer f.Close()
	var c BoundaryConfig
	if _, err := toml.DecodeReader(f, &c); err != nil {
		return nil, fmt.Errorf("inflow: reading boundary configuration file %s: %v", path, err)
	}
	if len(c.Boundaries) == 0 {
		return nil, fmt.Errorf("inflow: there are no boundaries specified in %s. Please fill in "+
			"the Boundaries configuration and try again.", path)
	}
	for _, opts := range c.Boundaries {
		for key, val := range opts {
			if s, ok := val.(string); ok {
				opts[key] = os.ExpandEnv(s)
			}
		}
	}
	return c.Boundaries, nil
}
