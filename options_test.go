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

import "testing"

func TestCheckTransient(t *testing.T) {
	const dataFile = "testdata/transient_inlet.dat"
	tests := []struct {
		name     string
		options  Options
		wantPath string
		wantMode Mode
		wantErr  bool
		notTrans bool
	}{
		{
			name:     "mass flow rate file",
			options:  Options{OptionMassFlowRateFile: dataFile},
			wantPath: dataFile,
			wantMode: MassFlowRate,
		},
		{
			name:     "mass flux file",
			options:  Options{OptionMassFluxFile: dataFile},
			wantPath: dataFile,
			wantMode: MassFlux,
		},
		{
			name:     "no transient options",
			options:  Options{OptionMassFlowRate: 1.5, OptionStagTemperature: 300.0},
			notTrans: true,
		},
		{
			name:     "empty option set",
			options:  Options{},
			notTrans: true,
		},
		{
			name:    "both file options",
			options: Options{OptionMassFlowRateFile: dataFile, OptionMassFluxFile: dataFile},
			wantErr: true,
		},
		{
			name:    "combined with constant mass flow rate",
			options: Options{OptionMassFlowRateFile: dataFile, OptionMassFlowRate: 1.5},
			wantErr: true,
		},
		{
			name:    "combined with constant composition",
			options: Options{OptionMassFluxFile: dataFile, OptionMassFractions: []float64{1}},
			wantErr: true,
		},
		{
			name:    "non-string value",
			options: Options{OptionMassFlowRateFile: []float64{1, 2}},
			wantErr: true,
		},
		{
			name:    "empty file name",
			options: Options{OptionMassFlowRateFile: ""},
			wantErr: true,
		},
		{
			name:    "unopenable file",
			options: Options{OptionMassFlowRateFile: "testdata/no_such_file.dat"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		path, mode, err := tt.options.CheckTransient()
		if tt.notTrans {
			if err != ErrNotTransient {
				t.Errorf("%s: have %v, want ErrNotTransient", tt.name, err)
			}
			continue
		}
		if tt.wantErr {
			if err == nil || err == ErrNotTransient {
				t.Errorf("%s: have %v, want validation error", tt.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if path != tt.wantPath || mode != tt.wantMode {
			t.Errorf("%s: have (%s, %v), want (%s, %v)", tt.name, path, mode, tt.wantPath, tt.wantMode)
		}
	}
}
