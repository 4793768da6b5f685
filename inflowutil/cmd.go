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

// Package inflowutil holds the command-line interface for working with
// transient inflow boundary-condition data.
package inflowutil

import (
	"fmt"

	"github.com/lnashier/viper"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spatialmodel/inflow"
	"github.com/spatialmodel/inflow/timeseries"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to Inflow.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "MaxSpecies",
			usage: `
              MaxSpecies specifies the maximum number of species a
              transient data file may declare.`,
			defaultVal: timeseries.DefaultMaxSpecies,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "time",
			usage: `
              time specifies the simulation time [s] at which to
              evaluate the boundary condition values.`,
			shorthand:  "t",
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{evalCmd.Flags()},
		},
		{
			name: "flux",
			usage: `
              flux specifies that the mass quantity column of the data
              file holds a mass flux [kg/(s m2)] rather than a mass
              flow rate [kg/s].`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{evalCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("INFLOW")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(checkCmd)
	Root.AddCommand(evalCmd)
	Root.AddCommand(validateCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("inflow: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "inflow",
	Short: "Transient inflow boundary conditions for reacting-flow simulations.",
	Long: `Inflow drives an inflow boundary's mass rate, stagnation temperature,
and species composition from a time-series data file instead of
constant values. Use the subcommands specified below to inspect and
validate transient data files and boundary configurations.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'INFLOW_var' where 'var' is
the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of Inflow.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("Inflow v%s\n", inflow.Version)
	},
	DisableAutoGenTag: true,
}

// checkCmd parses a transient data file and reports its contents.
var checkCmd = &cobra.Command{
	Use:   "check [data file]",
	Short: "Check a transient data file.",
	Long: `check parses the given transient data file, verifies that its record
times are in ascending order, and prints a summary of its contents
including statistics of the mass quantity and stagnation temperature
columns.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Check(cmd.OutOrStdout(), args[0], Cfg.GetInt("MaxSpecies"))
	},
	DisableAutoGenTag: true,
}

// evalCmd interpolates a transient data file at one query time.
var evalCmd = &cobra.Command{
	Use:   "eval [data file]",
	Short: "Evaluate a transient data file at a query time.",
	Long: `eval parses the given transient data file and prints the interpolated
mass quantity, stagnation temperature, and species mass fractions at
the time given by the --time flag. Query times outside the range of
the file return the nearest endpoint values.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := inflow.MassFlowRate
		if Cfg.GetBool("flux") {
			mode = inflow.MassFlux
		}
		return Eval(cmd.OutOrStdout(), args[0], mode,
			Cfg.GetInt("MaxSpecies"), Cfg.GetFloat64("time"))
	},
	DisableAutoGenTag: true,
}

// validateCmd validates the boundary option sets in a configuration
// file.
var validateCmd = &cobra.Command{
	Use:   "validate [boundary config file]",
	Short: "Validate configured boundary option sets.",
	Long: `validate checks the option set of every boundary listed in the given
TOML configuration file: at most one transient data file option may be
present per boundary, transient options exclude the constant-value
options, and every referenced data file must parse with ascending
record times. Boundaries without transient options are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		boundaries, err := ReadBoundaryConfig(args[0])
		if err != nil {
			return err
		}
		return Validate(cmd.OutOrStdout(), boundaries, Cfg.GetInt("MaxSpecies"))
	},
	DisableAutoGenTag: true,
}
