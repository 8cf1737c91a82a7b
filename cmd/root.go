/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/rotblauer/yfall/common"
	"github.com/rotblauer/yfall/params"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "yfall",
	Short: "Print projectile height over time",
	Long: `Compute the height of a projectile launched straight up under constant acceleration,
sampled every 0.1s over [0s, 300s), and print the heights to stdout.

The height at time t is a*t^2 + v0*t + x0. There is no 1/2 on the acceleration term.

Run without arguments to use the defaults (v0 = 2520, x0 = 0, a = -9.8).

Configuration is read, in increasing priority, from a config file
(--config, or $HOME/.yfall.yaml), YFALL_* environment variables
(YFALL_V0, YFALL_X0, YFALL_ACCEL, ...), and flags.

Examples:

  yfall
  yfall --v0 100 --format ndjson | head
  yfall --breakpoint prompt
`,
	SilenceUsage: true,
	RunE:         runFall,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := params.DefaultFallConfig()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.yfall.yaml)")
	rootCmd.PersistentFlags().StringP("verbosity", "v", "info", "Log level (debug, info, warn, error)")

	rootCmd.PersistentFlags().Float64("v0", defaults.V0, "Initial velocity")
	rootCmd.PersistentFlags().Float64("x0", defaults.X0, "Initial position")
	rootCmd.PersistentFlags().Float64("accel", defaults.Acceleration, "Acceleration, applied as a*t^2")

	rootCmd.PersistentFlags().String("format", defaults.Format, "Output format (array, ndjson)")
	rootCmd.PersistentFlags().Int("precision", defaults.Precision, "Decimals per value; negative prints the shortest exact value")
	rootCmd.PersistentFlags().String("breakpoint", defaults.Breakpoint, "Pause before computing (off, log, prompt)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".yfall" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".yfall")
	}

	viper.SetEnvPrefix("yfall")
	viper.AutomaticEnv() // read in environment variables that match
	cobra.CheckErr(viper.BindPFlags(rootCmd.PersistentFlags()))

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		cobra.CheckErr(err)
	}
}

func setDefaultSlog(cmd *cobra.Command, args []string) {
	level, err := common.ParseSlogLevel(viper.GetString("verbosity"))
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})))
	if err != nil {
		slog.Warn("Invalid verbosity, using info", "error", err)
	}
}

// fallConfig layers viper settings over the defaults.
func fallConfig() *params.FallConfig {
	cfg := params.DefaultFallConfig()
	cfg.V0 = viper.GetFloat64("v0")
	cfg.X0 = viper.GetFloat64("x0")
	cfg.Acceleration = viper.GetFloat64("accel")
	cfg.Format = viper.GetString("format")
	cfg.Precision = viper.GetInt("precision")
	cfg.Breakpoint = viper.GetString("breakpoint")
	return cfg
}
