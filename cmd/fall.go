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
	"log/slog"

	"github.com/rotblauer/yfall/api"
	"github.com/rotblauer/yfall/inspect"
	"github.com/spf13/cobra"
)

// fallCmd represents the fall command
var fallCmd = &cobra.Command{
	Use:     "fall",
	Aliases: []string{"run"},
	Short:   "Compute and print heights (same as running yfall without a command)",
	Long: `Compute heights for every time sample and print them to stdout.

Flags:

  --v0          Initial velocity. (Default is 2520.)
  --x0          Initial position. (Default is 0.)
  --accel       Acceleration term a in a*t^2 + v0*t + x0. (Default is -9.8.)
  --format      array prints one summarized line; ndjson prints {"t":..,"y":..} per sample.
  --precision   Fixed decimals per value. (Default is -1, shortest exact value.)
  --breakpoint  off skips the pause entirely.
                log writes the inspected values at debug verbosity. (Default.)
                prompt stops and reads commands from stdin before computing:
                  p NAME, pp NAME, whatis NAME, a, l, h, c to continue, q to quit.

Examples:

  yfall fall --format ndjson --precision 3
  yfall fall --breakpoint log -v debug
  echo 'p t' | yfall fall --breakpoint prompt
`,
	SilenceUsage: true,
	RunE:         runFall,
}

func runFall(cmd *cobra.Command, args []string) error {
	setDefaultSlog(cmd, args)

	cfg := fallConfig()
	slog.Debug("Fall config", "v0", cfg.V0, "x0", cfg.X0, "a", cfg.Acceleration,
		"format", cfg.Format, "precision", cfg.Precision, "breakpoint", cfg.Breakpoint)

	mode, err := inspect.ParseMode(cfg.Breakpoint)
	if err != nil {
		return err
	}
	bp := inspect.NewBreakpoint(mode, cmd.InOrStdin(), cmd.ErrOrStderr())

	_, err = api.Fall(cfg, cmd.OutOrStdout(), bp)
	return err
}

func init() {
	rootCmd.AddCommand(fallCmd)
}
