/*
 * root.go, part of golattice.
 *
 * Copyright 2026 The golattice Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package cli implements the golattice command line tool.
package cli

import (
	"os"

	"github.com/rmera/golattice/internal/logger"
	"github.com/rmera/golattice/recipe"
	"github.com/spf13/cobra"
)

//Execute runs the root command and exits with status 1 on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

//NewRootCmd returns the golattice command with all its subcommands.
func NewRootCmd() *cobra.Command {
	var debug bool
	var logFile string
	var cleanup func() error
	cfg := new(recipe.Config)

	cmd := &cobra.Command{
		Use:          "golattice",
		Short:        "golattice builds crystal lattices from recipes",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			c, err := recipe.ParseEnv()
			if err != nil {
				return err
			}
			*cfg = c
			cfg.Debug = cfg.Debug || debug
			cleanup, err = logger.Setup(logger.Config{File: logFile, Debug: cfg.Debug})
			return err
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if cleanup == nil {
				return nil
			}
			return cleanup()
		},
	}
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging (also GOLATTICE_DEBUG)")
	cmd.PersistentFlags().StringVar(&logFile, "log", "", "write the log to this file instead of stderr")

	cmd.AddCommand(
		buildCmd(cfg),
		familiesCmd(),
		infoCmd(),
		neighborsCmd(cfg),
		plotCmd(cfg),
	)
	return cmd
}
