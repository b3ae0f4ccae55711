/*
 * info.go, part of golattice.
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

package cli

import (
	"fmt"
	"text/tabwriter"

	lattice "github.com/rmera/golattice"
	"github.com/spf13/cobra"
)

func familiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "List the available lattice families",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FAMILY\tSYSTEM\tSITES\tPARAMETERS")
			for _, f := range lattice.Families() {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", f, f.System(), f.Basis().NPoints(), f.Params())
			}
			return w.Flush()
		},
	}
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <family>",
		Short: "Show the basis of a lattice family",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := lattice.ParseFamily(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\nparameters: %s\n", f, f.System(), f.Params())
			b := f.Basis()
			for _, l := range b.Labels() {
				for _, p := range b.Points(l) {
					fmt.Fprintf(out, "  %-2s %6.3f %6.3f %6.3f\n", l, p[0], p[1], p[2])
				}
			}
			return nil
		},
	}
}
