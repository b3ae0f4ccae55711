/*
 * build.go, part of golattice.
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

	lattice "github.com/rmera/golattice"
	"github.com/rmera/golattice/internal/logger"
	"github.com/rmera/golattice/latplot"
	"github.com/rmera/golattice/neighbors"
	"github.com/rmera/golattice/recipe"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

//load reads the recipe in path and builds its structure.
func load(path string, cfg *recipe.Config) (*recipe.Recipe, *lattice.Populated, error) {
	log := logger.L()
	r, err := recipe.Load(path)
	if err != nil {
		return nil, nil, err
	}
	log.Info("recipe.loaded", "path", path, "family", r.Family, "custom", r.Custom != nil, "repeat", r.Repeat)
	P, err := r.Build(cfg.Workers)
	if err != nil {
		log.Error("lattice.failed", "path", path, "err", err)
		return nil, nil, err
	}
	log.Info("lattice.populated", "name", P.Name, "sites", P.Len(), "atoms", P.NAtoms())
	log.Debug("lattice.cell", "cell", P.Cell.String())
	return r, P, nil
}

func buildCmd(cfg *recipe.Config) *cobra.Command {
	var outputs []string
	c := &cobra.Command{
		Use:   "build <recipe.yaml>",
		Short: "Build the lattice of a recipe and write its output files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, P, err := load(args[0], cfg)
			if err != nil {
				return err
			}
			if len(outputs) == 0 {
				outputs = r.Outputs
			}
			if len(outputs) == 0 {
				return fmt.Errorf("no outputs given for %s", args[0])
			}
			written, err := recipe.Write(P, outputs, *cfg)
			for _, w := range written {
				logger.L().Info("file.written", "path", w)
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return err
		},
	}
	c.Flags().StringSliceVarP(&outputs, "output", "o", nil, "output files, overriding the ones in the recipe")
	return c
}

func neighborsCmd(cfg *recipe.Config) *cobra.Command {
	var cutoff, maxdist float64
	var bins int
	c := &cobra.Command{
		Use:   "neighbors <recipe.yaml>",
		Short: "Print coordination statistics of the lattice of a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, P, err := load(args[0], cfg)
			if err != nil {
				return err
			}
			G, err := neighbors.Build(P, cutoff)
			if err != nil {
				return err
			}
			s := G.Stats()
			logger.L().Info("neighbors.built", "cutoff", G.Cutoff, "edges", s.Edges)
			fmt.Fprintf(cmd.OutOrStdout(), "cutoff %.4f\n%s", G.Cutoff, s)
			if bins < 1 || maxdist <= 0 {
				return nil
			}
			dividers := make([]float64, bins+1)
			floats.Span(dividers, 0, maxdist)
			h, err := neighbors.DistanceHistogram(P, dividers, false)
			if err != nil {
				return err
			}
			for i, v := range h {
				fmt.Fprintf(cmd.OutOrStdout(), "%8.3f %8.3f %8.0f\n", dividers[i], dividers[i+1], v)
			}
			return nil
		},
	}
	c.Flags().Float64Var(&cutoff, "cutoff", 0, "neighbor distance cutoff (nearest neighbors if not set)")
	c.Flags().Float64Var(&maxdist, "histo", 0, "also print a histogram of site-site distances up to this value")
	c.Flags().IntVar(&bins, "bins", 20, "number of bins for --histo")
	return c
}

func plotCmd(cfg *recipe.Config) *cobra.Command {
	var plane, out, title string
	var cell bool
	c := &cobra.Command{
		Use:   "plot <recipe.yaml>",
		Short: "Plot a projection of the lattice of a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pl, err := latplot.ParsePlane(plane)
			if err != nil {
				return err
			}
			_, P, err := load(args[0], cfg)
			if err != nil {
				return err
			}
			path := cfg.OutputPath(out)
			if err := latplot.Save(P, latplot.Options{Title: title, Plane: pl, Cell: cell}, path); err != nil {
				return err
			}
			logger.L().Info("file.written", "path", path, "plane", pl.String())
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	c.Flags().StringVar(&plane, "plane", "xy", "projection plane: xy, xz or yz")
	c.Flags().StringVarP(&out, "output", "o", "lattice.png", "image file (png, svg or pdf)")
	c.Flags().StringVar(&title, "title", "", "plot title")
	c.Flags().BoolVar(&cell, "cell", true, "draw the periodic cell")
	return c
}
