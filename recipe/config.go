/*
 * config.go, part of golattice.
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

package recipe

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	lattice "github.com/rmera/golattice"
)

//Config holds the settings taken from the environment.
type Config struct {
	//OutDir is where relative output paths are written.
	OutDir  string `env:"GOLATTICE_OUTDIR" envDefault:"."`
	Debug   bool   `env:"GOLATTICE_DEBUG"`
	Workers int    `env:"GOLATTICE_WORKERS" envDefault:"0"`
}

//ParseEnv loads the configuration from environment variables.
func ParseEnv() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

//OutputPath returns where the output name should be written.
func (c Config) OutputPath(name string) string {
	if filepath.IsAbs(name) || c.OutDir == "" {
		return name
	}
	return filepath.Join(c.OutDir, name)
}

//Write writes P to each of the outputs, in the format given by their extension
//(.xyz or .pdb, optionally followed by .gz or .zst). It returns the paths written.
func Write(P *lattice.Populated, outputs []string, c Config) ([]string, error) {
	written := make([]string, 0, len(outputs))
	for _, o := range outputs {
		path := c.OutputPath(o)
		base := strings.TrimSuffix(strings.TrimSuffix(o, ".gz"), ".zst")
		var err error
		switch strings.ToLower(filepath.Ext(base)) {
		case ".xyz":
			err = lattice.XYZFileWrite(path, P)
		case ".pdb":
			err = lattice.PDBFileWrite(path, P)
		default:
			err = fmt.Errorf("%w: unknown format for output %s", ErrInvalid, o)
		}
		if err != nil {
			return written, &OpError{Op: "recipe.write", Path: path, Err: err}
		}
		written = append(written, path)
	}
	return written, nil
}
