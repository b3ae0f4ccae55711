/*
 * logger_test.go, part of golattice.
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

package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWriter(Te *testing.T) {
	var buf bytes.Buffer
	cleanup, err := Setup(Config{Out: &buf})
	require.NoError(Te, err)
	L().Debug("hidden")
	L().Info("lattice.built", "family", "FCC", "sites", 4)
	require.NoError(Te, cleanup())
	L().Info("discarded")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(Te, lines, 1)
	var rec map[string]any
	require.NoError(Te, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(Te, "lattice.built", rec["msg"])
	assert.Equal(Te, "FCC", rec["family"])
	assert.Equal(Te, float64(4), rec["sites"])
	assert.True(Te, strings.HasSuffix(rec["time"].(string), "Z"))
}

func TestSetupFile(Te *testing.T) {
	fname := filepath.Join(Te.TempDir(), "logs", "golattice.log")
	cleanup, err := Setup(Config{File: fname, Debug: true})
	require.NoError(Te, err)
	L().Debug("recipe.loaded", "path", "x.yaml")
	require.NoError(Te, cleanup())
	b, err := os.ReadFile(fname)
	require.NoError(Te, err)
	assert.Contains(Te, string(b), `"msg":"logger.initialized"`)
	assert.Contains(Te, string(b), `"msg":"recipe.loaded"`)
	assert.Contains(Te, string(b), `"source"`)
}
