/*
 * compress.go, part of golattice.
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

package lattice

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//Files with these suffixes are compressed/decompressed transparently.
const (
	gzSuffix  = ".gz"
	zstSuffix = ".zst"
)

//stackCloser closes a compressor before the underlying file.
type stackCloser struct {
	io.Writer
	closers []io.Closer
}

func (s *stackCloser) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

//createFile creates name and returns a writer for it, compressed with gzip or zstd
//if the name ends in .gz or .zst, respectively.
func createFile(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(name, gzSuffix):
		gz := gzip.NewWriter(f)
		return &stackCloser{Writer: gz, closers: []io.Closer{gz, f}}, nil
	case strings.HasSuffix(name, zstSuffix):
		zw, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &stackCloser{Writer: zw, closers: []io.Closer{zw, f}}, nil
	}
	return f, nil
}

type readStack struct {
	io.Reader
	closers []func() error
}

func (r *readStack) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

//openFile opens name for reading, decompressing it if the name ends in .gz or .zst.
func openFile(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(name, gzSuffix):
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &readStack{Reader: gz, closers: []func() error{gz.Close, f.Close}}, nil
	case strings.HasSuffix(name, zstSuffix):
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &readStack{Reader: zr, closers: []func() error{func() error { zr.Close(); return nil }, f.Close}}, nil
	}
	return f, nil
}
