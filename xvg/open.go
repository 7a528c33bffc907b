/*
 * open.go, part of xvgplot
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
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

package xvg

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//zstd.Decoder doesn't implement io.ReadCloser, as its Close
//returns nothing, so we wrap it. Closing it also closes the file.
type zstdCloser struct {
	*zstd.Decoder
	f *os.File
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return z.f.Close()
}

type gzipCloser struct {
	*gzip.Reader
	f *os.File
}

func (g gzipCloser) Close() error {
	err := g.Reader.Close()
	if ferr := g.f.Close(); err == nil {
		err = ferr
	}
	return err
}

// openXVG opens the file name for reading, decompressing it if the name ends
// in .gz or .zst. The returned path is the absolute one, for error messages.
func openXVG(name string) (io.ReadCloser, string, error) {
	path, err := filepath.Abs(name)
	if err != nil {
		path = name
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, path, newError(ErrFileNotFound, path, "openXVG", "File not readable: %s", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, path, newError(ErrFileNotFound, path, "openXVG", "File not readable: %s (%v)", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		r, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, path, newError(ErrFormat, path, "openXVG", "Can't start gzip decompression: %v", err)
		}
		return gzipCloser{r, f}, path, nil
	case ".zst":
		r, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, path, newError(ErrFormat, path, "openXVG", "Can't start zstd decompression: %v", err)
		}
		return zstdCloser{r, f}, path, nil
	}
	return f, path, nil
}
