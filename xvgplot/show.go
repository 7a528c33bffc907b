/*
 * show.go, part of xvgplot
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

package xvgplot

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

//viewerCommand returns the command line that opens filename with
//viewer, or with the default viewer of the system, if viewer is empty.
func viewerCommand(viewer, filename string) []string {
	if f := strings.Fields(viewer); len(f) > 0 {
		return append(f, filename)
	}
	switch runtime.GOOS {
	case "darwin":
		return []string{"open", "-W", filename}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler", filename}
	default:
		return []string{"xdg-open", filename}
	}
}

// Show renders the plot to a temporary PNG file and opens it with the
// viewer set in the options. It returns only after the viewer exits.
// The temporary file is not removed, as some viewers return before they
// are done reading it.
func (C *Context) Show() error {
	f, err := os.CreateTemp("", "xvgplot-*.png")
	if err != nil {
		return fmt.Errorf("xvgplot.Show: %w", err)
	}
	w, err := C.Plot.WriterTo(C.opts.Width, C.opts.Height, "png")
	if err != nil {
		f.Close()
		return fmt.Errorf("xvgplot.Show: %w", err)
	}
	if _, err := w.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("xvgplot.Show: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("xvgplot.Show: %w", err)
	}
	args := viewerCommand(C.opts.Viewer, f.Name())
	log.Printf("[+] Opening %s with %s", f.Name(), args[0])
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("xvgplot.Show: viewer %s: %w", args[0], err)
	}
	return nil
}
