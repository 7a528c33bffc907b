/*
 * main.go, part of xvgplot
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

// Command xvgplot plots XVG line charts produced by the Gromacs analysis tools.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/rmera/xvgplot/internal/config"
	"github.com/rmera/xvgplot/xvg"
	"github.com/rmera/xvgplot/xvgplot"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "xvgplot: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xvgplot [flags] FILE.xvg",
		Short: "Plot XVG line charts produced by Gromacs analysis tools",
		Long: `xvgplot reads an XVG file, as written by gmx energy, gmx rms and
friends, and plots every series against the first column. The plot is
either saved to a file (png, svg, pdf, eps, jpg, tif) or shown in a viewer.
Compressed inputs (.xvg.gz, .xvg.zst) are also read.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE:          run,
	}
	f := cmd.Flags()
	f.StringP("output", "o", "", "Output file. The format is taken from the extension")
	f.BoolP("interactive", "i", false, "Show the plot in a viewer")
	cmd.MarkFlagsMutuallyExclusive("output", "interactive")
	cmd.MarkFlagsOneRequired("output", "interactive")

	f.BoolP("average", "a", false, "Smooth each series using a running average")
	f.IntP("window", "w", xvg.DefaultWindow, "Window size for the running average calculation")

	f.StringP("colormap", "c", xvgplot.DefaultPalette, "Palette used for the series: a ColorBrewer name (Set1, Dark2, Paired...), SmoothBlueRed, Kindlmann, BlackBody, Heat, Rainbow or HSV")
	f.StringP("background-color", "b", xvgplot.DefaultBackground, "Background color of the plot, an SVG color name or #rrggbb")
	f.Float64("width", 6.4, "Width of the figure, in inches")
	f.Float64("height", 4.8, "Height of the figure, in inches")
	f.String("viewer", "", "Command used to show the plot in interactive mode (default: the system's)")
	f.Bool("metadata", false, "Print the metadata read from the file, in YAML")
	f.String("config", "", "Configuration file (default: xvgplot.yaml in . or $HOME/.config/xvgplot)")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true //from here on, errors are not about how the command was called.
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	M, D, err := xvg.Parse(args[0])
	if err != nil {
		return err
	}
	log.Printf("[+] Read %d series of data (%d elements)", D.NSeries(), D.Elements())
	if cfg.Metadata {
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		if err := enc.Encode(M); err != nil {
			return fmt.Errorf("can't write metadata: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("can't write metadata: %w", err)
		}
	}

	if cfg.Average {
		log.Printf("[+] Calculating Running Averages (window size = %d)", cfg.Window)
		if err := xvg.RunningAverage(D, M, cfg.Window); err != nil {
			return err
		}
	}

	opts := xvgplot.Options{
		Palette:     cfg.Colormap,
		Background:  cfg.Background,
		Width:       vg.Length(cfg.Width) * vg.Inch,
		Height:      vg.Length(cfg.Height) * vg.Inch,
		Output:      cfg.Output,
		Interactive: cfg.Interactive,
		Viewer:      cfg.Viewer,
	}
	if err := xvgplot.Render(D, M, opts); err != nil {
		return err
	}
	if cfg.Output != "" {
		log.Printf("[+] Plot written to %s", cfg.Output)
	}
	return nil
}
