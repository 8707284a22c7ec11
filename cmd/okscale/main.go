// Copyright (c) 2025, Okscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command okscale previews and exports OKLCH design-system ramps built by
// the ramp package. It is a thin presentation layer: all palette semantics
// live in the library.
package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/okscale/okscale/gamut"
	"github.com/okscale/okscale/ramp"
)

var (
	flagSteps       int
	flagPreset      string
	flagPresetsFile string
)

func main() {
	root := &cobra.Command{
		Use:           "okscale",
		Short:         "generate perceptually-uniform OKLCH color ramps",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().IntVar(&flagSteps, "steps", ramp.DefaultStepCount, "steps per ramp")
	root.PersistentFlags().StringVar(&flagPreset, "preset", "", "preset to apply before output")
	root.PersistentFlags().StringVar(&flagPresetsFile, "presets-file", "", "TOML file with extra presets")

	root.AddCommand(showCmd(), exportCmd(), maxChromaCmd(), presetsCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// registry builds the standard registry and applies the persistent flags.
func registry() (*ramp.Registry, error) {
	r, err := ramp.NewStandard(nil)
	if err != nil {
		return nil, err
	}
	if flagPresetsFile != "" {
		ps, err := ramp.OpenPresets(flagPresetsFile)
		if err != nil {
			return nil, err
		}
		for _, p := range ps {
			if err := r.AddPreset(p); err != nil {
				return nil, err
			}
		}
	}
	if flagSteps != ramp.DefaultStepCount {
		if err := r.SetStepCount(flagSteps); err != nil {
			return nil, err
		}
	}
	if flagPreset != "" {
		if err := r.ApplyPreset(flagPreset); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [family...]",
		Short: "print ramps as colored swatches",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := registry()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			out := termenv.NewOutput(w)
			for _, f := range selectFamilies(r, args) {
				fmt.Fprintf(w, "%-8s", f.Name)
				for _, s := range f.Steps {
					fmt.Fprint(w, out.String("  ").Background(out.Color(s.Hex())))
				}
				fmt.Fprintln(w)
			}
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var format string
	c := &cobra.Command{
		Use:   "export [family...]",
		Short: "write ramps as CSS custom properties or hex lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := registry()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			labels := ramp.StepLabels(r.StepCount())
			switch format {
			case "css":
				fmt.Fprintln(w, ":root {")
				for _, f := range selectFamilies(r, args) {
					for i, s := range f.Steps {
						fmt.Fprintf(w, "  --%s-%s: %s;\n", f.Name, labels[i], s.Hex())
					}
				}
				fmt.Fprintln(w, "}")
			case "hex":
				for _, f := range selectFamilies(r, args) {
					for i, s := range f.Steps {
						fmt.Fprintf(w, "%s-%s %s\n", f.Name, labels[i], s.Hex())
					}
				}
			default:
				return fmt.Errorf("unknown format %q (want css or hex)", format)
			}
			return nil
		},
	}
	c.Flags().StringVar(&format, "format", "css", "output format: css or hex")
	return c
}

func maxChromaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "maxchroma <lightness> <hue>",
		Short: "probe the sRGB gamut boundary at a lightness and hue",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := strconv.ParseFloat(args[0], 32)
			if err != nil {
				return fmt.Errorf("lightness: %w", err)
			}
			h, err := strconv.ParseFloat(args[1], 32)
			if err != nil {
				return fmt.Errorf("hue: %w", err)
			}
			c, err := gamut.NewSolver(nil).MaxChroma(float32(l), float32(h))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.3f\n", c)
			return nil
		},
	}
}

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := registry()
			if err != nil {
				return err
			}
			names := r.PresetNames()
			sort.Strings(names)
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}

// selectFamilies resolves positional family names, defaulting to all.
func selectFamilies(r *ramp.Registry, names []string) []*ramp.Family {
	if len(names) == 0 {
		return r.Families()
	}
	out := make([]*ramp.Family, 0, len(names))
	for _, n := range names {
		if f := r.Family(n); f != nil {
			out = append(out, f)
		} else {
			fmt.Fprintf(os.Stderr, "unknown family %q, skipping\n", n)
		}
	}
	return out
}
