package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ppmkit/ppmkit/internal/analyze"
	"github.com/ppmkit/ppmkit/internal/convert"
	"github.com/ppmkit/ppmkit/internal/pixbuf"
	"github.com/ppmkit/ppmkit/internal/ppm"
)

var (
	paletteCount int
	filterRadius float64
)

// RootCmd is the ppmkit command tree. The caller (cmd/ppmkit) executes it.
var RootCmd = &cobra.Command{
	Use:          "ppmkit",
	Short:        "Inspect, edit, and convert ASCII PPM images",
	SilenceUsage: true,
}

func init() {
	paletteCmd.Flags().IntVarP(&paletteCount, "count", "n", 5, "number of palette entries")
	filterCmd.Flags().Float64VarP(&filterRadius, "radius", "r", 3.0, "radius for blur and edges")

	RootCmd.AddCommand(createCmd, infoCmd, getCmd, setCmd, convertCmd, paletteCmd, filterCmd, resizeCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <path> <width> <height>",
	Short: "Create an all-black image and write it to disk",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		width, err := parseSize(args[1])
		if err != nil {
			return err
		}
		height, err := parseSize(args[2])
		if err != nil {
			return err
		}
		return convert.Save(pixbuf.New(width, height), args[0])
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <path>",
	Short: "Print image dimensions and pixel count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := convert.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: %dx%d, %d pixels\n", args[0], b.Width(), b.Height(), b.Width()*b.Height())
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <path> <x> <y>",
	Short: "Print the color at a pixel coordinate",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, y, err := parseCoord(args[1], args[2])
		if err != nil {
			return err
		}
		b, err := convert.Load(args[0])
		if err != nil {
			return err
		}
		c, err := b.At(x, y)
		if err != nil {
			return err
		}
		fmt.Printf("%s (%d %d %d)\n", c.Hex(), c.R, c.G, c.B)
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <path> <x> <y> <r> <g> <b>",
	Short: "Overwrite the color at a pixel coordinate and save",
	Args:  cobra.ExactArgs(6),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, y, err := parseCoord(args[1], args[2])
		if err != nil {
			return err
		}
		c, err := parseColor(args[3], args[4], args[5])
		if err != nil {
			return err
		}
		b, err := ppm.ReadFile(args[0])
		if err != nil {
			return err
		}
		if err := b.Set(x, y, c); err != nil {
			return err
		}
		return ppm.WriteFile(args[0], b)
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert <source> <destination>",
	Short: "Convert an image between formats (chosen by extension)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := convert.Load(args[0])
		if err != nil {
			return err
		}
		return convert.Save(b, args[1])
	},
}

var paletteCmd = &cobra.Command{
	Use:   "palette <path>",
	Short: "Print the dominant colors of an image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := convert.Load(args[0])
		if err != nil {
			return err
		}
		for _, e := range analyze.Palette(b, paletteCount) {
			fmt.Printf("%s %5.1f%% (%d pixels)\n", e.Hex, e.Percentage, e.Count)
		}
		return nil
	},
}

var filterCmd = &cobra.Command{
	Use:   "filter <path> <destination> <blur|grayscale|edges|invert>",
	Short: "Apply a filter and write the result to a new file",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := convert.Load(args[0])
		if err != nil {
			return err
		}
		out, err := analyze.Filter(b, args[2], filterRadius)
		if err != nil {
			return err
		}
		return convert.Save(out, args[1])
	},
}

var resizeCmd = &cobra.Command{
	Use:   "resize <path> <destination> <width> <height>",
	Short: "Resize an image with Lanczos resampling",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		width, err := parseSize(args[2])
		if err != nil {
			return err
		}
		height, err := parseSize(args[3])
		if err != nil {
			return err
		}
		b, err := convert.Load(args[0])
		if err != nil {
			return err
		}
		out, err := convert.Resize(b, width, height)
		if err != nil {
			return err
		}
		return convert.Save(out, args[1])
	},
}

func parseSize(s string) (int, error) {
	v, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("invalid dimension %q: %w", s, err)
	}
	return int(v), nil
}

func parseCoord(xs, ys string) (x, y int, err error) {
	x, err = strconv.Atoi(xs)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x coordinate %q: %w", xs, err)
	}
	y, err = strconv.Atoi(ys)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y coordinate %q: %w", ys, err)
	}
	return x, y, nil
}

func parseColor(rs, gs, bs string) (pixbuf.Color, error) {
	var ch [3]uint8
	for i, s := range []string{rs, gs, bs} {
		v, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return pixbuf.Color{}, fmt.Errorf("invalid channel value %q: %w", s, err)
		}
		ch[i] = uint8(v)
	}
	return pixbuf.Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}
