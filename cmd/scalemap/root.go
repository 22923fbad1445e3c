package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/oliverbestmann/scalemap"
	"github.com/oliverbestmann/scalemap/transform"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

type options struct {
	Scale     []float64
	Paint     []float64
	Transform string
	Exponent  float64
	Inverse   bool
	Verbose   bool
	Profile   string
}

func newRootCommand() *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:   "scalemap [values...]",
		Short: "Map values between scale and paint coordinates",
		Long: "Maps each value from the scale interval to the paint interval, or back with --inverse.\n" +
			"Values are read from stdin, one per line, if none are given as arguments.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Verbose {
				handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
				slog.SetDefault(slog.New(handler))
			}

			stop, err := startProfile(opts.Profile)
			if err != nil {
				return err
			}

			defer stop()

			m, err := opts.scaleMap()
			if err != nil {
				return err
			}

			slog.Debug("Scale map configured",
				slog.String("map", m.String()),
				slog.Bool("inverting", m.IsInverting()))

			if len(args) == 0 {
				return mapLines(m, opts.Inverse, cmd.InOrStdin(), cmd.OutOrStdout())
			}

			for _, arg := range args {
				if err := mapValue(m, opts.Inverse, arg, cmd.OutOrStdout()); err != nil {
					return err
				}
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.Float64SliceVar(&opts.Scale, "scale", []float64{0, 1}, "scale interval as s1,s2")
	flags.Float64SliceVar(&opts.Paint, "paint", []float64{0, 1}, "paint interval as p1,p2")
	flags.StringVarP(&opts.Transform, "transform", "t", "none", "scale transform: none, null, log or pow")
	flags.Float64Var(&opts.Exponent, "exponent", 2, "exponent of the pow transform")
	flags.BoolVarP(&opts.Inverse, "inverse", "i", false, "map from paint to scale coordinates")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log debug output to stderr")
	flags.StringVar(&opts.Profile, "profile", "", "write a cpu or mem profile to the current directory")

	return cmd
}

func (o options) scaleMap() (*scalemap.ScaleMap, error) {
	if len(o.Scale) != 2 {
		return nil, fmt.Errorf("scale interval needs two values, got %d", len(o.Scale))
	}

	if len(o.Paint) != 2 {
		return nil, fmt.Errorf("paint interval needs two values, got %d", len(o.Paint))
	}

	tr, err := transform.Parse(o.Transform, o.Exponent)
	if err != nil {
		return nil, fmt.Errorf("configure transform: %w", err)
	}

	m := scalemap.New()
	m.SetTransformation(tr)
	m.SetScaleInterval(o.Scale[0], o.Scale[1])
	m.SetPaintInterval(o.Paint[0], o.Paint[1])

	return m, nil
}

func startProfile(kind string) (func(), error) {
	var mode func(*profile.Profile)

	switch kind {
	case "":
		return func() {}, nil
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	default:
		return nil, fmt.Errorf("unknown profile %q", kind)
	}

	return profile.Start(mode, profile.ProfilePath("."), profile.Quiet).Stop, nil
}

func mapLines(m *scalemap.ScaleMap, inverse bool, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if err := mapValue(m, inverse, line, w); err != nil {
			return err
		}
	}

	return scanner.Err()
}

func mapValue(m *scalemap.ScaleMap, inverse bool, text string, w io.Writer) error {
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("parse value %q: %w", text, err)
	}

	if inverse {
		value = m.InvTransform(value)
	} else {
		value = m.Transform(value)
	}

	_, err = fmt.Fprintln(w, strconv.FormatFloat(value, 'g', -1, 64))
	return err
}
