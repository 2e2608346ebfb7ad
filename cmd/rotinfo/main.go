// Command rotinfo prints properties of quaternion rotations.
//
// Usage:
//
//	rotinfo [flags]
//
// A rotation is given either by an axis and angle or by the arc between two
// directions. Vectors passed with -apply are rotated and printed alongside.
//
// Examples:
//
//	rotinfo -axis 0,0,1 -angle 90 -apply 1,0,0
//	rotinfo -from 1,0,0 -to 0,1,0 -f32
//	rotinfo -axis 1,1,0 -angle 1.2 -radians
//	rotinfo -config scenario.yaml
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-spatial/spatial/batch"
	"go.uber.org/zap"
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// tripleFlag parses "x,y,z".
type tripleFlag struct {
	v   []float64
	set bool
}

func (f *tripleFlag) String() string {
	if !f.set {
		return ""
	}
	return formatTuple(f.v, 4)
}

func (f *tripleFlag) Set(s string) error {
	v, err := parseTriple(s)
	if err != nil {
		return err
	}
	f.v, f.set = v, true
	return nil
}

// tripleList collects repeated "x,y,z" flags.
type tripleList [][]float64

func (l *tripleList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = formatTuple(v, 4)
	}
	return strings.Join(parts, " ")
}

func (l *tripleList) Set(s string) error {
	v, err := parseTriple(s)
	if err != nil {
		return err
	}
	*l = append(*l, v)
	return nil
}

func parseTriple(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return nil, fmt.Errorf("want x,y,z, got %q", s)
	}
	v := make([]float64, 3)
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("component %d of %q: %w", i, s, err)
		}
		v[i] = x
	}
	return v, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rotinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var axis, from, to tripleFlag
	var apply tripleList
	fs.Var(&axis, "axis", "rotation axis `x,y,z` (normalized before use)")
	angle := fs.Float64("angle", 0, "rotation angle about -axis")
	fs.Var(&from, "from", "arc start direction `x,y,z`")
	fs.Var(&to, "to", "arc end direction `x,y,z`")
	fs.Var(&apply, "apply", "vector `x,y,z` to rotate (repeatable)")
	f32 := fs.Bool("f32", false, "use single precision")
	radians := fs.Bool("radians", false, "angles are in radians instead of degrees")
	configPath := fs.String("config", "", "YAML scenario `file` with a list of rotations")
	verbose := fs.Bool("v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: rotinfo [flags]\n\n")
		fmt.Fprintf(stderr, "Prints quaternion, axis-angle and rotated vectors for a rotation.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  rotinfo -axis 0,0,1 -angle 90 -apply 1,0,0\n")
		fmt.Fprintf(stderr, "  rotinfo -from 1,0,0 -to 0,1,0 -f32\n")
		fmt.Fprintf(stderr, "  rotinfo -config scenario.yaml\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	log := newLogger(stderr, *verbose)
	defer func() { _ = log.Sync() }()

	var rotations []Rotation
	var opts []ReportOption
	if *configPath != "" {
		s, err := LoadScenarioFile(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		log.Debug("loaded scenario", zap.String("path", *configPath), zap.Int("rotations", len(s.Rotations)))
		rotations = s.Rotations
		opts = append(opts, s.Options()...)
	} else {
		rot, err := flagRotation(axis, from, to, angleSet(fs), *angle, apply)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			if errors.Is(err, errUsage) {
				fs.Usage()
			}
			return 1
		}
		rotations = []Rotation{rot}
	}

	if *f32 {
		opts = append(opts, WithPrecision(32))
	}
	if *radians {
		opts = append(opts, WithDegrees(false))
	}
	cfg := ApplyReportOptions(opts...)
	log.Debug("report config",
		zap.Int("precision", cfg.Precision),
		zap.Bool("degrees", cfg.Degrees),
		zap.String("kernels", batch.Backend()),
	)

	rows, err := buildRows(rotations, cfg, log)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if err := printReport(stdout, rows, cfg); err != nil {
		log.Error("failed to write report", zap.Error(err))
		return 1
	}
	return 0
}

// angleSet reports whether -angle was given explicitly.
func angleSet(fs *flag.FlagSet) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "angle" {
			set = true
		}
	})
	return set
}

func flagRotation(axis, from, to tripleFlag, hasAngle bool, angle float64, apply tripleList) (Rotation, error) {
	switch {
	case axis.set && (from.set || to.set):
		return Rotation{}, fmt.Errorf("%w: -axis cannot be combined with -from/-to", errUsage)
	case hasAngle && (from.set || to.set):
		return Rotation{}, fmt.Errorf("%w: -angle cannot be combined with -from/-to", errUsage)
	case axis.set:
		return Rotation{Name: "axis-angle", Axis: axis.v, Angle: angle, Apply: apply}, nil
	case from.set && to.set:
		return Rotation{Name: "arc", From: from.v, To: to.v, Apply: apply}, nil
	case from.set || to.set:
		return Rotation{}, fmt.Errorf("%w: -from and -to must be given together", errUsage)
	default:
		return Rotation{}, fmt.Errorf("%w: need -axis and -angle, -from and -to, or -config", errUsage)
	}
}
