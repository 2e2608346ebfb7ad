package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-spatial/spatial"
	"github.com/cwbudde/algo-spatial/spatial/batch"
	"go.uber.org/zap"
)

var errDegenerate = errors.New("degenerate rotation")

type row struct {
	name      string
	precision string
	quat      [4]float64
	norm      float64
	axis      [3]float64
	angle     float64
	input     *[3]float64
	rotated   [3]float64
}

// rotator is the precision-independent view of a computed rotation.
type rotator struct {
	quat  [4]float64
	norm  float64
	axis  [3]float64
	angle float64
	apply func(vs [][]float64) ([][3]float64, error)
}

func buildRows(rotations []Rotation, cfg ReportConfig, log *zap.Logger) ([]row, error) {
	var rows []row
	for i, rot := range rotations {
		name := rot.Name
		if name == "" {
			name = fmt.Sprintf("rotation-%d", i+1)
		}

		r, err := compute(rot, cfg, log.With(zap.String("rotation", name)))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		base := row{
			name:      name,
			precision: cfg.precisionLabel(),
			quat:      r.quat,
			norm:      r.norm,
			axis:      r.axis,
			angle:     r.angle,
		}
		if cfg.Degrees {
			base.angle = r.angle * 180 / math.Pi
		}

		if len(rot.Apply) == 0 {
			rows = append(rows, base)
			continue
		}
		out, err := r.apply(rot.Apply)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		for j, v := range rot.Apply {
			in := [3]float64{v[0], v[1], v[2]}
			rr := base
			rr.input = &in
			rr.rotated = out[j]
			rows = append(rows, rr)
		}
	}
	return rows, nil
}

func compute(rot Rotation, cfg ReportConfig, log *zap.Logger) (rotator, error) {
	angle := rot.Angle
	if cfg.Degrees {
		angle = angle * math.Pi / 180
	}
	if cfg.Precision == 32 {
		return compute32(rot, angle, log)
	}
	return compute64(rot, angle, log)
}

func compute64(rot Rotation, angle float64, log *zap.Logger) (rotator, error) {
	var q spatial.DQuat
	if rot.Axis != nil {
		axis := spatial.NewDVec3(rot.Axis[0], rot.Axis[1], rot.Axis[2])
		if axis.Length() == 0 {
			return rotator{}, fmt.Errorf("%w: zero axis", errDegenerate)
		}
		if l := axis.Length(); math.Abs(l-1) > 1e-9 {
			log.Debug("normalizing axis", zap.Float64("length", l))
		}
		q = spatial.DQuatFromAxisAngle(axis.Normalize(), angle)
	} else {
		from := spatial.NewDVec3(rot.From[0], rot.From[1], rot.From[2])
		to := spatial.NewDVec3(rot.To[0], rot.To[1], rot.To[2])
		if from.Length() == 0 || to.Length() == 0 {
			return rotator{}, fmt.Errorf("%w: zero arc endpoint", errDegenerate)
		}
		q = spatial.DQuatFromRotationArc(from.Normalize(), to.Normalize())
	}
	log.Debug("computed rotation", zap.Stringer("quat", q))

	axis, ang := q.ToAxisAngle()
	return rotator{
		quat:  [4]float64{q.X(), q.Y(), q.Z(), q.W()},
		norm:  q.Length(),
		axis:  [3]float64{axis.X(), axis.Y(), axis.Z()},
		angle: ang,
		apply: func(vs [][]float64) ([][3]float64, error) {
			flat := make([]float64, 0, 3*len(vs))
			for _, v := range vs {
				flat = append(flat, v...)
			}
			buf, err := batch.FromInterleaved(flat)
			if err != nil {
				return nil, err
			}
			buf.Rotate(q)

			out := make([][3]float64, buf.Len())
			for i := range out {
				out[i] = [3]float64{buf.X[i], buf.Y[i], buf.Z[i]}
			}
			return out, nil
		},
	}, nil
}

func compute32(rot Rotation, angle float64, log *zap.Logger) (rotator, error) {
	var q spatial.Quat
	if rot.Axis != nil {
		axis := spatial.NewVec3(float32(rot.Axis[0]), float32(rot.Axis[1]), float32(rot.Axis[2]))
		if axis.Length() == 0 {
			return rotator{}, fmt.Errorf("%w: zero axis", errDegenerate)
		}
		q = spatial.QuatFromAxisAngle(axis.Normalize(), float32(angle))
	} else {
		from := spatial.NewVec3(float32(rot.From[0]), float32(rot.From[1]), float32(rot.From[2]))
		to := spatial.NewVec3(float32(rot.To[0]), float32(rot.To[1]), float32(rot.To[2]))
		if from.Length() == 0 || to.Length() == 0 {
			return rotator{}, fmt.Errorf("%w: zero arc endpoint", errDegenerate)
		}
		q = spatial.QuatFromRotationArc(from.Normalize(), to.Normalize())
	}
	log.Debug("computed rotation", zap.Stringer("quat", q))

	axis, ang := q.ToAxisAngle()
	return rotator{
		quat:  [4]float64{float64(q.X()), float64(q.Y()), float64(q.Z()), float64(q.W())},
		norm:  float64(q.Length()),
		axis:  [3]float64{float64(axis.X()), float64(axis.Y()), float64(axis.Z())},
		angle: float64(ang),
		apply: func(vs [][]float64) ([][3]float64, error) {
			out := make([][3]float64, len(vs))
			for i, v := range vs {
				// Input stays float64; Mul coerces it to the quaternion's precision.
				r, err := q.Mul(spatial.NewDVec3(v[0], v[1], v[2]))
				if err != nil {
					return nil, err
				}
				x, y, z := r.(spatial.Vec3).Tuple()
				out[i] = [3]float64{float64(x), float64(y), float64(z)}
			}
			return out, nil
		},
	}, nil
}

func printReport(w io.Writer, rows []row, cfg ReportConfig) error {
	unit := "deg"
	if !cfg.Degrees {
		unit = "rad"
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Name\tPrecision\tQuaternion\t|q|\tAxis\tAngle [%s]\tInput\tRotated\n", unit); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "----\t---------\t----------\t---\t----\t-----------\t-----\t-------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range rows {
		input, rotated := "-", "-"
		if r.input != nil {
			input = formatTuple(r.input[:], 4)
			rotated = formatTuple(r.rotated[:], 4)
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.name,
			r.precision,
			formatTuple(r.quat[:], 6),
			formatFloat(r.norm, 6),
			formatTuple(r.axis[:], 4),
			formatFloat(r.angle, 4),
			input,
			rotated,
		); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return tw.Flush()
}

// formatFloat prints v with prec decimals, dropping the sign of values that
// round to zero.
func formatFloat(v float64, prec int) string {
	s := fmt.Sprintf("%.*f", prec, v)
	if strings.Trim(s, "-0.") == "" {
		return strings.TrimPrefix(s, "-")
	}
	return s
}

func formatTuple(vs []float64, prec int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatFloat(v, prec)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
