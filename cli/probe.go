package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/chubrik/rotation3d/spatialmath"
)

// BudgetsAction prints the error budget table.
func BudgetsAction(c *cli.Context) error {
	header := table.Row{"Conversion"}
	for _, z := range spatialmath.Zones() {
		lo, hi := z.PitchRange()
		header = append(header, fmt.Sprintf("%s (%g-%g°)", z, lo, hi))
	}
	t := table.NewWriter()
	t.AppendHeader(header)
	for _, b := range spatialmath.Budgets() {
		row := table.Row{string(b.Conversion)}
		for _, z := range spatialmath.Zones() {
			row = append(row, fmt.Sprintf("%.1e", b.Max(z)))
		}
		t.AppendRow(row)
	}
	fmt.Fprintln(c.App.Writer, t.Render())
	return nil
}

type probe struct {
	name        string
	orientation spatialmath.Orientation
}

// ProbeAction converts the configured probes and every argument into all representations.
func ProbeAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	var probes []probe
	for _, p := range cfg.Probes {
		o, err := p.Orientation()
		if err != nil {
			return errors.Wrapf(err, "probe %q", p.Name)
		}
		probes = append(probes, probe{p.Name, o})
	}
	for i, arg := range c.Args().Slice() {
		var oc spatialmath.OrientationConfig
		if err := json.Unmarshal([]byte(arg), &oc); err != nil {
			return errors.Wrapf(err, "argument %d", i+1)
		}
		o, err := oc.ParseConfig()
		if err != nil {
			return errors.Wrapf(err, "argument %d", i+1)
		}
		probes = append(probes, probe{fmt.Sprintf("arg%d", i+1), o})
	}
	if len(probes) == 0 {
		return errors.New("nothing to probe; add probes to the configuration or pass orientation arguments")
	}
	fmt.Fprintln(c.App.Writer, probeTable(probes))
	return nil
}

func probeTable(probes []probe) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Probe", "Quaternion", "Euler", "Zone", "Axis-angle", "Matrix"})
	for _, p := range probes {
		q := p.orientation.Quaternion()
		e := p.orientation.EulerAngles()
		aa := p.orientation.AxisAngles()
		m := p.orientation.RotationMatrix()
		t.AppendRow([]interface{}{
			p.name,
			fmt.Sprintf("X:%.6f, Y:%.6f, Z:%.6f, W:%.6f", q.X, q.Y, q.Z, q.W),
			fmt.Sprintf("Yaw:%.3f, Pitch:%.3f, Roll:%.3f", e.YawDegrees(), e.PitchDegrees(), e.RollDegrees()),
			spatialmath.ZoneOf(e.Pitch).String(),
			fmt.Sprintf("(%.4f, %.4f, %.4f) %.3f°", aa.Axis.X, aa.Axis.Y, aa.Axis.Z, aa.AngleDegrees()),
			fmt.Sprintf("[%.4f %.4f %.4f]\n[%.4f %.4f %.4f]\n[%.4f %.4f %.4f]",
				m.M11, m.M12, m.M13, m.M21, m.M22, m.M23, m.M31, m.M32, m.M33),
		})
	}
	return t.Render()
}
