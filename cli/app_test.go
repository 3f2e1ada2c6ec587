package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.viam.com/test"

	"github.com/chubrik/rotation3d/config"
	"github.com/chubrik/rotation3d/logging"
)

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := NewApp(&out, &errOut).Run(append([]string{"rotsurvey"}, args...))
	return out.String(), errOut.String(), err
}

func TestBudgetsAction(t *testing.T) {
	out, _, err := runApp(t, "budgets")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "matrix->euler")
	test.That(t, out, test.ShouldContainSubstring, "(89.8-90°)")
	test.That(t, out, test.ShouldContainSubstring, "2.0e-03")
}

func TestSelfCheckAction(t *testing.T) {
	out, _, err := runApp(t, "selfcheck")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "Constants verified")
}

func TestRunAction(t *testing.T) {
	out, logs, err := runApp(t, "run", "--samples", "300", "--seed", "5", "--filter", "^quaternion->matrix$",
		"--bins", "5", "--histograms")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "quaternion->matrix")
	test.That(t, out, test.ShouldContainSubstring, "worst error")
	test.That(t, out, test.ShouldContainSubstring, "All 1 cases within budget")
	test.That(t, logs, test.ShouldContainSubstring, "survey started")

	_, _, err = runApp(t, "run", "--samples", "10", "--filter", "^no such case$")
	test.That(t, err, test.ShouldBeError, `no case matches "^no such case$"`)

	_, _, err = runApp(t, "run", "--samples", "0")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "samples must be positive")
}

// Fifteen cases on eight workers share the console appender.
func TestRunActionConcurrentCases(t *testing.T) {
	out, logs, err := runApp(t, "run", "--samples", "20", "--workers", "8", "--filter=->euler/")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "All 15 cases within budget")

	lines := strings.Split(strings.TrimSuffix(logs, "\n"), "\n")
	finished := 0
	for _, line := range lines {
		parts := strings.Split(line, "\t")
		test.That(t, len(parts), test.ShouldBeBetweenOrEqual, 5, 6)
		_, err := time.Parse(logging.DefaultTimeFormatStr, parts[0])
		test.That(t, err, test.ShouldBeNil)
		if parts[4] == "case finished" {
			finished++
			test.That(t, parts[2], test.ShouldEqual, "rotsurvey.survey")
			test.That(t, parts[5], test.ShouldContainSubstring, `"case":"`)
		}
	}
	test.That(t, finished, test.ShouldEqual, 15)
}

func TestRunActionLogPatterns(t *testing.T) {
	args := []string{"run", "--samples", "20", "--filter", "^quaternion->matrix$"}

	// log_level covers loggers no pattern matches
	_, logs, err := runApp(t, append([]string{"--log-pattern", "rotsurvey.survey=warn"}, args...)...)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, logs, test.ShouldContainSubstring, "survey started")
	test.That(t, logs, test.ShouldNotContainSubstring, "case finished")

	// patterns win over log_level
	_, logs, err = runApp(t, append([]string{"--log-level", "error", "--log-pattern", "rotsurvey.*=info"}, args...)...)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, logs, test.ShouldNotContainSubstring, "survey started")
	test.That(t, logs, test.ShouldContainSubstring, "case finished")

	_, _, err = runApp(t, append([]string{"--log-pattern", "rotsurvey"}, args...)...)
	test.That(t, err, test.ShouldBeError, `log pattern "rotsurvey" is not of the form pattern=level`)
}

func TestRunActionWritesPlots(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "plots")
	_, _, err := runApp(t, "run", "--samples", "200", "--filter", "^quaternion->matrix$", "--plot-dir", dir)
	test.That(t, err, test.ShouldBeNil)

	info, err := os.Stat(filepath.Join(dir, "quaternion-to-matrix.png"))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, info.Size(), test.ShouldBeGreaterThan, 0)
}

func TestRunActionWritesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.log")
	_, _, err := runApp(t, "--log-file", path, "run", "--samples", "50", "--filter", "^euler->quaternion/main$")
	test.That(t, err, test.ShouldBeNil)

	data, err := os.ReadFile(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(data), test.ShouldContainSubstring, `"msg":"survey started"`)
}

func TestProbeAction(t *testing.T) {
	out, _, err := runApp(t, "probe", `{"type": "euler_angles_degrees", "value": {"yaw": 90, "pitch": 0, "roll": 0}}`)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "arg1")
	test.That(t, out, test.ShouldContainSubstring, "Yaw:90.000")

	cfgPath := filepath.Join(t.TempDir(), "survey.yaml")
	test.That(t, os.WriteFile(cfgPath, []byte(`
probes:
  - name: tilt
    type: axis_angle_degrees
    value:
      axis: {x: 1, y: 0, z: 0}
      angle: 30
`), 0o600), test.ShouldBeNil)
	out, _, err = runApp(t, "--config", cfgPath, "probe")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "tilt")
	test.That(t, out, test.ShouldContainSubstring, "30.000°")

	_, _, err = runApp(t, "probe")
	test.That(t, err, test.ShouldNotBeNil)

	// an axis of length 3 is normalized before conversion
	out, _, err = runApp(t, "probe", `{"type": "axis_angle", "value": {"axis": {"x": 3, "y": 0, "z": 0}, "angle": 1.2}}`)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "Pitch:68.755")
	test.That(t, out, test.ShouldContainSubstring, "middle")
	test.That(t, out, test.ShouldContainSubstring, "(1.0000, 0.0000, 0.0000) 68.755°")
	test.That(t, out, test.ShouldContainSubstring, "[1.0000 0.0000 0.0000]")

	_, _, err = runApp(t, "probe", `{"type": "quaternion", "value": {"x": 0, "y": 0, "z": 0, "w": 0}}`)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "quaternion is zero")

	_, _, err = runApp(t, "probe", `{"type": "spinor", "value": {}}`)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "orientation type spinor not recognized")
}

func TestConfigAction(t *testing.T) {
	out, _, err := runApp(t, "--debug", "config")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "log_level: debug")

	path := filepath.Join(t.TempDir(), "out", "survey.yaml")
	out, _, err = runApp(t, "config", "--write", path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "Wrote")

	cfg, err := config.Load(path, config.Overrides{})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.Samples, test.ShouldEqual, config.DefaultSamples)
}
