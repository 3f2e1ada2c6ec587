package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.viam.com/test"

	"github.com/chubrik/rotation3d/logging"
	"github.com/chubrik/rotation3d/spatialmath"
)

const sampleYAML = `
samples: 5000
seed: 42
filter: "^matrix"
bins: 0
workers: 2
log_level: debug
log_file:
  path: /tmp/rotsurvey.log
  max_size_mb: 10
log_patterns:
  - pattern: "rotsurvey.survey.*"
    level: warn
probes:
  - name: quarter-yaw
    type: euler_angles_degrees
    value: {yaw: 90, pitch: 0, roll: 0}
  - name: tilt
    type: axis_angle_degrees
    value:
      axis: {x: 1, y: 0, z: 0}
      angle: 30
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "survey.yaml")
	test.That(t, os.WriteFile(path, []byte(content), 0o600), test.ShouldBeNil)
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	test.That(t, cfg.Samples, test.ShouldEqual, DefaultSamples)
	test.That(t, cfg.Seed, test.ShouldEqual, int64(DefaultSeed))
	test.That(t, cfg.Bins, test.ShouldEqual, DefaultBins)
	test.That(t, cfg.Level(), test.ShouldEqual, logging.INFO)
	test.That(t, cfg.LogFile, test.ShouldBeNil)
	test.That(t, cfg.WorkerCount(), test.ShouldBeGreaterThan, 0)
	test.That(t, cfg.Validate(), test.ShouldBeNil)

	r, err := cfg.FilterRegexp()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, r, test.ShouldBeNil)
}

func TestLoadFromFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML), Overrides{})
	test.That(t, err, test.ShouldBeNil)

	test.That(t, cfg.Samples, test.ShouldEqual, 5000)
	test.That(t, cfg.Seed, test.ShouldEqual, int64(42))
	test.That(t, cfg.Bins, test.ShouldEqual, 0)
	test.That(t, cfg.WorkerCount(), test.ShouldEqual, 2)
	test.That(t, cfg.Level(), test.ShouldEqual, logging.DEBUG)
	test.That(t, cfg.LogFile, test.ShouldNotBeNil)
	test.That(t, cfg.LogFile.Path, test.ShouldEqual, "/tmp/rotsurvey.log")
	test.That(t, cfg.LogFile.MaxSizeMB, test.ShouldEqual, 10)
	test.That(t, cfg.LogPatterns, test.ShouldResemble, []logging.LoggerPatternConfig{
		{Pattern: "rotsurvey.survey.*", Level: "warn"},
	})

	r, err := cfg.FilterRegexp()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, r.MatchString("matrix->euler"), test.ShouldBeTrue)
	test.That(t, r.MatchString("quaternion->matrix"), test.ShouldBeFalse)

	test.That(t, len(cfg.Probes), test.ShouldEqual, 2)
	yaw, err := cfg.Probes[0].Orientation()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, yaw, test.ShouldResemble, spatialmath.NewEulerAnglesDegrees(90, 0, 0))

	tilt, err := cfg.Probes[1].Orientation()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tilt, test.ShouldResemble, spatialmath.NewAxisAngleDegrees(1, 0, 0, 30))
}

func TestLoadPriority(t *testing.T) {
	samples := 10
	level := "error"
	logFile := ""
	cfg, err := Load(writeConfig(t, sampleYAML), Overrides{
		Samples:  &samples,
		LogLevel: &level,
		LogFile:  &logFile,
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.Samples, test.ShouldEqual, 10)
	test.That(t, cfg.Seed, test.ShouldEqual, int64(42))
	test.That(t, cfg.Level(), test.ShouldEqual, logging.ERROR)
	test.That(t, cfg.LogFile, test.ShouldBeNil)

	// fields missing from the file keep their defaults.
	cfg, err = Load(writeConfig(t, "seed: 7\n"), Overrides{})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.Seed, test.ShouldEqual, int64(7))
	test.That(t, cfg.Samples, test.ShouldEqual, DefaultSamples)
	test.That(t, cfg.Bins, test.ShouldEqual, DefaultBins)

	path := "/var/log/rot.log"
	cfg, err = Load("", Overrides{LogFile: &path})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.LogFile, test.ShouldResemble, defaultFileConfig(path))
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("ROT_SAMPLES", "250")
	t.Setenv("ROT_PLOTS", "/tmp/rot-plots")
	cfg, err := Load(writeConfig(t, "samples: ${ROT_SAMPLES}\nplot_dir: $ROT_PLOTS\n"), Overrides{})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.Samples, test.ShouldEqual, 250)
	test.That(t, cfg.PlotDir, test.ShouldEqual, "/tmp/rot-plots")
}

func TestLoadAppendsLogPatterns(t *testing.T) {
	plotDir := "plots"
	cfg, err := Load(writeConfig(t, sampleYAML), Overrides{
		PlotDir:     &plotDir,
		LogPatterns: []logging.LoggerPatternConfig{{Pattern: "rotsurvey", Level: "error"}},
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.PlotDir, test.ShouldEqual, "plots")
	test.That(t, cfg.LogPatterns, test.ShouldResemble, []logging.LoggerPatternConfig{
		{Pattern: "rotsurvey.survey.*", Level: "warn"},
		{Pattern: "rotsurvey", Level: "error"},
	})

	_, err = Load("", Overrides{LogPatterns: []logging.LoggerPatternConfig{{Pattern: "a..b", Level: "info"}}})
	test.That(t, err, test.ShouldBeError, `invalid log pattern "a..b"`)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), Overrides{})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "cannot read config")

	_, err = Load(writeConfig(t, "samples: [1, 2]\n"), Overrides{})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "cannot parse config")
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Samples = 0
	cfg.Bins = -1
	cfg.Workers = -3
	cfg.Filter = "(["
	cfg.LogLevel = "loud"
	cfg.LogFile = &logging.FileConfig{}
	cfg.LogPatterns = []logging.LoggerPatternConfig{{Pattern: "a..b", Level: "info"}}
	cfg.Probes = []Probe{
		{Name: "", Type: "quaternion", Value: map[string]interface{}{"w": 1}},
		{Name: "p", Type: "spinor", Value: map[string]interface{}{"w": 1}},
		{Name: "p", Type: "quaternion"},
	}

	err := cfg.Validate()
	test.That(t, err, test.ShouldNotBeNil)
	for _, want := range []string{
		"samples must be positive",
		"bins must not be negative",
		"workers must not be negative",
		"invalid filter",
		"unknown log level",
		"log_file.path is empty",
		`invalid log pattern "a..b"`,
		"probe 0 has no name",
		"orientation type spinor not recognized",
		`duplicate probe name "p"`,
		"orientation type quaternion has no value",
	} {
		test.That(t, err.Error(), test.ShouldContainSubstring, want)
	}
}

func TestProbeOrientationConfig(t *testing.T) {
	p := Probe{Name: "id", Type: "quaternion", Value: map[string]interface{}{"x": 0, "y": 0, "z": 0, "w": 1}}
	oc, err := p.OrientationConfig()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, oc.Type, test.ShouldEqual, spatialmath.QuaternionType)

	o, err := oc.ParseConfig()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, o, test.ShouldResemble, spatialmath.IdentityQuaternion())

	// no type and no value is the identity.
	o, err = Probe{Name: "empty"}.Orientation()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, o, test.ShouldResemble, spatialmath.NewZeroOrientation())
}

func TestSaveRoundTrip(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML), Overrides{})
	test.That(t, err, test.ShouldBeNil)

	path := filepath.Join(t.TempDir(), "nested", "out.yaml")
	test.That(t, cfg.SaveTo(path), test.ShouldBeNil)

	again, err := Load(path, Overrides{})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cmp.Diff(cfg, again), test.ShouldBeEmpty)

	o, err := again.Probes[1].Orientation()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, o, test.ShouldResemble, spatialmath.NewAxisAngleDegrees(1, 0, 0, 30))
}
