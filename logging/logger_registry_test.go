package logging

import (
	"testing"

	"go.viam.com/test"
)

func registryWith(names ...string) *Registry {
	r := newRegistry()
	for _, name := range names {
		r.register(name, &impl{name: name, level: NewAtomicLevelAt(DEBUG)})
	}
	return r
}

func levelOf(t *testing.T, r *Registry, name string) Level {
	t.Helper()
	logger, ok := r.loggerNamed(name)
	test.That(t, ok, test.ShouldBeTrue)
	return logger.GetLevel()
}

func TestConfigureLevels(t *testing.T) {
	for _, tc := range []struct {
		name     string
		base     Level
		patterns []LoggerPatternConfig
		loggers  []string
		expected map[string]Level
	}{
		{
			name:     "exact name",
			base:     INFO,
			patterns: []LoggerPatternConfig{{Pattern: "rotsurvey.survey", Level: "WARN"}},
			loggers:  []string{"rotsurvey.survey", "rotsurvey.survey.cases", "rotsurvey.probe"},
			expected: map[string]Level{"rotsurvey.survey": WARN, "rotsurvey.survey.cases": INFO, "rotsurvey.probe": INFO},
		},
		{
			name:     "trailing wildcard",
			base:     ERROR,
			patterns: []LoggerPatternConfig{{Pattern: "rotsurvey.*", Level: "debug"}},
			loggers:  []string{"rotsurvey", "rotsurvey.survey", "rotsurvey.survey.scaled.cases"},
			expected: map[string]Level{"rotsurvey": ERROR, "rotsurvey.survey": DEBUG, "rotsurvey.survey.scaled.cases": DEBUG},
		},
		{
			name:     "inner wildcard",
			base:     INFO,
			patterns: []LoggerPatternConfig{{Pattern: "rotsurvey.*.cases", Level: "error"}},
			loggers:  []string{"rotsurvey.survey.cases", "rotsurvey.selfcheck.cases", "rotsurvey.survey.selfcheck"},
			expected: map[string]Level{
				"rotsurvey.survey.cases":     ERROR,
				"rotsurvey.selfcheck.cases":  ERROR,
				"rotsurvey.survey.selfcheck": INFO,
			},
		},
		{
			name: "later patterns win",
			base: INFO,
			patterns: []LoggerPatternConfig{
				{Pattern: "rotsurvey.*", Level: "debug"},
				{Pattern: "rotsurvey.survey", Level: "warn"},
			},
			loggers:  []string{"rotsurvey.survey", "rotsurvey.probe"},
			expected: map[string]Level{"rotsurvey.survey": WARN, "rotsurvey.probe": DEBUG},
		},
		{
			name:     "base only",
			base:     WARN,
			loggers:  []string{"a.b.c"},
			expected: map[string]Level{"a.b.c": WARN},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := registryWith(tc.loggers...)
			test.That(t, r.configure(tc.base, tc.patterns), test.ShouldBeNil)
			for name, level := range tc.expected {
				test.That(t, levelOf(t, r, name), test.ShouldEqual, level)
			}
		})
	}
}

func TestLoggersKeepTheirLevelUntilConfigured(t *testing.T) {
	r := registryWith("rotsurvey")
	test.That(t, levelOf(t, r, "rotsurvey"), test.ShouldEqual, DEBUG)

	// a failed configuration changes nothing
	err := r.configure(ERROR, []LoggerPatternConfig{{Pattern: "rotsurvey..x", Level: "warn"}})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, levelOf(t, r, "rotsurvey"), test.ShouldEqual, DEBUG)
	r.register("rotsurvey.survey", &impl{level: NewAtomicLevelAt(INFO)})
	test.That(t, levelOf(t, r, "rotsurvey.survey"), test.ShouldEqual, INFO)
}

func TestRegisterAfterConfigure(t *testing.T) {
	r := newRegistry()
	test.That(t, r.configure(INFO, []LoggerPatternConfig{{Pattern: "a.*", Level: "WARN"}}), test.ShouldBeNil)

	r.register("a.b.c", &impl{level: NewAtomicLevelAt(DEBUG)})
	r.register("b.c", &impl{level: NewAtomicLevelAt(DEBUG)})
	test.That(t, levelOf(t, r, "a.b.c"), test.ShouldEqual, WARN)
	test.That(t, levelOf(t, r, "b.c"), test.ShouldEqual, INFO)

	test.That(t, r.levels(), test.ShouldResemble, []string{"a.b.c=warn", "b.c=info"})
}

func TestLevelFromString(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected Level
	}{
		{"debug", DEBUG},
		{"INFO", INFO},
		{"Warning", WARN},
		{"error", ERROR},
	} {
		level, err := LevelFromString(tc.input)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, level, test.ShouldEqual, tc.expected)
	}
	_, err := LevelFromString("verbose")
	test.That(t, err, test.ShouldBeError, "unknown log level: \"verbose\"")
}
