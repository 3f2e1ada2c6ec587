package logging

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// LoggerPatternConfig sets the level of every logger whose name matches Pattern. Pattern is a
// dotted logger name in which a "*" section stands for any run of characters, dots included:
// "rotsurvey.*" covers every logger below rotsurvey.
type LoggerPatternConfig struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Level   string `json:"level" yaml:"level"`
}

const (
	// e.g. "survey" or "log-file".
	patternName = `[a-zA-Z0-9]+([_-]*[a-zA-Z0-9]+)*`
	// a name or a lone "*".
	patternSection = `(` + patternName + `|\*)`
)

var patternSyntax = regexp.MustCompile(`^` + patternSection + `(\.` + patternSection + `)*$`)

// ValidatePattern reports whether a logger pattern is well formed.
func ValidatePattern(pattern string) bool {
	return patternSyntax.MatchString(pattern)
}

// ParseLoggerPattern parses the command line form "pattern=level".
func ParseLoggerPattern(s string) (LoggerPatternConfig, error) {
	pattern, level, ok := strings.Cut(s, "=")
	if !ok {
		return LoggerPatternConfig{}, errors.Errorf("log pattern %q is not of the form pattern=level", s)
	}
	return LoggerPatternConfig{Pattern: strings.TrimSpace(pattern), Level: strings.TrimSpace(level)}, nil
}

// levelRule is a checked LoggerPatternConfig.
type levelRule struct {
	match *regexp.Regexp
	level Level
}

// compileRules checks every pattern and level, so a bad entry fails the whole set rather than
// being silently skipped.
func compileRules(patterns []LoggerPatternConfig) ([]levelRule, error) {
	rules := make([]levelRule, 0, len(patterns))
	for _, p := range patterns {
		if !ValidatePattern(p.Pattern) {
			return nil, errors.Errorf("invalid log pattern %q", p.Pattern)
		}
		level, err := LevelFromString(p.Level)
		if err != nil {
			return nil, errors.Wrapf(err, "log pattern %q", p.Pattern)
		}
		sections := strings.Split(p.Pattern, ".")
		for i, s := range sections {
			if s == "*" {
				sections[i] = ".*"
			} else {
				sections[i] = regexp.QuoteMeta(s)
			}
		}
		rules = append(rules, levelRule{
			match: regexp.MustCompile(`^` + strings.Join(sections, `\.`) + `$`),
			level: level,
		})
	}
	return rules, nil
}
