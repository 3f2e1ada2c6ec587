package logging

import (
	"strings"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var globalRegistry = newRegistry()

// ConfigureLevels sets the level of every named logger, existing or created later: the level of
// the last pattern matching its name, or base when none does. On error nothing changes.
func ConfigureLevels(base Level, patterns []LoggerPatternConfig) error {
	return globalRegistry.configure(base, patterns)
}

// Levels describes the level of every named logger as "name=level", sorted by name.
func Levels() []string {
	return globalRegistry.levels()
}

// Registry tracks named loggers so their levels can be set by pattern.
type Registry struct {
	mu      sync.Mutex
	loggers map[string]Logger
	// configured is false until configure succeeds; until then loggers keep the level they were
	// built with.
	configured bool
	base       Level
	rules      []levelRule
}

func newRegistry() *Registry {
	return &Registry{loggers: make(map[string]Logger)}
}

func (r *Registry) register(name string, logger Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loggers[name] = logger
	if r.configured {
		logger.SetLevel(r.levelForLocked(name))
	}
}

func (r *Registry) loggerNamed(name string) (Logger, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	logger, ok := r.loggers[name]
	return logger, ok
}

func (r *Registry) levels() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := maps.Keys(r.loggers)
	slices.Sort(names)
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, name+"="+strings.ToLower(r.loggers[name].GetLevel().String()))
	}
	return out
}

func (r *Registry) levelForLocked(name string) Level {
	level := r.base
	for _, rule := range r.rules {
		if rule.match.MatchString(name) {
			level = rule.level
		}
	}
	return level
}

func (r *Registry) configure(base Level, patterns []LoggerPatternConfig) error {
	rules, err := compileRules(patterns)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.configured = true
	r.base = base
	r.rules = rules
	for name, logger := range r.loggers {
		logger.SetLevel(r.levelForLocked(name))
	}
	return nil
}
