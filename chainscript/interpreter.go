package chainscript

import (
	"fmt"
	"io"
	"sort"
)

// Config controls interpreter execution bounds and output routing.
type Config struct {
	// StepQuota caps the number of evaluation steps per run. Zero means
	// unlimited: an always-true while loop is the caller's responsibility.
	StepQuota int

	// Output, when set, receives each printed or traced value on its own
	// line as it happens. The print log is also returned from Run.
	Output io.Writer
}

// Engine compiles and executes ChainScript programs.
type Engine struct {
	config   Config
	builtins map[string]BuiltinFunc
}

// NewEngine constructs an Engine and registers the default builtins
// (print, assert, trace).
func NewEngine(cfg Config) *Engine {
	e := &Engine{
		config:   cfg,
		builtins: make(map[string]BuiltinFunc),
	}

	e.RegisterBuiltin("print", builtinPrint)
	e.RegisterBuiltin("assert", builtinAssert)
	e.RegisterBuiltin("trace", builtinTrace)

	return e
}

// RegisterBuiltin registers a callable available to scripts. Builtins take a
// single evaluated int64 argument, matching the call grammar.
func (e *Engine) RegisterBuiltin(name string, fn BuiltinFunc) {
	e.builtins[name] = fn
}

// Builtins returns the registered builtin names in sorted order.
func (e *Engine) Builtins() []string {
	names := make([]string, 0, len(e.builtins))
	for name := range e.builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compile lexes and parses source into a reusable Script. It returns a
// *LexError for an unrecognized character and a *ParseError for a grammar
// mismatch; no partial program survives either.
func (e *Engine) Compile(source string) (*Script, error) {
	p := newParser(source)
	program, err := p.ParseProgram()
	if err != nil {
		return nil, err
	}
	return &Script{engine: e, program: program, source: source}, nil
}

// Script is a compiled program. It may be run any number of times; each run
// evaluates against a fresh environment unless one is supplied.
type Script struct {
	engine  *Engine
	program *Program
	source  string
}

// AST exposes the parsed program for tooling. Callers must not mutate it.
func (s *Script) AST() *Program {
	return s.program
}

// ConfigSummary provides a human-readable description of the engine limits.
func (e *Engine) ConfigSummary() string {
	quota := "unlimited"
	if e.config.StepQuota > 0 {
		quota = fmt.Sprintf("%d", e.config.StepQuota)
	}
	return fmt.Sprintf("steps=%s builtins=%d", quota, len(e.builtins))
}
