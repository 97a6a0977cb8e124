package chainscript

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestCompileLexError(t *testing.T) {
	engine := NewEngine(Config{})

	_, err := engine.Compile("let x = 1; # bad")
	var le *LexError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LexError, got %T (%v)", err, err)
	}
	if le.Char != '#' {
		t.Fatalf("expected offending char '#', got %q", le.Char)
	}
	if !strings.Contains(le.Error(), "unexpected character") {
		t.Fatalf("unexpected message %q", le.Error())
	}
}

func TestCompileParseError(t *testing.T) {
	engine := NewEngine(Config{})

	_, err := engine.Compile("let = 5;")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T (%v)", err, err)
	}
	if pe.Expected != string(tokenIdent) {
		t.Fatalf("expected %q, got %q", tokenIdent, pe.Expected)
	}
}

func TestRegisterBuiltin(t *testing.T) {
	engine := NewEngine(Config{})

	var emitted []int64
	engine.RegisterBuiltin("emit", func(exec *Execution, arg int64) error {
		emitted = append(emitted, arg)
		return nil
	})

	script, err := engine.Compile("emit(3);\nemit(4);")
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if _, err := script.Run(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !reflect.DeepEqual(emitted, []int64{3, 4}) {
		t.Fatalf("expected [3 4], got %v", emitted)
	}
}

func TestBuiltinErrorCarriesPosition(t *testing.T) {
	engine := NewEngine(Config{})
	engine.RegisterBuiltin("fail", func(exec *Execution, arg int64) error {
		return errors.New("host refused")
	})

	script, err := engine.Compile("let x = 1;\nfail(x);")
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}

	_, err = script.Run(context.Background())
	var re *RuntimeError
	if !errors.As(err, &re) {
		t.Fatalf("expected *RuntimeError, got %T (%v)", err, err)
	}
	if re.Pos.Line != 2 {
		t.Fatalf("expected line 2, got %d", re.Pos.Line)
	}
	if !strings.Contains(re.Message, "host refused") {
		t.Fatalf("unexpected message %q", re.Message)
	}
}

func TestBuiltinsListing(t *testing.T) {
	engine := NewEngine(Config{})

	names := engine.Builtins()
	want := []string{"assert", "print", "trace"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
}

func TestASTExposedForTooling(t *testing.T) {
	engine := NewEngine(Config{})
	script, err := engine.Compile("let x = 1;\nprint(x);")
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}

	ast := script.AST()
	if len(ast.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(ast.Statements))
	}

	again, err := engine.Compile("let x = 1;\nprint(x);")
	if err != nil {
		t.Fatalf("recompile failed: %v", err)
	}
	if !reflect.DeepEqual(ast, again.AST()) {
		t.Fatalf("compiling identical source twice yielded different ASTs")
	}
}

func TestConfigSummary(t *testing.T) {
	engine := NewEngine(Config{})
	if got := engine.ConfigSummary(); got != "steps=unlimited builtins=3" {
		t.Fatalf("unexpected summary %q", got)
	}

	engine = NewEngine(Config{StepQuota: 100})
	if got := engine.ConfigSummary(); got != "steps=100 builtins=3" {
		t.Fatalf("unexpected summary %q", got)
	}
}

func TestEnvHelpers(t *testing.T) {
	env := NewEnv()
	env.Define("b", 2)
	env.Define("a", 1)

	if !reflect.DeepEqual(env.Names(), []string{"a", "b"}) {
		t.Fatalf("unexpected names %v", env.Names())
	}
	if env.Len() != 2 {
		t.Fatalf("expected 2 bindings, got %d", env.Len())
	}
	if env.Assign("missing", 3) {
		t.Fatalf("assign to undeclared name must fail")
	}
	if !env.Assign("a", 3) {
		t.Fatalf("assign to declared name must succeed")
	}
	if val, _ := env.Get("a"); val != 3 {
		t.Fatalf("expected 3, got %d", val)
	}
}
