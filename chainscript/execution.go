package chainscript

import (
	"context"
	"errors"
	"fmt"
)

// RunOptions customizes a single run of a compiled script.
type RunOptions struct {
	// Env seeds the run with existing bindings and is mutated in place.
	// Nil means a fresh, empty environment.
	Env *Env
}

// Execution carries the mutable state of one run: the environment, the step
// counter, and the print log. Builtins receive it to record their effects.
type Execution struct {
	engine *Engine
	script *Script
	ctx    context.Context
	env    *Env

	quota int
	steps int

	output []int64
}

var errStepQuotaExceeded = errors.New("step quota exceeded")

// Run executes the script against a fresh environment. It returns the values
// printed during the run, in execution order. On error the returned log holds
// the prefix of prints performed before the failing statement.
//
// All arithmetic is native int64; overflow wraps. Comparison operators yield
// 1 or 0, and conditions treat any non-zero value as true.
func (s *Script) Run(ctx context.Context) ([]int64, error) {
	return s.RunWith(ctx, RunOptions{})
}

// RunWith executes the script with explicit options.
func (s *Script) RunWith(ctx context.Context, opts RunOptions) ([]int64, error) {
	env := opts.Env
	if env == nil {
		env = NewEnv()
	}

	exec := &Execution{
		engine: s.engine,
		script: s,
		ctx:    ctx,
		env:    env,
		quota:  s.engine.config.StepQuota,
	}

	if err := exec.evalStatements(s.program.Statements); err != nil {
		return exec.output, err
	}
	return exec.output, nil
}

// Print appends a value to the run's output log and echoes it to the
// configured output writer.
func (exec *Execution) Print(v int64) {
	exec.output = append(exec.output, v)
	exec.emit(v)
}

// Trace writes a value to the configured output writer without entering the
// output log.
func (exec *Execution) Trace(v int64) {
	exec.emit(v)
}

func (exec *Execution) emit(v int64) {
	if exec.engine.config.Output != nil {
		fmt.Fprintln(exec.engine.config.Output, v)
	}
}

func (exec *Execution) step() error {
	exec.steps++
	if exec.quota > 0 && exec.steps > exec.quota {
		return fmt.Errorf("%w (%d)", errStepQuotaExceeded, exec.quota)
	}
	if exec.ctx != nil {
		select {
		case <-exec.ctx.Done():
			return exec.ctx.Err()
		default:
		}
	}
	return nil
}

func (exec *Execution) evalStatements(stmts []Statement) error {
	for _, stmt := range stmts {
		if err := exec.step(); err != nil {
			return err
		}
		if err := exec.evalStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (exec *Execution) evalStatement(stmt Statement) error {
	switch s := stmt.(type) {
	case *LetStmt:
		val, err := exec.evalExpression(s.Value)
		if err != nil {
			return err
		}
		exec.env.Define(s.Name, val)
		return nil
	case *AssignStmt:
		val, err := exec.evalExpression(s.Value)
		if err != nil {
			return err
		}
		if !exec.env.Assign(s.Name, val) {
			return exec.undefinedVariable(s.Name, s.Pos())
		}
		return nil
	case *IfStmt:
		cond, err := exec.evalExpression(s.Condition)
		if err != nil {
			return err
		}
		if cond != 0 {
			return exec.evalStatements(s.Consequent)
		}
		return exec.evalStatements(s.Alternate)
	case *WhileStmt:
		for {
			if err := exec.step(); err != nil {
				return err
			}
			cond, err := exec.evalExpression(s.Condition)
			if err != nil {
				return err
			}
			if cond == 0 {
				return nil
			}
			if err := exec.evalStatements(s.Body); err != nil {
				return err
			}
		}
	case *CallStmt:
		fn, ok := exec.engine.builtins[s.Name]
		if !ok {
			return exec.newRuntimeError(ErrUnknownFunction, s.Name, fmt.Sprintf("unknown function %s", s.Name), s.Pos())
		}
		arg, err := exec.evalExpression(s.Arg)
		if err != nil {
			return err
		}
		if err := fn(exec, arg); err != nil {
			return exec.wrapError(err, s.Pos())
		}
		return nil
	default:
		return exec.newRuntimeError(ErrRuntime, "", fmt.Sprintf("unsupported statement %T", stmt), stmt.Pos())
	}
}

func (exec *Execution) evalExpression(expr Expression) (int64, error) {
	if err := exec.step(); err != nil {
		return 0, err
	}
	switch e := expr.(type) {
	case *IntegerLiteral:
		return e.Value, nil
	case *Identifier:
		val, ok := exec.env.Get(e.Name)
		if !ok {
			return 0, exec.undefinedVariable(e.Name, e.Pos())
		}
		return val, nil
	case *BinaryExpr:
		left, err := exec.evalExpression(e.Left)
		if err != nil {
			return 0, err
		}
		right, err := exec.evalExpression(e.Right)
		if err != nil {
			return 0, err
		}
		switch e.Operator {
		case tokenPlus:
			return left + right, nil
		case tokenEQ:
			return boolToInt(left == right), nil
		case tokenLT:
			return boolToInt(left < right), nil
		default:
			return 0, exec.newRuntimeError(ErrRuntime, "", fmt.Sprintf("unsupported operator %s", e.Operator), e.Pos())
		}
	default:
		return 0, exec.newRuntimeError(ErrRuntime, "", fmt.Sprintf("unsupported expression %T", expr), expr.Pos())
	}
}

func (exec *Execution) undefinedVariable(name string, pos Position) error {
	return exec.newRuntimeError(ErrUndefinedVariable, name, fmt.Sprintf("undefined variable %s", name), pos)
}

func (exec *Execution) newRuntimeError(kind RuntimeErrorKind, name, message string, pos Position) error {
	return &RuntimeError{
		Kind:      kind,
		Name:      name,
		Message:   message,
		Pos:       pos,
		CodeFrame: formatCodeFrame(exec.script.source, pos),
	}
}

func (exec *Execution) wrapError(err error, pos Position) error {
	if err == nil {
		return nil
	}
	if isHostControlSignal(err) {
		return err
	}
	var runtimeErr *RuntimeError
	if errors.As(err, &runtimeErr) {
		return err
	}
	kind := ErrRuntime
	var assertErr *assertionFailureError
	if errors.As(err, &assertErr) {
		kind = ErrAssertionFailed
	}
	return exec.newRuntimeError(kind, "", err.Error(), pos)
}

func isHostControlSignal(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, errStepQuotaExceeded)
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
