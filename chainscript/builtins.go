package chainscript

// BuiltinFunc is a host function callable from scripts. The argument has
// already been evaluated. Returned errors abort the run.
type BuiltinFunc func(exec *Execution, arg int64) error

type assertionFailureError struct {
	message string
}

func (e *assertionFailureError) Error() string {
	return e.message
}

func builtinPrint(exec *Execution, arg int64) error {
	exec.Print(arg)
	return nil
}

func builtinTrace(exec *Execution, arg int64) error {
	exec.Trace(arg)
	return nil
}

func builtinAssert(exec *Execution, arg int64) error {
	if arg == 0 {
		return &assertionFailureError{message: "assertion failed"}
	}
	return nil
}
