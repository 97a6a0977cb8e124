package chainscript

import "sort"

// Env holds the single flat variable scope of one program run. The language
// has no nested scopes; blocks share their enclosing bindings.
type Env struct {
	values map[string]int64
}

func NewEnv() *Env {
	return &Env{values: make(map[string]int64)}
}

func (e *Env) Get(name string) (int64, bool) {
	val, ok := e.values[name]
	return val, ok
}

// Define binds name, overwriting any existing binding.
func (e *Env) Define(name string, val int64) {
	e.values[name] = val
}

// Assign overwrites an existing binding. It reports false when name was
// never declared; assignment is not implicit declaration.
func (e *Env) Assign(name string, val int64) bool {
	if _, ok := e.values[name]; !ok {
		return false
	}
	e.values[name] = val
	return true
}

func (e *Env) Len() int {
	return len(e.values)
}

// Names returns the bound variable names in sorted order.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.values))
	for name := range e.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
