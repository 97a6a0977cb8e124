package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/falila/smart-contract-interpreter/chainscript"
)

// RunCmd executes a script file, echoing printed values to stdout.
type RunCmd struct {
	Script    string `arg:"" help:"Path to the script file." type:"existingfile"`
	StepQuota int    `help:"Abort after this many evaluation steps (0 = unlimited, overrides the limits file)." default:"0"`
	Limits    string `help:"Limits file (defaults to chainscript.yaml next to the script, when present)." type:"existingfile" optional:""`
	Profile   string `help:"Write a pprof profile for this run." enum:"off,cpu,mem,trace" default:"off"`
}

func (c *RunCmd) Run(app *appContext) error {
	limits, err := resolveLimits(c.Script, c.Limits)
	if err != nil {
		return err
	}
	quota := c.StepQuota
	if quota == 0 {
		quota = limits.StepQuota
	}

	stop := startProfile(c.Profile)
	defer stop.Stop()

	source, err := os.ReadFile(c.Script)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	engine := chainscript.NewEngine(chainscript.Config{StepQuota: quota, Output: app.stdout})
	script, err := engine.Compile(string(source))
	if err != nil {
		return fmt.Errorf("compile %s: %w", c.Script, err)
	}
	slog.Debug("script compiled", "path", c.Script, "engine", engine.ConfigSummary())

	start := time.Now()
	out, err := script.Run(app.ctx)
	if err != nil {
		return fmt.Errorf("run %s: %w", c.Script, err)
	}
	slog.Debug("script finished", "printed", len(out), "elapsed", time.Since(start))
	return nil
}

// CheckCmd parses a script and reports its shape without executing it.
type CheckCmd struct {
	Script string `arg:"" help:"Path to the script file." type:"existingfile"`
}

func (c *CheckCmd) Run(app *appContext) error {
	source, err := os.ReadFile(c.Script)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	engine := chainscript.NewEngine(chainscript.Config{})
	script, err := engine.Compile(string(source))
	if err != nil {
		return fmt.Errorf("check %s: %w", c.Script, err)
	}

	fmt.Fprintf(app.stdout, "%s: ok (%d top-level statements)\n", c.Script, len(script.AST().Statements))
	return nil
}
