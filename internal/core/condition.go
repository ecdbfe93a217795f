package core

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// EvaluateCondition compiles and runs a boolean guard expression against the
// system facts, e.g. `os == "linux" && user != "root"`.
func EvaluateCondition(condition string, ctx *SystemContext) (bool, error) {
	env := map[string]interface{}{
		"os":       ctx.OS,
		"hostname": ctx.Hostname,
		"user":     ctx.User,
		"home":     ctx.HomeDir,
	}

	program, err := expr.Compile(condition, expr.Env(env), expr.AsBool())
	if err != nil {
		return false, fmt.Errorf("invalid condition %q: %w", condition, err)
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return false, fmt.Errorf("condition %q failed: %w", condition, err)
	}

	// expr.AsBool guarantees a boolean program; non-boolean expressions
	// already failed in Compile.
	return out.(bool), nil
}
