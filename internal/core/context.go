package core

import (
	"context"
	"io"
	"os"
	"runtime"
)

// SystemContext holds the runtime context of a single run. It wraps the
// standard Go context and carries the facts, logger and filesystem handle
// that resources need during Verify and Realize.
type SystemContext struct {
	context.Context

	// System facts, available to conditions and templates.
	OS       string // runtime.GOOS (linux, darwin)
	Hostname string
	User     string
	HomeDir  string

	Logger Logger
	FS     FileSystem

	Stdout io.Writer
	Stderr io.Writer
}

// NewSystemContext builds a context with facts gathered from the local
// system.
func NewSystemContext(log Logger) *SystemContext {
	hostname, _ := os.Hostname()
	home, _ := os.UserHomeDir()

	return &SystemContext{
		Context:  context.Background(),
		OS:       runtime.GOOS,
		Hostname: hostname,
		User:     os.Getenv("USER"),
		HomeDir:  home,
		Logger:   log,
		FS:       &RealFS{},
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}
}
