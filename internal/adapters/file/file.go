// Package file declares filesystem resources: regular files, directories,
// symlinks and deliberately absent paths.
package file

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/melih-ucgun/converge/internal/core"
	"github.com/melih-ucgun/converge/internal/fingerprint"
)

type fileState int

const (
	stateFile fileState = iota
	stateDir
	stateSymlink
	stateAbsent
)

// File is the desired end-state of one filesystem path. Values are immutable;
// the builder methods return modified copies.
type File struct {
	path    string
	state   fileState
	content []byte      // nil means any contents
	target  string      // symlink target
	mode    os.FileMode // zero means do not manage permissions
}

// At starts reasoning about a file at a certain path. The resulting resource
// only ensures the path exists and is a regular file; chain builder calls to
// say more.
func At(path string) File {
	return File{path: filepath.Clean(path), state: stateFile}
}

// Contains declares the exact byte contents of a regular file.
func (f File) Contains(contents []byte) File {
	f.state = stateFile
	f.content = append([]byte(nil), contents...)
	return f
}

// ContainsString declares the exact string contents of a regular file.
func (f File) ContainsString(contents string) File {
	return f.Contains([]byte(contents))
}

// IsFile declares a regular file with any contents.
func (f File) IsFile() File {
	f.state = stateFile
	f.content = nil
	return f
}

// IsDir declares a directory.
func (f File) IsDir() File {
	f.state = stateDir
	f.content = nil
	return f
}

// PointsTo declares a symlink with the given target.
func (f File) PointsTo(target string) File {
	f.state = stateSymlink
	f.target = target
	f.content = nil
	return f
}

// IsAbsent declares that the path must not exist; an existing file or empty
// directory is deleted on realize.
func (f File) IsAbsent() File {
	f.state = stateAbsent
	f.content = nil
	f.target = ""
	return f
}

// WithMode declares the permission bits of the path.
func (f File) WithMode(mode os.FileMode) File {
	f.mode = mode
	return f
}

// Path returns the declared filesystem path.
func (f File) Path() string {
	return f.path
}

func (f File) Kind() string {
	return "file"
}

func (f File) Key() core.Key {
	return core.PathKey(f.path)
}

// Verify inspects the live path. A missing or mismatching path is an
// unrealized state (false), not an error; only genuine I/O failures
// propagate.
func (f File) Verify(ctx *core.SystemContext) (bool, error) {
	info, err := ctx.FS.Lstat(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		if f.state == stateAbsent {
			return true, nil
		}
		ctx.Logger.Debug("path does not exist", "path", f.path)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to gather metadata about path %q: %w", f.path, err)
	}

	switch f.state {
	case stateAbsent:
		return false, nil

	case stateSymlink:
		if info.Mode()&os.ModeSymlink == 0 {
			ctx.Logger.Debug("path is not a symlink", "path", f.path)
			return false, nil
		}
		target, err := ctx.FS.Readlink(f.path)
		if err != nil {
			return false, fmt.Errorf("failed to read link target of %q: %w", f.path, err)
		}
		if target != f.target {
			ctx.Logger.Debug("symlink target is wrong",
				"path", f.path, "old_target", target, "new_target", f.target)
			return false, nil
		}

	case stateDir:
		// Follow symlinks: a link to a directory does not satisfy a
		// directory declaration.
		if info.Mode()&os.ModeSymlink != 0 {
			return false, nil
		}
		if !info.IsDir() {
			ctx.Logger.Debug("path is not a directory", "path", f.path)
			return false, nil
		}
		if f.mode != 0 && info.Mode().Perm() != f.mode {
			return false, nil
		}

	case stateFile:
		if info.Mode()&os.ModeSymlink != 0 {
			return false, nil
		}
		if !info.Mode().IsRegular() {
			ctx.Logger.Debug("path is not a regular file", "path", f.path)
			return false, nil
		}
		if f.mode != 0 && info.Mode().Perm() != f.mode {
			return false, nil
		}
		if f.content != nil {
			same, err := f.contentMatches(ctx)
			if err != nil {
				return false, err
			}
			if !same {
				return false, nil
			}
		}
	}

	ctx.Logger.Trace("file is up to date", "path", f.path)
	return true, nil
}

// Realize converges the path. It is safe to re-invoke: writes truncate and
// rewrite, directories are created with MkdirAll, wrong symlinks are
// replaced.
func (f File) Realize(ctx *core.SystemContext) error {
	switch f.state {
	case stateAbsent:
		if _, err := ctx.FS.Lstat(f.path); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if err := ctx.FS.Remove(f.path); err != nil {
			return fmt.Errorf("failed to delete %q: %w", f.path, err)
		}

	case stateDir:
		// MkdirAll no-ops on a symlink to a directory; clear it first.
		if err := f.removeSymlinkInWay(ctx); err != nil {
			return err
		}
		if err := ctx.FS.MkdirAll(f.path, f.modeOr(0o755)); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", f.path, err)
		}
		if f.mode != 0 {
			if err := ctx.FS.Chmod(f.path, f.mode); err != nil {
				return fmt.Errorf("failed to set permissions of %q: %w", f.path, err)
			}
		}

	case stateSymlink:
		if info, err := ctx.FS.Lstat(f.path); err == nil {
			// Replace whatever is in the way; Verify already decided
			// the current state is wrong.
			if info.Mode()&os.ModeSymlink != 0 {
				if target, err := ctx.FS.Readlink(f.path); err == nil && target == f.target {
					return nil
				}
			}
			if err := ctx.FS.Remove(f.path); err != nil {
				return fmt.Errorf("failed to replace %q: %w", f.path, err)
			}
		}
		if err := ctx.FS.Symlink(f.target, f.path); err != nil {
			return fmt.Errorf("failed to create symlink %q: %w", f.path, err)
		}

	case stateFile:
		// WriteFile writes through a symlink; clear it first.
		if err := f.removeSymlinkInWay(ctx); err != nil {
			return err
		}
		if f.content != nil {
			if err := ctx.FS.WriteFile(f.path, f.content, f.modeOr(0o644)); err != nil {
				return fmt.Errorf("failed to write file %q: %w", f.path, err)
			}
		} else {
			// No contents declared: create empty if missing, leave
			// existing contents alone.
			if _, err := ctx.FS.Lstat(f.path); errors.Is(err, fs.ErrNotExist) {
				if err := ctx.FS.WriteFile(f.path, nil, f.modeOr(0o644)); err != nil {
					return fmt.Errorf("failed to create file %q: %w", f.path, err)
				}
			}
		}
		if f.mode != 0 {
			if err := ctx.FS.Chmod(f.path, f.mode); err != nil {
				return fmt.Errorf("failed to set permissions of %q: %w", f.path, err)
			}
		}
	}

	return nil
}

// ImplicitEnsure registers the containing directory. Directories recurse
// upward, so deep paths expand into a parent-first chain. The recursion
// terminates at the filesystem root or at "." for relative paths.
func (f File) ImplicitEnsure(e core.Ensurer) error {
	parent := filepath.Dir(f.path)
	if parent == f.path || parent == "." {
		return nil
	}
	return e.Ensure(At(parent).IsDir())
}

func (f File) Describe() string {
	switch f.state {
	case stateAbsent:
		return fmt.Sprintf("absent %q", f.path)
	case stateDir:
		return fmt.Sprintf("directory %q", f.path)
	case stateSymlink:
		return fmt.Sprintf("symlink %q with target %q", f.path, f.target)
	default:
		if f.content != nil {
			return fmt.Sprintf("file %q with sha1 %s", f.path,
				fingerprint.Short(fingerprint.SHA1Bytes(f.content)))
		}
		return fmt.Sprintf("file %q", f.path)
	}
}

func (f File) Equal(other core.Resource) bool {
	o, ok := other.(File)
	return ok &&
		f.path == o.path &&
		f.state == o.state &&
		f.target == o.target &&
		f.mode == o.mode &&
		bytes.Equal(f.content, o.content)
}

// Diff renders a content preview for regular files with declared contents.
func (f File) Diff(ctx *core.SystemContext) (string, error) {
	if f.state != stateFile || f.content == nil {
		return "", nil
	}
	current := ""
	if data, err := ctx.FS.ReadFile(f.path); err == nil {
		current = string(data)
	}
	return core.GenerateDiff(f.path, current, string(f.content)), nil
}

// contentMatches compares fingerprints instead of raw bytes so large files
// are never held in memory twice.
func (f File) contentMatches(ctx *core.SystemContext) (bool, error) {
	handle, err := ctx.FS.Open(f.path)
	if err != nil {
		return false, fmt.Errorf("failed to open file %q for hashing: %w", f.path, err)
	}
	defer handle.Close()

	current, err := fingerprint.SHA1(handle)
	if err != nil {
		return false, fmt.Errorf("failed to compute digest of %q: %w", f.path, err)
	}

	desired := fingerprint.SHA1Bytes(f.content)
	if current != desired {
		ctx.Logger.Debug("file has wrong contents",
			"path", f.path, "old_sha1", current, "new_sha1", desired)
		return false, nil
	}
	return true, nil
}

// removeSymlinkInWay deletes a symlink occupying the declared path, so the
// file and directory branches of Realize act on the path itself instead of
// the link target.
func (f File) removeSymlinkInWay(ctx *core.SystemContext) error {
	info, err := ctx.FS.Lstat(f.path)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return nil
	}
	if err := ctx.FS.Remove(f.path); err != nil {
		return fmt.Errorf("failed to replace %q: %w", f.path, err)
	}
	return nil
}

func (f File) modeOr(fallback os.FileMode) os.FileMode {
	if f.mode != 0 {
		return f.mode
	}
	return fallback
}
