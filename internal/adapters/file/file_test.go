package file_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/melih-ucgun/converge/internal/adapters/file"
	"github.com/melih-ucgun/converge/internal/core"
)

func testContext(t *testing.T) *core.SystemContext {
	t.Helper()
	return core.NewSystemContext(core.NewDefaultLogger(io.Discard, core.LevelError))
}

func TestFileContentRoundTrip(t *testing.T) {
	ctx := testContext(t)
	path := filepath.Join(t.TempDir(), "motd")

	f := file.At(path).ContainsString("hello")

	ok, err := f.Verify(ctx)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if ok {
		t.Fatal("Verify = true before the file exists")
	}

	if err := f.Realize(ctx); err != nil {
		t.Fatalf("Realize failed: %v", err)
	}
	ok, err = f.Verify(ctx)
	if err != nil || !ok {
		t.Fatalf("Verify after Realize = (%v, %v), want (true, nil)", ok, err)
	}

	// A new declaration over the same path overwrites.
	f2 := file.At(path).ContainsString("hello2")
	ok, err = f2.Verify(ctx)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if ok {
		t.Fatal("Verify = true with stale contents on disk")
	}
	if err := f2.Realize(ctx); err != nil {
		t.Fatalf("Realize failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello2" {
		t.Errorf("contents = %q, want %q", data, "hello2")
	}
}

func TestFileImplicitParentDirectories(t *testing.T) {
	log := core.NewDefaultLogger(io.Discard, core.LevelError)
	ctx := core.NewSystemContext(log)
	root := t.TempDir()

	path := filepath.Join(root, "a", "b", "c", "motd")
	r := core.NewReality(log)
	if err := r.Ensure(file.At(path).ContainsString("deep")); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}

	// Ancestors expand parent-first; absolute paths also register
	// everything above the temp dir, so assert relative order only.
	indexOf := func(p string) int {
		t.Helper()
		want := core.PathKey(filepath.Clean(p))
		for i, m := range r.Resources() {
			if m.Key().Equal(want) {
				return i
			}
		}
		t.Fatalf("path %q is not registered", p)
		return -1
	}

	a := indexOf(filepath.Join(root, "a"))
	b := indexOf(filepath.Join(root, "a", "b"))
	c := indexOf(filepath.Join(root, "a", "b", "c"))
	leaf := indexOf(path)
	if !(a < b && b < c && c < leaf) {
		t.Errorf("registration order = a:%d b:%d c:%d leaf:%d, want parent-first", a, b, c, leaf)
	}

	if err := r.Realize(ctx); err != nil {
		t.Fatalf("Realize failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "deep" {
		t.Errorf("contents = %q, want %q", data, "deep")
	}
}

func TestDirectory(t *testing.T) {
	ctx := testContext(t)
	root := t.TempDir()

	t.Run("creates missing directories", func(t *testing.T) {
		d := file.At(filepath.Join(root, "lib")).IsDir()
		if err := d.Realize(ctx); err != nil {
			t.Fatalf("Realize failed: %v", err)
		}
		ok, err := d.Verify(ctx)
		if err != nil || !ok {
			t.Errorf("Verify = (%v, %v), want (true, nil)", ok, err)
		}
	})

	t.Run("regular file does not satisfy a directory", func(t *testing.T) {
		path := filepath.Join(root, "not-a-dir")
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		ok, err := file.At(path).IsDir().Verify(ctx)
		if err != nil {
			t.Fatalf("Verify failed: %v", err)
		}
		if ok {
			t.Error("Verify = true for a regular file")
		}
	})
}

func TestSymlink(t *testing.T) {
	ctx := testContext(t)
	root := t.TempDir()

	target := filepath.Join(root, "target")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	link := filepath.Join(root, "link")
	l := file.At(link).PointsTo(target)

	if err := l.Realize(ctx); err != nil {
		t.Fatalf("Realize failed: %v", err)
	}
	ok, err := l.Verify(ctx)
	if err != nil || !ok {
		t.Fatalf("Verify = (%v, %v), want (true, nil)", ok, err)
	}

	// Re-point the link somewhere else; the old link is replaced.
	other := filepath.Join(root, "other")
	if err := os.WriteFile(other, []byte("y"), 0o644); err != nil {
		t.Fatal(err)
	}
	l2 := file.At(link).PointsTo(other)
	ok, err = l2.Verify(ctx)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if ok {
		t.Fatal("Verify = true for a link with the wrong target")
	}
	if err := l2.Realize(ctx); err != nil {
		t.Fatalf("Realize failed: %v", err)
	}
	got, err := os.Readlink(link)
	if err != nil {
		t.Fatal(err)
	}
	if got != other {
		t.Errorf("link target = %q, want %q", got, other)
	}
}

func TestRealizeReplacesSymlinkInTheWay(t *testing.T) {
	ctx := testContext(t)

	t.Run("regular file", func(t *testing.T) {
		root := t.TempDir()
		target := filepath.Join(root, "target")
		if err := os.WriteFile(target, []byte("old"), 0o644); err != nil {
			t.Fatal(err)
		}
		path := filepath.Join(root, "motd")
		if err := os.Symlink(target, path); err != nil {
			t.Fatal(err)
		}

		f := file.At(path).ContainsString("hello")
		if err := f.Realize(ctx); err != nil {
			t.Fatalf("Realize failed: %v", err)
		}
		ok, err := f.Verify(ctx)
		if err != nil || !ok {
			t.Fatalf("Verify after Realize = (%v, %v), want (true, nil)", ok, err)
		}

		info, err := os.Lstat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode()&os.ModeSymlink != 0 {
			t.Error("path is still a symlink after Realize")
		}
		// The link target must not receive the write.
		data, err := os.ReadFile(target)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "old" {
			t.Errorf("link target contents = %q, want untouched %q", data, "old")
		}
	})

	t.Run("content-less file", func(t *testing.T) {
		root := t.TempDir()
		target := filepath.Join(root, "target")
		if err := os.WriteFile(target, []byte("old"), 0o644); err != nil {
			t.Fatal(err)
		}
		path := filepath.Join(root, "plain")
		if err := os.Symlink(target, path); err != nil {
			t.Fatal(err)
		}

		f := file.At(path).IsFile()
		if err := f.Realize(ctx); err != nil {
			t.Fatalf("Realize failed: %v", err)
		}
		ok, err := f.Verify(ctx)
		if err != nil || !ok {
			t.Fatalf("Verify after Realize = (%v, %v), want (true, nil)", ok, err)
		}
	})

	t.Run("directory", func(t *testing.T) {
		root := t.TempDir()
		realDir := filepath.Join(root, "real")
		if err := os.Mkdir(realDir, 0o755); err != nil {
			t.Fatal(err)
		}
		path := filepath.Join(root, "www")
		if err := os.Symlink(realDir, path); err != nil {
			t.Fatal(err)
		}

		d := file.At(path).IsDir()
		if err := d.Realize(ctx); err != nil {
			t.Fatalf("Realize failed: %v", err)
		}
		ok, err := d.Verify(ctx)
		if err != nil || !ok {
			t.Fatalf("Verify after Realize = (%v, %v), want (true, nil)", ok, err)
		}

		info, err := os.Lstat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode()&os.ModeSymlink != 0 {
			t.Error("path is still a symlink after Realize")
		}
	})
}

func TestAbsent(t *testing.T) {
	ctx := testContext(t)
	root := t.TempDir()
	path := filepath.Join(root, "stale")

	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	a := file.At(path).IsAbsent()
	ok, err := a.Verify(ctx)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if ok {
		t.Fatal("Verify = true while the path still exists")
	}

	if err := a.Realize(ctx); err != nil {
		t.Fatalf("Realize failed: %v", err)
	}
	if _, err := os.Lstat(path); !os.IsNotExist(err) {
		t.Errorf("path still exists after Realize: %v", err)
	}
	ok, err = a.Verify(ctx)
	if err != nil || !ok {
		t.Errorf("Verify = (%v, %v), want (true, nil)", ok, err)
	}

	// Realizing an already-absent path is a no-op.
	if err := a.Realize(ctx); err != nil {
		t.Errorf("Realize on a missing path failed: %v", err)
	}
}

func TestWithMode(t *testing.T) {
	ctx := testContext(t)
	path := filepath.Join(t.TempDir(), "script")

	f := file.At(path).ContainsString("#!/bin/sh\n").WithMode(0o755)
	if err := f.Realize(ctx); err != nil {
		t.Fatalf("Realize failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Errorf("mode = %o, want 755", info.Mode().Perm())
	}

	// The same path with different permission bits is out of state.
	ok, err := file.At(path).ContainsString("#!/bin/sh\n").WithMode(0o700).Verify(ctx)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if ok {
		t.Error("Verify = true despite a mode mismatch")
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		f    file.File
		want string
	}{
		{"plain file", file.At("/etc/motd").IsFile(), `file "/etc/motd"`},
		{"directory", file.At("/srv/www").IsDir(), `directory "/srv/www"`},
		{"symlink", file.At("/usr/local/bin/vi").PointsTo("/usr/bin/vim"),
			`symlink "/usr/local/bin/vi" with target "/usr/bin/vim"`},
		{"absent", file.At("/tmp/stale").IsAbsent(), `absent "/tmp/stale"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Describe(); got != tt.want {
				t.Errorf("Describe = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	a := file.At("/etc/motd").ContainsString("hi")
	b := file.At("/etc/motd").ContainsString("hi")
	c := file.At("/etc/motd").ContainsString("bye")

	if !a.Equal(b) {
		t.Error("identical declarations compared unequal")
	}
	if a.Equal(c) {
		t.Error("different contents compared equal")
	}
	if a.Equal(file.At("/etc/motd").IsDir()) {
		t.Error("file and directory declarations compared equal")
	}
}
