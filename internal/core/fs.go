package core

import (
	"io"
	"io/fs"
	"os"
)

// FileSystem is the seam between resources and the live target system. Tests
// swap it out; production code uses RealFS.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	Remove(name string) error
	Readlink(name string) (string, error)
	Symlink(oldname, newname string) error
	Chmod(name string, mode os.FileMode) error
	Open(name string) (io.ReadCloser, error)
}

// RealFS implements FileSystem over the os package.
type RealFS struct{}

func (f *RealFS) Stat(name string) (fs.FileInfo, error)  { return os.Stat(name) }
func (f *RealFS) Lstat(name string) (fs.FileInfo, error) { return os.Lstat(name) }
func (f *RealFS) ReadFile(name string) ([]byte, error)   { return os.ReadFile(name) }
func (f *RealFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}
func (f *RealFS) MkdirAll(path string, perm os.FileMode) error { return os.MkdirAll(path, perm) }
func (f *RealFS) Remove(name string) error                     { return os.Remove(name) }
func (f *RealFS) Readlink(name string) (string, error)         { return os.Readlink(name) }
func (f *RealFS) Symlink(oldname, newname string) error        { return os.Symlink(oldname, newname) }
func (f *RealFS) Chmod(name string, mode os.FileMode) error    { return os.Chmod(name, mode) }
func (f *RealFS) Open(name string) (io.ReadCloser, error)      { return os.Open(name) }
