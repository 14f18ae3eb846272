package generator

import (
	"errors"
	"io/fs"
	"os"

	"github.com/tacogips/just-code/internal/debug"
)

// File modes for generated files.
const (
	// ModeRegular is read/write for the owner, read-only for others.
	ModeRegular os.FileMode = 0644
	// ModeExecutable adds owner execute to ModeRegular.
	ModeExecutable os.FileMode = 0744
)

// Writer writes files to the filesystem.
type Writer interface {
	// WriteFile creates a new file at path with content and mode.
	// It never replaces an existing file.
	WriteFile(path string, content []byte, mode os.FileMode) error

	// Exists checks if a file, directory or symlink exists at the given path.
	Exists(path string) (bool, error)
}

// FileWriter implements Writer for filesystem operations.
type FileWriter struct{}

// NewFileWriter creates a new FileWriter.
func NewFileWriter() Writer {
	return &FileWriter{}
}

// WriteFile creates path exclusively, writes content and applies mode.
// Parent directories are not created. On failure the partially written file
// is removed, so either the whole file exists afterwards or nothing does.
func (w *FileWriter) WriteFile(path string, content []byte, mode os.FileMode) error {
	debug.Debug("[generator] Writing file: %s (size: %d bytes, mode: %o)", path, len(content), mode)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return newAlreadyExistsError(path)
		}
		return newGeneratorError(IOFailure, "failed to create file", path, err)
	}

	// OpenFile's mode is filtered by the umask; set it explicitly.
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return newGeneratorError(IOFailure, "failed to set file permissions", path, err)
	}

	_, err = f.Write(content)
	closeErr := f.Close()

	if err != nil {
		_ = os.Remove(path)
		return newGeneratorError(IOFailure, "failed to write file content", path, err)
	}

	if closeErr != nil {
		_ = os.Remove(path)
		return newGeneratorError(IOFailure, "failed to close file", path, closeErr)
	}

	debug.Debug("[generator] File written successfully: %s", path)
	return nil
}

// Exists checks if a file, directory or symlink exists at the given path.
// Dangling symlinks count as existing.
func (w *FileWriter) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, newGeneratorError(IOFailure, "failed to stat file", path, err)
}
