package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
)

const defaultFilePermissionsConstant fs.FileMode = 0o644

// OSFileSystem implements filesystem operations using the operating system primitives.
type OSFileSystem struct{}

// Stat retrieves file metadata.
func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads file contents.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to a file with the supplied permissions.
func (OSFileSystem) WriteFile(path string, data []byte, permissions fs.FileMode) error {
	return os.WriteFile(path, data, permissions)
}

// CopyFile duplicates the source file contents at the destination path.
func (OSFileSystem) CopyFile(sourcePath string, destinationPath string) error {
	contents, readError := os.ReadFile(sourcePath)
	if readError != nil {
		return readError
	}
	return os.WriteFile(destinationPath, contents, defaultFilePermissionsConstant)
}

// Glob lists paths matching the supplied pattern.
func (OSFileSystem) Glob(pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}
