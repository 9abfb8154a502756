// Package fileutil provides the output tree operations of a build.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrNameEmpty         = errors.New("file name cannot be empty")
	ErrNamePathTraversal = errors.New("file name contains path separator or null byte")
	ErrUnsafeDir         = errors.New("refusing to reset directory")
	ErrSourceNotDir      = errors.New("copy source is not a directory")
)

// Permissions for generated files. The output is a public website.
const (
	DirPerm  = 0o755
	FilePerm = 0o644
)

// ResetDir removes path and everything under it, then recreates it empty.
// The working directory, its parent, the home shorthand and filesystem roots
// are refused.
func ResetDir(path string) error {
	clean := filepath.Clean(path)
	if clean == "." || clean == ".." || clean == "~" || clean == filepath.VolumeName(clean)+string(filepath.Separator) {
		return fmt.Errorf("%w: %q", ErrUnsafeDir, path)
	}

	if err := os.RemoveAll(clean); err != nil {
		return fmt.Errorf("removing %s: %w", clean, err)
	}
	if err := os.MkdirAll(clean, DirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", clean, err)
	}
	return nil
}

// CopyTree copies the directory src to dst recursively. A missing src is not
// an error: it reports false and copies nothing.
func CopyTree(src, dst string) (bool, error) {
	info, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", src, err)
	}
	if !info.IsDir() {
		return false, fmt.Errorf("%w: %s", ErrSourceNotDir, src)
	}

	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			return os.MkdirAll(target, DirPerm)
		case d.Type().IsRegular():
			return copyFile(path, target)
		default:
			// Symlinks and special files are not part of a static tree.
			return nil
		}
	})
	if err != nil {
		return false, fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	return true, nil
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src) // #nosec G304 -- src comes from walking the static tree
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FilePerm) // #nosec G302 G304 -- public site output
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); err == nil {
			err = closeErr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}

// WriteFile writes content to dir/name. name must be a plain file name.
func WriteFile(dir, name, content string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), FilePerm); err != nil { // #nosec G306 -- public site output
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ValidateName checks that name has no directory component.
func ValidateName(name string) error {
	if name == "" {
		return ErrNameEmpty
	}
	if strings.ContainsAny(name, "/\\\x00") || name == "." || name == ".." {
		return ErrNamePathTraversal
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
