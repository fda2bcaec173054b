// Package fileutil provides small filesystem helpers for staging downloads.
package fileutil

import (
	"fmt"
	"io"
	"os"
)

// CopyFile streams src to dst using io.Copy with default permissions (0o644).
func CopyFile(src, dst string) error {
	return CopyFileMode(src, dst, 0o644)
}

// CopyFileMode streams src to dst, setting the given file mode on dst.
func CopyFileMode(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// MoveFile relocates src to dst, overwriting any existing file at dst.
// os.Rename is attempted first; when src and dst live on different
// filesystems (common when the temp directory is tmpfs) it falls back to
// copying through a sibling temp name so an existing dst survives a
// failed copy.
func MoveFile(src, dst string) error {
	if src == dst {
		return nil
	}
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	staging := dst + ".partial"
	if err := CopyFile(src, staging); err != nil {
		_ = os.Remove(staging)
		return fmt.Errorf("copy across filesystems: %w", err)
	}
	if err := os.Rename(staging, dst); err != nil {
		_ = os.Remove(staging)
		return fmt.Errorf("replace target: %w", err)
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("remove staged source: %w", err)
	}
	return nil
}
