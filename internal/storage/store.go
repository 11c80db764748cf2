package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
)

// ErrNotFound is returned for names that do not resolve to a stored file,
// including names rejected by the traversal check.
var ErrNotFound = errors.New("video not found")

// Store owns a single flat directory of stored videos. Files are named by
// job identifier plus extension; the file's mtime is the only lifecycle
// metadata kept.
type Store struct {
	dir string
}

// New creates the directory if needed and returns a Store rooted at it.
func New(dir string) (*Store, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving storage dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage dir: %w", err)
	}
	return &Store{dir: abs}, nil
}

// Dir returns the absolute storage directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Path maps a requested name to an absolute path inside the store. Anything
// that is not a plain file name staying inside the directory fails with
// ErrNotFound, so callers can treat traversal attempts exactly like missing
// files.
func (s *Store) Path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || name != filepath.Base(name) {
		return "", ErrNotFound
	}
	p := filepath.Join(s.dir, name)
	if filepath.Dir(p) != s.dir {
		return "", ErrNotFound
	}
	return p, nil
}

// Stat returns file info for a stored name, or ErrNotFound.
func (s *Store) Stat(name string) (os.FileInfo, error) {
	p, err := s.Path(name)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, ErrNotFound
	}
	return info, nil
}

// Put relocates src into the store under name. The move is a rename when
// src lives on the same filesystem, with a copy+remove fallback for
// cross-device temp directories. A partially copied destination never
// survives a failed Put.
func (s *Store) Put(src, name string) error {
	dst, err := s.Path(name)
	if err != nil {
		return fmt.Errorf("invalid stored name %q", name)
	}
	if err := os.Rename(src, dst); err != nil {
		if !isEXDEV(err) {
			return fmt.Errorf("storing %s: %w", name, err)
		}
		if err := copyFile(src, dst); err != nil {
			_ = os.Remove(dst)
			return fmt.Errorf("storing %s: %w", name, err)
		}
		_ = os.Remove(src)
	}
	return nil
}

// Remove deletes a stored name. Missing files map to ErrNotFound.
func (s *Store) Remove(name string) error {
	p, err := s.Path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Entries lists the raw directory entries. Callers decide per entry how to
// handle stat failures, so a single bad entry cannot abort a whole scan.
func (s *Store) Entries() ([]os.DirEntry, error) {
	return os.ReadDir(s.dir)
}

// Count returns the number of regular files currently stored.
func (s *Store) Count() (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, e := range entries {
		if e.Type().IsRegular() {
			n++
		}
	}
	return n, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func isEXDEV(err error) bool {
	if errors.Is(err, syscall.EXDEV) {
		return true
	}
	var le *os.LinkError
	if errors.As(err, &le) && errors.Is(le.Err, syscall.EXDEV) {
		return true
	}
	return false
}
