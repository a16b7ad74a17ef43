// Package probe provides a read-only view over a project tree rooted at a
// single directory. Lookups are confined to the root: I/O faults and paths
// that escape the root resolve to "absent" rather than errors, so a single
// unreadable path never aborts an audit check.
package probe

import (
	"os"
	"path/filepath"
	"strings"
)

// Probe answers existence and listing queries against a project root.
type Probe struct {
	root string
}

// New returns a Probe rooted at dir. The directory is not required to exist;
// callers that need the precondition must stat the root themselves.
func New(dir string) *Probe {
	return &Probe{root: filepath.Clean(dir)}
}

// Root returns the project root the probe was created with.
func (p *Probe) Root() string { return p.root }

// resolve joins rel onto the root and reports whether the result still lives
// inside it. Paths that traverse outside the root are treated as absent.
func (p *Probe) resolve(rel string) (string, bool) {
	abs := filepath.Join(p.root, rel)
	r, err := filepath.Rel(p.root, abs)
	if err != nil || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return "", false
	}
	return abs, true
}

// Exists reports whether rel names an existing file or directory.
func (p *Probe) Exists(rel string) bool {
	abs, ok := p.resolve(rel)
	if !ok {
		return false
	}
	_, err := os.Stat(abs)
	return err == nil
}

// IsDir reports whether rel names an existing directory.
func (p *Probe) IsDir(rel string) bool {
	abs, ok := p.resolve(rel)
	if !ok {
		return false
	}
	info, err := os.Stat(abs)
	return err == nil && info.IsDir()
}

// List returns the names of regular files directly under rel whose extension
// matches one of exts (all files when exts is empty). A missing or unreadable
// directory yields a nil slice, not an error. Results follow os.ReadDir's
// lexical order, so repeated audits report identically.
func (p *Probe) List(rel string, exts ...string) []string {
	abs, ok := p.resolve(rel)
	if !ok {
		return nil
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if len(exts) == 0 || matchesExt(e.Name(), exts) {
			names = append(names, e.Name())
		}
	}
	return names
}

// ListDirs returns the names of subdirectories directly under rel. A missing
// or unreadable directory yields a nil slice.
func (p *Probe) ListDirs(rel string) []string {
	abs, ok := p.resolve(rel)
	if !ok {
		return nil
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}

// ReadFile reads the file named by rel. Unlike the query methods, read
// failures are returned so syntax checks can fold the fault message into
// their result.
func (p *Probe) ReadFile(rel string) ([]byte, error) {
	abs, ok := p.resolve(rel)
	if !ok {
		return nil, os.ErrNotExist
	}
	return os.ReadFile(abs)
}

func matchesExt(name string, exts []string) bool {
	ext := filepath.Ext(name)
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
