package model

import (
	"github.com/ardnew/mkdef/tree"
)

// Permissions records the read, write, and execute access allowed on a file
// system object once it lands on the target.
type Permissions struct {
	read    bool
	write   bool
	execute bool
}

// SetReadable marks the object readable.
func (p *Permissions) SetReadable() { p.read = true }

// SetWriteable marks the object writeable.
func (p *Permissions) SetWriteable() { p.write = true }

// SetExecutable marks the object executable.
func (p *Permissions) SetExecutable() { p.execute = true }

// IsReadable reports whether the object is readable.
func (p Permissions) IsReadable() bool { return p.read }

// IsWriteable reports whether the object is writeable.
func (p Permissions) IsWriteable() bool { return p.write }

// IsExecutable reports whether the object is executable.
func (p Permissions) IsExecutable() bool { return p.execute }

// FileSystemObject is a file or directory to be placed on the target: where
// it comes from on the build host, where it goes on the target, and what
// access it gets there. The parse tree item it came from anchors
// diagnostics.
type FileSystemObject struct {
	Src         string
	Dest        string
	Permissions Permissions
	Item        *tree.Item
}

// FileSystemObjectSet is an insertion-ordered set of file system objects
// keyed by destination path.
type FileSystemObjectSet struct {
	order  []*FileSystemObject
	byDest map[string]*FileSystemObject
}

// Add inserts an object, returning false (and the existing object) when the
// destination path is already present.
func (s *FileSystemObjectSet) Add(obj *FileSystemObject) (*FileSystemObject, bool) {
	if existing, ok := s.byDest[obj.Dest]; ok {
		return existing, false
	}

	if s.byDest == nil {
		s.byDest = make(map[string]*FileSystemObject)
	}

	s.byDest[obj.Dest] = obj
	s.order = append(s.order, obj)

	return obj, true
}

// Find returns the object with the given destination path, if any.
func (s *FileSystemObjectSet) Find(dest string) (*FileSystemObject, bool) {
	obj, ok := s.byDest[dest]

	return obj, ok
}

// All returns the set's objects in insertion order.
func (s *FileSystemObjectSet) All() []*FileSystemObject { return s.order }

// Len returns the number of objects in the set.
func (s *FileSystemObjectSet) Len() int { return len(s.order) }
