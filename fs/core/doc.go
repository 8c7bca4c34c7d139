// Package core defines the filesystem contract pathlist is built on.
//
// pathlist never touches the operating system directly. Listing, tree
// rendering and the copy/move/remove helpers all go through an FS value,
// which keeps the walker testable against an in-memory provider and lets the
// CLI run against the local disk with the same code.
//
// # Interface Hierarchy
//
// FS is composed of four sub-interfaces:
//
//   - ReadFS: Stat, ReadDir, ReadFile, Exists
//   - WriteFS: Create, WriteFile, Mkdir, MkdirAll
//   - ManageFS: Remove, RemoveAll, Rename
//   - WalkFS: Walk
//
// MetadataFS is optional and discovered with a type assertion. CopyFile uses
// it to carry modification times over to the copy.
//
// # Copy Primitives
//
// CopyFile and CopyDir implement copying on top of the FS contract so every
// provider gets identical semantics:
//
//	if err := core.CopyDir(fsys, "/src/assets", "/dst/assets"); err != nil {
//	    return err
//	}
//
// # Providers
//
// github.com/jmgilman/go/pathlist/fs/billy provides a local (osfs) and an
// in-memory (memfs) implementation.
package core
