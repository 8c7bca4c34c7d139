// Package billy provides go-billy backed implementations of core.FS.
//
// NewLocal wraps osfs rooted at "/", so every path handed to it is treated
// as absolute. NewMemory wraps memfs and is what the pathlist tests use to
// build throwaway directory trees:
//
//	fsys := billy.NewMemory()
//	_ = fsys.MkdirAll("/root/subdir", 0o755)
//	_ = fsys.WriteFile("/root/subdir/file.txt", nil, 0o644)
//
// Both providers implement core.MetadataFS when the underlying billy
// filesystem supports it. Instances are safe for concurrent use; File handles
// are not.
package billy
