// Package errors provides the structured errors returned by pathlist.
//
// Every failure surfaced by the listing, tree and file operation APIs is a
// PlatformError: it carries an ErrorCode describing what went wrong, a retry
// classification, optional context metadata (typically "op" and "path"), and
// the provider error that caused it. The cause stays reachable through the
// standard errors.Is and errors.As functions, so callers can still match on
// io/fs sentinels:
//
//	list, err := explorer.Rls(root, "", -1)
//	if errors.Is(err, fs.ErrPermission) {
//	    // the walk hit a directory it cannot read
//	}
//
// # Error Codes
//
//   - CodeNotFound: a path does not exist where one is required
//   - CodeAlreadyExists: a destination is already present
//   - CodeConflict: the operation conflicts with on-disk state (non-empty directory)
//   - CodeForbidden: the filesystem denied access
//   - CodeInvalidInput: the request itself is invalid (sampling too many items)
//   - CodeInvalidConfig: configuration could not be loaded or validated
//   - CodeIO: a provider-level read or write failure
//   - CodeInternal, CodeUnknown: everything else
//
// # Filesystem Errors
//
// WrapFS converts a provider error into a PlatformError, picking the code
// from the io/fs sentinel it matches:
//
//	entries, err := fsys.ReadDir(dir)
//	if err != nil {
//	    return errors.WrapFS(err, "readdir", dir)
//	}
//
// # JSON
//
// ToJSON flattens any error into an ErrorResponse for machine-readable CLI
// output. The cause chain is not serialized.
package errors
