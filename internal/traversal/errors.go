package traversal

import "fmt"

// RootNotFoundError reports a scan root that does not exist or is not a
// directory. No model is produced.
type RootNotFoundError struct {
	Path string
}

func (e *RootNotFoundError) Error() string {
	return fmt.Sprintf("trip root not found: %s", e.Path)
}

// RootNotReadableError reports a scan root that exists but cannot be
// listed. No model is produced.
type RootNotReadableError struct {
	Path string
	Err  error
}

func (e *RootNotReadableError) Error() string {
	return fmt.Sprintf("trip root not readable: %s: %v", e.Path, e.Err)
}

func (e *RootNotReadableError) Unwrap() error { return e.Err }

// IOError reports a filesystem failure partway through a scan. The
// partial model is discarded.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("traversal failed at %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
