package store

import "fmt"

// CorruptError reports an unparsable canonical file with no usable backup.
// It is fatal to the run.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("store file %s is corrupt and no valid backup exists: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// PersistError reports a failed write or rename of the canonical file.
// It is fatal to the run.
type PersistError struct {
	Op  string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
