package store

import "fmt"

// StorageError wraps a persistence failure with the operation and entity kind
// it occurred on. Callers unwrap to reach the driver error when needed.
type StorageError struct {
	Op   string // "insert" or "list"
	Kind Kind
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("ledger %s %s: %v", e.Op, e.Kind, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
