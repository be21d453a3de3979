package dberrors

import "errors"

var (
	// ErrNotFound reports a key absent from the consulted store. A normal
	// negative result, never fatal.
	ErrNotFound = errors.New("dstore: key-value mapping doesn't exist")

	// ErrKeyOccupied reports a write-once violation: the key already maps
	// to a value and SET never overwrites.
	ErrKeyOccupied = errors.New("dstore: key occupied")

	// ErrUnavailable reports that Global could not be reached or the call
	// timed out. The only hard-failure category.
	ErrUnavailable = errors.New("dstore: global unavailable")

	// ErrStreamAborted reports a chunked transfer that failed mid-stream.
	// Nothing from the transfer is committed.
	ErrStreamAborted = errors.New("dstore: stream aborted")

	// ErrUnknownNode reports an invalidation poll from an address that
	// never joined the cluster.
	ErrUnknownNode = errors.New("dstore: unknown node")
)
