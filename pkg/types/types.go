package types

// Key is an opaque byte sequence identifying a mapping.
type Key = []byte

// Value is an opaque byte sequence associated with a Key.
type Value = []byte

// NodeAddr identifies a Local node by its reachable address.
type NodeAddr = string
