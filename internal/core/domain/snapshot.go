package domain

// Snapshot records the pre-run state of a package manifest.
type Snapshot struct {
	Package Package
	// Digest is the xxhash of the original manifest bytes.
	Digest uint64
	// Adopted is set when a backup artifact already existed and was reused.
	Adopted bool
}
