// Package envspec handles conda environment YAML files: parsing, canonical
// hashing, and composition of per-project extra channels and dependencies.
// Hashes are computed over a canonical serialization of the parsed document,
// so whitespace, comment, and key-order edits do not change the hash.
package envspec
