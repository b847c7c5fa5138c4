// Package memkv is a reference, in-memory implementation of the ordered
// byte-key store the kv package's keys are designed to address (spec.md
// §6.1). It exists so the rest of this repository — tests, the CLI,
// examples — has something to drive point-gets, range-scans, and atomic
// adds against. It is not a production engine: no durability, no
// replication, no caching beyond the in-process btree index (see
// SPEC_FULL.md §6.1, Non-goals).
package memkv
