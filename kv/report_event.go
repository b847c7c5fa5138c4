package kv

// ReportEvent is a persisted record of an outbound DMARC or TLS
// aggregate-report fragment, keyed by deadline, domain, policy hash, and
// sequence id. It is the only key-derived payload this package decodes
// (the rest of the core is write-only from this layer's perspective).
type ReportEvent struct {
	Due        uint64
	Domain     string
	PolicyHash uint64
	SeqID      uint64
}
