package kv

import "github.com/stalwartlabs/storekey/common/blobhash"

// ValueClass is the tagged union of every record kind that lives in a
// ValueKey (every subspace except INDEXES, LOGS, and the three bitmap
// subspaces, which have their own key types). Each concrete type below
// is a by-value variant; there is no shared mutable state and no
// inheritance. Serialization, sizing, subspace routing, and counter
// classification are each a single switch over these types (see
// value_encode.go), not a virtual call per variant.
type ValueClass interface {
	valueClass()
}

// PropertyClass addresses a single property of a document. Field 84 on
// collection 1 is routed to SUBSPACE_COUNTER instead of SUBSPACE_PROPERTY
// — a legacy pun preserved bit-for-bit for storage compatibility (see
// DESIGN.md).
type PropertyClass struct{ Field uint8 }

func (PropertyClass) valueClass() {}

// FtsIndexClass addresses a full-text index posting for a token hash.
type FtsIndexClass struct{ Hash blobhash.TokenHash }

func (FtsIndexClass) valueClass() {}

// AclClass addresses the ACL entry a grantee account holds over a
// document.
type AclClass struct{ GranteeAccountID uint32 }

func (AclClass) valueClass() {}

// ConfigClass addresses a raw settings key.
type ConfigClass struct{ Key []byte }

func (ConfigClass) valueClass() {}

// InMemoryKeyClass addresses a non-counter in-memory lookup value.
type InMemoryKeyClass struct{ Key []byte }

func (InMemoryKeyClass) valueClass() {}

// InMemoryCounterClass addresses an in-memory counter value.
type InMemoryCounterClass struct{ Key []byte }

func (InMemoryCounterClass) valueClass() {}

// DocumentIDClass addresses the per-(account, collection) document id
// sequence. It is always a counter.
type DocumentIDClass struct{}

func (DocumentIDClass) valueClass() {}

// ChangeIDClass addresses the per-account change id sequence. It is
// always a counter.
type ChangeIDClass struct{}

func (ChangeIDClass) valueClass() {}

// AnyClass is the escape hatch for callers addressing a raw byte key in
// a caller-chosen subspace; it bypasses every other routing rule.
type AnyClass struct {
	SubspaceTag Subspace
	KeyBytes    []byte
}

func (AnyClass) valueClass() {}

// --- Task queue ---

// TaskQueueClass is the tagged union of scheduled background work. Every
// variant leads its encoding with a big-endian due:u64, except the
// SendImip payload row (see SendImipTask).
type TaskQueueClass interface {
	ValueClass
	taskQueueClass()
}

type IndexEmailTask struct {
	Due  uint64
	Hash []byte
}

func (IndexEmailTask) valueClass() {}
func (IndexEmailTask) taskQueueClass() {}

type BayesTrainTask struct {
	Due       uint64
	Hash      []byte
	LearnSpam bool
}

func (BayesTrainTask) valueClass() {}
func (BayesTrainTask) taskQueueClass() {}

type SendAlarmTask struct {
	Due     uint64
	EventID uint32
	AlarmID uint32
}

func (SendAlarmTask) valueClass() {}
func (SendAlarmTask) taskQueueClass() {}

// SendImipTask schedules an iMIP send. When IsPayload is true, the
// encoder writes a leading u64::MAX instead of Due and appends the real
// Due at the tail, so a scheduler's `[0, now]` range scan never surfaces
// payload rows — those are fetched by exact key only (spec.md §3.3).
type SendImipTask struct {
	Due       uint64
	IsPayload bool
}

func (SendImipTask) valueClass() {}
func (SendImipTask) taskQueueClass() {}

// --- Blob ---

// BlobOp is the tagged union of blob-store operations.
type BlobOp interface {
	ValueClass
	blobOp()
}

type BlobReserveOp struct {
	Hash  blobhash.Hash
	Until uint64
}

func (BlobReserveOp) valueClass() {}
func (BlobReserveOp) blobOp() {}

// BlobCommitOp marks a blob as committed but not yet linked to any
// document. It encodes sentinel u32::MAX values in place of
// account_id/document_id so that a committed-but-unlinked row sorts
// after any real Link entry sharing the same hash.
type BlobCommitOp struct{ Hash blobhash.Hash }

func (BlobCommitOp) valueClass() {}
func (BlobCommitOp) blobOp() {}

type BlobLinkOp struct{ Hash blobhash.Hash }

func (BlobLinkOp) valueClass() {}
func (BlobLinkOp) blobOp() {}

type BlobLinkIDOp struct {
	Hash blobhash.Hash
	ID   uint64
}

func (BlobLinkIDOp) valueClass() {}
func (BlobLinkIDOp) blobOp() {}

// --- Directory ---

// DirectoryClass is the tagged union of principal/directory lookups.
type DirectoryClass interface {
	ValueClass
	directoryClass()
}

type NameToIDClass struct{ Name []byte }

func (NameToIDClass) valueClass() {}
func (NameToIDClass) directoryClass() {}

type EmailToIDClass struct{ Email []byte }

func (EmailToIDClass) valueClass() {}
func (EmailToIDClass) directoryClass() {}

type PrincipalClass struct{ UID uint64 }

func (PrincipalClass) valueClass() {}
func (PrincipalClass) directoryClass() {}

// UsedQuotaClass routes to SUBSPACE_QUOTA rather than SUBSPACE_DIRECTORY
// and is always a counter.
type UsedQuotaClass struct{ UID uint64 }

func (UsedQuotaClass) valueClass() {}
func (UsedQuotaClass) directoryClass() {}

type MemberOfClass struct {
	PrincipalID uint32
	MemberOf    uint32
}

func (MemberOfClass) valueClass() {}
func (MemberOfClass) directoryClass() {}

type MembersClass struct {
	PrincipalID uint32
	HasMember   uint32
}

func (MembersClass) valueClass() {}
func (MembersClass) directoryClass() {}

type DirectoryIndexClass struct {
	Word        []byte
	PrincipalID uint32
}

func (DirectoryIndexClass) valueClass() {}
func (DirectoryIndexClass) directoryClass() {}

// --- Queue ---

// QueueClass is the tagged union of outbound-message scheduling and
// aggregate-report queue state.
type QueueClass interface {
	ValueClass
	queueClass()
}

type QueueMessageClass struct{ QueueID uint64 }

func (QueueMessageClass) valueClass() {}
func (QueueMessageClass) queueClass() {}

type MessageEventClass struct {
	Due       uint64
	QueueID   uint64
	QueueName []byte
}

func (MessageEventClass) valueClass() {}
func (MessageEventClass) queueClass() {}

type DmarcReportHeaderClass struct{ Event ReportEvent }

func (DmarcReportHeaderClass) valueClass() {}
func (DmarcReportHeaderClass) queueClass() {}

type TlsReportHeaderClass struct{ Event ReportEvent }

func (TlsReportHeaderClass) valueClass() {}
func (TlsReportHeaderClass) queueClass() {}

type DmarcReportEventClass struct{ Event ReportEvent }

func (DmarcReportEventClass) valueClass() {}
func (DmarcReportEventClass) queueClass() {}

type TlsReportEventClass struct{ Event ReportEvent }

func (TlsReportEventClass) valueClass() {}
func (TlsReportEventClass) queueClass() {}

type QuotaCountClass struct{ Key []byte }

func (QuotaCountClass) valueClass() {}
func (QuotaCountClass) queueClass() {}

type QuotaSizeClass struct{ Key []byte }

func (QuotaSizeClass) valueClass() {}
func (QuotaSizeClass) queueClass() {}

// --- Report (inbound) ---

// ReportClass is the tagged union of a persisted inbound report fragment
// awaiting aggregation.
type ReportClass interface {
	ValueClass
	reportClass()
}

type TlsReportClass struct {
	ID      uint64
	Expires uint64
}

func (TlsReportClass) valueClass() {}
func (TlsReportClass) reportClass() {}

type DmarcReportClass struct {
	ID      uint64
	Expires uint64
}

func (DmarcReportClass) valueClass() {}
func (DmarcReportClass) reportClass() {}

type ArfReportClass struct {
	ID      uint64
	Expires uint64
}

func (ArfReportClass) valueClass() {}
func (ArfReportClass) reportClass() {}

// --- Telemetry ---

// TelemetryClass is the tagged union of tracing span storage.
type TelemetryClass interface {
	ValueClass
	telemetryClass()
}

type TelemetrySpanClass struct{ SpanID uint64 }

func (TelemetrySpanClass) valueClass() {}
func (TelemetrySpanClass) telemetryClass() {}

type TelemetryIndexClass struct {
	SpanID uint64
	Value  []byte
}

func (TelemetryIndexClass) valueClass() {}
func (TelemetryIndexClass) telemetryClass() {}

type TelemetryMetricClass struct {
	Timestamp uint64
	MetricID  uint64
	NodeID    uint64
}

func (TelemetryMetricClass) valueClass() {}
func (TelemetryMetricClass) telemetryClass() {}
