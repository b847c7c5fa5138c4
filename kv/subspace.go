package kv

// Subspace is a single byte that partitions the global ordered keyspace.
// Records in different subspaces never collide, regardless of what their
// own key-forming fields look like.
type Subspace byte

// The closed set of subspaces. Numeric values are stable for a given
// binary but are otherwise an implementation choice: renumbering any of
// them is a breaking storage migration (see spec.md §6.3).
const (
	SubspaceProperty Subspace = iota
	SubspaceACL
	SubspaceIndexes
	SubspaceFTSIndex
	SubspaceBitmapID
	SubspaceBitmapTag
	SubspaceBitmapText
	SubspaceBlobReserve
	SubspaceBlobLink
	SubspaceQueueMessage
	SubspaceQueueEvent
	SubspaceReportIn
	SubspaceReportOut
	SubspaceDirectory
	SubspaceQuota
	SubspaceCounter
	SubspaceSettings
	SubspaceLogs
	SubspaceInMemoryValue
	SubspaceInMemoryCounter
	SubspaceTaskQueue
	SubspaceTelemetrySpan
	SubspaceTelemetryIndex
	SubspaceTelemetryMetric
)

func (s Subspace) String() string {
	switch s {
	case SubspaceProperty:
		return "PROPERTY"
	case SubspaceACL:
		return "ACL"
	case SubspaceIndexes:
		return "INDEXES"
	case SubspaceFTSIndex:
		return "FTS_INDEX"
	case SubspaceBitmapID:
		return "BITMAP_ID"
	case SubspaceBitmapTag:
		return "BITMAP_TAG"
	case SubspaceBitmapText:
		return "BITMAP_TEXT"
	case SubspaceBlobReserve:
		return "BLOB_RESERVE"
	case SubspaceBlobLink:
		return "BLOB_LINK"
	case SubspaceQueueMessage:
		return "QUEUE_MESSAGE"
	case SubspaceQueueEvent:
		return "QUEUE_EVENT"
	case SubspaceReportIn:
		return "REPORT_IN"
	case SubspaceReportOut:
		return "REPORT_OUT"
	case SubspaceDirectory:
		return "DIRECTORY"
	case SubspaceQuota:
		return "QUOTA"
	case SubspaceCounter:
		return "COUNTER"
	case SubspaceSettings:
		return "SETTINGS"
	case SubspaceLogs:
		return "LOGS"
	case SubspaceInMemoryValue:
		return "IN_MEMORY_VALUE"
	case SubspaceInMemoryCounter:
		return "IN_MEMORY_COUNTER"
	case SubspaceTaskQueue:
		return "TASK_QUEUE"
	case SubspaceTelemetrySpan:
		return "TELEMETRY_SPAN"
	case SubspaceTelemetryIndex:
		return "TELEMETRY_INDEX"
	case SubspaceTelemetryMetric:
		return "TELEMETRY_METRIC"
	default:
		return "UNKNOWN"
	}
}

// AllSubspaces is the closed enumeration, in declaration order. Used by
// tooling that needs to iterate the whole table (e.g. cmd/storekeyctl).
var AllSubspaces = []Subspace{
	SubspaceProperty, SubspaceACL, SubspaceIndexes, SubspaceFTSIndex,
	SubspaceBitmapID, SubspaceBitmapTag, SubspaceBitmapText,
	SubspaceBlobReserve, SubspaceBlobLink, SubspaceQueueMessage,
	SubspaceQueueEvent, SubspaceReportIn, SubspaceReportOut,
	SubspaceDirectory, SubspaceQuota, SubspaceCounter, SubspaceSettings,
	SubspaceLogs, SubspaceInMemoryValue, SubspaceInMemoryCounter,
	SubspaceTaskQueue, SubspaceTelemetrySpan, SubspaceTelemetryIndex,
	SubspaceTelemetryMetric,
}
