package kv

import "github.com/stalwartlabs/storekey/common/leb128"

// This file is the single switch that drives every ValueClass variant's
// encoding, size, subspace routing, and counter classification. Per-type
// Serialize methods would scatter the same routing decisions across
// dozens of files; a type switch keeps the bit-exact layout table in one
// place, matched directly against the schema it implements.

// subspaceForValue returns the subspace a ValueClass variant routes to.
// Every mapping is table-driven except Property, whose (field, collection)
// pun to COUNTER is the one collection-dependent case in the whole schema.
func subspaceForValue(class ValueClass, collection uint8) Subspace {
	switch c := class.(type) {
	case PropertyClass:
		if c.Field == 84 && collection == 1 {
			return SubspaceCounter
		}
		return SubspaceProperty
	case FtsIndexClass:
		return SubspaceFTSIndex
	case AclClass:
		return SubspaceACL
	case IndexEmailTask, BayesTrainTask, SendAlarmTask, SendImipTask:
		return SubspaceTaskQueue
	case BlobReserveOp:
		return SubspaceBlobReserve
	case BlobCommitOp, BlobLinkOp, BlobLinkIDOp:
		return SubspaceBlobLink
	case NameToIDClass, EmailToIDClass, PrincipalClass, MemberOfClass, MembersClass, DirectoryIndexClass:
		return SubspaceDirectory
	case UsedQuotaClass:
		return SubspaceQuota
	case QueueMessageClass:
		return SubspaceQueueMessage
	case MessageEventClass:
		return SubspaceQueueEvent
	case DmarcReportHeaderClass, TlsReportHeaderClass, DmarcReportEventClass, TlsReportEventClass:
		return SubspaceReportOut
	case QuotaCountClass, QuotaSizeClass:
		return SubspaceQuota
	case TlsReportClass, DmarcReportClass, ArfReportClass:
		return SubspaceReportIn
	case TelemetrySpanClass:
		return SubspaceTelemetrySpan
	case TelemetryIndexClass:
		return SubspaceTelemetryIndex
	case TelemetryMetricClass:
		return SubspaceTelemetryMetric
	case ConfigClass:
		return SubspaceSettings
	case InMemoryKeyClass:
		return SubspaceInMemoryValue
	case InMemoryCounterClass:
		return SubspaceInMemoryCounter
	case DocumentIDClass, ChangeIDClass:
		return SubspaceCounter
	case AnyClass:
		return c.SubspaceTag
	default:
		panic("kv: unrecognized ValueClass variant")
	}
}

// isCounterForValue reports whether class addresses a value the KV engine
// must maintain through its atomic-add primitive rather than read-modify-
// write (spec.md §4.3).
func isCounterForValue(class ValueClass, collection uint8) bool {
	switch c := class.(type) {
	case UsedQuotaClass, InMemoryCounterClass, QuotaCountClass, QuotaSizeClass, DocumentIDClass, ChangeIDClass:
		return true
	case PropertyClass:
		return c.Field == 84 && collection == 1
	default:
		return false
	}
}

// writeReportEvent appends the shared due/domain/policy_hash/seq_id body
// a report-out row carries, after the caller has written its own leading
// variant byte.
func writeReportEvent(s *Serializer, ev ReportEvent) {
	s.WriteU64(ev.Due).WriteString(ev.Domain).WriteU64(ev.PolicyHash).WriteU64(ev.SeqID)
}

func reportEventSize(ev ReportEvent) int {
	return U64Len + len(ev.Domain) + U64Len + U64Len
}

// serializedSizeValue computes the exact encoded length of class given the
// ValueKey it is wrapped in, excluding any subspace-prefix byte.
func serializedSizeValue(accountID uint32, collection uint8, class ValueClass) int {
	switch c := class.(type) {
	case PropertyClass:
		return U32Len + 1 + 1 + U32Len
	case FtsIndexClass:
		n := U32Len + len(c.Hash.TruncatedPrefix())
		if c.Hash.IsLong() {
			n++
		}
		return n + 1 + U32Len
	case AclClass:
		return U32Len + U32Len + 1 + U32Len
	case IndexEmailTask:
		return U64Len + U32Len + 1 + U32Len + len(c.Hash)
	case BayesTrainTask:
		return U64Len + U32Len + 1 + U32Len + len(c.Hash)
	case SendAlarmTask:
		return U64Len + U32Len + 1 + U32Len + U32Len + U32Len
	case SendImipTask:
		if c.IsPayload {
			return U64Len + U32Len + 1 + U32Len + U64Len
		}
		return U64Len + U32Len + 1 + U32Len
	case BlobReserveOp:
		return U32Len + len(c.Hash) + U64Len
	case BlobCommitOp:
		return len(c.Hash) + U32Len + 1 + U32Len
	case BlobLinkOp:
		return len(c.Hash) + U32Len + 1 + U32Len
	case BlobLinkIDOp:
		return len(c.Hash) + U32Len + 1 + U32Len
	case NameToIDClass:
		return 1 + len(c.Name)
	case EmailToIDClass:
		return 1 + len(c.Email)
	case PrincipalClass:
		return 1 + leb128.SizeUint64(c.UID)
	case UsedQuotaClass:
		return 1 + leb128.SizeUint64(c.UID)
	case MemberOfClass:
		return 1 + U32Len + U32Len
	case MembersClass:
		return 1 + U32Len + U32Len
	case DirectoryIndexClass:
		return 1 + len(c.Word) + U32Len
	case QueueMessageClass:
		return U64Len
	case MessageEventClass:
		return U64Len + U64Len + len(c.QueueName)
	case DmarcReportHeaderClass:
		return 1 + reportEventSize(c.Event) + 1
	case TlsReportHeaderClass:
		return 1 + reportEventSize(c.Event) + 1
	case DmarcReportEventClass:
		return 1 + reportEventSize(c.Event)
	case TlsReportEventClass:
		return 1 + reportEventSize(c.Event)
	case QuotaCountClass:
		return 1 + len(c.Key)
	case QuotaSizeClass:
		return 1 + len(c.Key)
	case TlsReportClass:
		return 1 + U64Len + U64Len
	case DmarcReportClass:
		return 1 + U64Len + U64Len
	case ArfReportClass:
		return 1 + U64Len + U64Len
	case TelemetrySpanClass:
		return U64Len
	case TelemetryIndexClass:
		return len(c.Value) + U64Len
	case TelemetryMetricClass:
		return U64Len + leb128.SizeUint64(c.MetricID) + leb128.SizeUint64(c.NodeID)
	case ConfigClass:
		return len(c.Key)
	case InMemoryKeyClass:
		return len(c.Key)
	case InMemoryCounterClass:
		return len(c.Key)
	case DocumentIDClass:
		return U32Len + 1
	case ChangeIDClass:
		return U32Len
	case AnyClass:
		return len(c.KeyBytes)
	default:
		panic("kv: unrecognized ValueClass variant")
	}
}

// serializeValue writes class's encoding (per spec.md §3.2) into a freshly
// allocated Serializer sized from serializedSizeValue, optionally prefixed
// with the subspace byte, and returns the finished buffer.
func serializeValue(accountID uint32, collection uint8, documentID uint32, class ValueClass, flags Flags) []byte {
	size := serializedSizeValue(accountID, collection, class)
	capacity := size
	if flags&WithSubspace != 0 {
		capacity++
	}
	s := NewSerializer(capacity)
	if flags&WithSubspace != 0 {
		s.WriteByte(byte(subspaceForValue(class, collection)))
	}

	switch c := class.(type) {
	case PropertyClass:
		s.WriteU32(accountID).WriteByte(collection).WriteByte(c.Field).WriteU32(documentID)
	case FtsIndexClass:
		s.WriteU32(accountID).WriteBytes(c.Hash.TruncatedPrefix())
		if c.Hash.IsLong() {
			s.WriteByte(c.Hash.LenByte())
		}
		s.WriteByte(collection).WriteU32(documentID)
	case AclClass:
		s.WriteU32(c.GranteeAccountID).WriteU32(accountID).WriteByte(collection).WriteU32(documentID)
	case IndexEmailTask:
		s.WriteU64(c.Due).WriteU32(accountID).WriteByte(0).WriteU32(documentID).WriteBytes(c.Hash)
	case BayesTrainTask:
		tag := byte(2)
		if c.LearnSpam {
			tag = 1
		}
		s.WriteU64(c.Due).WriteU32(accountID).WriteByte(tag).WriteU32(documentID).WriteBytes(c.Hash)
	case SendAlarmTask:
		s.WriteU64(c.Due).WriteU32(accountID).WriteByte(3).WriteU32(documentID).WriteU32(c.EventID).WriteU32(c.AlarmID)
	case SendImipTask:
		if c.IsPayload {
			s.WriteU64(^uint64(0)).WriteU32(accountID).WriteByte(5).WriteU32(documentID).WriteU64(c.Due)
		} else {
			s.WriteU64(c.Due).WriteU32(accountID).WriteByte(4).WriteU32(documentID)
		}
	case BlobReserveOp:
		s.WriteU32(accountID).WriteBytes(c.Hash[:]).WriteU64(c.Until)
	case BlobCommitOp:
		s.WriteBytes(c.Hash[:]).WriteU32(^uint32(0)).WriteByte(0).WriteU32(^uint32(0))
	case BlobLinkOp:
		s.WriteBytes(c.Hash[:]).WriteU32(accountID).WriteByte(collection).WriteU32(documentID)
	case BlobLinkIDOp:
		s.WriteBytes(c.Hash[:]).WriteU32(uint32(c.ID >> 32)).WriteByte(0xFF).WriteU32(uint32(c.ID))
	case NameToIDClass:
		s.WriteByte(0).WriteBytes(c.Name)
	case EmailToIDClass:
		s.WriteByte(1).WriteBytes(c.Email)
	case PrincipalClass:
		s.WriteByte(2).WriteLeb128(c.UID)
	case UsedQuotaClass:
		s.WriteByte(4).WriteLeb128(c.UID)
	case MemberOfClass:
		s.WriteByte(5).WriteU32(c.PrincipalID).WriteU32(c.MemberOf)
	case MembersClass:
		s.WriteByte(6).WriteU32(c.PrincipalID).WriteU32(c.HasMember)
	case DirectoryIndexClass:
		s.WriteByte(7).WriteBytes(c.Word).WriteU32(c.PrincipalID)
	case QueueMessageClass:
		s.WriteU64(c.QueueID)
	case MessageEventClass:
		s.WriteU64(c.Due).WriteU64(c.QueueID).WriteBytes(c.QueueName)
	case DmarcReportHeaderClass:
		s.WriteByte(0)
		writeReportEvent(s, c.Event)
		s.WriteByte(0)
	case TlsReportHeaderClass:
		s.WriteByte(0)
		writeReportEvent(s, c.Event)
		s.WriteByte(1)
	case DmarcReportEventClass:
		s.WriteByte(1)
		writeReportEvent(s, c.Event)
	case TlsReportEventClass:
		s.WriteByte(2)
		writeReportEvent(s, c.Event)
	case QuotaCountClass:
		s.WriteByte(0).WriteBytes(c.Key)
	case QuotaSizeClass:
		s.WriteByte(1).WriteBytes(c.Key)
	case TlsReportClass:
		s.WriteByte(0).WriteU64(c.Expires).WriteU64(c.ID)
	case DmarcReportClass:
		s.WriteByte(1).WriteU64(c.Expires).WriteU64(c.ID)
	case ArfReportClass:
		s.WriteByte(2).WriteU64(c.Expires).WriteU64(c.ID)
	case TelemetrySpanClass:
		s.WriteU64(c.SpanID)
	case TelemetryIndexClass:
		s.WriteBytes(c.Value).WriteU64(c.SpanID)
	case TelemetryMetricClass:
		s.WriteU64(c.Timestamp).WriteLeb128(c.MetricID).WriteLeb128(c.NodeID)
	case ConfigClass:
		s.WriteBytes(c.Key)
	case InMemoryKeyClass:
		s.WriteBytes(c.Key)
	case InMemoryCounterClass:
		s.WriteBytes(c.Key)
	case DocumentIDClass:
		s.WriteU32(accountID).WriteByte(collection)
	case ChangeIDClass:
		s.WriteU32(accountID)
	case AnyClass:
		s.WriteBytes(c.KeyBytes)
	default:
		panic("kv: unrecognized ValueClass variant")
	}
	return s.Finalize()
}
