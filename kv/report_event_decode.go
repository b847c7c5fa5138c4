package kv

import "unicode/utf8"

// minReportEventLen is the shortest a DecodeReportEvent input can be:
// 1 variant byte + 8 due + 0 domain bytes + 8 policy_hash + 8 seq_id.
const minReportEventLen = 1 + U64Len + U64Len + U64Len

// DecodeReportEvent parses the bytes produced by serializing a
// DmarcReportEventClass or TlsReportEventClass with WithSubspace clear:
// a leading variant byte, big-endian due:u64, the domain's raw UTF-8
// bytes, then big-endian policy_hash:u64 and seq_id:u64 trailing the
// buffer (spec.md §4.4). Any short read or non-UTF-8 domain is reported
// as DataCorruption carrying the full input.
//
// Offsets are anchored from the end of the buffer (len-16, len-8) rather
// than len-17/len-9: the latter only line up with the sibling header
// encoding, which carries one extra trailing discriminator byte that the
// plain event encoding (see value_encode.go's DmarcReportEventClass/
// TlsReportEventClass cases) does not write. Anchoring from len-16/len-8
// is what makes this decoder the exact inverse of that encoding (see
// DESIGN.md).
func DecodeReportEvent(key []byte) (ReportEvent, error) {
	d := Deserializer(key)
	if len(key) < minReportEventLen {
		return ReportEvent{}, newDataCorruption(key, 0, "report event shorter than minimum length")
	}
	due, err := d.ReadU64BE(1)
	if err != nil {
		return ReportEvent{}, err
	}
	policyHash, err := d.ReadU64BE(len(key) - 16)
	if err != nil {
		return ReportEvent{}, err
	}
	seqID, err := d.ReadU64BE(len(key) - 8)
	if err != nil {
		return ReportEvent{}, err
	}
	domainBytes, err := d.Slice(9, len(key)-16)
	if err != nil {
		return ReportEvent{}, err
	}
	if !utf8.Valid(domainBytes) {
		return ReportEvent{}, newDataCorruption(key, 9, "report event domain is not valid UTF-8")
	}
	return ReportEvent{
		Due:        due,
		Domain:     string(domainBytes),
		PolicyHash: policyHash,
		SeqID:      seqID,
	}, nil
}
