package kv

import (
	"bytes"
	"sort"
	"testing"

	"pgregory.net/rapid"
)

func genValueKey(t *rapid.T) ValueKey {
	accountID := rapid.Uint32().Draw(t, "account_id")
	collection := rapid.Uint8().Draw(t, "collection")
	documentID := rapid.Uint32().Draw(t, "document_id")
	field := rapid.Uint8Range(0, 0x7F).Draw(t, "field")
	return PropertyValueKey(accountID, collection, documentID, field)
}

// P1 — subspace agreement.
func TestPropertySubspaceAgreement(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := genValueKey(t)
		encoded := k.Serialize(WithSubspace)
		if encoded[0] != byte(k.Subspace()) {
			t.Fatalf("serialize(WITH_SUBSPACE)[0] = %#x, want %#x", encoded[0], k.Subspace())
		}
	})
}

// P2 — subspace-prefix presence.
func TestPropertySubspacePrefixPresence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := genValueKey(t)
		withSub := k.Serialize(WithSubspace)
		without := k.Serialize(0)
		want := append([]byte{byte(k.Subspace())}, without...)
		if !bytes.Equal(withSub, want) {
			t.Fatalf("serialize(WITH_SUBSPACE) = %x, want [subspace]++serialize(0) = %x", withSub, want)
		}
	})
}

// P3 — monotone encoding, varying the trailing document_id field with
// every other field held fixed.
func TestPropertyMonotoneEncoding(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		accountID := rapid.Uint32().Draw(t, "account_id")
		collection := rapid.Uint8Range(0, 254).Draw(t, "collection")
		field := rapid.Uint8Range(0, 83).Draw(t, "field") // avoid the 84/collection=1 pun for a clean comparison
		d1 := rapid.Uint32Range(0, 1<<31).Draw(t, "d1")
		d2 := rapid.Uint32Range(d1+1, 1<<31+1).Draw(t, "d2")

		k1 := PropertyValueKey(accountID, collection, d1, field)
		k2 := PropertyValueKey(accountID, collection, d2, field)
		if bytes.Compare(k1.Serialize(0), k2.Serialize(0)) >= 0 {
			t.Fatalf("expected serialize(d1) < serialize(d2) for d1=%d < d2=%d", d1, d2)
		}
	})
}

// P5 — size hint correctness.
func TestPropertySizeHintCorrectness(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := genValueKey(t)
		size := k.SerializedSize()
		without := len(k.Serialize(0))
		withSub := len(k.Serialize(WithSubspace))
		if size > without || without > size+1 {
			t.Fatalf("serialized_size=%d, serialize(0).len=%d: bound violated", size, without)
		}
		if withSub != without+1 {
			t.Fatalf("serialize(WITH_SUBSPACE).len=%d, want serialize(0).len+1=%d", withSub, without+1)
		}
	})
}

// P7 — counter classification is idempotent and depends only on
// (variant tag, collection).
func TestCounterClassificationStability(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := genValueKey(t)
		a := k.IsCounter()
		b := k.IsCounter()
		if a != b {
			t.Fatalf("IsCounter not idempotent: %v then %v", a, b)
		}
		// Re-deriving from fresh ValueKeys with the same (class, collection)
		// but different account/document id must agree.
		k2 := k
		k2.AccountID = k.AccountID ^ 0xFFFFFFFF
		k2.DocumentID = k.DocumentID ^ 0xFFFFFFFF
		if k2.IsCounter() != a {
			t.Fatalf("IsCounter depends on account_id/document_id, it must not")
		}
	})
}

// P9 — payload hiding.
func TestPayloadHidingProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		accountID := rapid.Uint32().Draw(t, "account_id")
		documentID := rapid.Uint32().Draw(t, "document_id")
		due := rapid.Uint64().Draw(t, "due")

		payload := NewValueKey(accountID, 0, documentID, SendImipTask{Due: due, IsPayload: true})
		encoded := payload.Serialize(0)
		for _, b := range encoded[:8] {
			if b != 0xFF {
				t.Fatalf("expected payload row to start with 8 x 0xFF, got %x", encoded[:8])
			}
		}

		plain := NewValueKey(accountID, 0, documentID, SendImipTask{Due: due, IsPayload: false})
		plainEncoded := plain.Serialize(0)
		want := []byte{byte(due >> 56), byte(due >> 48), byte(due >> 40), byte(due >> 32),
			byte(due >> 24), byte(due >> 16), byte(due >> 8), byte(due)}
		if !bytes.Equal(plainEncoded[:8], want) {
			t.Fatalf("expected non-payload row to start with due big-endian, got %x want %x", plainEncoded[:8], want)
		}
	})
}

// P8 — due-time scan correctness: a range scan over the task-queue
// subspace up to some horizon T must surface exactly the non-payload
// rows whose due <= T, in non-decreasing due order, and must never
// surface a SendImip payload row (those sort after every real due value
// because they lead with 0xFF*8).
func TestDueTimeScanCorrectness(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 12).Draw(t, "n")
		horizon := rapid.Uint64Range(0, 1<<40).Draw(t, "horizon")

		type row struct {
			due     uint64
			payload bool
			key     []byte
		}
		var rows []row
		for i := 0; i < n; i++ {
			due := rapid.Uint64Range(0, 1<<40).Draw(t, "due")
			isPayload := rapid.Bool().Draw(t, "is_payload")
			k := NewValueKey(1, 0, uint32(i), SendImipTask{Due: due, IsPayload: isPayload})
			rows = append(rows, row{due: due, payload: isPayload, key: k.Serialize(0)})
		}

		// Simulate a [0, horizon] prefix scan: sort by encoded key and
		// take every key whose encoding is <= the horizon's big-endian
		// encoding prefix.
		horizonKey := make([]byte, U64Len)
		for i := 0; i < U64Len; i++ {
			horizonKey[U64Len-1-i] = byte(horizon >> (8 * i))
		}

		sorted := append([]row(nil), rows...)
		sort.Slice(sorted, func(i, j int) bool { return bytes.Compare(sorted[i].key, sorted[j].key) < 0 })

		var lastDue uint64
		sawAny := false
		for _, r := range sorted {
			if bytes.Compare(r.key[:U64Len], horizonKey) > 0 {
				break
			}
			if r.payload {
				t.Fatalf("payload row surfaced in due-time scan: %+v", r)
			}
			if sawAny && r.due < lastDue {
				t.Fatalf("scan order not non-decreasing in due: %d after %d", r.due, lastDue)
			}
			lastDue = r.due
			sawAny = true
			if r.due > horizon {
				t.Fatalf("scan surfaced a row past the horizon: due=%d horizon=%d", r.due, horizon)
			}
		}
	})
}

// P6 — report round-trip, over arbitrary printable-ASCII domains (the
// decoder requires valid UTF-8; restricting to ASCII keeps the
// generator simple while still exercising arbitrary length).
func TestReportRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		due := rapid.Uint64().Draw(t, "due")
		domain := rapid.StringMatching(`[a-zA-Z0-9.-]{0,64}`).Draw(t, "domain")
		policyHash := rapid.Uint64().Draw(t, "policy_hash")
		seqID := rapid.Uint64().Draw(t, "seq_id")

		ev := ReportEvent{Due: due, Domain: domain, PolicyHash: policyHash, SeqID: seqID}
		k := NewValueKey(0, 0, 0, DmarcReportEventClass{Event: ev})
		encoded := k.Serialize(0)

		decoded, err := DecodeReportEvent(encoded)
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if decoded != ev {
			t.Fatalf("round trip mismatch: got %+v, want %+v", decoded, ev)
		}
	})
}
