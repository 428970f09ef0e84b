package util

import "testing"

func TestFingerprint(t *testing.T) {
	payload := []byte(`[{"id": 1}]`)
	got := Fingerprint(payload)
	if got != Fingerprint(payload) {
		t.Fatalf("expected stable fingerprint, got %s", got)
	}
	if got == Fingerprint([]byte(`[{"id": 2}]`)) {
		t.Fatalf("different payloads must not collide")
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("fingerprint contains non-hex character: %c", ch)
		}
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
}
