package dbtypes

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDArrayRoundTrip(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	arr := UUIDArray{first, second}

	value, err := arr.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}

	var scanned UUIDArray
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(scanned) != 2 || scanned[0] != first || scanned[1] != second {
		t.Fatalf("round trip mismatch: %v", scanned)
	}
}

func TestUUIDArrayScanEmpty(t *testing.T) {
	for _, src := range []any{nil, "{}", "", []byte("{}")} {
		var arr UUIDArray
		if err := arr.Scan(src); err != nil {
			t.Fatalf("scan %v: %v", src, err)
		}
		if len(arr) != 0 {
			t.Fatalf("expected empty array for %v, got %v", src, arr)
		}
	}
}

func TestUUIDArrayScanQuotedLiteral(t *testing.T) {
	id := uuid.New()
	var arr UUIDArray
	if err := arr.Scan(`{"` + id.String() + `"}`); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(arr) != 1 || arr[0] != id {
		t.Fatalf("unexpected array %v", arr)
	}
}

func TestUUIDArrayScanRejectsGarbage(t *testing.T) {
	var arr UUIDArray
	if err := arr.Scan("{not-a-uuid}"); err == nil {
		t.Fatal("expected parse error")
	}
	if err := arr.Scan(42); err == nil {
		t.Fatal("expected unsupported type error")
	}
}

func TestUUIDArrayContainsAndWithout(t *testing.T) {
	keep := uuid.New()
	drop := uuid.New()
	arr := UUIDArray{keep, drop, keep}

	if !arr.Contains(drop) {
		t.Fatal("expected Contains true")
	}

	pruned := arr.Without(drop)
	if pruned.Contains(drop) {
		t.Fatal("expected id removed")
	}
	if len(pruned) != 2 {
		t.Fatalf("expected other entries kept, got %v", pruned)
	}
	if len(arr) != 3 {
		t.Fatal("Without must not mutate the receiver")
	}
}
