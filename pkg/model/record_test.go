package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeRecordsSequencePreservesOrder(t *testing.T) {
	data := []byte(`
- name: Ana
  active: true
  manager: null
- name: Rui
  active: false
  manager: Ana
`)
	records, collection, err := DecodeRecords(data, "Person")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !collection {
		t.Fatalf("expected sequence to decode as collection")
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if diff := cmp.Diff([]string{"name", "active", "manager"}, records[0].Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if value, _ := records[0].Get("active"); value != true {
		t.Fatalf("expected active=true, got %v", value)
	}
	if value, ok := records[0].Get("manager"); !ok || value != nil {
		t.Fatalf("expected manager present and nil, got %v (%v)", value, ok)
	}
	if got := TypeName(records[1]); got != "Person" {
		t.Fatalf("expected type name Person, got %q", got)
	}
}

func TestDecodeRecordsJSONMapping(t *testing.T) {
	records, collection, err := DecodeRecords([]byte(`{"z": 1, "a": "x"}`), "")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if collection {
		t.Fatalf("expected mapping to decode as single record")
	}
	if diff := cmp.Diff([]string{"z", "a"}, records[0].ColumnNames()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRecordsRejectsScalars(t *testing.T) {
	if _, _, err := DecodeRecords([]byte(`42`), ""); err == nil {
		t.Fatalf("expected error for scalar document")
	}
	if _, _, err := DecodeRecords([]byte(``), ""); err == nil {
		t.Fatalf("expected error for empty document")
	}
	if _, _, err := DecodeRecords([]byte("- 1\n- 2\n"), ""); err == nil {
		t.Fatalf("expected error for sequence of scalars")
	}
}

func TestRecordSetOverwritesWithoutReordering(t *testing.T) {
	r := NewRecord("").Set("a", 1).Set("b", 2).Set("a", 3)
	if diff := cmp.Diff([]string{"a", "b"}, r.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if value, _ := r.Get("a"); value != 3 {
		t.Fatalf("expected a=3, got %v", value)
	}
}
