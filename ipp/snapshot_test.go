package ipp

import (
	"bytes"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	entries := []PwalnEntry{
		{RefStart: 100, RefEnd: 200, QryStart: 1000, QryEnd: 1100, RefChrom: 0, QryChrom: 1},
	}
	data := buildPwalnBinary([]string{"chr1", "chr2"}, entries)
	path := writeTempFile(t, data)

	store := NewStore()
	if err := store.LoadPwalns(path); err != nil {
		t.Fatalf("LoadPwalns: %v", err)
	}
	if err := store.SetHalfLifeDistance(100000); err != nil {
		t.Fatalf("SetHalfLifeDistance: %v", err)
	}

	var buf bytes.Buffer
	if err := SaveSnapshot(&buf, store); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	restored, err := LoadSnapshot(&buf)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}

	stats := restored.Stats()
	if stats.NumChroms != 2 || stats.NumPwalnEntries != 1 {
		t.Fatalf("restored stats = %+v, want NumChroms=2 NumPwalnEntries=1", stats)
	}
	id, err := restored.ChromIDFromName("chr2")
	if err != nil {
		t.Fatalf("ChromIDFromName on restored store: %v", err)
	}
	if id != 1 {
		t.Fatalf("chr2 id = %d, want 1", id)
	}
}
