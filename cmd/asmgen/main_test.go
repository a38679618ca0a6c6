package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAssembleProducesFlatBinary(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "listing.txt")
	out := filepath.Join(dir, "out.bin")

	listing := "8000 A9 05\n8002 00\n"
	if err := os.WriteFile(in, []byte(listing), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := assemble(in, out, 0); err != nil {
		t.Fatalf("assemble: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := []byte{0xA9, 0x05, 0x00}
	if string(got) != string(want) {
		t.Errorf("assembled bytes = % X, want % X", got, want)
	}
}

func TestAssembleAppliesOffset(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "listing.txt")
	out := filepath.Join(dir, "out.bin")

	if err := os.WriteFile(in, []byte("8000 EA\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := assemble(in, out, 2); err != nil {
		t.Fatalf("assemble: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := []byte{0x00, 0x00, 0xEA}
	if string(got) != string(want) {
		t.Errorf("assembled bytes = % X, want % X", got, want)
	}
}

func TestAssembleSkipsNonListingLines(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "listing.txt")
	out := filepath.Join(dir, "out.bin")

	listing := "; a comment\n8000 EA\n\n"
	if err := os.WriteFile(in, []byte(listing), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := assemble(in, out, 0); err != nil {
		t.Fatalf("assemble: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != string([]byte{0xEA}) {
		t.Errorf("assembled bytes = % X, want [EA]", got)
	}
}
