package chunk

import (
	"bytes"
	"testing"
)

func TestSplit_Assemble_RoundTrip(t *testing.T) {
	sizes := []int{1, 2, 3, 7, 64, 1024}
	value := bytes.Repeat([]byte("dstore"), 777)

	for _, size := range sizes {
		chunks := Split(value, size)
		if len(chunks) == 0 {
			t.Fatalf("size %d: expected at least one chunk", size)
		}
		got := Assemble(chunks)
		if !bytes.Equal(got, value) {
			t.Fatalf("size %d: reassembled value differs from original", size)
		}
	}
}

func TestSplit_RemainderNotDropped(t *testing.T) {
	// 10 bytes over 4-byte frames: 4+4+2, the tail must survive.
	value := []byte("0123456789")
	chunks := Split(value, 4)

	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	if string(chunks[2]) != "89" {
		t.Fatalf("expected remainder chunk %q, got %q", "89", chunks[2])
	}
}

func TestSplit_ValueSmallerThanFrame(t *testing.T) {
	chunks := Split([]byte("tiny"), 1024)
	if len(chunks) != 1 {
		t.Fatalf("expected a single chunk, got %d", len(chunks))
	}
	if string(chunks[0]) != "tiny" {
		t.Fatalf("unexpected chunk content %q", chunks[0])
	}
}

func TestSplit_EmptyValue(t *testing.T) {
	if chunks := Split(nil, 16); len(chunks) != 0 {
		t.Fatalf("expected no chunks for empty value, got %d", len(chunks))
	}
	if got := Assemble(nil); len(got) != 0 {
		t.Fatalf("expected empty value, got %d bytes", len(got))
	}
}
