package bitstream

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestSource_ReadBits(t *testing.T) {
	s := NewSource(bytes.NewReader([]byte{0xa5, 0x3c}))

	type testRow struct {
		n      uint8
		expect uint64
	}

	testData := [...]testRow{
		{1, 0x1},
		{3, 0x2},
		{4, 0x5},
		{6, 0x0f},
	}
	for i, row := range testData {
		actual, err := s.ReadBits(row.n)
		if err != nil {
			t.Fatalf("read %d: unexpected error: %v", i, err)
		}
		if actual != row.expect {
			t.Errorf("read %d: wrong value:\n\texpect: %#x\n\tactual: %#x", i, row.expect, actual)
		}
	}

	// Two bits remain, so a three-bit field is end of data.
	if _, err := s.ReadBits(3); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
	if actual := s.BitsRead(); actual != 14 {
		t.Errorf("wrong bit count:\n\texpect: %d\n\tactual: %d", 14, actual)
	}
}

func TestSource_Reset(t *testing.T) {
	s := NewSource(bytes.NewReader([]byte("hi")))
	first, err := s.ReadBits(16)
	if err != nil {
		t.Fatalf("ReadBits failed: %v", err)
	}
	if _, err := s.ReadBits(8); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if s.BitsRead() != 0 {
		t.Errorf("expected BitsRead to restart at 0, got %d", s.BitsRead())
	}
	second, err := s.ReadBits(16)
	if err != nil {
		t.Fatalf("ReadBits after Reset failed: %v", err)
	}
	if first != second || first != 0x6869 {
		t.Errorf("wrong values:\n\texpect: %#x\n\tactual: %#x, %#x", 0x6869, first, second)
	}
}

func TestSpoolSource(t *testing.T) {
	// io.MultiReader hides any Seek method, like a pipe would.
	r := io.MultiReader(strings.NewReader("spool"), strings.NewReader("ed"))
	s, err := SpoolSource(r)
	if err != nil {
		t.Fatalf("SpoolSource failed: %v", err)
	}
	defer s.Close()

	for pass := 0; pass < 2; pass++ {
		var buf []byte
		for {
			v, err := s.ReadBits(8)
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("pass %d: ReadBits failed: %v", pass, err)
			}
			buf = append(buf, byte(v))
		}
		if string(buf) != "spooled" {
			t.Errorf("pass %d: wrong data:\n\texpect: %q\n\tactual: %q", pass, "spooled", buf)
		}
		if err := s.Reset(); err != nil {
			t.Fatalf("Reset failed: %v", err)
		}
	}

	if err := s.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}

func TestSpoolSource_Seeker(t *testing.T) {
	r := bytes.NewReader([]byte{0x42})
	s, err := SpoolSource(r)
	if err != nil {
		t.Fatalf("SpoolSource failed: %v", err)
	}
	if s.rs != io.ReadSeeker(r) {
		t.Errorf("expected a seekable reader to be used directly")
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}
