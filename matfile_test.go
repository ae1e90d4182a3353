package algofft

import (
	"bytes"
	"testing"
)

func TestMatrixRoundTrip(t *testing.T) {
	m := Matrix{
		{1, 2, 3},
		{4.5, -6.25},
		{},
	}
	var buf bytes.Buffer
	if err := WriteMatrix(&buf, m); err != nil {
		t.Fatal(err)
	}
	got, err := ReadMatrix(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(m) {
		t.Fatalf("rows = %d, want %d", len(got), len(m))
	}
	for i := range m {
		if len(got[i]) != len(m[i]) {
			t.Fatalf("row %d length = %d, want %d", i, len(got[i]), len(m[i]))
		}
		for j := range m[i] {
			if got[i][j] != m[i][j] {
				t.Errorf("[%d][%d] = %v, want %v", i, j, got[i][j], m[i][j])
			}
		}
	}
}

func TestReadMatrixBadMagic(t *testing.T) {
	if _, err := ReadMatrix(bytes.NewReader([]byte("XXXX"))); err == nil {
		t.Error("expected a format error for a bad magic header")
	}
}

func TestReadMatrixRejectsTrailingBytes(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMatrix(&buf, Matrix{{1, 2, 3}}); err != nil {
		t.Fatal(err)
	}
	buf.Write([]byte{0x01})
	if _, err := ReadMatrix(&buf); err == nil {
		t.Error("expected a format error for trailing bytes after the last declared row")
	}
}
