package osc

import (
	"reflect"
	"testing"
)

func TestParsePaddedString(t *testing.T) {
	for _, tt := range []struct {
		buf     []byte // buffer
		want    int    // bytes consumed
		want1   string // resulting string
		wantErr bool
	}{
		{[]byte{'t', 'e', 's', 't', 's', 't', 'r', 'i', 'n', 'g', 0, 0}, 12, "teststring", false},
		{[]byte{'t', 'e', 's', 't', 'e', 'r', 's', 0}, 8, "testers", false},
		{[]byte{'t', 'e', 's', 't', 's', 0, 0, 0}, 8, "tests", false},
		{[]byte{'t', 'e', 's', 0, 0, 0, 0, 0}, 4, "tes", false}, // OSC uses null terminated strings
		{[]byte{'t', 'e', 's', 't'}, 0, "", true},               // no null byte at the end
		{[]byte{'t', 'e', 's', 't', 's', 0}, 0, "", true},       // null byte, but padding missing
	} {
		got, got1, err := parsePaddedString(tt.buf)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: parsePaddedString() error = %v, wantErr %v", tt.want1, err, tt.wantErr)
			continue
		}
		if got1 != tt.want {
			t.Errorf("%s: bytes consumed don't match; got = %d, want = %d", tt.want1, got1, tt.want)
		}
		if got != tt.want1 {
			t.Errorf("%s: strings don't match; got = %q, want = %q", tt.want1, got, tt.want1)
		}
	}
}

func TestWritePaddedString(t *testing.T) {
	testString := "testString"
	want := len(testString) + 1 + padBytesNeeded(len(testString)+1)

	b := make([]byte, paddedLength(len(testString)))
	if n := writePaddedString(testString, b); n != want {
		t.Errorf("writePaddedString() = %d, want %d", n, want)
	}

	wantBytes := append([]byte(testString), 0, 0)
	if !reflect.DeepEqual(b, wantBytes) {
		t.Errorf("writePaddedString() wrote %v, want %v", b, wantBytes)
	}
}

func TestPaddedLength(t *testing.T) {
	for _, tt := range []struct {
		n    int
		want int
	}{
		{0, 4},
		{1, 4},
		{3, 4},
		{4, 8},
		{7, 8},
		{8, 12},
	} {
		if got := paddedLength(tt.n); got != tt.want {
			t.Errorf("paddedLength(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestPadBytesNeeded(t *testing.T) {
	var n int
	n = padBytesNeeded(4)
	if n != 0 {
		t.Errorf("Number of pad bytes should be 0 and is: %d", n)
	}

	n = padBytesNeeded(3)
	if n != 1 {
		t.Errorf("Number of pad bytes should be 1 and is: %d", n)
	}

	n = padBytesNeeded(1)
	if n != 3 {
		t.Errorf("Number of pad bytes should be 3 and is: %d", n)
	}

	n = padBytesNeeded(0)
	if n != 0 {
		t.Errorf("Number of pad bytes should be 0 and is: %d", n)
	}

	n = padBytesNeeded(32)
	if n != 0 {
		t.Errorf("Number of pad bytes should be 0 and is: %d", n)
	}

	n = padBytesNeeded(63)
	if n != 1 {
		t.Errorf("Number of pad bytes should be 1 and is: %d", n)
	}

	n = padBytesNeeded(10)
	if n != 2 {
		t.Errorf("Number of pad bytes should be 2 and is: %d", n)
	}
}
