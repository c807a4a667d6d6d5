package huffile

import (
	"bytes"
	"errors"
	"io"
	"math"
	"math/rand"
	"strings"
	"testing"
)

func TestCountFrequencies(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, size := range []int{0, 1, 7, 4096, 100000} {
		data := make([]byte, size)
		rng.Read(data)
		r := bytes.NewReader(data)

		h, err := CountFrequencies(r)
		if err != nil {
			t.Fatalf("size %d: CountFrequencies failed: %v", size, err)
		}
		if total := h.Total(); total != uint64(size) {
			t.Errorf("size %d: expected total %d, got %d", size, size, total)
		}

		var expect Histogram
		for _, b := range data {
			expect[b]++
		}
		if h != expect {
			t.Errorf("size %d: wrong histogram", size)
		}

		// The reader must be rewound for the second pass.
		again, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("size %d: second pass failed: %v", size, err)
		}
		if !bytes.Equal(again, data) {
			t.Errorf("size %d: second pass read different bytes", size)
		}
	}
}

func TestHistogram_Distinct(t *testing.T) {
	var h Histogram
	if n := h.Distinct(); n != 0 {
		t.Errorf("expected 0 distinct, got %d", n)
	}
	if err := h.Add([]byte("abracadabra")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if n := h.Distinct(); n != 5 {
		t.Errorf("expected 5 distinct, got %d", n)
	}
	if n := h.Total(); n != 11 {
		t.Errorf("expected total 11, got %d", n)
	}
}

func TestHistogram_WriteRead(t *testing.T) {
	var h Histogram
	h['A'] = 5
	h['B'] = 2
	h[0xff] = 0xdeadbeef

	var buf bytes.Buffer
	n, err := h.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != HeaderSize || buf.Len() != HeaderSize {
		t.Fatalf("expected %d bytes, wrote %d (%d buffered)", HeaderSize, n, buf.Len())
	}

	raw := buf.Bytes()
	if expect := []byte{5, 0, 0, 0}; !bytes.Equal(raw['A'*4:'A'*4+4], expect) {
		t.Errorf("wrong encoding for 'A': %#v", raw['A'*4:'A'*4+4])
	}
	if expect := []byte{0xef, 0xbe, 0xad, 0xde}; !bytes.Equal(raw[0xff*4:], expect) {
		t.Errorf("wrong encoding for 0xff: %#v", raw[0xff*4:])
	}

	got, err := ReadHistogram(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("ReadHistogram failed: %v", err)
	}
	if got != h {
		t.Error("histogram changed across WriteTo/ReadHistogram")
	}
}

func TestReadHistogram_Short(t *testing.T) {
	for _, size := range []int{0, 1, HeaderSize - 1} {
		_, err := ReadHistogram(bytes.NewReader(make([]byte, size)))
		if !errors.Is(err, ErrFormat) {
			t.Errorf("size %d: expected format error, got %v", size, err)
		}
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Errorf("size %d: expected *FormatError, got %T", size, err)
		}
	}
}

func TestHistogram_Dump(t *testing.T) {
	var h Histogram
	_ = h.Add([]byte("ABBAAAAC"))

	expectDump := strings.Join([]string{
		"Histogram{\n",
		"\tCount(65) = 5\n",
		"\tCount(66) = 2\n",
		"\tCount(67) = 1\n",
		"\tTotal() = 8\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = h.Dump(&buf)
	if actualDump := buf.String(); expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestHistogram_AddOverflow(t *testing.T) {
	var h Histogram
	h['A'] = math.MaxUint32 - 1

	if err := h.Add([]byte("A")); err != nil {
		t.Fatalf("Add up to the maximum failed: %v", err)
	}
	if h['A'] != math.MaxUint32 {
		t.Fatalf("expected count %d, got %d", uint32(math.MaxUint32), h['A'])
	}

	err := h.Add([]byte("BA"))
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	if h['A'] != math.MaxUint32 {
		t.Errorf("count wrapped to %d", h['A'])
	}
	if h['B'] != 1 {
		t.Errorf("expected count 1 for 'B', got %d", h['B'])
	}
}

func TestHistogram_ReadFromOverflow(t *testing.T) {
	var h Histogram
	h['A'] = math.MaxUint32 - 2

	data := append(bytes.Repeat([]byte("A"), 5), 'B')
	n, err := h.ReadFrom(bytes.NewReader(data))
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 bytes reported before the failing chunk, got %d", n)
	}
	if h['A'] != math.MaxUint32 {
		t.Errorf("expected count %d, got %d", uint32(math.MaxUint32), h['A'])
	}
}
