package huffile

import (
	"bytes"
	"errors"
	"testing"
)

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("A"))
	f.Add([]byte("AAAA"))
	f.Add([]byte("AAAAABBC"))
	f.Add([]byte{0x00, 0xff, 0x00, 0xff, 0x7f})
	f.Fuzz(func(t *testing.T, data []byte) {
		var compressed bytes.Buffer
		_, err := Encode(&compressed, bytes.NewReader(data))
		if len(data) == 0 {
			if !errors.Is(err, ErrEmptyInput) {
				t.Fatalf("expected ErrEmptyInput, got %v", err)
			}
			if compressed.Len() != 0 {
				t.Fatalf("expected no output, got %d bytes", compressed.Len())
			}
			return
		}
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}

		var out bytes.Buffer
		if _, err := Decode(&out, &compressed); err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if !bytes.Equal(out.Bytes(), data) {
			t.Fatalf("round trip mismatch:\n\tinput:  %x\n\toutput: %x", data, out.Bytes())
		}
	})
}

func FuzzDecode(f *testing.F) {
	var h Histogram
	h['a'], h['b'], h['c'] = 3, 2, 1
	var header bytes.Buffer
	_, _ = h.WriteTo(&header)

	f.Add(append(header.Bytes(), 0xff, 0x00))
	f.Add(append(header.Bytes(), 0x12))
	f.Fuzz(func(t *testing.T, data []byte) {
		var out bytes.Buffer
		stats, err := Decode(&out, bytes.NewReader(data))
		if err == nil && stats.Symbols != stats.ExpectedSymbols {
			t.Fatalf("success with %d of %d symbols", stats.Symbols, stats.ExpectedSymbols)
		}
		if uint64(out.Len()) != stats.Symbols {
			t.Fatalf("wrote %d bytes but counted %d symbols", out.Len(), stats.Symbols)
		}
	})
}
