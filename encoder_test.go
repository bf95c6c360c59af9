package huffman

import (
	"errors"
	"testing"
)

func TestEncoder_Encode(t *testing.T) {
	_, cb := makeTestCodebook(t)
	e := NewEncoder(cb)

	expect := "1100 1100 1100 1101 1101 100 "
	actual, err := e.Encode("aaabbc")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if expect != actual {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expect, actual)
	}
}

func TestEncoder_EmptyText(t *testing.T) {
	_, cb := makeTestCodebook(t)

	actual, err := NewEncoder(cb).Encode("")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if actual != "" {
		t.Errorf("expected an empty stream, got %q", actual)
	}
}

func TestEncoder_UnknownSymbol(t *testing.T) {
	_, cb := makeTestCodebook(t)
	e := NewEncoder(cb)

	out, err := e.Encode("ab!c")
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
	if out != "" {
		t.Errorf("expected no partial output, got %q", out)
	}
}

func TestEncoder_OutputBound(t *testing.T) {
	_, cb := makeTestCodebook(t)
	e := NewEncoder(cb)

	text := "abcdeffedcba"
	out, err := e.Encode(text)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	bound := len(text) * (int(cb.MaxSize()) + 1)
	if len(out) > bound {
		t.Errorf("output %d bytes, bound %d", len(out), bound)
	}
}

func TestRoundTrip(t *testing.T) {
	root, cb := makeTestCodebook(t)
	e := NewEncoder(cb)
	d := NewDecoder(root)

	testData := [...]string{
		"",
		"a",
		"f",
		"aaabbc",
		"abcdef",
		"fedcba",
		"ffffff",
		"dadcabfeed",
	}
	for _, text := range testData {
		t.Run(text, func(t *testing.T) {
			encoded, err := e.Encode(text)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			decoded, err := d.Decode(encoded)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if text != decoded {
				t.Errorf("round trip broken:\n\texpect: %q\n\tactual: %q", text, decoded)
			}
		})
	}
}

func TestRoundTrip_SingleSymbol(t *testing.T) {
	table := FrequencyTable{{'q', 7}}
	root, err := BuildTree(table)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	cb := NewCodebook(root, table)

	encoded, err := NewEncoder(cb).Encode("qqq")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if encoded != "0 0 0 " {
		t.Errorf("expected \"0 0 0 \", got %q", encoded)
	}

	decoded, err := NewDecoder(root).Decode(encoded)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded != "qqq" {
		t.Errorf("expected \"qqq\", got %q", decoded)
	}
}
