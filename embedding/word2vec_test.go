package embedding_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/pit2015/paraphrase/embedding"
)

func model(t *testing.T, newlines bool) []byte {
	var b bytes.Buffer
	b.WriteString("3 2\n")
	for _, e := range []struct {
		word string
		v    []float32
	}{
		{"cat", []float32{1, 0}},
		{"dog", []float32{0.5, 0.25}},
		{"love", []float32{0, 1}},
	} {
		b.WriteString(e.word + " ")
		if err := binary.Write(&b, binary.LittleEndian, e.v); err != nil {
			t.Fatal(err)
		}
		if newlines {
			b.WriteByte('\n')
		}
	}
	return b.Bytes()
}

func TestLoadBinary(t *testing.T) {
	for _, newlines := range []bool{false, true} {
		table, err := embedding.LoadBinary(bytes.NewReader(model(t, newlines)), []string{"dog", "love", "unknown"})
		if err != nil {
			t.Fatal(err)
		}
		if table.Len() != 2 || table.Dim() != 2 {
			t.Fatalf("expected 2 vectors of width 2, got %d of %d", table.Len(), table.Dim())
		}
		if _, ok := table.Vector("cat"); ok {
			t.Error("expected words outside the vocabulary to be skipped")
		}
		v, ok := table.Vector("dog")
		if !ok || v[0] != 0.5 || v[1] != 0.25 {
			t.Errorf("unexpected vector for dog %v", v)
		}
	}
}

func TestLoadBinary_All(t *testing.T) {
	table, err := embedding.LoadBinary(bytes.NewReader(model(t, false)), nil)
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() != 3 {
		t.Errorf("expected 3 vectors, got %d", table.Len())
	}
}

func TestLoadBinary_Truncated(t *testing.T) {
	m := model(t, false)
	if _, err := embedding.LoadBinary(bytes.NewReader(m[:len(m)-3]), nil); err == nil {
		t.Error("expected an error for a truncated model")
	}
	if _, err := embedding.LoadBinary(bytes.NewReader([]byte("three two\n")), nil); err == nil {
		t.Error("expected an error for a malformed header")
	}
}
