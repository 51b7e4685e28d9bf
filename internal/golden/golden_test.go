package golden

import (
	"bytes"
	"image"
	"slices"
	"strings"
	"testing"
)

func TestDecodeTrace(t *testing.T) {
	const enc = `# comment
0 0

1 -1
  -2 3
`
	got, err := DecodeTrace(strings.NewReader(enc))
	if err != nil {
		t.Fatal(err)
	}
	want := []image.Point{{0, 0}, {1, -1}, {-2, 3}}
	if !slices.Equal(got, want) {
		t.Errorf("decoded %v, want %v", got, want)
	}
	buf := new(bytes.Buffer)
	if err := EncodeTrace(buf, want); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "0 0\n1 -1\n-2 3\n"; got != want {
		t.Errorf("encoded %q, want %q", got, want)
	}
	if _, err := DecodeTrace(strings.NewReader("1 x\n")); err == nil {
		t.Error("decoded malformed trace")
	}
}
