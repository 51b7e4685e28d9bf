// Package golden compares pixel traces with golden files.
package golden

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// CompareTrace compares trace with the golden file at path. If update is
// set, the golden file is replaced by trace. If dumpDir is not empty, trace
// is written to an SVG file in dumpDir, along with the golden trace if they
// differ.
func CompareTrace(path string, update bool, dumpDir string, trace []image.Point) error {
	bpath := filepath.Base(path)
	if dumpDir != "" {
		fpath := filepath.Join(dumpDir, bpath+".svg")
		if err := dumpSVG(fpath, trace); err != nil {
			return err
		}
	}
	if update {
		buf := new(bytes.Buffer)
		if err := EncodeTrace(buf, trace); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return os.WriteFile(path, buf.Bytes(), 0o640)
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	golden, err := DecodeTrace(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	mismatches := 0
	first := -1
	for i := range min(len(trace), len(golden)) {
		if trace[i] != golden[i] {
			if first == -1 {
				first = i
			}
			mismatches++
		}
	}
	if mismatches > 0 || len(trace) != len(golden) {
		if dumpDir != "" {
			fpath := filepath.Join(dumpDir, bpath+".orig.svg")
			if err := dumpSVG(fpath, golden); err != nil {
				return err
			}
		}
		if first >= 0 {
			return fmt.Errorf("%s: trace lengths %d, %d, with %d/%d mismatches, first at %d: %v, want %v",
				path, len(trace), len(golden), mismatches, len(golden), first, trace[first], golden[first])
		}
		return fmt.Errorf("%s: trace lengths %d, %d", path, len(trace), len(golden))
	}
	return nil
}

// DecodeTrace reads a trace of one "x y" location per line. Empty lines
// and lines starting with '#' are ignored.
func DecodeTrace(r io.Reader) ([]image.Point, error) {
	var trace []image.Point
	s := bufio.NewScanner(r)
	for n := 1; s.Scan(); n++ {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var p image.Point
		if _, err := fmt.Sscanf(line, "%d %d", &p.X, &p.Y); err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		trace = append(trace, p)
	}
	return trace, s.Err()
}

// EncodeTrace writes the trace in the format read by [DecodeTrace].
func EncodeTrace(w io.Writer, trace []image.Point) error {
	out := bufio.NewWriter(w)
	for _, p := range trace {
		fmt.Fprintf(out, "%d %d\n", p.X, p.Y)
	}
	return out.Flush()
}

// Vectorize writes an SVG image of the trace, one square per pixel.
func Vectorize(f io.Writer, trace []image.Point) error {
	const margin = 2
	out := bufio.NewWriter(f)

	var bounds image.Rectangle
	for i, p := range trace {
		r := image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))}
		if i == 0 {
			bounds = r
		} else {
			bounds = bounds.Union(r)
		}
	}
	bounds = bounds.Inset(-margin)
	w, h := bounds.Dx(), bounds.Dy()
	scale := max(1, 600/max(w, h))
	fmt.Fprintf(out, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"%d %d %d %d\" width=\"%d\" height=\"%d\">\n",
		bounds.Min.X, bounds.Min.Y, w, h, w*scale, h*scale)
	fmt.Fprintln(out, `<defs><style>
		.pixel { fill: #000; }
		.start { fill: #c00; }
	</style></defs>`)
	for i, p := range trace {
		class := "pixel"
		if i == 0 {
			class = "start"
		}
		fmt.Fprintf(out, "<rect class=\"%s\" x=\"%d\" y=\"%d\" width=\"1\" height=\"1\"/>\n", class, p.X, p.Y)
	}
	fmt.Fprintln(out, "</svg>")
	return out.Flush()
}

func dumpSVG(f string, trace []image.Point) error {
	buf := new(bytes.Buffer)
	if err := Vectorize(buf, trace); err != nil {
		return err
	}
	return os.WriteFile(f, buf.Bytes(), 0o640)
}
