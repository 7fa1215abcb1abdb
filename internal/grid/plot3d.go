package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/flying-tiger/jflow/internal/errs"
	"github.com/flying-tiger/jflow/internal/numeric"
)

const valuesPerLine = 4

// ReadFile opens filename and reads a single-block Plot3D ASCII grid
// from it.
func ReadFile(filename string) (*StructuredGrid, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errs.New(errs.SerializationFailure, "opening %q: %v", filename, err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses a single-block Plot3D ASCII grid from r. The format is
// packed column-major: a block count, then Nvi and Nvj, then the full
// X-coordinate array followed by the full Y-coordinate array, each
// streamed with j outermost, i innermost.
func Read(r io.Reader) (*StructuredGrid, error) {
	br := bufio.NewReader(r)

	var nblock int
	if _, err := fmt.Fscan(br, &nblock); err != nil {
		return nil, errs.New(errs.SerializationFailure, "reading block count: %v", err)
	}
	var nvi, nvj int
	if _, err := fmt.Fscan(br, &nvi, &nvj); err != nil {
		return nil, errs.New(errs.SerializationFailure, "reading grid size: %v", err)
	}
	size := [2]int{nvi, nvj}
	vertices := make([]numeric.Vec2, nvi*nvj)

	for j := 0; j < nvj; j++ {
		for i := 0; i < nvi; i++ {
			var x float64
			if _, err := fmt.Fscan(br, &x); err != nil {
				return nil, errs.New(errs.SerializationFailure, "reading x(%d,%d): %v", i, j, err)
			}
			vertices[computeID([2]int{i, j}, size)].X = x
		}
	}
	for j := 0; j < nvj; j++ {
		for i := 0; i < nvi; i++ {
			var y float64
			if _, err := fmt.Fscan(br, &y); err != nil {
				return nil, errs.New(errs.SerializationFailure, "reading y(%d,%d): %v", i, j, err)
			}
			vertices[computeID([2]int{i, j}, size)].Y = y
		}
	}
	return NewFromVertices(size, vertices)
}

// WriteFile serializes g as a single-block Plot3D ASCII grid to
// filename. It opens exactly one file handle, checks it, and writes the
// body to that same handle.
func (g *StructuredGrid) WriteFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return errs.New(errs.SerializationFailure, "opening %q: %v", filename, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := g.Write(w); err != nil {
		return err
	}
	return w.Flush()
}

// Write serializes g as a single-block Plot3D ASCII grid to w: a block
// count of 1, then Nvi and Nvj, then the X-coordinate array followed by
// the Y-coordinate array, each in column-major (i fastest) order,
// scientific notation with a 15-digit mantissa, field width 24, four
// values per line.
func (g *StructuredGrid) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%15d\n", 1)
	fmt.Fprintf(bw, "%15d%15d\n", g.SizeVertex(0), g.SizeVertex(1))

	writeComponent := func(component func(numeric.Vec2) float64) error {
		counter := 0
		for j := 0; j < g.SizeVertex(1); j++ {
			for i := 0; i < g.SizeVertex(0); i++ {
				fmt.Fprintf(bw, "%24.15e", component(g.Vertex(i, j)))
				counter++
				if counter == valuesPerLine {
					counter = 0
					fmt.Fprint(bw, "\n")
				}
			}
		}
		if counter != 0 {
			fmt.Fprint(bw, "\n")
		}
		return nil
	}
	if err := writeComponent(func(v numeric.Vec2) float64 { return v.X }); err != nil {
		return err
	}
	if err := writeComponent(func(v numeric.Vec2) float64 { return v.Y }); err != nil {
		return err
	}
	return bw.Flush()
}
