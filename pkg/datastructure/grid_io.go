package datastructure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/Antennax/pkg"
	"github.com/lintang-b-s/Antennax/pkg/util"
)

// ReadGrid scans the grid row by row, left to right, and returns one triple per antenna cell
// together with the grid extent (line count, longest line).
func ReadGrid(r io.Reader) ([]Triple, Bounds, error) {
	br := bufio.NewReader(r)
	triples := make([]Triple, 0)
	bounds := Bounds{}

	for row := 0; ; row++ {
		line, err := util.ReadLine(br)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, Bounds{}, util.WrapErrorf(err, util.ErrInputUnreadable, "could not read grid row %d", row)
		}

		bounds.Rows = row + 1
		bounds.Cols = util.MaxG(bounds.Cols, utf8.RuneCountInString(line))

		col := 0
		for _, c := range line {
			if pkg.IsAntennaCell(c) {
				triples = append(triples, NewTriple(row, col, c))
			}
			col++
		}
	}

	return triples, bounds, nil
}

// ReadGridFile reads a grid from disk. Files ending in .bz2 are decompressed on the fly.
func ReadGridFile(filename string) ([]Triple, Bounds, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, Bounds{}, util.WrapErrorf(err, util.ErrInputUnreadable, "could not open grid file %s", filename)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(filename, pkg.BZIP2_EXTENSION) {
		bz, err := bzip2.NewReader(f, nil)
		if err != nil {
			return nil, Bounds{}, util.WrapErrorf(err, util.ErrInputUnreadable, "could not decompress grid file %s", filename)
		}
		defer bz.Close()
		r = bz
	}

	return ReadGrid(r)
}

// LoadGraph reads a grid file and builds its antenna graph. No graph is returned on error.
func LoadGraph(filename string) (*AntennaGraph, error) {
	triples, bounds, err := ReadGridFile(filename)
	if err != nil {
		return nil, err
	}
	g, err := NewAntennaGraph(triples)
	if err != nil {
		return nil, err
	}
	g.SetBounds(bounds)
	return g, nil
}

// WriteGrid renders triples back into grid text, '.' for empty cells.
func WriteGrid(w io.Writer, triples []Triple, bounds Bounds) error {
	cells := make([][]rune, bounds.Rows)
	for i := range cells {
		cells[i] = []rune(strings.Repeat(string(pkg.EMPTY_CELL), bounds.Cols))
	}
	for _, t := range triples {
		if !bounds.Contains(NewCoordinate(t.Row, t.Col)) {
			return util.WrapErrorf(nil, util.ErrInvalidInput, "antenna (%d, %d) outside grid %dx%d",
				t.Row, t.Col, bounds.Rows, bounds.Cols)
		}
		cells[t.Row][t.Col] = t.Label
	}

	bw := bufio.NewWriter(w)
	for _, row := range cells {
		if _, err := fmt.Fprintf(bw, "%s\n", string(row)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteGridFile writes grid text to filename, bzip2 compressed when it ends in .bz2.
func WriteGridFile(filename string, triples []Triple, bounds Bounds) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if !strings.HasSuffix(filename, pkg.BZIP2_EXTENSION) {
		return WriteGrid(f, triples, bounds)
	}

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	if err := WriteGrid(bz, triples, bounds); err != nil {
		bz.Close()
		return err
	}
	return bz.Close()
}
