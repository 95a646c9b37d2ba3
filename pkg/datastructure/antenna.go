package datastructure

import "fmt"

type Index uint32

type Coordinate struct {
	Row int
	Col int
}

func NewCoordinate(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Reflect returns 2*c - o, the point on the line through o and c at the same distance
// from c as o, on the other side.
func (c Coordinate) Reflect(o Coordinate) Coordinate {
	return Coordinate{Row: 2*c.Row - o.Row, Col: 2*c.Col - o.Col}
}

// Triple is one antenna cell as read from the grid.
type Triple struct {
	Row   int
	Col   int
	Label rune
}

func NewTriple(row, col int, label rune) Triple {
	return Triple{Row: row, Col: col, Label: label}
}

type Antenna struct {
	id    Index
	coord Coordinate
	label rune
}

func NewAntenna(id Index, coord Coordinate, label rune) *Antenna {
	return &Antenna{
		id:    id,
		coord: coord,
		label: label,
	}
}

func (a *Antenna) GetID() Index {
	return a.id
}

func (a *Antenna) GetCoordinate() Coordinate {
	return a.coord
}

func (a *Antenna) GetRow() int {
	return a.coord.Row
}

func (a *Antenna) GetCol() int {
	return a.coord.Col
}

func (a *Antenna) GetLabel() rune {
	return a.label
}

func (a *Antenna) String() string {
	return fmt.Sprintf("%v [%c]", a.coord, a.label)
}

// Location is a grid point implicated by interference. It carries no antenna.
type Location struct {
	Coordinate
}

func NewLocation(row, col int) Location {
	return Location{Coordinate: NewCoordinate(row, col)}
}

// Bounds is the grid extent seen by the loader.
type Bounds struct {
	Rows int
	Cols int
}

func NewBounds(rows, cols int) Bounds {
	return Bounds{Rows: rows, Cols: cols}
}

func (b Bounds) Contains(c Coordinate) bool {
	return c.Row >= 0 && c.Row < b.Rows && c.Col >= 0 && c.Col < b.Cols
}
