package formatter

import (
	"bufio"
	"fmt"
	"io"

	da "github.com/lintang-b-s/Antennax/pkg/datastructure"
	"github.com/lintang-b-s/Antennax/pkg/engine"
	"github.com/lintang-b-s/Antennax/pkg/engine/traversal"
)

func WriteAntennas(w io.Writer, antennas []*da.Antenna) error {
	if _, err := fmt.Fprintln(w, "Antennas:"); err != nil {
		return err
	}
	for _, a := range antennas {
		if _, err := fmt.Fprintf(w, "%v [%c]\n", a.GetCoordinate(), a.GetLabel()); err != nil {
			return err
		}
	}
	return nil
}

func WriteLocations(w io.Writer, locs []da.Location) error {
	if _, err := fmt.Fprintln(w, "Locations with harmful effect:"); err != nil {
		return err
	}
	for _, l := range locs {
		if _, err := fmt.Fprintf(w, "%v\n", l.Coordinate); err != nil {
			return err
		}
	}
	return nil
}

// WriteVisits prints one line per visit, e.g. "DFS visited: (0, 0) [A]".
func WriteVisits(w io.Writer, prefix string, visits []traversal.Visit) error {
	for _, v := range visits {
		if _, err := fmt.Fprintf(w, "%s visited: %v\n", prefix, v); err != nil {
			return err
		}
	}
	return nil
}

func WritePaths(w io.Writer, paths []traversal.Path) error {
	for _, p := range paths {
		if _, err := fmt.Fprint(w, "Path found:"); err != nil {
			return err
		}
		for _, c := range p {
			if _, err := fmt.Fprintf(w, " %v", c); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func WriteReport(w io.Writer, r *engine.Report) error {
	bw := bufio.NewWriter(w)

	if err := WriteAntennas(bw, r.Antennas); err != nil {
		return err
	}
	if err := WriteLocations(bw, r.Locations); err != nil {
		return err
	}
	fmt.Fprintf(bw, "Connected components: %d\n", r.Components)

	if r.OriginErr != nil {
		fmt.Fprintf(bw, "\nNo traversal: %v\n", r.OriginErr)
		return bw.Flush()
	}

	fmt.Fprintln(bw, "\nDepth-first search (DFS):")
	if err := WriteVisits(bw, "DFS", r.DFS); err != nil {
		return err
	}
	fmt.Fprintln(bw, "\nBreadth-first search (BFS):")
	if err := WriteVisits(bw, "BFS", r.BFS); err != nil {
		return err
	}

	fmt.Fprintf(bw, "\nAll paths between two [%c] antennas:\n", r.Label)
	if r.DestinationErr != nil {
		fmt.Fprintf(bw, "No paths: %v\n", r.DestinationErr)
		return bw.Flush()
	}
	if err := WritePaths(bw, r.Paths); err != nil {
		return err
	}
	return bw.Flush()
}
