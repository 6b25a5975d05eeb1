package export

import (
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/katalvlaran/flattice/lattice"
	"github.com/katalvlaran/flattice/matrix"
	"github.com/katalvlaran/flattice/search"
)

var qjson = jsoniter.ConfigCompatibleWithStandardLibrary

// Format names an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatDOT  Format = "dot"
)

// ErrUnknownFormat indicates a format name other than json or dot.
var ErrUnknownFormat = fmt.Errorf("export: unknown format: %w", matrix.ErrBadValue)

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatDOT:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// VertexEntry is a vertex annotated with its validity.
type VertexEntry struct {
	lattice.Vertex
	Valid bool `json:"valid"`
}

// GraphDocument is the JSON shape of a lattice.
type GraphDocument struct {
	Radius        int            `json:"radius"`
	MaxBallRadius int            `json:"max_ball_radius"`
	Vertices      []VertexEntry  `json:"vertices"`
	Edges         []lattice.Edge `json:"edges"`
}

// NewGraphDocument snapshots g in construction order.
func NewGraphDocument(g *lattice.Graph) GraphDocument {
	vs := g.Vertices()
	doc := GraphDocument{
		Radius:        g.Radius(),
		MaxBallRadius: g.MaxBallRadius(),
		Vertices:      make([]VertexEntry, len(vs)),
		Edges:         g.Edges(),
	}
	for i, v := range vs {
		doc.Vertices[i] = VertexEntry{Vertex: v, Valid: g.IsValid(v)}
	}

	return doc
}

// WriteGraphJSON writes g as an indented GraphDocument.
func WriteGraphJSON(w io.Writer, g *lattice.Graph) error {
	if g == nil {
		return lattice.ErrNilGraph
	}
	data, err := qjson.MarshalIndent(NewGraphDocument(g), "", "  ")
	if err != nil {
		return fmt.Errorf("WriteGraphJSON: %w", err)
	}
	if _, err = w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("WriteGraphJSON: %w", err)
	}

	return nil
}

// WriteGraphDOT writes g as a Graphviz digraph. Each node is pinned at its
// lattice coordinate; vertices outside the radius are dashed and members of
// highlight (may be nil) are filled.
func WriteGraphDOT(w io.Writer, g *lattice.Graph, highlight lattice.VertexSet) error {
	if g == nil {
		return lattice.ErrNilGraph
	}
	dw := &dotWriter{w: w}
	dw.printf("digraph flattice {\n")
	dw.printf("    graph [label=\"F-lattice r=%d\"];\n", g.Radius())
	dw.printf("    node [shape=circle, fontsize=8, width=0.6, fixedsize=true];\n")
	for _, v := range g.Vertices() {
		var styles []string
		if !g.IsValid(v) {
			styles = append(styles, "dashed")
		}
		if highlight.Contains(v) {
			styles = append(styles, "filled")
		}
		dw.printf("    \"%v\" [pos=\"%d,%d!\"", v, v.X, v.Y)
		if len(styles) > 0 {
			dw.printf(", style=\"%s\"", strings.Join(styles, ","))
		}
		if highlight.Contains(v) {
			dw.printf(", fillcolor=lightblue")
		}
		dw.printf("];\n")
	}
	dw.printf("\n")
	for _, e := range g.Edges() {
		dw.printf("    \"%v\" -> \"%v\";\n", e.From, e.To)
	}
	dw.printf("}\n")
	if dw.err != nil {
		return fmt.Errorf("WriteGraphDOT: %w", dw.err)
	}

	return nil
}

// WriteGraph dispatches on f.
func WriteGraph(w io.Writer, g *lattice.Graph, f Format, highlight lattice.VertexSet) error {
	switch f {
	case FormatJSON:
		return WriteGraphJSON(w, g)
	case FormatDOT:
		return WriteGraphDOT(w, g, highlight)
	default:
		return fmt.Errorf("WriteGraph(%q): %w", f, ErrUnknownFormat)
	}
}

// ResultsDocument is the JSON shape of a neighborhood search.
type ResultsDocument struct {
	Radius     int                      `json:"radius"`
	Results    []search.Result          `json:"results"`
	Conjecture *search.ConjectureReport `json:"conjecture,omitempty"`
}

// WriteResultsJSON writes the per-size minima and, if rep is non-nil, the
// conjecture report.
func WriteResultsJSON(w io.Writer, radius int, res []search.Result, rep *search.ConjectureReport) error {
	if res == nil {
		res = []search.Result{}
	}
	data, err := qjson.MarshalIndent(ResultsDocument{Radius: radius, Results: res, Conjecture: rep}, "", "  ")
	if err != nil {
		return fmt.Errorf("WriteResultsJSON: %w", err)
	}
	if _, err = w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("WriteResultsJSON: %w", err)
	}

	return nil
}

// dotWriter remembers the first write error so the DOT body stays readable.
type dotWriter struct {
	w   io.Writer
	err error
}

func (d *dotWriter) printf(format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}
