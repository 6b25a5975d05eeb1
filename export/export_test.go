package export_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flattice/export"
	"github.com/katalvlaran/flattice/lattice"
	"github.com/katalvlaran/flattice/matrix"
	"github.com/katalvlaran/flattice/search"
)

var qjson = jsoniter.ConfigCompatibleWithStandardLibrary

func mustGraph(t testing.TB, r int) *lattice.Graph {
	t.Helper()
	g, err := lattice.New(r)
	require.NoError(t, err)
	return g
}

// failWriter fails every write.
type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

//----------------------------------------------------------------------------//
// Format
//----------------------------------------------------------------------------//

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]export.Format{
		"json":  export.FormatJSON,
		" DOT ": export.FormatDOT,
		"Json":  export.FormatJSON,
	} {
		got, err := export.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := export.ParseFormat("png")
	assert.ErrorIs(t, err, export.ErrUnknownFormat)
	assert.ErrorIs(t, err, matrix.ErrBadValue)
}

//----------------------------------------------------------------------------//
// JSON
//----------------------------------------------------------------------------//

func TestWriteGraphJSON_RoundTrip(t *testing.T) {
	g := mustGraph(t, 1)

	var buf bytes.Buffer
	require.NoError(t, export.WriteGraphJSON(&buf, g))

	var doc export.GraphDocument
	require.NoError(t, qjson.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, export.NewGraphDocument(g), doc)
	assert.Equal(t, 1, doc.Radius)
	assert.Equal(t, 3, doc.MaxBallRadius)
	assert.Len(t, doc.Vertices, g.Order())
	assert.Len(t, doc.Edges, len(g.Edges()))

	valid := 0
	for _, v := range doc.Vertices {
		if v.Valid {
			valid++
		}
	}
	assert.Equal(t, len(g.ValidNodes()), valid)
}

func TestWriteGraphJSON_Shape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteGraphJSON(&buf, mustGraph(t, 0)))

	var raw map[string]any
	require.NoError(t, qjson.Unmarshal(buf.Bytes(), &raw))
	assert.Equal(t, []any{
		map[string]any{"x": 0.0, "y": 0.0, "valid": true},
		map[string]any{"x": 1.0, "y": 0.0, "valid": false},
		map[string]any{"x": -1.0, "y": 0.0, "valid": false},
	}, raw["vertices"])
	assert.Equal(t, []any{
		map[string]any{"from": map[string]any{"x": 0.0, "y": 0.0}, "to": map[string]any{"x": 1.0, "y": 0.0}},
		map[string]any{"from": map[string]any{"x": 0.0, "y": 0.0}, "to": map[string]any{"x": -1.0, "y": 0.0}},
	}, raw["edges"])
}

//----------------------------------------------------------------------------//
// DOT
//----------------------------------------------------------------------------//

func TestWriteGraphDOT_RadiusZero(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteGraphDOT(&buf, mustGraph(t, 0), nil))

	want := `digraph flattice {
    graph [label="F-lattice r=0"];
    node [shape=circle, fontsize=8, width=0.6, fixedsize=true];
    "(0,0)" [pos="0,0!"];
    "(1,0)" [pos="1,0!", style="dashed"];
    "(-1,0)" [pos="-1,0!", style="dashed"];

    "(0,0)" -> "(1,0)";
    "(0,0)" -> "(-1,0)";
}
`
	assert.Equal(t, want, buf.String())
}

func TestWriteGraphDOT_Highlight(t *testing.T) {
	g := mustGraph(t, 0)
	ball, err := g.HammingBall(1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.WriteGraphDOT(&buf, g, ball))
	out := buf.String()
	assert.Contains(t, out, `"(0,0)" [pos="0,0!", style="filled", fillcolor=lightblue];`)
	assert.Contains(t, out, `"(1,0)" [pos="1,0!", style="dashed,filled", fillcolor=lightblue];`)
}

func TestWriteGraphDOT_ContainsEveryEdge(t *testing.T) {
	g := mustGraph(t, 2)

	var buf bytes.Buffer
	require.NoError(t, export.WriteGraph(&buf, g, export.FormatDOT, nil))
	out := buf.String()
	for _, v := range g.Vertices() {
		assert.Contains(t, out, `"`+v.String()+`" [pos=`)
	}
	for _, e := range g.Edges() {
		assert.Contains(t, out, `"`+e.From.String()+`" -> "`+e.To.String()+`";`)
	}
}

func TestWriteGraph_Errors(t *testing.T) {
	g := mustGraph(t, 1)

	assert.ErrorIs(t, export.WriteGraph(&bytes.Buffer{}, g, "svg", nil), export.ErrUnknownFormat)
	assert.ErrorIs(t, export.WriteGraphJSON(&bytes.Buffer{}, nil), lattice.ErrNilGraph)
	assert.ErrorIs(t, export.WriteGraphDOT(&bytes.Buffer{}, nil, nil), lattice.ErrNilGraph)
	assert.ErrorIs(t, export.WriteGraph(&bytes.Buffer{}, nil, export.FormatJSON, nil), matrix.ErrBadValue)
	assert.ErrorIs(t, export.WriteGraphJSON(failWriter{}, g), errWrite)
	assert.ErrorIs(t, export.WriteGraphDOT(failWriter{}, g, nil), errWrite)
}

//----------------------------------------------------------------------------//
// Results
//----------------------------------------------------------------------------//

func TestWriteResultsJSON(t *testing.T) {
	g := mustGraph(t, 1)
	res, err := search.MinimumClosedNeighborhoods(context.Background(), g, search.Options{MaxSubset: 3})
	require.NoError(t, err)
	rep, err := search.CheckBallConjecture(g, res)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.WriteResultsJSON(&buf, g.Radius(), res, &rep))

	var doc export.ResultsDocument
	require.NoError(t, qjson.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 1, doc.Radius)
	assert.Equal(t, res, doc.Results)
	require.NotNil(t, doc.Conjecture)
	assert.Equal(t, rep, *doc.Conjecture)

	buf.Reset()
	require.NoError(t, export.WriteResultsJSON(&buf, 0, nil, nil))
	assert.Contains(t, buf.String(), `"results": []`)
	assert.NotContains(t, buf.String(), "conjecture")

	assert.ErrorIs(t, export.WriteResultsJSON(failWriter{}, 0, res, nil), errWrite)
}
