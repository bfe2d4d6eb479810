package graph

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/passgraph/internal/portref"
	"github.com/vk/passgraph/internal/registry"
	"github.com/vk/passgraph/internal/testutil"
	"github.com/zclconf/go-cty/cty"
)

func newTestGraph(t *testing.T, extra ...registry.PassType) *Graph {
	t.Helper()
	return New("test", testutil.NewRegistry(t, extra...))
}

// addPasses adds config-less passes given as name/type pairs.
func addPasses(t *testing.T, g *Graph, pairs ...string) {
	t.Helper()
	require.Zero(t, len(pairs)%2)
	for i := 0; i < len(pairs); i += 2 {
		_, err := g.AddPass(pairs[i], pairs[i+1], nil)
		require.NoError(t, err)
	}
}

// snapshot captures everything a failed mutation must leave untouched.
type snapshot struct {
	Nodes   []string
	Edges   []Edge
	Outputs []portref.Ref
	Inputs  map[string]map[string]portref.Ref
	Fanout  map[string]map[string][]portref.Ref
}

func takeSnapshot(g *Graph) snapshot {
	s := snapshot{
		Edges:   g.Edges(),
		Outputs: g.Outputs(),
		Inputs:  map[string]map[string]portref.Ref{},
		Fanout:  map[string]map[string][]portref.Ref{},
	}
	for _, n := range g.Nodes() {
		s.Nodes = append(s.Nodes, n.Name)
		s.Inputs[n.Name] = n.Inputs()
		s.Fanout[n.Name] = n.Outputs()
	}
	return s
}

func TestNew(t *testing.T) {
	reg := registry.New()
	g := New("SimpleRenderer", reg)
	require.NotNil(t, g)
	assert.Equal(t, "SimpleRenderer", g.Name())
	assert.Same(t, reg, g.Registry())
	assert.Zero(t, g.Len())
	assert.Empty(t, g.Edges())
	assert.Empty(t, g.Outputs())
}

func TestAddPass(t *testing.T) {
	t.Run("nodes keep insertion order", func(t *testing.T) {
		g := newTestGraph(t)
		addPasses(t, g, "C", "Source", "A", "Source", "B", "Filter")

		var names []string
		for _, n := range g.Nodes() {
			names = append(names, n.Name)
		}
		assert.Equal(t, []string{"C", "A", "B"}, names)

		n, ok := g.Node("B")
		require.True(t, ok)
		assert.Equal(t, "Filter", n.Type.Name)
		assert.Equal(t, 2, n.Seq())
	})

	t.Run("duplicate name", func(t *testing.T) {
		g := newTestGraph(t)
		addPasses(t, g, "A", "Source")
		_, err := g.AddPass("A", "Filter", nil)
		assert.ErrorIs(t, err, ErrDuplicateNodeName)
		n, _ := g.Node("A")
		assert.Equal(t, "Source", n.Type.Name, "existing node must not be replaced")
	})

	t.Run("unknown type", func(t *testing.T) {
		g := newTestGraph(t)
		_, err := g.AddPass("A", "Nope", nil)
		assert.ErrorIs(t, err, registry.ErrUnknownType)
		assert.Zero(t, g.Len())
	})

	for _, name := range []string{"", "has space", "dotted.name", "-"} {
		t.Run("invalid name "+name, func(t *testing.T) {
			g := newTestGraph(t)
			_, err := g.AddPass(name, "Source", nil)
			assert.ErrorIs(t, err, ErrInvalidNodeName)
		})
	}
}

func TestAddPass_Config(t *testing.T) {
	vec := func(nums ...int64) cty.Value {
		vals := make([]cty.Value, len(nums))
		for i, n := range nums {
			vals[i] = cty.NumberIntVal(n)
		}
		return cty.TupleVal(vals)
	}

	t.Run("valid config is coerced and defaults apply", func(t *testing.T) {
		g := newTestGraph(t)
		n, err := g.AddPass("Lighting", "Tuned", map[string]cty.Value{
			"enableSuperSampling": cty.True,
			"mapSize":             vec(2048, 2048),
			"filter":              cty.StringVal("Linear"),
			"texName":             cty.StringVal("LightProbes/hallstatt4_hd.hdr"),
		})
		require.NoError(t, err)

		assert.Len(t, n.Config, 4)
		assert.NotContains(t, n.Config, "sampleCount")
		assert.True(t, n.Config["mapSize"].Type().Equals(cty.List(cty.Number)))

		eff := n.EffectiveConfig()
		assert.Len(t, eff, 5)
		assert.True(t, eff["sampleCount"].RawEquals(cty.NumberIntVal(1)))
	})

	t.Run("explicit value overrides default", func(t *testing.T) {
		g := newTestGraph(t)
		n, err := g.AddPass("Lighting", "Tuned", map[string]cty.Value{"sampleCount": cty.NumberIntVal(4)})
		require.NoError(t, err)
		assert.True(t, n.EffectiveConfig()["sampleCount"].RawEquals(cty.NumberIntVal(4)))
	})

	invalid := map[string]map[string]cty.Value{
		"unknown key":      {"shadowMapSize": cty.NumberIntVal(1)},
		"vec2 of three":    {"mapSize": vec(1, 2, 3)},
		"vec3 of two":      {"tint": vec(1, 2)},
		"enum not allowed": {"filter": cty.StringVal("Cubic")},
		"empty path":       {"texName": cty.StringVal("")},
		"bool from string": {"enableSuperSampling": cty.StringVal("yes")},
		"null value":       {"label": cty.NullVal(cty.String)},
	}
	for name, cfg := range invalid {
		t.Run(name, func(t *testing.T) {
			g := newTestGraph(t)
			_, err := g.AddPass("Lighting", "Tuned", cfg)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			_, exists := g.Node("Lighting")
			assert.False(t, exists)
		})
	}

	t.Run("config on a type without options", func(t *testing.T) {
		g := newTestGraph(t)
		_, err := g.AddPass("A", "Source", map[string]cty.Value{"x": cty.True})
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestAddPass_Factory(t *testing.T) {
	type handle struct{ samples cty.Value }

	var seen map[string]cty.Value
	withFactory := registry.PassType{
		Name:    "Factoried",
		Outputs: []registry.Port{{Name: "out"}},
		Options: []registry.Option{{Name: "sampleCount", Kind: registry.OptionNumber, Default: ptr(cty.NumberIntVal(2))}},
		New: func(cfg map[string]cty.Value) (registry.Handle, error) {
			seen = cfg
			return &handle{samples: cfg["sampleCount"]}, nil
		},
	}
	failing := registry.PassType{
		Name: "Broken",
		New: func(map[string]cty.Value) (registry.Handle, error) {
			return nil, errors.New("shader library missing")
		},
	}

	g := newTestGraph(t, withFactory, failing)

	n, err := g.AddPass("F", "Factoried", nil)
	require.NoError(t, err)
	require.IsType(t, &handle{}, n.Handle)
	assert.True(t, n.Handle.(*handle).samples.RawEquals(cty.NumberIntVal(2)))
	assert.Contains(t, seen, "sampleCount", "factory receives the effective config")

	_, err = g.AddPass("B", "Broken", nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorContains(t, err, "shader library missing")
	_, exists := g.Node("B")
	assert.False(t, exists)

	n, _ = g.Node("F")
	assert.Equal(t, 0, n.Seq(), "a failed add does not consume a sequence number")
	next, err := g.AddPass("G", "Factoried", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, next.Seq())
}

func TestAddEdge(t *testing.T) {
	t.Run("binds both ends", func(t *testing.T) {
		g := newTestGraph(t)
		addPasses(t, g, "A", "Source", "B", "Filter", "C", "Filter")
		require.NoError(t, g.AddEdge("A.out", "B.in"))
		require.NoError(t, g.AddEdge("A.out", "C.in")) // fan-out

		b, _ := g.Node("B")
		ref, ok := b.Input("in")
		require.True(t, ok)
		assert.Equal(t, portref.New("A", "out"), ref)

		a, _ := g.Node("A")
		want := map[string][]portref.Ref{"out": {portref.New("B", "in"), portref.New("C", "in")}}
		if diff := cmp.Diff(want, a.Outputs()); diff != "" {
			t.Errorf("fan-out mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, []Edge{
			{From: portref.New("A", "out"), To: portref.New("B", "in")},
			{From: portref.New("A", "out"), To: portref.New("C", "in")},
		}, g.Edges())
		assert.Equal(t, "A.out -> B.in", g.Edges()[0].String())
	})

	t.Run("compatible kinds through texture", func(t *testing.T) {
		g := newTestGraph(t, registry.PassType{
			Name:   "Blit",
			Inputs: []registry.Port{{Name: "src", Kind: registry.KindTexture}},
		})
		addPasses(t, g, "A", "Source", "B", "Blit")
		assert.NoError(t, g.AddEdge("A.depth", "B.src"))
	})

	testCases := []struct {
		name      string
		producer  string
		consumer  string
		expectErr error
	}{
		{name: "malformed producer", producer: "A", consumer: "B.in", expectErr: ErrInvalidPortRef},
		{name: "malformed consumer", producer: "A.out", consumer: ".in", expectErr: ErrInvalidPortRef},
		{name: "unknown producer node", producer: "Z.out", consumer: "B.in", expectErr: ErrUnknownNode},
		{name: "unknown consumer node", producer: "A.out", consumer: "Z.in", expectErr: ErrUnknownNode},
		{name: "unknown producer port", producer: "A.color", consumer: "B.in", expectErr: ErrUnknownPort},
		{name: "unknown consumer port", producer: "A.out", consumer: "B.color", expectErr: ErrUnknownPort},
		{name: "producer is an input", producer: "B.in", consumer: "C.in", expectErr: ErrPortDirectionMismatch},
		{name: "consumer is an output", producer: "A.out", consumer: "B.out", expectErr: ErrPortDirectionMismatch},
		{name: "depth into color", producer: "A.depth", consumer: "C.in", expectErr: ErrIncompatibleResourceKind},
		{name: "already connected", producer: "A.out", consumer: "B.in", expectErr: ErrPortAlreadyConnected},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGraph(t)
			addPasses(t, g, "A", "Source", "B", "Filter", "C", "Filter")
			require.NoError(t, g.AddEdge("A.out", "B.in"))
			before := takeSnapshot(g)

			err := g.AddEdge(tc.producer, tc.consumer)
			require.ErrorIs(t, err, tc.expectErr)

			if diff := cmp.Diff(before, takeSnapshot(g)); diff != "" {
				t.Errorf("failed AddEdge mutated the graph (-before +after):\n%s", diff)
			}
		})
	}

	t.Run("rewiring needs an explicit remove", func(t *testing.T) {
		g := newTestGraph(t)
		addPasses(t, g, "A", "Source", "A2", "Source", "B", "Filter")
		require.NoError(t, g.AddEdge("A.out", "B.in"))
		require.ErrorIs(t, g.AddEdge("A2.out", "B.in"), ErrPortAlreadyConnected)

		require.NoError(t, g.RemoveEdge("A.out", "B.in"))
		require.NoError(t, g.AddEdge("A2.out", "B.in"))
		b, _ := g.Node("B")
		ref, _ := b.Input("in")
		assert.Equal(t, "A2.out", ref.String())
	})
}

func TestMarkOutput(t *testing.T) {
	g := newTestGraph(t)
	addPasses(t, g, "A", "Source", "B", "Filter")

	require.NoError(t, g.MarkOutput("B.out"))
	require.NoError(t, g.MarkOutput("B.out"))
	assert.Equal(t, []portref.Ref{portref.New("B", "out")}, g.Outputs())

	require.NoError(t, g.MarkOutputRef(portref.New("A", "depth")))
	assert.Len(t, g.Outputs(), 2)

	assert.ErrorIs(t, g.MarkOutput("B.in"), ErrPortDirectionMismatch)
	assert.ErrorIs(t, g.MarkOutput("B.missing"), ErrUnknownPort)
	assert.ErrorIs(t, g.MarkOutput("Z.out"), ErrUnknownNode)
	assert.ErrorIs(t, g.MarkOutput("nodot"), ErrInvalidPortRef)
	assert.Len(t, g.Outputs(), 2)

	require.NoError(t, g.UnmarkOutput("B.out"))
	require.NoError(t, g.UnmarkOutput("B.out"))
	assert.Equal(t, []portref.Ref{portref.New("A", "depth")}, g.Outputs())
	assert.ErrorIs(t, g.UnmarkOutput("bad"), ErrInvalidPortRef)
}

func TestRemoveNode(t *testing.T) {
	g := newTestGraph(t)
	addPasses(t, g, "A", "Source", "B", "Filter", "C", "Filter", "D", "Mix")
	require.NoError(t, g.AddEdge("A.out", "B.in"))
	require.NoError(t, g.AddEdge("B.out", "C.in"))
	require.NoError(t, g.AddEdge("B.out", "D.a"))
	require.NoError(t, g.AddEdge("A.out", "D.b"))
	require.NoError(t, g.MarkOutput("B.out"))
	require.NoError(t, g.MarkOutput("D.out"))

	g.RemoveNode("B")

	_, exists := g.Node("B")
	assert.False(t, exists)
	assert.Equal(t, []Edge{{From: portref.New("A", "out"), To: portref.New("D", "b")}}, g.Edges())
	assert.Equal(t, []portref.Ref{portref.New("D", "out")}, g.Outputs())

	c, _ := g.Node("C")
	assert.Empty(t, c.Inputs())
	d, _ := g.Node("D")
	assert.Equal(t, map[string]portref.Ref{"b": portref.New("A", "out")}, d.Inputs())
	a, _ := g.Node("A")
	assert.Equal(t, map[string][]portref.Ref{"out": {portref.New("D", "b")}}, a.Outputs())

	// Idempotent.
	before := takeSnapshot(g)
	g.RemoveNode("B")
	g.RemoveNode("never-existed")
	assert.Equal(t, before, takeSnapshot(g))

	// A re-added name is a fresh node at the end of the insertion order.
	n, err := g.AddPass("B", "Filter", nil)
	require.NoError(t, err)
	assert.Empty(t, n.Inputs())
	assert.Equal(t, 4, n.Seq())
	assert.Equal(t, "B", g.Nodes()[len(g.Nodes())-1].Name)
}

func TestRemoveEdge(t *testing.T) {
	g := newTestGraph(t)
	addPasses(t, g, "A", "Source", "B", "Filter")
	require.NoError(t, g.AddEdge("A.out", "B.in"))

	require.NoError(t, g.RemoveEdge("A.out", "B.in"))
	assert.Empty(t, g.Edges())
	b, _ := g.Node("B")
	assert.Empty(t, b.Inputs())
	a, _ := g.Node("A")
	assert.Empty(t, a.Outputs())

	require.NoError(t, g.RemoveEdge("A.out", "B.in"), "removing an absent edge is a no-op")
	require.NoError(t, g.RemoveEdge("Z.out", "Y.in"), "unknown nodes are not an error")
	assert.ErrorIs(t, g.RemoveEdge("A", "B.in"), ErrInvalidPortRef)
}

func TestConfigFromGo(t *testing.T) {
	cfg, err := ConfigFromGo(map[string]any{
		"sampleCount":         4,
		"enableSuperSampling": true,
		"mapSize":             []float64{2048, 2048},
		"filter":              "Linear",
	})
	require.NoError(t, err)
	assert.True(t, cfg["sampleCount"].RawEquals(cty.NumberIntVal(4)))
	assert.True(t, cfg["enableSuperSampling"].True())

	g := newTestGraph(t)
	_, err = g.AddPass("Lighting", "Tuned", cfg)
	require.NoError(t, err)

	_, err = ConfigFromGo(map[string]any{"bad": nil})
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = ConfigFromGo(map[string]any{"bad": make(chan int)})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func ptr(v cty.Value) *cty.Value { return &v }
