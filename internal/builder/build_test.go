package builder

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/passgraph/internal/config"
	"github.com/vk/passgraph/internal/graph"
	"github.com/vk/passgraph/internal/hcl"
	"github.com/vk/passgraph/internal/registry"
	"github.com/vk/passgraph/internal/scheduler"
	"github.com/vk/passgraph/internal/testutil"
	"github.com/vk/passgraph/modules/stock"
	"github.com/zclconf/go-cty/cty"
)

const examplesDir = "../../examples"

func stockRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r, err := stock.NewRegistry()
	require.NoError(t, err)
	return r
}

func loadExamples(t *testing.T) *config.Model {
	t.Helper()
	model, err := hcl.NewLoader().Load(context.Background(), examplesDir)
	require.NoError(t, err)
	return model
}

func TestBuildExamples(t *testing.T) {
	testCases := []struct {
		graph string
		order []string
	}{
		{"SimpleRenderer", []string{"DepthPass", "SkyBox", "CSM", "ForwardLightingPass"}},
		{"RSMRenderer", []string{"DepthPass", "SkyBox", "CSM", "RSMBuffer", "ForwardLightingPass", "RSMIndirectPass"}},
	}

	model := loadExamples(t)
	for _, tc := range testCases {
		t.Run(tc.graph, func(t *testing.T) {
			g, err := BuildNamed(context.Background(), model, tc.graph, stockRegistry(t))
			require.NoError(t, err)

			order, err := scheduler.Order(context.Background(), g)
			require.NoError(t, err)
			assert.Equal(t, tc.order, order)
		})
	}
}

func TestBuildKeepsDeclarationOrder(t *testing.T) {
	g, err := BuildNamed(context.Background(), loadExamples(t), "RSMRenderer", stockRegistry(t))
	require.NoError(t, err)

	var names []string
	for _, n := range g.Nodes() {
		names = append(names, n.Name)
	}
	assert.Equal(t, []string{"RSMBuffer", "DepthPass", "SkyBox", "ForwardLightingPass", "CSM", "RSMIndirectPass", "BlendPass"}, names)
	assert.Len(t, g.Edges(), 13)

	csm, ok := g.Node("CSM")
	require.True(t, ok)
	mapSize := csm.Config["mapSize"]
	assert.True(t, mapSize.Type().Equals(cty.List(cty.Number)), mapSize.Type().FriendlyName())
}

func TestBuildErrors(t *testing.T) {
	base := func() *config.GraphDefinition {
		return &config.GraphDefinition{
			Name:   "G",
			Source: "g.hcl",
			Passes: []*config.PassDeclaration{
				{Name: "A", Type: "Source"},
				{Name: "B", Type: "Filter"},
			},
			Edges:   []*config.EdgeDeclaration{{From: "A.out", To: "B.in"}},
			Outputs: []string{"B.out"},
		}
	}

	testCases := []struct {
		name    string
		mutate  func(d *config.GraphDefinition)
		wantErr error
	}{
		{"unknown type", func(d *config.GraphDefinition) { d.Passes[1].Type = "Nope" }, registry.ErrUnknownType},
		{"duplicate pass", func(d *config.GraphDefinition) { d.Passes[1].Name = "A" }, graph.ErrDuplicateNodeName},
		{"unknown option", func(d *config.GraphDefinition) {
			d.Passes[0].Config = map[string]cty.Value{"size": cty.NumberIntVal(1)}
		}, graph.ErrInvalidConfig},
		{"unknown node in edge", func(d *config.GraphDefinition) { d.Edges[0].From = "X.out" }, graph.ErrUnknownNode},
		{"wrong direction", func(d *config.GraphDefinition) { d.Edges[0].From = "B.in" }, graph.ErrPortDirectionMismatch},
		{"kind mismatch", func(d *config.GraphDefinition) { d.Edges[0].From = "A.depth" }, graph.ErrIncompatibleResourceKind},
		{"double feed", func(d *config.GraphDefinition) {
			d.Edges = append(d.Edges, &config.EdgeDeclaration{From: "A.out", To: "B.in"})
		}, graph.ErrPortAlreadyConnected},
		{"malformed ref", func(d *config.GraphDefinition) { d.Edges[0].To = "B" }, graph.ErrInvalidPortRef},
		{"output on input", func(d *config.GraphDefinition) { d.Outputs = []string{"B.in"} }, graph.ErrPortDirectionMismatch},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			def := base()
			tc.mutate(def)
			_, err := Build(context.Background(), def, testutil.NewRegistry(t))
			require.ErrorIs(t, err, tc.wantErr)
			assert.Contains(t, err.Error(), `g.hcl: graph "G"`)
		})
	}

	t.Run("base builds", func(t *testing.T) {
		g, err := Build(context.Background(), base(), testutil.NewRegistry(t))
		require.NoError(t, err)
		assert.Equal(t, 2, g.Len())
	})
}

func TestBuildNamedMissing(t *testing.T) {
	_, err := BuildNamed(context.Background(), config.NewModel(), "Nope", testutil.NewRegistry(t))
	assert.ErrorIs(t, err, ErrGraphNotFound)
}

func TestDefinitionRoundTrip(t *testing.T) {
	ctx := context.Background()
	reg := stockRegistry(t)
	model := loadExamples(t)

	planOpts := cmp.Options{
		cmp.Comparer(func(a, b cty.Value) bool { return a.Equals(b).True() }),
		cmpopts.IgnoreFields(scheduler.Step{}, "Handle"),
	}

	for _, name := range []string{"SimpleRenderer", "RSMRenderer"} {
		t.Run(name, func(t *testing.T) {
			g, err := BuildNamed(ctx, model, name, reg)
			require.NoError(t, err)
			want, err := scheduler.Resolve(ctx, g)
			require.NoError(t, err)

			src := hcl.Write(Definition(g))
			back, err := hcl.NewLoader().Parse(ctx, src, filepath.Join(t.TempDir(), "export.hcl"))
			require.NoError(t, err, string(src))
			g2, err := BuildNamed(ctx, back, name, reg)
			require.NoError(t, err)
			got, err := scheduler.Resolve(ctx, g2)
			require.NoError(t, err)

			if diff := cmp.Diff(want, got, planOpts); diff != "" {
				t.Errorf("plan changed after export (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDefinitionAfterEdit(t *testing.T) {
	g, err := Build(context.Background(), &config.GraphDefinition{
		Name: "G",
		Passes: []*config.PassDeclaration{
			{Name: "A", Type: "Source"},
			{Name: "B", Type: "Filter"},
			{Name: "C", Type: "Filter"},
		},
		Edges:   []*config.EdgeDeclaration{{From: "A.out", To: "B.in"}, {From: "B.out", To: "C.in"}},
		Outputs: []string{"C.out"},
	}, testutil.NewRegistry(t))
	require.NoError(t, err)

	g.RemoveNode("B")
	require.NoError(t, g.AddEdge("A.out", "C.in"))

	def := Definition(g)
	assert.Equal(t, "G", def.Name)
	require.Len(t, def.Passes, 2)
	assert.Equal(t, "C", def.Passes[1].Name)
	assert.Equal(t, []*config.EdgeDeclaration{{From: "A.out", To: "C.in"}}, def.Edges)
	assert.Equal(t, []string{"C.out"}, def.Outputs)
}
