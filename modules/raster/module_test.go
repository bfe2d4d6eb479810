package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/passgraph/internal/graph"
	"github.com/vk/passgraph/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

func newGraph(t *testing.T) *graph.Graph {
	t.Helper()
	r := registry.New()
	require.NoError(t, r.Install(&Module{}))
	return graph.New("test", r)
}

func TestRegister(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.Install(&Module{}))

	var names []string
	for _, pt := range r.Types() {
		names = append(names, pt.Name)
		assert.Equal(t, source, pt.Source)
	}
	assert.Equal(t, []string{"DepthPass", "ForwardLightingPass", "SkyBox", "WireframePass"}, names)

	fl, err := r.Lookup("ForwardLightingPass")
	require.NoError(t, err)
	for _, in := range fl.Inputs {
		assert.True(t, in.Optional, in.Name)
	}
	// The same port name on both sides is expected here.
	_, ok := fl.Input("color")
	assert.True(t, ok)
	_, ok = fl.Output("color")
	assert.True(t, ok)
}

func TestDefaults(t *testing.T) {
	g := newGraph(t)
	n, err := g.AddPass("SkyBox", "SkyBox", nil)
	require.NoError(t, err)

	cfg := n.EffectiveConfig()
	assert.True(t, cfg["filter"].RawEquals(cty.StringVal("Linear")))
	assert.True(t, cfg["loadAsSrgb"].True())
	assert.True(t, cfg["texName"].RawEquals(cty.StringVal(".")))
}

func TestForwardLightingSampleCount(t *testing.T) {
	g := newGraph(t)
	_, err := g.AddPass("Fwd4", "ForwardLightingPass", map[string]cty.Value{"sampleCount": cty.NumberIntVal(4)})
	require.NoError(t, err)

	_, err = g.AddPass("Fwd3", "ForwardLightingPass", map[string]cty.Value{"sampleCount": cty.NumberIntVal(3)})
	assert.ErrorIs(t, err, graph.ErrInvalidConfig)
	_, ok := g.Node("Fwd3")
	assert.False(t, ok)
}

func TestDepthFormatEnum(t *testing.T) {
	g := newGraph(t)
	_, err := g.AddPass("D", "DepthPass", map[string]cty.Value{"depthFormat": cty.StringVal("D16Unorm")})
	require.NoError(t, err)
	_, err = g.AddPass("E", "DepthPass", map[string]cty.Value{"depthFormat": cty.StringVal("RGBA8")})
	assert.ErrorIs(t, err, graph.ErrInvalidConfig)
}

func TestDepthFeedsSkyBox(t *testing.T) {
	g := newGraph(t)
	_, err := g.AddPass("DepthPass", "DepthPass", nil)
	require.NoError(t, err)
	_, err = g.AddPass("SkyBox", "SkyBox", nil)
	require.NoError(t, err)
	_, err = g.AddPass("SkyBox2", "SkyBox", nil)
	require.NoError(t, err)
	_, err = g.AddPass("Wire", "WireframePass", nil)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge("DepthPass.depth", "SkyBox.depth"))
	// A generic texture may stand in for a depth buffer.
	require.NoError(t, g.AddEdge("Wire.dst", "SkyBox2.depth"))

	err = g.AddEdge("Wire.dst", "SkyBox.depth")
	assert.ErrorIs(t, err, graph.ErrPortAlreadyConnected)
	in, ok := g.Node("SkyBox")
	require.True(t, ok)
	src, _ := in.Input("depth")
	assert.Equal(t, "DepthPass.depth", src.String())
	assert.Len(t, g.Edges(), 2)
}
