package registry

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/passgraph/internal/config"
	"github.com/vk/passgraph/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

func blendType() PassType {
	return PassType{
		Name: "BlendPass",
		Inputs: []Port{
			{Name: "texSrc1", Kind: KindColor},
			{Name: "texSrc2", Kind: KindColor},
		},
		Outputs: []Port{{Name: "texDst", Kind: KindColor}},
	}
}

func TestRegister(t *testing.T) {
	t.Run("success and lookup", func(t *testing.T) {
		r := New()
		require.NoError(t, r.Register(blendType()))

		pt, err := r.Lookup("BlendPass")
		require.NoError(t, err)
		assert.Equal(t, "BlendPass", pt.Name)
		require.Len(t, pt.Inputs, 2)
		assert.Equal(t, "texSrc1", pt.Inputs[0].Name)

		in, ok := pt.Input("texSrc2")
		require.True(t, ok)
		assert.Equal(t, KindColor, in.Kind)

		_, ok = pt.Output("texSrc2")
		assert.False(t, ok)
	})

	t.Run("duplicate type", func(t *testing.T) {
		r := New()
		require.NoError(t, r.Register(blendType()))
		err := r.Register(blendType())
		assert.ErrorIs(t, err, ErrDuplicateType)
	})

	t.Run("same name on both sides is allowed", func(t *testing.T) {
		r := New()
		err := r.Register(PassType{
			Name:    "ForwardLightingPass",
			Inputs:  []Port{{Name: "color", Kind: KindColor}},
			Outputs: []Port{{Name: "color", Kind: KindColor}},
		})
		assert.NoError(t, err)
	})

	t.Run("registered type is isolated from caller slices", func(t *testing.T) {
		r := New()
		pt := blendType()
		require.NoError(t, r.Register(pt))
		pt.Inputs[0].Name = "mutated"

		stored, err := r.Lookup("BlendPass")
		require.NoError(t, err)
		assert.Equal(t, "texSrc1", stored.Inputs[0].Name)
	})

	t.Run("unspecified kind defaults to texture", func(t *testing.T) {
		r := New()
		require.NoError(t, r.Register(PassType{Name: "Passthrough", Inputs: []Port{{Name: "input"}}}))
		pt, err := r.Lookup("Passthrough")
		require.NoError(t, err)
		assert.Equal(t, KindTexture, pt.Inputs[0].Kind)
	})

	invalid := []struct {
		name string
		pt   PassType
	}{
		{name: "empty type name", pt: PassType{}},
		{name: "duplicate input", pt: PassType{Name: "X", Inputs: []Port{{Name: "a"}, {Name: "a"}}}},
		{name: "duplicate output", pt: PassType{Name: "X", Outputs: []Port{{Name: "a"}, {Name: "a"}}}},
		{name: "invalid port name", pt: PassType{Name: "X", Inputs: []Port{{Name: "a b"}}}},
		{name: "unknown kind", pt: PassType{Name: "X", Inputs: []Port{{Name: "a", Kind: "hologram"}}}},
		{name: "duplicate option", pt: PassType{Name: "X", Options: []Option{{Name: "o"}, {Name: "o"}}}},
		{name: "enum without values", pt: PassType{Name: "X", Options: []Option{{Name: "o", Kind: OptionEnum}}}},
		{name: "bad default", pt: PassType{Name: "X", Options: []Option{{Name: "o", Kind: OptionVec2, Default: ptr(cty.NumberIntVal(1))}}}},
	}
	for _, tc := range invalid {
		t.Run("invalid: "+tc.name, func(t *testing.T) {
			r := New()
			err := r.Register(tc.pt)
			assert.ErrorIs(t, err, ErrInvalidPortSpec)
			_, lookupErr := r.Lookup(tc.pt.Name)
			assert.Error(t, lookupErr, "failed registration must not leave a type behind")
		})
	}
}

func TestLookup_UnknownType(t *testing.T) {
	_, err := New().Lookup("Nope")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestTypes_Sorted(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(PassType{Name: "SkyBox"}))
	require.NoError(t, r.Register(PassType{Name: "CSM"}))
	require.NoError(t, r.Register(PassType{Name: "DepthPass"}))

	var names []string
	for _, pt := range r.Types() {
		names = append(names, pt.Name)
	}
	assert.Equal(t, []string{"CSM", "DepthPass", "SkyBox"}, names)
}

func TestCompatible(t *testing.T) {
	r := New()
	assert.True(t, r.Compatible(KindDepth, KindDepth))
	assert.True(t, r.Compatible(KindColor, KindTexture))
	assert.True(t, r.Compatible(KindTexture, KindDepth))
	assert.True(t, r.Compatible(KindAny, KindScalar))
	assert.True(t, r.Compatible(KindVector, KindAny))
	assert.False(t, r.Compatible(KindColor, KindDepth))
	assert.False(t, r.Compatible(KindDepth, KindColor))
	assert.False(t, r.Compatible(KindScalar, KindVector))

	require.NoError(t, r.RegisterKind("shadow-map", KindDepth))
	assert.True(t, r.HasKind("shadow-map"))
	assert.True(t, r.Compatible("shadow-map", KindDepth))
	assert.False(t, r.Compatible(KindDepth, "shadow-map"))

	err := r.RegisterKind("ghost", "missing")
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.False(t, r.HasKind("ghost"))
}

type fakeModule struct {
	types []PassType
}

func (m *fakeModule) Register(r *Registry) error {
	for _, pt := range m.types {
		if err := r.Register(pt); err != nil {
			return err
		}
	}
	return nil
}

func TestInstall(t *testing.T) {
	r := New()
	err := r.Install(
		&fakeModule{types: []PassType{{Name: "A"}}},
		&fakeModule{types: []PassType{{Name: "B"}}},
	)
	require.NoError(t, err)
	assert.Len(t, r.Types(), 2)

	err = r.Install(&fakeModule{types: []PassType{{Name: "A"}}})
	assert.ErrorIs(t, err, ErrDuplicateType)
}

func TestPopulateFromModel(t *testing.T) {
	mapSize := cty.TupleVal([]cty.Value{cty.NumberIntVal(2048), cty.NumberIntVal(2048)})
	model := &config.Model{
		Kinds: []*config.KindDefinition{
			{Name: "shadow-map", CompatibleWith: []string{"depth", "rsm"}},
			{Name: "rsm"},
		},
		PassTypes: []*config.PassTypeDefinition{{
			Name:    "CSM",
			Inputs:  []*config.PortDefinition{{Name: "depth", Kind: "depth"}},
			Outputs: []*config.PortDefinition{{Name: "shadowMap", Kind: "shadow-map"}, {Name: "visibility"}},
			Options: []*config.OptionDefinition{{Name: "mapSize", Kind: "vec2", Default: &mapSize}},
			Source:  "manifests/csm.hcl",
		}},
	}

	r := New()
	require.NoError(t, r.PopulateFromModel(context.Background(), model))

	assert.True(t, r.Compatible("shadow-map", "rsm"))
	pt, err := r.Lookup("CSM")
	require.NoError(t, err)
	opt, ok := pt.Option("mapSize")
	require.True(t, ok)
	assert.Equal(t, OptionVec2, opt.Kind)
	require.NotNil(t, opt.Default)
	assert.Equal(t, 2, opt.Default.LengthInt())

	t.Run("unknown option kind", func(t *testing.T) {
		bad := &config.Model{PassTypes: []*config.PassTypeDefinition{{
			Name:    "Bad",
			Options: []*config.OptionDefinition{{Name: "o", Kind: "matrix"}},
		}}}
		err := New().PopulateFromModel(context.Background(), bad)
		assert.True(t, errors.Is(err, ErrInvalidPortSpec))
	})
}

func TestPopulateFromModel_LogsThroughContext(t *testing.T) {
	var global bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&global, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	model := &config.Model{PassTypes: []*config.PassTypeDefinition{{
		Name:    "Tonemap",
		Outputs: []*config.PortDefinition{{Name: "dst"}},
		Source:  "manifests/tonemap.hcl",
	}}}
	r := New()
	require.NoError(t, r.PopulateFromModel(ctx, model))
	require.NoError(t, r.Install(&fakeModule{types: []PassType{{Name: "A"}}}))

	assert.Contains(t, buf.String(), "type=Tonemap")
	assert.Contains(t, buf.String(), "source=manifests/tonemap.hcl")
	assert.Empty(t, global.String())
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(blendType()))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Lookup("BlendPass")
			assert.NoError(t, err)
			assert.True(t, r.Compatible(KindColor, KindTexture))
		}()
	}
	wg.Wait()
}

func ptr(v cty.Value) *cty.Value { return &v }
