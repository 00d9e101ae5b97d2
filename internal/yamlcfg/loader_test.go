package yamlcfg

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/signalgraph/internal/config"
	"github.com/vk/signalgraph/internal/hcl"
)

func writeManifest(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSingleFile(t *testing.T) {
	path := writeManifest(t, "resistor.yaml", `
components:
  - name: Resistor
    description: two-terminal resistor
    children:
      - identifier: p1
        type: Electrical
      - identifier: cap1
        type: Capacitor
        attrs:
          footprint: "0402"
          pins: 2
    traits:
      - type: is_interface
        path: p1
    links:
      - from: p1
        to: cap1.p1
        shallow: true
`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, model.Components, 1)

	def := model.Components["Resistor"]
	require.NotNil(t, def)
	assert.Equal(t, "two-terminal resistor", def.Description)

	require.Len(t, def.Children, 2)
	assert.Equal(t, "Electrical", def.Children[0].TypeName)
	require.NotNil(t, def.Children[1].Attrs)
	assert.True(t, def.Children[1].Attrs["footprint"].RawEquals(cty.StringVal("0402")))
	assert.True(t, def.Children[1].Attrs["pins"].RawEquals(cty.NumberIntVal(2)))

	require.Len(t, def.Traits, 1)
	assert.Equal(t, []string{"p1"}, def.Traits[0].Path)

	require.Len(t, def.Links, 1)
	assert.Equal(t, []string{"cap1", "p1"}, def.Links[0].To)
	assert.True(t, def.Links[0].Shallow)
}

func TestLoadErrors(t *testing.T) {
	t.Run("unnamed component is rejected", func(t *testing.T) {
		path := writeManifest(t, "unnamed.yaml", `
components:
  - description: nameless
`)
		_, err := NewLoader().Load(context.Background(), path)
		require.Error(t, err)
	})

	t.Run("non-scalar attrs are rejected", func(t *testing.T) {
		path := writeManifest(t, "nested.yaml", `
components:
  - name: X
    children:
      - identifier: a
        type: Y
        attrs:
          v: [1, 2]
`)
		_, err := NewLoader().Load(context.Background(), path)
		require.Error(t, err)
	})

	t.Run("link without endpoints is rejected", func(t *testing.T) {
		path := writeManifest(t, "nolink.yaml", `
components:
  - name: X
    links:
      - from: a
`)
		_, err := NewLoader().Load(context.Background(), path)
		require.Error(t, err)
	})
}

// TestEquivalentToHCL loads the same definitions through both front ends
// and requires the resulting models to match: the registration API cannot
// tell which manifest language produced its input.
func TestEquivalentToHCL(t *testing.T) {
	yamlPath := writeManifest(t, "battery.yaml", `
components:
  - name: Electrical
  - name: Battery
    children:
      - identifier: hv
        type: Electrical
      - identifier: lv
        type: Electrical
    traits:
      - type: is_interface
        path: hv
      - type: is_interface
        path: lv
    links:
      - from: hv
        to: lv
`)
	hclPath := writeManifest(t, "battery.hcl", `
component "Electrical" {}

component "Battery" {
  child "hv" {
    type = "Electrical"
  }
  child "lv" {
    type = "Electrical"
  }
  trait "is_interface" {
    path = "hv"
  }
  trait "is_interface" {
    path = "lv"
  }
  link {
    from = "hv"
    to   = "lv"
  }
}
`)

	ctx := context.Background()
	fromYAML, err := NewLoader().Load(ctx, yamlPath)
	require.NoError(t, err)
	fromHCL, err := hcl.NewLoader().Load(ctx, hclPath)
	require.NoError(t, err)

	assertModelsEqual(t, fromHCL, fromYAML)
}

// assertModelsEqual compares two models field by field. cty values are
// compared with RawEquals, so the comparison stays independent of their
// internal representation.
func assertModelsEqual(t *testing.T, want, got *config.Model) {
	t.Helper()
	require.Len(t, got.Components, len(want.Components))
	for name, w := range want.Components {
		g, ok := got.Components[name]
		require.True(t, ok, "component %q missing", name)
		require.Len(t, g.Children, len(w.Children))
		for i, wc := range w.Children {
			gc := g.Children[i]
			assert.Equal(t, wc.Identifier, gc.Identifier)
			assert.Equal(t, wc.TypeName, gc.TypeName)
			assert.Equal(t, wc.Mount, gc.Mount)
			require.Len(t, gc.Attrs, len(wc.Attrs))
			for key, wv := range wc.Attrs {
				assert.True(t, wv.RawEquals(gc.Attrs[key]), "attr %q differs", key)
			}
		}
		assert.Equal(t, w.Traits, g.Traits)
		assert.Equal(t, w.Links, g.Links)
	}
}
