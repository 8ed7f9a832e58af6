package material_test

import (
	"testing"

	"github.com/qmuntal/gltf"

	"github.com/mogaika/rigforge/material"
	"github.com/mogaika/rigforge/utils/gltfutils"
)

func TestSheenAbsentWithoutSockets(t *testing.T) {
	m := material.New("plain")

	sheen, uvmaps := m.ExportSheen(gltfutils.NewCacher())
	if sheen != nil {
		t.Errorf("expected no extension record, got %v", sheen)
	}
	if len(uvmaps) != 0 {
		t.Errorf("expected empty auxiliary mapping, got %v", uvmaps)
	}

	// one socket alone is still feature absent
	m.AddSocket(&material.Socket{Name: material.SOCKET_SHEEN_COLOR})
	if sheen, _ := m.ExportSheen(gltfutils.NewCacher()); sheen != nil {
		t.Errorf("single socket must not produce a record")
	}
}

func TestSheenUnlinkedFactors(t *testing.T) {
	m := material.New("velvet")
	m.AddSocket(&material.Socket{
		Name:         material.SOCKET_SHEEN_COLOR,
		DefaultColor: [4]float32{0.9, 0.5, 0.1, 1},
	})
	m.AddSocket(&material.Socket{
		Name:         material.SOCKET_SHEEN_ROUGHNESS,
		DefaultValue: 0.3,
	})

	sheen, uvmaps := m.ExportSheen(gltfutils.NewCacher())
	if sheen == nil {
		t.Fatal("expected extension record")
	}
	if len(uvmaps) != 0 {
		t.Errorf("unlinked sockets must not produce uv mappings: %v", uvmaps)
	}

	if color, ok := sheen["sheenColorFactor"].([3]float32); !ok || color != [3]float32{0.9, 0.5, 0.1} {
		t.Errorf("color factor %v", sheen["sheenColorFactor"])
	}
	if fac, ok := sheen["sheenRoughnessFactor"].(float32); !ok || fac != 0.3 {
		t.Errorf("roughness factor %v", sheen["sheenRoughnessFactor"])
	}
}

func TestSheenDefaultValuesOmitted(t *testing.T) {
	m := material.New("default")
	m.AddSocket(&material.Socket{Name: material.SOCKET_SHEEN_COLOR})
	m.AddSocket(&material.Socket{Name: material.SOCKET_SHEEN_ROUGHNESS})

	sheen, _ := m.ExportSheen(gltfutils.NewCacher())
	if sheen == nil {
		t.Fatal("expected extension record")
	}
	if len(sheen) != 0 {
		t.Errorf("default black/zero values must be omitted: %v", sheen)
	}
}

func TestSheenLinkedTexture(t *testing.T) {
	m := material.New("cloth")
	m.AddSocket(&material.Socket{
		Name:   material.SOCKET_SHEEN_COLOR,
		Linked: true,
		Image:  &material.Image{Name: "sheen_color", URI: "sheen_color.png", UVMap: "UVMap"},
	})
	roughFactor := float32(0.75)
	m.AddSocket(&material.Socket{
		Name:        material.SOCKET_SHEEN_ROUGHNESS,
		Linked:      true,
		FactorValue: &roughFactor,
	})

	gltfCacher := gltfutils.NewCacher()
	sheen, uvmaps := m.ExportSheen(gltfCacher)
	if sheen == nil {
		t.Fatal("expected extension record")
	}

	// a bare color link means full contribution
	if color, ok := sheen["sheenColorFactor"].([3]float32); !ok || color != [3]float32{1, 1, 1} {
		t.Errorf("color factor %v", sheen["sheenColorFactor"])
	}
	ti, ok := sheen["sheenColorTexture"].(*gltf.TextureInfo)
	if !ok {
		t.Fatal("expected a texture reference for the linked image socket")
	}
	if int(ti.Index) >= len(gltfCacher.Doc.Textures) {
		t.Errorf("texture index %d out of range", ti.Index)
	}
	if uvmaps["sheenColorTexture"] != "UVMap" {
		t.Errorf("uv mapping %v", uvmaps)
	}

	if fac, ok := sheen["sheenRoughnessFactor"].(float32); !ok || fac != 0.75 {
		t.Errorf("roughness factor %v", sheen["sheenRoughnessFactor"])
	}
	if _, ok := sheen["sheenRoughnessTexture"]; ok {
		t.Errorf("roughness without image must not produce a texture reference")
	}
}

func TestExportMaterialWithSheen(t *testing.T) {
	m := material.New("jacket")
	m.DoubleSided = true
	m.AddSocket(&material.Socket{
		Name:         material.SOCKET_BASE_COLOR,
		DefaultColor: [4]float32{0.2, 0.2, 0.8, 1},
	})
	m.AddSocket(&material.Socket{
		Name:         material.SOCKET_SHEEN_COLOR,
		DefaultColor: [4]float32{1, 1, 1, 1},
	})
	m.AddSocket(&material.Socket{
		Name:         material.SOCKET_SHEEN_ROUGHNESS,
		DefaultValue: 0.5,
	})

	gltfCacher := gltfutils.NewCacher()
	glme, err := m.ExportGLTF(gltfCacher)
	if err != nil {
		t.Fatal(err)
	}

	gm := gltfCacher.Doc.Materials[glme.MaterialId]
	if !gm.DoubleSided {
		t.Errorf("double sided flag lost")
	}
	if *gm.PBRMetallicRoughness.BaseColorFactor != [4]float32{0.2, 0.2, 0.8, 1} {
		t.Errorf("base color %v", gm.PBRMetallicRoughness.BaseColorFactor)
	}
	if _, ok := gm.Extensions[material.KHR_MATERIALS_SHEEN]; !ok {
		t.Errorf("sheen extension not attached")
	}
	found := false
	for _, used := range gltfCacher.Doc.ExtensionsUsed {
		if used == material.KHR_MATERIALS_SHEEN {
			found = true
		}
	}
	if !found {
		t.Errorf("extension not registered in ExtensionsUsed")
	}
}
