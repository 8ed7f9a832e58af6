package material

import (
	"github.com/qmuntal/gltf"

	"github.com/mogaika/rigforge/utils/gltfutils"
)

const KHR_MATERIALS_SHEEN = "KHR_materials_sheen"

const (
	SOCKET_BASE_COLOR      = "Base Color"
	SOCKET_SHEEN_COLOR     = "sheenColor"
	SOCKET_SHEEN_ROUGHNESS = "sheenRoughness"
)

type GLTFMaterialExported struct {
	MaterialId uint32
}

type GLTFTextureExported struct {
	TextureIndex uint32
	ImageIndex   uint32
}

func (m *Material) ExportGLTF(gltfCacher *gltfutils.GLTFCacher) (*GLTFMaterialExported, error) {
	glme := &GLTFMaterialExported{}
	defer gltfCacher.AddCache(m.Name, glme)

	doc := gltfCacher.Doc

	color := new([4]float32)
	*color = [4]float32{1, 1, 1, 1}
	if s := m.GetSocket(SOCKET_BASE_COLOR); s != nil && !s.Linked {
		*color = s.DefaultColor
	}

	gltfMaterial := &gltf.Material{
		Name:        m.Name,
		DoubleSided: m.DoubleSided,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: color,
		},
	}

	if s := m.GetSocket(SOCKET_BASE_COLOR); s.HasImageNode() {
		gte := m.exportTexture(gltfCacher, s.Image)
		gltfMaterial.PBRMetallicRoughness.BaseColorTexture = &gltf.TextureInfo{
			Index: gte.TextureIndex,
		}
	}

	if sheen, _ := m.ExportSheen(gltfCacher); sheen != nil {
		gltfMaterial.Extensions = gltf.Extensions{KHR_MATERIALS_SHEEN: sheen}
		registerExtensionUsed(doc, KHR_MATERIALS_SHEEN)
	}

	glme.MaterialId = uint32(len(doc.Materials))
	doc.Materials = append(doc.Materials, gltfMaterial)

	return glme, nil
}

// ExportSheen builds the sheen extension record. A material without both
// sheen sockets has the feature absent: no record, empty uv mapping.
// Unlinked sockets record their non-default values as factors; a linked
// socket with an image source records a texture reference instead.
func (m *Material) ExportSheen(gltfCacher *gltfutils.GLTFCacher) (map[string]interface{}, map[string]string) {
	colorSocket := m.GetSocket(SOCKET_SHEEN_COLOR)
	roughnessSocket := m.GetSocket(SOCKET_SHEEN_ROUGHNESS)

	if colorSocket == nil || roughnessSocket == nil {
		return nil, map[string]string{}
	}

	sheen := make(map[string]interface{})
	uvmaps := make(map[string]string)

	if !colorSocket.Linked {
		color := [3]float32{colorSocket.DefaultColor[0], colorSocket.DefaultColor[1], colorSocket.DefaultColor[2]}
		if color != [3]float32{} {
			sheen["sheenColorFactor"] = color
		}
	} else {
		fac := m.GetColorFactorFromSocket(SOCKET_SHEEN_COLOR)
		if fac == nil {
			// default is black, a bare link means full contribution
			fac = &[3]float32{1, 1, 1}
		}
		if *fac != [3]float32{} {
			sheen["sheenColorFactor"] = *fac
		}

		if colorSocket.HasImageNode() {
			gte := m.exportTexture(gltfCacher, colorSocket.Image)
			sheen["sheenColorTexture"] = &gltf.TextureInfo{Index: gte.TextureIndex}
			uvmaps["sheenColorTexture"] = colorSocket.Image.UVMap
		}
	}

	if !roughnessSocket.Linked {
		if roughnessSocket.DefaultValue != 0 {
			sheen["sheenRoughnessFactor"] = roughnessSocket.DefaultValue
		}
	} else {
		fac := m.GetFactorFromSocket(SOCKET_SHEEN_ROUGHNESS)
		if fac == nil {
			one := float32(1)
			fac = &one
		}
		if *fac != 0 {
			sheen["sheenRoughnessFactor"] = *fac
		}

		if roughnessSocket.HasImageNode() {
			gte := m.exportTexture(gltfCacher, roughnessSocket.Image)
			sheen["sheenRoughnessTexture"] = &gltf.TextureInfo{Index: gte.TextureIndex}
			uvmaps["sheenRoughnessTexture"] = roughnessSocket.Image.UVMap
		}
	}

	return sheen, uvmaps
}

func (m *Material) exportTexture(gltfCacher *gltfutils.GLTFCacher, img *Image) *GLTFTextureExported {
	return gltfCacher.GetCachedOr(img.Name, func() interface{} {
		doc := gltfCacher.Doc

		gte := &GLTFTextureExported{}

		gte.ImageIndex = uint32(len(doc.Images))
		doc.Images = append(doc.Images, &gltf.Image{
			Name: img.Name,
			URI:  img.URI,
		})

		gte.TextureIndex = uint32(len(doc.Textures))
		doc.Textures = append(doc.Textures, &gltf.Texture{
			Name:   img.Name,
			Source: gltf.Index(gte.ImageIndex),
		})

		return gte
	}).(*GLTFTextureExported)
}

func registerExtensionUsed(doc *gltf.Document, name string) {
	for _, used := range doc.ExtensionsUsed {
		if used == name {
			return
		}
	}
	doc.ExtensionsUsed = append(doc.ExtensionsUsed, name)
}
