package armature

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"

	"github.com/mogaika/rigforge/utils"
	"github.com/mogaika/rigforge/utils/gltfutils"
)

type GLTFArmatureExported struct {
	BoneNodes []uint32
}

// ExportGLTF emits one node per bone, parent-relative, with the bone Y
// axis aligned to the head->tail direction.
func (a *Armature) ExportGLTF(gltfCacher *gltfutils.GLTFCacher) (*GLTFArmatureExported, error) {
	gae := &GLTFArmatureExported{
		BoneNodes: make([]uint32, a.Count()),
	}
	defer gltfCacher.AddCache(a.Name, gae)

	doc := gltfCacher.Doc

	worldRots := make([]mgl32.Quat, a.Count())

	for i := range a.bones {
		bone := &a.bones[i]

		worldRot := utils.BoneOrientation(bone.Vector(), bone.Roll)
		worldRots[i] = worldRot

		localRot := worldRot
		localPos := bone.Head
		if bone.Parent != BONE_NONE {
			parentRot := worldRots[bone.Parent]
			localRot = parentRot.Inverse().Mul(worldRot)
			localPos = parentRot.Inverse().Rotate(bone.Head.Sub(a.bones[bone.Parent].Head))
		}

		node := &gltf.Node{
			Name:        bone.Name,
			Translation: localPos,
			Rotation:    localRot.V.Vec4(localRot.W),
		}

		gae.BoneNodes[i] = uint32(len(doc.Nodes))
		doc.Nodes = append(doc.Nodes, node)
	}

	for i := range a.bones {
		bone := &a.bones[i]
		if bone.Parent != BONE_NONE {
			parentNode := doc.Nodes[gae.BoneNodes[bone.Parent]]
			parentNode.Children = append(parentNode.Children, gae.BoneNodes[i])
		} else {
			doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, gae.BoneNodes[i])
		}
	}

	return gae, nil
}
