package armature_test

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/mogaika/rigforge/armature"
	"github.com/mogaika/rigforge/utils/gltfutils"
)

func TestExportGLTF(t *testing.T) {
	arm := armature.NewArmature("chain")

	root := arm.NewBone("root")
	arm.Bone(root).Tail = mgl32.Vec3{0, 1, 0}

	child := arm.NewBone("child")
	arm.Bone(child).Head = mgl32.Vec3{0, 1, 0}
	arm.Bone(child).Tail = mgl32.Vec3{0, 2, 0}
	if err := arm.SetParent(child, root); err != nil {
		t.Fatal(err)
	}

	loose := arm.NewBone("loose")
	arm.Bone(loose).Head = mgl32.Vec3{1, 0, 0}
	arm.Bone(loose).Tail = mgl32.Vec3{1, 1, 0}

	gltfCacher := gltfutils.NewCacher()
	gae, err := arm.ExportGLTF(gltfCacher)
	if err != nil {
		t.Fatal(err)
	}

	doc := gltfCacher.Doc
	if len(gae.BoneNodes) != 3 || len(doc.Nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(doc.Nodes))
	}

	rootNode := doc.Nodes[gae.BoneNodes[root]]
	if rootNode.Name != "root" {
		t.Errorf("root node name %q", rootNode.Name)
	}
	if len(rootNode.Children) != 1 || rootNode.Children[0] != gae.BoneNodes[child] {
		t.Errorf("root children %v", rootNode.Children)
	}

	// child translation is parent relative
	childNode := doc.Nodes[gae.BoneNodes[child]]
	if childNode.Translation[1] < 0.99 || childNode.Translation[1] > 1.01 {
		t.Errorf("child translation %v", childNode.Translation)
	}

	// roots and unparented bones land in the scene
	if len(doc.Scenes[0].Nodes) != 2 {
		t.Errorf("scene roots %v", doc.Scenes[0].Nodes)
	}

	var buf bytes.Buffer
	if err := gltfutils.ExportBinary(&buf, doc); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Errorf("empty binary export")
	}
}
