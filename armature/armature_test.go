package armature_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/mogaika/rigforge/armature"
)

func TestNameDeduplication(t *testing.T) {
	arm := armature.NewArmature("test")

	first := arm.NewBone("tongue")
	second := arm.NewBone("tongue")
	third := arm.NewBone("tongue")

	if name := arm.Bone(first).Name; name != "tongue" {
		t.Errorf("first name %q", name)
	}
	if name := arm.Bone(second).Name; name != "tongue.001" {
		t.Errorf("second name %q", name)
	}
	if name := arm.Bone(third).Name; name != "tongue.002" {
		t.Errorf("third name %q", name)
	}
	if b := arm.BoneByName("tongue.001"); b == nil || b.Id != second {
		t.Errorf("lookup of deduplicated name failed")
	}
}

func TestRename(t *testing.T) {
	arm := armature.NewArmature("test")

	a := arm.NewBone("a")
	arm.NewBone("b")

	name, err := arm.Rename(a, "b")
	if err != nil {
		t.Fatal(err)
	}
	if name != "b.001" {
		t.Errorf("renamed to %q", name)
	}
	if arm.BoneByName("a") != nil {
		t.Errorf("old name still registered")
	}
}

func TestParentOrdering(t *testing.T) {
	arm := armature.NewArmature("test")

	root := arm.NewBone("root")
	child := arm.NewBone("child")

	if err := arm.SetParent(child, root); err != nil {
		t.Errorf("valid parenting failed: %v", err)
	}
	if err := arm.SetParent(root, child); err == nil {
		t.Errorf("expected error parenting to a later bone")
	}
	if err := arm.SetParent(child, armature.BONE_NONE); err != nil {
		t.Errorf("unparenting failed: %v", err)
	}
}

func TestFlipBone(t *testing.T) {
	arm := armature.NewArmature("test")

	id := arm.NewBone("bone")
	b := arm.Bone(id)
	b.Head = mgl32.Vec3{0, 0, 0}
	b.Tail = mgl32.Vec3{0, 1, 0}
	b.Roll = 0.5

	if err := arm.FlipBone(id); err != nil {
		t.Fatal(err)
	}
	if b.Head != (mgl32.Vec3{0, 1, 0}) || b.Tail != (mgl32.Vec3{0, 0, 0}) {
		t.Errorf("flip did not swap head/tail: %v %v", b.Head, b.Tail)
	}
	if b.Roll != -0.5 {
		t.Errorf("flip did not negate roll: %v", b.Roll)
	}
}

func TestTruncateRollback(t *testing.T) {
	arm := armature.NewArmature("test")

	keep := arm.NewBone("keep")

	mark := arm.Mark()
	gone := arm.NewBone("gone")
	if err := arm.AddConstraint(keep, armature.CONSTRAINT_COPY_TRANSFORMS, gone, 1); err != nil {
		t.Fatal(err)
	}
	arm.Truncate(mark)

	if arm.Count() != 1 {
		t.Errorf("expected 1 bone after rollback, got %d", arm.Count())
	}
	if arm.BoneByName("gone") != nil {
		t.Errorf("rolled back bone still addressable by name")
	}
	if len(arm.Bone(keep).Constraints) != 0 {
		t.Errorf("constraint into rolled back range survived")
	}

	// name freed by rollback is reusable without a suffix
	if again := arm.NewBone("gone"); arm.Bone(again).Name != "gone" {
		t.Errorf("name not freed by rollback")
	}
}

func TestConstraintInfluenceClamp(t *testing.T) {
	arm := armature.NewArmature("test")

	a := arm.NewBone("a")
	b := arm.NewBone("b")

	if err := arm.AddConstraint(b, armature.CONSTRAINT_COPY_TRANSFORMS, a, 1.5); err != nil {
		t.Fatal(err)
	}
	if inf := arm.Bone(b).Constraints[0].Influence; inf != 1 {
		t.Errorf("influence not clamped: %v", inf)
	}
	if err := arm.AddConstraint(b, armature.CONSTRAINT_COPY_TRANSFORMS, armature.BoneId(55), 1); err == nil {
		t.Errorf("expected error for invalid target")
	}
}
