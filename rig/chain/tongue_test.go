package chain_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/mogaika/rigforge/armature"
	"github.com/mogaika/rigforge/rig"
	"github.com/mogaika/rigforge/rig/chain"
)

func makeChainArmature(n int) (*armature.Armature, []string) {
	arm := armature.NewArmature("test")
	names := make([]string, n)

	for i := 0; i < n; i++ {
		name := "tongue"
		if i > 0 {
			name = fmt.Sprintf("tongue.%.3d", i)
		}
		id := arm.NewBone(name)
		b := arm.Bone(id)
		b.Head = mgl32.Vec3{0, float32(i) * 0.1, 0}
		b.Tail = mgl32.Vec3{0, float32(i+1) * 0.1, 0}
		if i > 0 {
			arm.SetParent(id, armature.BoneId(i-1))
		}
		names[i] = name
	}
	return arm, names
}

func buildTongue(t *testing.T, n int, bbones int) (*armature.Armature, *rig.Report) {
	arm, names := makeChainArmature(n)
	report := rig.Generate(arm, []rig.Instance{{
		Name:   "tongue_rig",
		Type:   chain.TONGUE_RIG_TYPE,
		Chain:  names,
		Params: rig.Params{BBoneSegments: bbones},
	}})
	return arm, report
}

func approx(t *testing.T, got, want float32, what string) {
	if math.Abs(float64(got-want)) > 1e-6 {
		t.Errorf("%s: got %v, want %v", what, got, want)
	}
}

func TestFollowChainCountAndOrder(t *testing.T) {
	const n = 5
	arm, report := buildTongue(t, n, 10)
	if report.HasErrors() {
		t.Fatalf("unexpected errors: %+v", report.Errors())
	}

	for i := 1; i < n; i++ {
		name := fmt.Sprintf("MCH-tongue.%.3d", i)
		mch := arm.BoneByName(name)
		if mch == nil {
			t.Fatalf("missing follow bone %q", name)
		}
		// follow bones keep input order in the arena
		if i > 1 {
			prev := arm.BoneByName(fmt.Sprintf("MCH-tongue.%.3d", i-1))
			if prev.Id >= mch.Id {
				t.Errorf("follow bones out of order: %q >= %q", prev.Name, name)
			}
		}
		// every follow bone sits at the flipped chain base
		base := arm.BoneByName("ORG-tongue")
		if mch.Head != base.Tail || mch.Tail != base.Head {
			t.Errorf("follow bone %q not at flipped base position", name)
		}
	}
	if extra := arm.BoneByName(fmt.Sprintf("MCH-tongue.%.3d", n)); extra != nil {
		t.Errorf("unexpected extra follow bone %q", extra.Name)
	}
	if arm.BoneByName("MCH-tongue") != nil {
		t.Errorf("first original must not get a follow bone")
	}
}

func TestFollowInfluences(t *testing.T) {
	const n = 5
	arm, report := buildTongue(t, n, 10)
	if report.HasErrors() {
		t.Fatalf("unexpected errors: %+v", report.Errors())
	}

	master := arm.BoneByName("tongue")
	if master == nil {
		t.Fatal("missing master control")
	}

	last := float32(1)
	for i := 1; i < n; i++ {
		mch := arm.BoneByName(fmt.Sprintf("MCH-tongue.%.3d", i))
		if len(mch.Constraints) != 1 {
			t.Fatalf("follow bone %q has %d constraints", mch.Name, len(mch.Constraints))
		}
		con := mch.Constraints[0]
		if con.Kind != armature.CONSTRAINT_COPY_TRANSFORMS || con.Target != master.Id {
			t.Errorf("follow bone %q wired to %v/%v", mch.Name, con.Kind, con.Target)
		}
		want := 1 - float32(i)/float32(n)
		approx(t, con.Influence, want, mch.Name)
		if con.Influence >= last {
			t.Errorf("influence not strictly decreasing at %q", mch.Name)
		}
		if con.Influence <= 0 {
			t.Errorf("influence reached zero at %q", mch.Name)
		}
		last = con.Influence
	}
}

func TestMinimumChainInfluences(t *testing.T) {
	arm, report := buildTongue(t, 3, 10)
	if report.HasErrors() {
		t.Fatalf("unexpected errors: %+v", report.Errors())
	}

	follow1 := arm.BoneByName("MCH-tongue.001")
	follow2 := arm.BoneByName("MCH-tongue.002")
	if follow1 == nil || follow2 == nil {
		t.Fatal("expected exactly two follow bones")
	}
	approx(t, follow1.Constraints[0].Influence, 2.0/3.0, "follow[0]")
	approx(t, follow2.Constraints[0].Influence, 1.0/3.0, "follow[1]")
}

func TestTweakParenting(t *testing.T) {
	const n = 4
	arm, report := buildTongue(t, n, 10)
	if report.HasErrors() {
		t.Fatalf("unexpected errors: %+v", report.Errors())
	}

	master := arm.BoneByName("tongue")

	tweak0 := arm.BoneByName("tweak_tongue")
	if tweak0 == nil || tweak0.Parent != master.Id {
		t.Errorf("tweak[0] must parent to the master control")
	}
	for k := 1; k < n; k++ {
		tweak := arm.BoneByName(fmt.Sprintf("tweak_tongue.%.3d", k))
		follow := arm.BoneByName(fmt.Sprintf("MCH-tongue.%.3d", k))
		if tweak == nil || follow == nil {
			t.Fatalf("missing tweak/follow pair %d", k)
		}
		if tweak.Parent != follow.Id {
			t.Errorf("tweak[%d] parented to %v, want follow %v", k, tweak.Parent, follow.Id)
		}
	}
}

func TestWidgetsAndSegments(t *testing.T) {
	const bbones = 7
	arm, report := buildTongue(t, 3, bbones)
	if report.HasErrors() {
		t.Fatalf("unexpected errors: %+v", report.Errors())
	}

	if w := arm.BoneByName("tongue").Widget; w != chain.WIDGET_JAW {
		t.Errorf("master widget %q", w)
	}
	if w := arm.BoneByName("tweak_tongue").Widget; w != chain.WIDGET_SPHERE {
		t.Errorf("tweak widget %q", w)
	}
	if w := arm.BoneByName("MCH-tongue.001").Widget; w != "" {
		t.Errorf("follow bones must not get widgets, got %q", w)
	}

	for _, name := range []string{"DEF-tongue", "DEF-tongue.001", "DEF-tongue.002"} {
		def := arm.BoneByName(name)
		if def == nil {
			t.Fatalf("missing deform bone %q", name)
		}
		if def.BBoneSegments != bbones {
			t.Errorf("deform %q has %d segments, want %d", name, def.BBoneSegments, bbones)
		}
	}
}

func TestChainTooShort(t *testing.T) {
	arm, report := buildTongue(t, 2, 10)

	if !report.HasErrors() {
		t.Fatal("expected a configuration error for a 2 bone chain")
	}
	if arm.Count() != 2 {
		t.Errorf("failed rig created bones: %d", arm.Count())
	}
	// original names restored after rollback
	if arm.BoneByName("tongue") == nil || arm.BoneByName("tongue.001") == nil {
		t.Errorf("original names not restored after failed build")
	}
}

func TestFailingRigDoesNotAffectOthers(t *testing.T) {
	arm, names := makeChainArmature(5)

	report := rig.Generate(arm, []rig.Instance{
		{
			Name:   "bad",
			Type:   chain.TONGUE_RIG_TYPE,
			Chain:  names[:2],
			Params: rig.DefaultParams(),
		},
		{
			Name:   "good",
			Type:   chain.TONGUE_RIG_TYPE,
			Chain:  names[2:],
			Params: rig.DefaultParams(),
		},
	})

	if len(report.Errors()) != 1 {
		t.Fatalf("expected exactly one failing rig: %+v", report.Messages)
	}
	if arm.BoneByName("tongue.002") == nil && arm.BoneByName("ORG-tongue.002") == nil {
		t.Errorf("surviving rig lost its chain")
	}
	// the good rig built its master control from its first chain bone
	if arm.BoneByName("MCH-tongue.003") == nil {
		t.Errorf("second rig did not build")
	}
}
