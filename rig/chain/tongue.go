package chain

import (
	"github.com/pkg/errors"

	"github.com/mogaika/rigforge/armature"
	"github.com/mogaika/rigforge/rig"
)

const (
	TONGUE_RIG_TYPE = "face.basic_tongue"
	WIDGET_JAW      = "jaw"
)

// Tongue generalizes a tongue/tail-like appendage: one flipped master
// control at the tip, partial follow bones blending its transform down
// the chain, and the tweak chain riding on top of those.
type Tongue struct {
	TweakChain

	Master armature.BoneId
	Follow []armature.BoneId
}

func NewTongue(params rig.Params) *Tongue {
	return &Tongue{TweakChain: TweakChain{Params: params}}
}

func (t *Tongue) MinChainLength() int { return 3 }

func (t *Tongue) Initialize(b *rig.Build) error {
	if len(b.Org) < t.MinChainLength() {
		return rig.Configurationf("Input to rig type must be a chain of %d or more bones (found %d)",
			t.MinChainLength(), len(b.Org))
	}
	return t.TweakChain.Initialize(b)
}

func (t *Tongue) RunStage(b *rig.Build, s rig.Stage) error {
	switch s {
	case rig.STAGE_GENERATE_BONES:
		if err := t.MakeControlChain(b); err != nil {
			return err
		}
		if err := t.MakeFollowChain(b); err != nil {
			return err
		}
		return t.MakeTweakChain(b)
	case rig.STAGE_PARENT_BONES:
		if err := t.ParentFollowChain(b); err != nil {
			return err
		}
		if err := t.ParentTweakChain(b); err != nil {
			return err
		}
		return t.parentDeformChain(b)
	case rig.STAGE_CONFIGURE_BONES:
		return t.ConfigureDeformChain(b)
	case rig.STAGE_RIG_BONES:
		if err := t.RigFollowChain(b); err != nil {
			return err
		}
		return t.RigOrgChain(b)
	case rig.STAGE_GENERATE_WIDGETS:
		if err := b.Arm.AssignWidget(t.Master, WIDGET_JAW); err != nil {
			return err
		}
		return t.MakeTweakWidgets(b)
	}
	return nil
}

// MakeControlChain creates the sole master control from the first
// original bone, flipped so its handle points out of the mouth.
func (t *Tongue) MakeControlChain(b *rig.Build) error {
	org := b.Org[0]
	name := b.Arm.Bone(org).Name

	master, err := b.Arm.CopyBone(org, rig.DerivedName(name, "ctrl"), true)
	if err != nil {
		return errors.Wrapf(err, "Failed to create master control for %q", name)
	}
	if err := b.Arm.FlipBone(master); err != nil {
		return err
	}
	t.Master = master
	return nil
}

// MakeFollowChain creates one mechanism bone per original bone after the
// first. Every follow bone sits at the chain base and points like the
// master.
func (t *Tongue) MakeFollowChain(b *rig.Build) error {
	t.Follow = make([]armature.BoneId, 0, len(b.Org)-1)

	for _, org := range b.Org[1:] {
		name := b.Arm.Bone(org).Name

		mch, err := b.Arm.CopyBone(org, rig.DerivedName(name, "mch"), false)
		if err != nil {
			return errors.Wrapf(err, "Failed to create follow bone for %q", name)
		}
		if err := b.Arm.CopyBonePosition(b.Org[0], mch); err != nil {
			return err
		}
		if err := b.Arm.FlipBone(mch); err != nil {
			return err
		}
		t.Follow = append(t.Follow, mch)
	}
	return nil
}

func (t *Tongue) ParentFollowChain(b *rig.Build) error {
	for _, mch := range t.Follow {
		if err := b.Arm.SetParent(mch, b.Parent); err != nil {
			return err
		}
	}
	return nil
}

// ParentTweakChain overrides the base parenting: tweak[0] rides the
// master directly, tweak[k] rides follow[k-1], so each tweak takes the
// blended transform of the follow bone driving its segment.
func (t *Tongue) ParentTweakChain(b *rig.Build) error {
	parents := make([]armature.BoneId, 0, len(t.Follow)+2)
	parents = append(parents, t.Master)
	parents = append(parents, t.Follow...)
	parents = append(parents, b.Parent)

	for i, tweak := range t.Tweak {
		if err := b.Arm.SetParent(tweak, parents[i]); err != nil {
			return err
		}
	}
	return nil
}

// RigFollowChain wires the partial follow constraints. With N original
// bones, follow[i] copies the master at influence 1-(i+1)/N: full at the
// tip, fading toward the base, never reaching zero.
func (t *Tongue) RigFollowChain(b *rig.Build) error {
	numOrgs := len(b.Org)

	for i, mch := range t.Follow {
		influence := 1.0 - float32(i+1)/float32(numOrgs)
		if err := b.Arm.AddConstraint(mch, armature.CONSTRAINT_COPY_TRANSFORMS, t.Master, influence); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tongue) DescribeParams() []rig.IntParam {
	return []rig.IntParam{{
		Name:        "bbones",
		Default:     10,
		Min:         1,
		Description: "Number of B-Bone segments",
	}}
}

func init() {
	rig.SetRigType(TONGUE_RIG_TYPE, func(params rig.Params) rig.Rig {
		return NewTongue(params)
	})
}
