package chain

import (
	"github.com/pkg/errors"

	"github.com/mogaika/rigforge/armature"
	"github.com/mogaika/rigforge/rig"
)

const WIDGET_SPHERE = "sphere"

// TweakChain is the base template for chain rigs: one animator-facing
// tweak bone per original bone plus a deform chain that follows the
// tweaks with smoothed segments.
type TweakChain struct {
	Params rig.Params

	Tweak  []armature.BoneId
	Deform []armature.BoneId
}

func (c *TweakChain) MinChainLength() int { return 2 }

func (c *TweakChain) Initialize(b *rig.Build) error {
	if len(b.Org) < c.MinChainLength() {
		return rig.Configurationf("Input to rig type must be a chain of %d or more bones (found %d)",
			c.MinChainLength(), len(b.Org))
	}
	if c.Params.BBoneSegments < 1 {
		return rig.Configurationf("Segment count must be at least 1 (found %d)",
			c.Params.BBoneSegments)
	}
	return nil
}

func (c *TweakChain) RunStage(b *rig.Build, s rig.Stage) error {
	switch s {
	case rig.STAGE_GENERATE_BONES:
		return c.MakeTweakChain(b)
	case rig.STAGE_PARENT_BONES:
		return c.ParentTweakChain(b)
	case rig.STAGE_CONFIGURE_BONES:
		return c.ConfigureDeformChain(b)
	case rig.STAGE_RIG_BONES:
		return c.RigOrgChain(b)
	case rig.STAGE_GENERATE_WIDGETS:
		return c.MakeTweakWidgets(b)
	}
	return nil
}

// MakeTweakChain creates one tweak per original bone, shrunk to the
// first half of the original so handles stay distinguishable, and the
// deform chain mirroring the originals.
func (c *TweakChain) MakeTweakChain(b *rig.Build) error {
	c.Tweak = make([]armature.BoneId, 0, len(b.Org))
	c.Deform = make([]armature.BoneId, 0, len(b.Org))

	for _, org := range b.Org {
		name := b.Arm.Bone(org).Name

		tweak, err := b.Arm.CopyBone(org, rig.DerivedName(name, "tweak"), false)
		if err != nil {
			return errors.Wrapf(err, "Failed to create tweak for %q", name)
		}
		tb := b.Arm.Bone(tweak)
		tb.Tail = tb.Head.Add(tb.Vector().Mul(0.5))
		c.Tweak = append(c.Tweak, tweak)

		def, err := b.Arm.CopyBone(org, rig.DerivedName(name, "def"), false)
		if err != nil {
			return errors.Wrapf(err, "Failed to create deform for %q", name)
		}
		c.Deform = append(c.Deform, def)
	}
	return nil
}

func (c *TweakChain) ParentTweakChain(b *rig.Build) error {
	for i, tweak := range c.Tweak {
		if err := b.Arm.SetParent(tweak, b.Org[i]); err != nil {
			return err
		}
	}
	return c.parentDeformChain(b)
}

func (c *TweakChain) parentDeformChain(b *rig.Build) error {
	for i, def := range c.Deform {
		parent := b.Parent
		if i > 0 {
			parent = c.Deform[i-1]
		}
		if err := b.Arm.SetParent(def, parent); err != nil {
			return err
		}
	}
	return nil
}

// ConfigureDeformChain propagates the segment subdivision setting to the
// deform bones, which is where curved rendering happens.
func (c *TweakChain) ConfigureDeformChain(b *rig.Build) error {
	for _, def := range c.Deform {
		b.Arm.Bone(def).BBoneSegments = c.Params.BBoneSegments
	}
	return nil
}

// RigOrgChain drives each original bone by its tweak, and each deform
// bone by its original, stretching toward the next tweak.
func (c *TweakChain) RigOrgChain(b *rig.Build) error {
	for i, org := range b.Org {
		if err := b.Arm.AddConstraint(org, armature.CONSTRAINT_COPY_TRANSFORMS, c.Tweak[i], 1); err != nil {
			return err
		}
	}
	for i, def := range c.Deform {
		if err := b.Arm.AddConstraint(def, armature.CONSTRAINT_COPY_TRANSFORMS, b.Org[i], 1); err != nil {
			return err
		}
		if i+1 < len(c.Tweak) {
			if err := b.Arm.AddConstraint(def, armature.CONSTRAINT_STRETCH_TO, c.Tweak[i+1], 1); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *TweakChain) MakeTweakWidgets(b *rig.Build) error {
	for _, tweak := range c.Tweak {
		if err := b.Arm.AssignWidget(tweak, WIDGET_SPHERE); err != nil {
			return err
		}
	}
	return nil
}
