package rig

import (
	"log"

	"github.com/pkg/errors"

	"github.com/mogaika/rigforge/armature"
)

// Instance names one rig to build: a registered type applied to an
// ordered chain of existing bones.
type Instance struct {
	Name   string
	Type   string
	Chain  []string
	Params Params
}

// Generate builds every instance over arm. A failing instance is rolled
// back and reported; the rest still build. The returned report always
// carries one message per instance.
func Generate(arm *armature.Armature, instances []Instance) *Report {
	report := &Report{}

	for i := range instances {
		inst := &instances[i]
		if err := generateOne(arm, inst); err != nil {
			report.Errorf(inst.Name, "%v", err)
			log.Printf("[rig] Failed to build %q: %v", inst.Name, err)
		} else {
			report.Infof(inst.Name, "Built rig type %q over %d bones",
				inst.Type, len(inst.Chain))
		}
	}

	return report
}

func generateOne(arm *armature.Armature, inst *Instance) error {
	factory := GetRigType(inst.Type)
	if factory == nil {
		return Configurationf("Unknown rig type %q", inst.Type)
	}

	org := make([]armature.BoneId, len(inst.Chain))
	parent := armature.BONE_NONE
	for i, name := range inst.Chain {
		b := arm.BoneByName(name)
		if b == nil {
			return Configurationf("Chain bone %q not found", name)
		}
		org[i] = b.Id
		if i == 0 {
			parent = b.Parent
		}
	}

	build := &Build{
		Arm:    arm,
		Org:    org,
		Parent: parent,
		Params: inst.Params,
	}

	r := factory(inst.Params)

	// Originals move under the ORG- prefix so derived bones can take the
	// plain names. A failed build puts everything back.
	originalNames := make([]string, len(org))
	for i, id := range org {
		originalNames[i] = arm.Bone(id).Name
		if _, err := arm.Rename(id, ORG_PREFIX+StripOrg(originalNames[i])); err != nil {
			return err
		}
	}
	restore := func() {
		for i, id := range org {
			arm.Rename(id, originalNames[i])
		}
	}

	mark := arm.Mark()
	if err := r.Initialize(build); err != nil {
		arm.Truncate(mark)
		restore()
		return errors.Wrapf(err, "Failed to initialize rig %q", inst.Name)
	}
	for s := Stage(0); s < STAGE_COUNT; s++ {
		if err := r.RunStage(build, s); err != nil {
			arm.Truncate(mark)
			restore()
			return errors.Wrapf(err, "Failed at stage %v of rig %q", s, inst.Name)
		}
	}

	return nil
}
