package rigscript

import (
	"github.com/pkg/errors"

	"github.com/mogaika/rigforge/armature"
	"github.com/mogaika/rigforge/rig"
	"github.com/mogaika/rigforge/utils"
)

var armatureNames utils.RandomNameGenerator

// Compile turns parsed statements into an armature plus the rig
// instances to generate over it. A script without an armature statement
// gets a random unique name.
func Compile(statements []Statement) (*armature.Armature, []rig.Instance, error) {
	arm := armature.NewArmature(armatureNames.RandomName())
	instances := make([]rig.Instance, 0)

	for _, statement := range statements {
		switch v := statement.(type) {
		case *ArmatureStatement:
			arm.Name = v.Name
		case *BoneStatement:
			if arm.BoneByName(v.Name) != nil {
				return nil, nil, errors.Errorf("Duplicate bone %q", v.Name)
			}
			id := arm.NewBone(v.Name)
			b := arm.Bone(id)
			b.Head = v.Head
			b.Tail = v.Tail
			b.Roll = v.Roll
			if v.Parent != "" {
				parent := arm.BoneByName(v.Parent)
				if parent == nil {
					return nil, nil, errors.Errorf("Bone %q declares unknown parent %q", v.Name, v.Parent)
				}
				if err := arm.SetParent(id, parent.Id); err != nil {
					return nil, nil, err
				}
				b.Connected = v.Connect
			}
		case *RigStatement:
			params := rig.DefaultParams()
			if v.BBones != 0 {
				params.BBoneSegments = v.BBones
			}
			instances = append(instances, rig.Instance{
				Name:   v.Name,
				Type:   v.Type,
				Chain:  v.Chain,
				Params: params,
			})
		}
	}

	return arm, instances, nil
}

// Run is the whole pipeline: parse, compile, generate.
func Run(text []byte) (*armature.Armature, *rig.Report, error) {
	statements, err := ParseScript(text)
	if err != nil {
		return nil, nil, err
	}
	arm, instances, err := Compile(statements)
	if err != nil {
		return nil, nil, err
	}
	return arm, rig.Generate(arm, instances), nil
}
