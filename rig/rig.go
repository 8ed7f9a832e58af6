package rig

import (
	"fmt"

	"github.com/mogaika/rigforge/armature"
)

const (
	STAGE_GENERATE_BONES = iota
	STAGE_PARENT_BONES
	STAGE_CONFIGURE_BONES
	STAGE_RIG_BONES
	STAGE_GENERATE_WIDGETS
	STAGE_COUNT
)

type Stage int

func (s Stage) String() string {
	switch s {
	case STAGE_GENERATE_BONES:
		return "generate_bones"
	case STAGE_PARENT_BONES:
		return "parent_bones"
	case STAGE_CONFIGURE_BONES:
		return "configure_bones"
	case STAGE_RIG_BONES:
		return "rig_bones"
	case STAGE_GENERATE_WIDGETS:
		return "generate_widgets"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Rig builds one control scheme over a chain of original bones. The
// generator calls Initialize once, then every stage in the fixed order
// above. An Initialize error aborts this rig only.
type Rig interface {
	Initialize(b *Build) error
	RunStage(b *Build, s Stage) error
}

// Build is the per-instance working state handed to every stage.
type Build struct {
	Arm    *armature.Armature
	Org    []armature.BoneId
	Parent armature.BoneId
	Params Params
}

func (b *Build) OrgBone(i int) *armature.Bone { return b.Arm.Bone(b.Org[i]) }

type Params struct {
	BBoneSegments int
	PrimaryLayers uint32
}

func DefaultParams() Params {
	return Params{BBoneSegments: 10}
}

// IntParam mirrors the integer property a host UI would register for a
// rig type.
type IntParam struct {
	Name        string
	Default     int
	Min         int
	Description string
}

type Factory func(params Params) Rig

// ParamsDescriber is implemented by rig types that expose tunable
// parameters to the web UI.
type ParamsDescriber interface {
	DescribeParams() []IntParam
}

var factories = make(map[string]Factory)

func SetRigType(name string, f Factory) {
	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("Rig type %q already registered", name))
	}
	factories[name] = f
}

func GetRigType(name string) Factory {
	return factories[name]
}

func RigTypes() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	return names
}
