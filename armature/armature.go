package armature

import (
	"bytes"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

const BONE_NONE = BoneId(-1)

type BoneId int16

const (
	CONSTRAINT_COPY_TRANSFORMS = iota
	CONSTRAINT_COPY_ROTATION
	CONSTRAINT_COPY_SCALE
	CONSTRAINT_STRETCH_TO
	CONSTRAINT_DAMPED_TRACK
)

type ConstraintKind int

func (k ConstraintKind) String() string {
	switch k {
	case CONSTRAINT_COPY_TRANSFORMS:
		return "COPY_TRANSFORMS"
	case CONSTRAINT_COPY_ROTATION:
		return "COPY_ROTATION"
	case CONSTRAINT_COPY_SCALE:
		return "COPY_SCALE"
	case CONSTRAINT_STRETCH_TO:
		return "STRETCH_TO"
	case CONSTRAINT_DAMPED_TRACK:
		return "DAMPED_TRACK"
	}
	return fmt.Sprintf("CONSTRAINT(%d)", int(k))
}

type Constraint struct {
	Kind      ConstraintKind
	Target    BoneId
	Influence float32
}

type Bone struct {
	Id     BoneId
	Name   string
	Parent BoneId

	Head mgl32.Vec3
	Tail mgl32.Vec3
	Roll float32

	Connected     bool
	BBoneSegments int

	Constraints []Constraint
	Widget      string
}

func (b *Bone) Vector() mgl32.Vec3 { return b.Tail.Sub(b.Head) }

func (b *Bone) Length() float32 { return b.Vector().Len() }

// Armature owns every bone. Bones live in creation order, so a parent id is
// always smaller than any of its children ids and the tree is acyclic by
// construction.
type Armature struct {
	Name  string
	bones []Bone
	names map[string]BoneId
}

func NewArmature(name string) *Armature {
	return &Armature{
		Name:  name,
		bones: make([]Bone, 0, 32),
		names: make(map[string]BoneId),
	}
}

func (a *Armature) Count() int { return len(a.bones) }

func (a *Armature) Bone(id BoneId) *Bone {
	if id < 0 || int(id) >= len(a.bones) {
		return nil
	}
	return &a.bones[id]
}

func (a *Armature) BoneByName(name string) *Bone {
	if id, ok := a.names[name]; ok {
		return &a.bones[id]
	}
	return nil
}

func (a *Armature) Bones() []Bone { return a.bones }

// uniqueName resolves collisions the way the host application does:
// "tongue" -> "tongue.001" -> "tongue.002" ...
func (a *Armature) uniqueName(name string) string {
	if _, exists := a.names[name]; !exists {
		return name
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s.%.3d", name, i)
		if _, exists := a.names[candidate]; !exists {
			return candidate
		}
	}
}

func (a *Armature) NewBone(name string) BoneId {
	id := BoneId(len(a.bones))
	realName := a.uniqueName(name)
	a.bones = append(a.bones, Bone{
		Id:            id,
		Name:          realName,
		Parent:        BONE_NONE,
		BBoneSegments: 1,
	})
	a.names[realName] = id
	return id
}

// Rename frees the old name and claims the new one, deduplicating the
// same way NewBone does. Returns the name actually assigned.
func (a *Armature) Rename(id BoneId, name string) (string, error) {
	b := a.Bone(id)
	if b == nil {
		return "", errors.Errorf("Invalid bone %v", id)
	}
	if b.Name == name {
		return name, nil
	}
	delete(a.names, b.Name)
	realName := a.uniqueName(name)
	b.Name = realName
	a.names[realName] = id
	return realName, nil
}

// CopyBone creates a bone with the source position, roll and bbone settings.
// Parent is copied only when keepParent is set.
func (a *Armature) CopyBone(src BoneId, name string, keepParent bool) (BoneId, error) {
	from := a.Bone(src)
	if from == nil {
		return BONE_NONE, errors.Errorf("Invalid source bone %v", src)
	}
	id := a.NewBone(name)
	b := a.Bone(id)
	b.Head = from.Head
	b.Tail = from.Tail
	b.Roll = from.Roll
	b.BBoneSegments = from.BBoneSegments
	if keepParent {
		b.Parent = from.Parent
		b.Connected = from.Connected
	}
	return id, nil
}

// CopyBonePosition moves dst onto src without touching hierarchy.
func (a *Armature) CopyBonePosition(src, dst BoneId) error {
	from, to := a.Bone(src), a.Bone(dst)
	if from == nil || to == nil {
		return errors.Errorf("Invalid bone pair %v -> %v", src, dst)
	}
	to.Head = from.Head
	to.Tail = from.Tail
	to.Roll = from.Roll
	return nil
}

// FlipBone swaps head and tail so the bone points the opposite way.
func (a *Armature) FlipBone(id BoneId) error {
	b := a.Bone(id)
	if b == nil {
		return errors.Errorf("Invalid bone %v", id)
	}
	b.Head, b.Tail = b.Tail, b.Head
	b.Roll = -b.Roll
	b.Connected = false
	return nil
}

// SetParent rejects parents created after the child, which keeps the
// hierarchy a forest without ever walking it.
func (a *Armature) SetParent(child, parent BoneId) error {
	c := a.Bone(child)
	if c == nil {
		return errors.Errorf("Invalid bone %v", child)
	}
	if parent == BONE_NONE {
		c.Parent = BONE_NONE
		c.Connected = false
		return nil
	}
	if a.Bone(parent) == nil {
		return errors.Errorf("Invalid parent bone %v for %q", parent, c.Name)
	}
	if parent >= child {
		return errors.Errorf("Parent %q must be created before child %q",
			a.Bone(parent).Name, c.Name)
	}
	c.Parent = parent
	return nil
}

func (a *Armature) AddConstraint(owner BoneId, kind ConstraintKind, target BoneId, influence float32) error {
	b := a.Bone(owner)
	if b == nil {
		return errors.Errorf("Invalid bone %v", owner)
	}
	if a.Bone(target) == nil {
		return errors.Errorf("Invalid constraint target %v on %q", target, b.Name)
	}
	if influence < 0 {
		influence = 0
	} else if influence > 1 {
		influence = 1
	}
	b.Constraints = append(b.Constraints, Constraint{
		Kind:      kind,
		Target:    target,
		Influence: influence,
	})
	return nil
}

func (a *Armature) AssignWidget(id BoneId, widget string) error {
	b := a.Bone(id)
	if b == nil {
		return errors.Errorf("Invalid bone %v", id)
	}
	b.Widget = widget
	return nil
}

// Mark returns a rollback point for Truncate.
func (a *Armature) Mark() int { return len(a.bones) }

// Truncate drops every bone created at or after mark. Constraints on
// surviving bones that point into the dropped range are removed too, so a
// failed generator leaves no trace.
func (a *Armature) Truncate(mark int) {
	if mark < 0 || mark >= len(a.bones) {
		return
	}
	for i := mark; i < len(a.bones); i++ {
		delete(a.names, a.bones[i].Name)
	}
	a.bones = a.bones[:mark]
	for i := range a.bones {
		b := &a.bones[i]
		kept := b.Constraints[:0]
		for _, c := range b.Constraints {
			if int(c.Target) < mark {
				kept = append(kept, c)
			}
		}
		b.Constraints = kept
	}
}

func (a *Armature) StringBone(id BoneId, spaces string) string {
	b := a.Bone(id)
	return fmt.Sprintf("%sbone [%.4x <=%.4x seg:%d]  %s:\n%shead: %#v\n%stail: %#v\n%sroll: %f\n",
		spaces, b.Id, b.Parent, b.BBoneSegments, b.Name,
		spaces, b.Head, spaces, b.Tail, spaces, b.Roll)
}

func (a *Armature) StringTree() string {
	var buffer bytes.Buffer

	depths := make([]int, len(a.bones))
	for i := range a.bones {
		b := &a.bones[i]
		if b.Parent != BONE_NONE {
			depths[i] = depths[b.Parent] + 1
		}
		spaces := ""
		for d := 0; d < depths[i]; d++ {
			spaces += "  "
		}
		buffer.WriteString(a.StringBone(b.Id, spaces))
	}
	return buffer.String()
}
