package rigscript

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

type Statement interface {
	statementMark()
}

// BoneStatement declares one bone of the metarig. Parents must be
// declared before their children.
type BoneStatement struct {
	Name    string
	Head    mgl32.Vec3
	Tail    mgl32.Vec3
	Roll    float32
	Parent  string
	Connect bool
	Comment string
}

func (b *BoneStatement) String() string {
	s := fmt.Sprintf("bone %q head %g %g %g tail %g %g %g",
		b.Name, b.Head[0], b.Head[1], b.Head[2], b.Tail[0], b.Tail[1], b.Tail[2])
	if b.Roll != 0 {
		s += fmt.Sprintf(" roll %g", b.Roll)
	}
	if b.Parent != "" {
		s += fmt.Sprintf(" parent %q", b.Parent)
	}
	if b.Connect {
		s += " connect"
	}
	return s
}

func (b *BoneStatement) statementMark() {}

// RigStatement binds a registered rig type to a chain of declared bones.
type RigStatement struct {
	Name    string
	Type    string
	Chain   []string
	BBones  int
	Comment string
}

func (r *RigStatement) String() string {
	s := fmt.Sprintf("rig %q type %q chain", r.Name, r.Type)
	for _, bone := range r.Chain {
		s += fmt.Sprintf(" %q", bone)
	}
	if r.BBones != 0 {
		s += fmt.Sprintf(" bbones %d", r.BBones)
	}
	return s
}

func (r *RigStatement) statementMark() {}

// ArmatureStatement names the armature being described.
type ArmatureStatement struct {
	Name    string
	Comment string
}

func (a *ArmatureStatement) String() string {
	return fmt.Sprintf("armature %q", a.Name)
}

func (a *ArmatureStatement) statementMark() {}

func RenderScriptLines(statements []Statement) []string {
	result := make([]string, 0, len(statements))
	for _, statement := range statements {
		var text, comment string
		switch v := statement.(type) {
		case *ArmatureStatement:
			text, comment = v.String(), v.Comment
		case *BoneStatement:
			text, comment = v.String(), v.Comment
		case *RigStatement:
			text, comment = v.String(), v.Comment
		default:
			panic(statement)
		}
		if comment == "" {
			result = append(result, text)
		} else {
			result = append(result, fmt.Sprintf("%-40s // %s", text, comment))
		}
	}
	return result
}

func RenderScript(statements []Statement) string {
	return strings.Join(RenderScriptLines(statements), "\n")
}
