package web

import (
	"bytes"
	"log"
	"net/http"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/mogaika/rigforge/armature"
	"github.com/mogaika/rigforge/config"
	"github.com/mogaika/rigforge/preset"
	"github.com/mogaika/rigforge/rig"
	"github.com/mogaika/rigforge/rigscript"
	"github.com/mogaika/rigforge/status"
	"github.com/mogaika/rigforge/utils"
	"github.com/mogaika/rigforge/utils/gltfutils"
	"github.com/mogaika/rigforge/webutils"
)

func HandlerAjaxPresets(w http.ResponseWriter, r *http.Request) {
	webutils.WriteJson(w, preset.Names())
}

func HandlerAjaxPreset(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if t := preset.Get(name); t == nil {
		webutils.WriteError(w, errors.Errorf("Unknown preset %q", name))
	} else {
		webutils.WriteJson(w, t)
	}
}

func HandlerAjaxRigTypes(w http.ResponseWriter, r *http.Request) {
	type jRigType struct {
		Name   string
		Params []rig.IntParam `json:",omitempty"`
	}

	names := rig.RigTypes()
	sort.Strings(names)

	result := make([]jRigType, 0, len(names))
	for _, name := range names {
		jrt := jRigType{Name: name}
		if describer, ok := rig.GetRigType(name)(rig.DefaultParams()).(rig.ParamsDescriber); ok {
			jrt.Params = describer.DescribeParams()
		}
		result = append(result, jrt)
	}
	webutils.WriteJson(w, result)
}

func HandlerAjaxEncodings(w http.ResponseWriter, r *http.Request) {
	webutils.WriteJson(w, config.ListEncodings())
}

func HandlerDumpPreset(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	format := mux.Vars(r)["format"]

	t := preset.Get(name)
	if t == nil {
		webutils.WriteError(w, errors.Errorf("Unknown preset %q", name))
		return
	}

	var buf bytes.Buffer
	switch format {
	case "yaml":
		if err := preset.SaveYAML(&buf, t); err != nil {
			webutils.WriteError(w, err)
			return
		}
		webutils.WriteFile(w, &buf, name+".yaml")
	case "toml":
		if err := preset.SaveTOML(&buf, t); err != nil {
			webutils.WriteError(w, err)
			return
		}
		webutils.WriteFile(w, &buf, name+".toml")
	case "json":
		webutils.WriteJsonFile(w, t, name)
	default:
		webutils.WriteError(w, errors.Errorf("Unknown preset format %q", format))
	}
}

type jConstraint struct {
	Kind      string
	Target    string
	Influence float32
}

type jBone struct {
	Name          string
	Parent        string `json:",omitempty"`
	Head          mgl32.Vec3
	Tail          mgl32.Vec3
	Roll          float32
	Euler         mgl32.Vec3
	BBoneSegments int
	Widget        string        `json:",omitempty"`
	Constraints   []jConstraint `json:",omitempty"`
}

func jsonArmature(arm *armature.Armature) interface{} {
	bones := make([]jBone, 0, arm.Count())
	for _, b := range arm.Bones() {
		jb := jBone{
			Name:          b.Name,
			Head:          b.Head,
			Tail:          b.Tail,
			Roll:          b.Roll,
			Euler:         utils.QuatToEuler(utils.BoneOrientation(b.Vector(), b.Roll)),
			BBoneSegments: b.BBoneSegments,
			Widget:        b.Widget,
		}
		if b.Parent != armature.BONE_NONE {
			jb.Parent = arm.Bone(b.Parent).Name
		}
		for _, c := range b.Constraints {
			jb.Constraints = append(jb.Constraints, jConstraint{
				Kind:      c.Kind.String(),
				Target:    arm.Bone(c.Target).Name,
				Influence: c.Influence,
			})
		}
		bones = append(bones, jb)
	}
	return struct {
		Name  string
		Bones []jBone
	}{Name: arm.Name, Bones: bones}
}

func buildFromRequest(r *http.Request) (*armature.Armature, *rig.Report, error) {
	script, err := webutils.ReadFormFile(r, "script")
	if err != nil {
		return nil, nil, err
	}

	arm, report, err := rigscript.Run(script)
	if err != nil {
		status.Error("Failed to build rig script: %v", err)
		return nil, nil, err
	}

	for _, m := range report.Messages {
		status.RigMessage(m.Rig, m.Text, m.IsError)
	}
	return arm, report, nil
}

func HandlerActionGenerate(w http.ResponseWriter, r *http.Request) {
	arm, report, err := buildFromRequest(r)
	if err != nil {
		webutils.WriteError(w, err)
		return
	}

	webutils.WriteJson(w, struct {
		Armature interface{}
		Report   []rig.Message
	}{Armature: jsonArmature(arm), Report: report.Messages})
}

func HandlerActionExportGLTF(w http.ResponseWriter, r *http.Request) {
	arm, _, err := buildFromRequest(r)
	if err != nil {
		webutils.WriteError(w, err)
		return
	}

	gltfCacher := gltfutils.NewCacher()
	if _, err := arm.ExportGLTF(gltfCacher); err != nil {
		webutils.WriteError(w, errors.Wrapf(err, "Failed to export armature"))
		return
	}

	var buf bytes.Buffer
	if err := gltfutils.ExportBinary(&buf, gltfCacher.Doc); err != nil {
		webutils.WriteError(w, errors.Wrapf(err, "Failed to encode gltf"))
		return
	}
	webutils.WriteFile(w, &buf, arm.Name+".glb")
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func HandlerWebsocketStatus(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[web] ws upgrade error: %v", err)
		return
	}
	status.NewClient(conn)
}
