package preset

import (
	"sort"

	"github.com/pkg/errors"
)

// Tree is the parameter table of one procedural tree/curve preset. The
// four-element arrays hold one value per recursion level.
type Tree struct {
	Shape       string     `yaml:"shape" toml:"shape"`
	ShapeS      string     `yaml:"shapeS" toml:"shapeS"`
	CustomShape [4]float32 `yaml:"customShape" toml:"customShape"`

	Levels int     `yaml:"levels" toml:"levels"`
	Seed   int     `yaml:"seed" toml:"seed"`
	NRings int     `yaml:"nrings" toml:"nrings"`
	Ratio  float32 `yaml:"ratio" toml:"ratio"`

	Scale   float32 `yaml:"scale" toml:"scale"`
	ScaleV  float32 `yaml:"scaleV" toml:"scaleV"`
	Scale0  float32 `yaml:"scale0" toml:"scale0"`
	ScaleV0 float32 `yaml:"scaleV0" toml:"scaleV0"`

	BaseSize   float32 `yaml:"baseSize" toml:"baseSize"`
	BaseSizeS  float32 `yaml:"baseSize_s" toml:"baseSize_s"`
	BaseSplits int     `yaml:"baseSplits" toml:"baseSplits"`
	BranchDist float32 `yaml:"branchDist" toml:"branchDist"`

	RatioPower float32 `yaml:"ratioPower" toml:"ratioPower"`
	MinRadius  float32 `yaml:"minRadius" toml:"minRadius"`
	RootFlare  float32 `yaml:"rootFlare" toml:"rootFlare"`
	AutoTaper  bool    `yaml:"autoTaper" toml:"autoTaper"`
	TaperCrown float32 `yaml:"taperCrown" toml:"taperCrown"`

	Length   [4]float32 `yaml:"length" toml:"length"`
	LengthV  [4]float32 `yaml:"lengthV" toml:"lengthV"`
	Branches [4]int     `yaml:"branches" toml:"branches"`

	CurveRes  [4]int     `yaml:"curveRes" toml:"curveRes"`
	Curve     [4]float32 `yaml:"curve" toml:"curve"`
	CurveV    [4]float32 `yaml:"curveV" toml:"curveV"`
	CurveBack [4]float32 `yaml:"curveBack" toml:"curveBack"`

	SegSplits   [4]float32 `yaml:"segSplits" toml:"segSplits"`
	SplitAngle  [4]float32 `yaml:"splitAngle" toml:"splitAngle"`
	SplitAngleV [4]float32 `yaml:"splitAngleV" toml:"splitAngleV"`
	SplitBias   float32    `yaml:"splitBias" toml:"splitBias"`
	SplitHeight float32    `yaml:"splitHeight" toml:"splitHeight"`
	SplitByLen  bool       `yaml:"splitByLen" toml:"splitByLen"`

	Rotate     [4]float32 `yaml:"rotate" toml:"rotate"`
	RotateV    [4]float32 `yaml:"rotateV" toml:"rotateV"`
	RMode      string     `yaml:"rMode" toml:"rMode"`
	DownAngle  [4]float32 `yaml:"downAngle" toml:"downAngle"`
	DownAngleV [4]float32 `yaml:"downAngleV" toml:"downAngleV"`

	UseOldDownAngle bool `yaml:"useOldDownAngle" toml:"useOldDownAngle"`
	UseParentAngle  bool `yaml:"useParentAngle" toml:"useParentAngle"`

	AttractUp  [4]float32 `yaml:"attractUp" toml:"attractUp"`
	AttractOut [4]float32 `yaml:"attractOut" toml:"attractOut"`

	Taper       [4]float32 `yaml:"taper" toml:"taper"`
	RadiusTweak [4]float32 `yaml:"radiusTweak" toml:"radiusTweak"`

	Prune          bool    `yaml:"prune" toml:"prune"`
	PruneWidth     float32 `yaml:"pruneWidth" toml:"pruneWidth"`
	PruneWidthPeak float32 `yaml:"pruneWidthPeak" toml:"pruneWidthPeak"`
	PruneBase      float32 `yaml:"pruneBase" toml:"pruneBase"`
	PruneRatio     float32 `yaml:"pruneRatio" toml:"pruneRatio"`
	PrunePowerLow  float32 `yaml:"prunePowerLow" toml:"prunePowerLow"`
	PrunePowerHigh float32 `yaml:"prunePowerHigh" toml:"prunePowerHigh"`

	Bevel      bool   `yaml:"bevel" toml:"bevel"`
	BevelRes   int    `yaml:"bevelRes" toml:"bevelRes"`
	ResU       int    `yaml:"resU" toml:"resU"`
	HandleType string `yaml:"handleType" toml:"handleType"`
	CloseTip   bool   `yaml:"closeTip" toml:"closeTip"`

	ShowLeaves     bool    `yaml:"showLeaves" toml:"showLeaves"`
	Leaves         int     `yaml:"leaves" toml:"leaves"`
	LeafShape      string  `yaml:"leafShape" toml:"leafShape"`
	LeafDist       string  `yaml:"leafDist" toml:"leafDist"`
	LeafScale      float32 `yaml:"leafScale" toml:"leafScale"`
	LeafScaleX     float32 `yaml:"leafScaleX" toml:"leafScaleX"`
	LeafScaleT     float32 `yaml:"leafScaleT" toml:"leafScaleT"`
	LeafScaleV     float32 `yaml:"leafScaleV" toml:"leafScaleV"`
	LeafDownAngle  float32 `yaml:"leafDownAngle" toml:"leafDownAngle"`
	LeafDownAngleV float32 `yaml:"leafDownAngleV" toml:"leafDownAngleV"`
	LeafRotate     float32 `yaml:"leafRotate" toml:"leafRotate"`
	LeafRotateV    float32 `yaml:"leafRotateV" toml:"leafRotateV"`
	LeafAngle      float32 `yaml:"leafangle" toml:"leafangle"`
	HorzLeaves     bool    `yaml:"horzLeaves" toml:"horzLeaves"`

	MakeMesh  bool   `yaml:"makeMesh" toml:"makeMesh"`
	UseArm    bool   `yaml:"useArm" toml:"useArm"`
	ArmLevels int    `yaml:"armLevels" toml:"armLevels"`
	BoneStep  [4]int `yaml:"boneStep" toml:"boneStep"`
}

func (t *Tree) Validate() error {
	if t.Levels < 1 || t.Levels > 4 {
		return errors.Errorf("Levels must be within [1..4] (found %d)", t.Levels)
	}
	if t.Scale <= 0 {
		return errors.Errorf("Scale must be positive (found %f)", t.Scale)
	}
	for level, res := range t.CurveRes {
		if res < 1 {
			return errors.Errorf("CurveRes[%d] must be at least 1 (found %d)", level, res)
		}
	}
	return nil
}

var registry = make(map[string]*Tree)

// Register adds a named preset. Presets are read-only after
// registration; Get hands out copies.
func Register(name string, t *Tree) error {
	if err := t.Validate(); err != nil {
		return errors.Wrapf(err, "Invalid preset %q", name)
	}
	if _, exists := registry[name]; exists {
		return errors.Errorf("Preset %q already registered", name)
	}
	registry[name] = t
	return nil
}

func Get(name string) *Tree {
	t, ok := registry[name]
	if !ok {
		return nil
	}
	copy := *t
	return &copy
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
