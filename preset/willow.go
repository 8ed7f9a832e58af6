package preset

// WeepingWillow is the classic built-in demonstration preset.
func WeepingWillow() *Tree {
	return &Tree{
		Shape:       "4",
		ShapeS:      "4",
		CustomShape: [4]float32{0.5, 1.0, 0.3, 0.5},

		Levels: 3,
		Seed:   2789,
		Ratio:  0.025,

		Scale:   15.0,
		ScaleV:  5.0,
		Scale0:  1.0,
		ScaleV0: 0.0,

		BaseSize:   0.2,
		BaseSizeS:  0.25,
		BaseSplits: 2,
		BranchDist: 1.5,

		RatioPower: 1.75,
		MinRadius:  0.0015,
		RootFlare:  1.0,
		AutoTaper:  true,

		Length:   [4]float32{0.75, 0.5, 1.5, 0.1},
		LengthV:  [4]float32{0.0, 0.1, 0.0, 0.0},
		Branches: [4]int{0, 35, 15, 1},

		CurveRes:  [4]int{8, 16, 8, 1},
		Curve:     [4]float32{0.0, 20.0, -40.0, 0.0},
		CurveV:    [4]float32{150.0, 120.0, 0.0, 0.0},
		CurveBack: [4]float32{0.0, 20.0, 0.0, 0.0},

		SegSplits:   [4]float32{0.1, 0.2, 0.2, 0.0},
		SplitAngle:  [4]float32{12.0, 30.0, 16.0, 0.0},
		SplitAngleV: [4]float32{0.0, 10.0, 20.0, 0.0},
		SplitHeight: 0.2,
		SplitByLen:  true,

		Rotate:     [4]float32{99.5, 137.5, -60.0, 140.0},
		RotateV:    [4]float32{15.0, 15.0, 45.0, 0.0},
		RMode:      "rotate",
		DownAngle:  [4]float32{0.0, 20.0, 30.0, 20.0},
		DownAngleV: [4]float32{0.0, 20.0, 10.0, 10.0},

		UseParentAngle: true,

		AttractUp:  [4]float32{0.0, 0.0, -2.75, -3.0},
		AttractOut: [4]float32{0.0, 0.0, 0.0, 0.0},

		Taper:       [4]float32{1.0, 1.0, 1.0, 1.0},
		RadiusTweak: [4]float32{1.0, 1.0, 1.0, 1.0},

		PruneWidth:     0.5,
		PruneWidthPeak: 0.6,
		PruneBase:      0.07,
		PruneRatio:     0.8,
		PrunePowerLow:  0.001,
		PrunePowerHigh: 0.2,

		Bevel:      true,
		BevelRes:   1,
		ResU:       4,
		HandleType: "1",

		Leaves:         150,
		LeafShape:      "hex",
		LeafDist:       "10",
		LeafScale:      0.25,
		LeafScaleX:     0.2,
		LeafDownAngle:  30.0,
		LeafDownAngleV: 10.0,
		LeafRotate:     137.5,
		LeafRotateV:    30.0,

		ArmLevels: 2,
		BoneStep:  [4]int{1, 1, 1, 1},
	}
}

func init() {
	if err := Register("weeping_willow", WeepingWillow()); err != nil {
		panic(err)
	}
}
