package dxf

// Group 70 flags of POLYLINE / POLYMESH entities.
const (
	POLYLINE_CLOSED                    = 1
	POLYLINE_MESH_CLOSED_M_DIRECTION   = POLYLINE_CLOSED
	POLYLINE_CURVE_FIT_VERTICES_ADDED  = 2
	POLYLINE_SPLINE_FIT_VERTICES_ADDED = 4
	POLYLINE_3D_POLYLINE               = 8
	POLYLINE_3D_POLYMESH               = 16
	POLYLINE_MESH_CLOSED_N_DIRECTION   = 32
	POLYLINE_POLYFACE                  = 64
	POLYLINE_GENERATE_LINETYPE_PATTERN = 128
)

// Group 75 surface smooth type of POLYMESH entities.
const (
	POLYMESH_NO_SMOOTH       = 0
	POLYMESH_QUADRIC_BSPLINE = 5
	POLYMESH_CUBIC_BSPLINE   = 6
	POLYMESH_BEZIER_SURFACE  = 8
)

// Group 70 flags of VERTEX entities.
const (
	VTX_EXTRA_VERTEX_CREATED       = 1
	VTX_CURVE_FIT_TANGENT          = 2
	VTX_SPLINE_VERTEX_CREATED      = 8
	VTX_SPLINE_FRAME_CONTROL_POINT = 16
	VTX_3D_POLYLINE_VERTEX         = 32
	VTX_3D_POLYGON_MESH_VERTEX     = 64
	VTX_3D_POLYFACE_MESH_VERTEX    = 128
)

// Group 70 flags of BLOCK entities.
const (
	BLK_ANONYMOUS               = 1
	BLK_NON_CONSTANT_ATTRIBUTES = 2
	BLK_XREF                    = 4
	BLK_XREF_OVERLAY            = 8
	BLK_EXTERNAL                = 16
	BLK_RESOLVED                = 32
	BLK_REFERENCED              = 64
)

const (
	LWPOLYLINE_CLOSED   = 1
	LWPOLYLINE_PLINEGEN = 128
)

const (
	SPLINE_CLOSED   = 1
	SPLINE_PERIODIC = 2
	SPLINE_RATIONAL = 4
	SPLINE_PLANAR   = 8
	SPLINE_LINEAR   = 16 // planar bit is also set
)

const (
	MTEXT_TOP_LEFT      = 1
	MTEXT_TOP_CENTER    = 2
	MTEXT_TOP_RIGHT     = 3
	MTEXT_MIDDLE_LEFT   = 4
	MTEXT_MIDDLE_CENTER = 5
	MTEXT_MIDDLE_RIGHT  = 6
	MTEXT_BOTTOM_LEFT   = 7
	MTEXT_BOTTOM_CENTER = 8
	MTEXT_BOTTOM_RIGHT  = 9

	MTEXT_LEFT_TO_RIGHT = 1
	MTEXT_TOP_TO_BOTTOM = 2
	MTEXT_BY_STYLE      = 5
)

const (
	BYBLOCK = 0
	BYLAYER = 256
)

// AcadRelease maps a DXF version tag to the AutoCAD release name.
var AcadRelease = map[string]string{
	"AC1009": "R12",
	"AC1012": "R13",
	"AC1014": "R14",
	"AC1015": "R2000",
	"AC1018": "R2004",
	"AC1021": "R2007",
	"AC1024": "R2010",
}

// DXFVersion is the reverse of AcadRelease.
var DXFVersion = func() map[string]string {
	m := make(map[string]string, len(AcadRelease))
	for dxf, acad := range AcadRelease {
		m[acad] = dxf
	}
	return m
}()

// VertexFlags gives the VERTEX mode bits each polyline kind sets.
var VertexFlags = map[string]int{
	"polyline2d": 0,
	"polyline3d": VTX_3D_POLYLINE_VERTEX,
	"polymesh":   VTX_3D_POLYGON_MESH_VERTEX,
	"polyface":   VTX_3D_POLYGON_MESH_VERTEX | VTX_3D_POLYFACE_MESH_VERTEX,
}

// PolylineFlags gives the POLYLINE mode bits each polyline kind sets.
var PolylineFlags = map[string]int{
	"polyline2d": 0,
	"polyline3d": POLYLINE_3D_POLYLINE,
	"polymesh":   POLYLINE_3D_POLYMESH,
	"polyface":   POLYLINE_POLYFACE,
}

func HasFlag(flags, flag int) bool { return flags&flag == flag }

func IsPolylineClosed(flags int) bool { return HasFlag(flags, POLYLINE_CLOSED) }

func IsPolyfaceMesh(flags int) bool { return HasFlag(flags, POLYLINE_POLYFACE) }

func Is3DPolyline(flags int) bool { return HasFlag(flags, POLYLINE_3D_POLYLINE) }

func Is3DPolymesh(flags int) bool { return HasFlag(flags, POLYLINE_3D_POLYMESH) }

// PolylineKind classifies a POLYLINE record by its mode bits, defaulting
// to the 2D kind when none are set.
func PolylineKind(flags int) string {
	switch {
	case HasFlag(flags, POLYLINE_POLYFACE):
		return "polyface"
	case HasFlag(flags, POLYLINE_3D_POLYMESH):
		return "polymesh"
	case HasFlag(flags, POLYLINE_3D_POLYLINE):
		return "polyline3d"
	}
	return "polyline2d"
}
