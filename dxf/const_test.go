package dxf_test

import (
	"testing"

	"github.com/mogaika/rigforge/config"
	"github.com/mogaika/rigforge/dxf"
)

func TestPolylineKind(t *testing.T) {
	cases := []struct {
		flags int
		kind  string
	}{
		{0, "polyline2d"},
		{dxf.POLYLINE_CLOSED, "polyline2d"},
		{dxf.POLYLINE_3D_POLYLINE, "polyline3d"},
		{dxf.POLYLINE_3D_POLYMESH, "polymesh"},
		{dxf.POLYLINE_POLYFACE, "polyface"},
		{dxf.POLYLINE_POLYFACE | dxf.POLYLINE_CLOSED, "polyface"},
	}
	for _, c := range cases {
		if kind := dxf.PolylineKind(c.flags); kind != c.kind {
			t.Errorf("flags %#x: got %q, want %q", c.flags, kind, c.kind)
		}
	}
}

func TestModeFlagTables(t *testing.T) {
	for kind, flags := range dxf.PolylineFlags {
		if got := dxf.PolylineKind(flags); got != kind {
			t.Errorf("kind %q does not round trip through its flags: %q", kind, got)
		}
	}
	if dxf.VertexFlags["polyface"] != dxf.VTX_3D_POLYGON_MESH_VERTEX|dxf.VTX_3D_POLYFACE_MESH_VERTEX {
		t.Errorf("polyface vertex flags %#x", dxf.VertexFlags["polyface"])
	}
}

func TestVersionMaps(t *testing.T) {
	if dxf.AcadRelease["AC1015"] != "R2000" {
		t.Errorf("AC1015 -> %q", dxf.AcadRelease["AC1015"])
	}
	for tag, release := range dxf.AcadRelease {
		if dxf.DXFVersion[release] != tag {
			t.Errorf("release %q does not map back to %q", release, tag)
		}
	}
}

func TestCodepage(t *testing.T) {
	if err := dxf.SetCodepage("ansi_1252"); err != nil {
		t.Fatal(err)
	}
	// 0xE9 is e-acute in windows codepages
	s, err := dxf.DecodeString([]byte{'c', 'a', 'f', 0xE9})
	if err != nil {
		t.Fatal(err)
	}
	if s != "café" {
		t.Errorf("decoded %q", s)
	}

	if err := dxf.SetCodepage("DOS_WHATEVER"); err != nil {
		t.Errorf("permissive mode must ignore unknown codepages: %v", err)
	}
	config.SetDXFMode(config.DXF_MODE_STRICT)
	defer config.SetDXFMode(config.DXF_MODE_PERMISSIVE)
	if err := dxf.SetCodepage("DOS_WHATEVER"); err == nil {
		t.Errorf("strict mode must reject unknown codepages")
	}
}
