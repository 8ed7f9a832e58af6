package config

const (
	DXF_MODE_PERMISSIVE = iota
	DXF_MODE_STRICT
)

type DXFMode int

var dxfMode DXFMode

func GetDXFMode() DXFMode {
	return dxfMode
}

func SetDXFMode(m DXFMode) {
	dxfMode = m
}
