package material

// Image references a texture source connected somewhere upstream of a
// socket.
type Image struct {
	Name  string
	URI   string
	UVMap string
}

// Socket is one named input of a material node graph. An unlinked socket
// carries only its default value; a linked one may expose an upstream
// multiply factor and an image source.
type Socket struct {
	Name   string
	Linked bool

	DefaultValue float32
	DefaultColor [4]float32

	FactorValue *float32
	FactorColor *[3]float32

	Image *Image
}

func (s *Socket) HasImageNode() bool {
	return s != nil && s.Linked && s.Image != nil
}

type Material struct {
	Name        string
	DoubleSided bool

	sockets map[string]*Socket
}

func New(name string) *Material {
	return &Material{
		Name:    name,
		sockets: make(map[string]*Socket),
	}
}

func (m *Material) AddSocket(s *Socket) *Material {
	m.sockets[s.Name] = s
	return m
}

// GetSocket returns nil when the material has no such input, which
// exporters treat as "feature absent" rather than an error.
func (m *Material) GetSocket(name string) *Socket {
	return m.sockets[name]
}

// GetFactorFromSocket returns the upstream scalar factor of a linked
// socket, or nil when the link carries no factor node.
func (m *Material) GetFactorFromSocket(name string) *float32 {
	s := m.GetSocket(name)
	if s == nil || !s.Linked {
		return nil
	}
	return s.FactorValue
}

func (m *Material) GetColorFactorFromSocket(name string) *[3]float32 {
	s := m.GetSocket(name)
	if s == nil || !s.Linked {
		return nil
	}
	return s.FactorColor
}
