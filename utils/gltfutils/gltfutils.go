package gltfutils

import (
	"io"

	"github.com/qmuntal/gltf"
)

// GLTFCacher wraps a document under construction and deduplicates
// exported resources by an arbitrary key, so shared textures and
// materials land in the document once.
type GLTFCacher struct {
	Doc   *gltf.Document
	cache map[interface{}]interface{}
}

func NewCacher() *GLTFCacher {
	return &GLTFCacher{
		Doc:   gltf.NewDocument(),
		cache: make(map[interface{}]interface{}),
	}
}

func (gc *GLTFCacher) AddCache(key interface{}, exported interface{}) {
	gc.cache[key] = exported
}

func (gc *GLTFCacher) GetCachedOr(key interface{}, export func() interface{}) interface{} {
	if cached, ok := gc.cache[key]; ok {
		return cached
	}
	exported := export()
	gc.cache[key] = exported
	return exported
}

func ExportBinary(w io.Writer, doc *gltf.Document) error {
	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = true
	return encoder.Encode(doc)
}

func Export(w io.Writer, doc *gltf.Document) error {
	return gltf.NewEncoder(w).Encode(doc)
}
