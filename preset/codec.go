package preset

import (
	"io"
	"io/ioutil"
	"os"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

func LoadYAML(r io.Reader) (*Tree, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to read preset")
	}
	t := new(Tree)
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, errors.Wrapf(err, "Failed to parse yaml preset")
	}
	return t, t.Validate()
}

func LoadTOML(r io.Reader) (*Tree, error) {
	t := new(Tree)
	if err := toml.NewDecoder(r).Decode(t); err != nil {
		return nil, errors.Wrapf(err, "Failed to parse toml preset")
	}
	return t, t.Validate()
}

func SaveYAML(w io.Writer, t *Tree) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return errors.Wrapf(err, "Failed to marshal preset")
	}
	_, err = w.Write(data)
	return err
}

func SaveTOML(w io.Writer, t *Tree) error {
	return errors.Wrapf(toml.NewEncoder(w).Encode(t), "Failed to marshal preset")
}

// LoadFile picks the decoder from the file extension (.yaml/.yml/.toml).
func LoadFile(fileName string) (*Tree, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open preset %q", fileName)
	}
	defer f.Close()

	switch strings.ToLower(path.Ext(fileName)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	case ".toml":
		return LoadTOML(f)
	}
	return nil, errors.Errorf("Unknown preset format %q", fileName)
}
