package dxf

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/mogaika/rigforge/config"
)

// SetCodepage applies a $DWGCODEPAGE header value like "ANSI_1252" to
// the process-wide encoding used for legacy string records.
func SetCodepage(name string) error {
	upper := strings.ToUpper(strings.TrimSpace(name))
	if !strings.HasPrefix(upper, "ANSI_") {
		if config.GetDXFMode() == config.DXF_MODE_STRICT {
			return errors.Errorf("Unsupported codepage %q", name)
		}
		return nil
	}
	return errors.Wrapf(config.SetEncoding(fmt.Sprintf("Windows %s", upper[len("ANSI_"):])),
		"Failed to apply codepage %q", name)
}

// DecodeString decodes a raw legacy-encoded record value.
func DecodeString(raw []byte) (string, error) {
	decoded, err := config.GetEncoding().NewDecoder().Bytes(raw)
	if err != nil {
		return "", errors.Wrapf(err, "Failed to decode record string")
	}
	return string(decoded), nil
}
