package panel

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/ukaji3/uplotconfig-go/pkg/plotconfig"
)

// Format is a panel definition encoding.
type Format string

const (
	FormatHCL  Format = "hcl"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return FormatHCL, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", plotconfig.ErrUnsupportedFormat, filepath.Ext(path))
}

// Load reads and decodes the panel definition at path.
func Load(path string, opts Options) (*Definition, error) {
	logger := opts.logger()

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", plotconfig.ErrFileNotFound, path)
		}
		return nil, err
	}
	logger.Debug("panel file read", "path", path, "format", format, "bytes", len(data))

	def, err := decode(data, format, path)
	if err != nil {
		return nil, err
	}
	def.Source = path

	logger.Debug("panel decoded",
		"path", path,
		"scales", len(def.Scales),
		"axes", len(def.Axes),
		"series", len(def.Series),
	)
	return def, nil
}

// Decode decodes a panel definition held in memory.
func Decode(data []byte, format Format) (*Definition, error) {
	return decode(data, format, "<input>")
}

func decode(data []byte, format Format, source string) (*Definition, error) {
	var (
		def *Definition
		err error
	)

	switch format {
	case FormatHCL:
		def, err = decodeHCL(data, source)
	case FormatTOML:
		def = &Definition{}
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(def)
	case FormatJSON:
		def = &Definition{}
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(def)
	default:
		return nil, fmt.Errorf("%w: %q", plotconfig.ErrUnsupportedFormat, format)
	}

	if err != nil {
		return nil, plotconfig.NewPanelError(source, "panel", fmt.Errorf("%w: %v", plotconfig.ErrInvalidFormat, err))
	}
	return def, nil
}
