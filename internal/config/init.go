package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/agentstation/sherlock/pkg/constants"
	"github.com/agentstation/sherlock/pkg/errors"
)

// FileType is a configuration file format.
type FileType string

const (
	// FileTypeJSON writes .i18n-sherlockrc.json.
	FileTypeJSON FileType = "json"
	// FileTypeYAML writes .i18n-sherlockrc.yaml.
	FileTypeYAML FileType = "yaml"
	// FileTypeTOML writes .i18n-sherlockrc.toml.
	FileTypeTOML FileType = "toml"
)

// FileName returns the name init writes for the type.
func (t FileType) FileName() string {
	return ".i18n-sherlockrc." + string(t)
}

// Marshal renders p in the given format.
func Marshal(p *Project, t FileType) ([]byte, error) {
	switch t {
	case FileTypeJSON, "":
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FileTypeYAML, "yml":
		return yaml.MarshalWithOptions(p, yaml.Indent(2), yaml.IndentSequence(true))
	case FileTypeTOML:
		return toml.Marshal(p)
	default:
		return nil, errors.NewValidationError("type", t, "must be one of json, yaml, toml")
	}
}

// Init writes p into dir using the given format and returns the file path.
// An existing file is never overwritten.
func Init(dir string, p *Project, t FileType) (string, error) {
	if t == "" {
		t = FileTypeJSON
	}
	data, err := Marshal(p, t)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, t.FileName())
	if _, err := os.Stat(path); err == nil {
		return path, errors.NewAlreadyExistsError("configuration file", path)
	}
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return "", errors.WrapIO("write", path, err)
	}
	return path, nil
}
