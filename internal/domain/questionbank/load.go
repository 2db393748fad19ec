package questionbank

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// Format is the encoding of a bank file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the decoder from the file extension. Anything that is not .json is YAML.
func FormatFromPath(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return FormatJSON
	}
	return FormatYAML
}

type bankFile struct {
	Questions []Question `yaml:"questions" json:"questions"`
}

// Default builds the bank from the embedded Python seed questions.
func Default() (*Bank, error) {
	bank, err := Parse(seedYAML, FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded seed: %w", err)
	}
	return bank, nil
}

// LoadFile reads, parses and validates a bank file.
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	return Parse(data, FormatFromPath(path))
}

// Parse decodes a single bank document. Unknown fields are rejected.
func Parse(data []byte, format Format) (*Bank, error) {
	var (
		file bankFile
		err  error
	)
	switch format {
	case FormatJSON:
		file, err = parseJSON(data)
	case FormatYAML:
		file, err = parseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported bank format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return New(file.Questions)
}

func parseJSON(data []byte) (bankFile, error) {
	var file bankFile
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return bankFile{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return bankFile{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return bankFile{}, fmt.Errorf("parse json: %w", err)
	}
	return file, nil
}

func parseYAML(data []byte) (bankFile, error) {
	var file bankFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return bankFile{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return bankFile{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return bankFile{}, fmt.Errorf("parse yaml: %w", err)
	}
	return file, nil
}
