package parser

import (
	"gopkg.in/yaml.v3"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
)

// configDocument mirrors the YAML schema of the configuration block.
type configDocument struct {
	Title     string              `yaml:"title"`
	Templates []entities.Template `yaml:"templates"`
}

// ParseConfig decodes the configuration block into the presentation title
// and template list. Only syntax is checked here: schema-level rules
// (non-empty template list, unique non-blank ids) belong to the
// validator.
func ParseConfig(header string) (string, []entities.Template, error) {
	var doc configDocument
	if err := yaml.Unmarshal([]byte(header), &doc); err != nil {
		return "", nil, &entities.ConfigParseError{Err: err}
	}
	return doc.Title, doc.Templates, nil
}
