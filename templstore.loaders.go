package templstore

import (
	"encoding/json"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names attached to deserialization errors
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// LoadFunc deserializes template text in one specific format into a
// TemplateMap. Text-backed stores are parametric over it; exactly one
// format is selected per store instance.
type LoadFunc func(text string) (TemplateMap, error)

// LoadJSON deserializes a TemplateMap from JSON text.
//
//	{"greet": {"hello": "hi ${name}!"}}
func LoadJSON(text string) (TemplateMap, error) {
	var tm TemplateMap
	if err := json.Unmarshal([]byte(text), &tm); err != nil {
		return nil, NewDeserializeError(ErrMsgMalformedJSON, FormatJSON, err)
	}
	return tm, nil
}

// LoadYAML deserializes a TemplateMap from YAML text.
//
//	greet:
//	  hello: "hi ${name}!"
func LoadYAML(text string) (TemplateMap, error) {
	var tm TemplateMap
	if err := yaml.Unmarshal([]byte(text), &tm); err != nil {
		return nil, NewDeserializeError(ErrMsgMalformedYAML, FormatYAML, err)
	}
	return tm, nil
}

// LoadTOML deserializes a TemplateMap from TOML text.
//
//	[greet]
//	hello = "hi ${name}!"
func LoadTOML(text string) (TemplateMap, error) {
	var tm TemplateMap
	if err := toml.Unmarshal([]byte(text), &tm); err != nil {
		return nil, NewDeserializeError(ErrMsgMalformedTOML, FormatTOML, err)
	}
	return tm, nil
}
