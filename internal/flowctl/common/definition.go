package common

import (
	"encoding/json"
	"fmt"
	"os"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"gopkg.in/yaml.v3"
)

// LoadDefinition reads a peer or mirror definition file into msg.
func LoadDefinition(path string, msg proto.Message) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read definition %s: %w", path, err)
	}
	if err := DecodeDefinition(data, msg); err != nil {
		return fmt.Errorf("invalid definition %s: %w", path, err)
	}
	return nil
}

// DecodeDefinition accepts YAML or JSON using the message's field names,
// e.g. flow_job_name or flowJobName. Enums are given by name.
func DecodeDefinition(data []byte, msg proto.Message) error {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse yaml: %w", err)
	}
	if doc == nil {
		return fmt.Errorf("definition is empty")
	}

	jsonData, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to convert definition to json: %w", err)
	}

	return protojson.Unmarshal(jsonData, msg)
}
