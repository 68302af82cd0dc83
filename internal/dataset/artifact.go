package dataset

import (
	"encoding/json"
	"fmt"
)

// Artifact is a named blob of data i.e. a raw dataset.
type Artifact struct {
	Name string `json:"name"`
	Data []byte `json:"data"`
}

// NewArtifact creates a new artifact.
func NewArtifact(name string, data []byte) Artifact {
	return Artifact{
		Name: name,
		Data: data,
	}
}

// Read returns the raw data of the artifact.
func (a Artifact) Read() []byte {
	return a.Data
}

// Encode encodes the given value for storing it in an artifact.
func (a Artifact) Encode(v interface{}) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("could not encode value for '%s': %w", a.Name, err)
	}
	return b, nil
}

// Decode decodes the given data into the value.
func (a Artifact) Decode(data []byte, v interface{}) error {
	err := json.Unmarshal(data, v)
	if err != nil {
		return fmt.Errorf("could not decode value for '%s': %w", a.Name, err)
	}
	return nil
}
