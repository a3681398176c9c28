package source

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/models"
)

// DocAIJSONLoader reads documents previously processed by Document AI and
// saved in their JSON form.
type DocAIJSONLoader struct{}

// Load reads and decodes the Document AI JSON file at path.
func (DocAIJSONLoader) Load(_ context.Context, path string) (*models.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeDocAIJSON(data)
}

// DecodeDocAIJSON decodes a Document AI document in protobuf JSON form.
// Unknown fields are ignored.
func DecodeDocAIJSON(data []byte) (*models.Document, error) {
	var d documentaipb.Document
	opts := protojson.UnmarshalOptions{DiscardUnknown: true}
	if err := opts.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode Document AI JSON: %w", err)
	}
	return FromDocAI(&d), nil
}
