package receipt

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed receipt.schema.json
var receiptSchemaJSON []byte

// receiptSchema checks JSON types only. Required fields are enforced by
// Receipt.Validate so absent fields surface as a ValidationError.
var receiptSchema = mustCompileSchema("receipt.schema.json", receiptSchemaJSON)

func mustCompileSchema(name string, data []byte) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, bytes.NewReader(data)); err != nil {
		panic(fmt.Sprintf("adding schema %s: %v", name, err))
	}
	schema, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("compiling schema %s: %v", name, err))
	}
	return schema
}

// decodeReceipt validates body against the receipt schema and decodes it
func decodeReceipt(body []byte) (*Receipt, error) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := receiptSchema.Validate(v); err != nil {
		return nil, fmt.Errorf("receipt does not match schema: %w", err)
	}

	var receipt Receipt
	if err := json.Unmarshal(body, &receipt); err != nil {
		return nil, fmt.Errorf("decoding receipt: %w", err)
	}
	return &receipt, nil
}
