package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed environment.schema.json
var schemaJSON []byte

const schemaURL = "environment.schema.json"

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

func validate(data []byte) error {
	sch, err := loadSchema()
	if err != nil {
		return fmt.Errorf("compile environment schema: %w", err)
	}

	var document any
	if err := json.Unmarshal(data, &document); err != nil {
		return fmt.Errorf("decode environment config: %w", err)
	}

	if err := sch.Validate(document); err != nil {
		return fmt.Errorf("invalid environment config: %w", err)
	}
	return nil
}
