package store

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed tareas.schema.json
var schemaJSON string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// compiledSchema compiles the embedded store-file schema once.
func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.AssertFormat = true
		if err := compiler.AddResource("tareas.schema.json", strings.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("load embedded schema: %w", err)
			return
		}
		schema, schemaErr = compiler.Compile("tareas.schema.json")
	})
	return schema, schemaErr
}

// ValidationError is a schema violation with the JSON path it occurred at.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidateBytes checks raw store-file contents against the embedded
// schema and returns every violation found. Contents that are not valid
// JSON at all yield a single error.
func ValidateBytes(data []byte) []error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return []error{fmt.Errorf("parse store file: %w", err)}
	}

	sch, err := compiledSchema()
	if err != nil {
		return []error{err}
	}

	if err := sch.Validate(doc); err != nil {
		var errs []error
		appendSchemaErrors(&errs, err)
		return errs
	}
	return nil
}

// ValidateFile reads and validates the store file at path. A missing file
// is valid (it means an empty store). The second result reports read
// failures; the first lists schema violations.
func ValidateFile(path string) ([]error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrPersistence, path, err)
	}
	return ValidateBytes(data), nil
}

func appendSchemaErrors(errs *[]error, err error) {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		*errs = append(*errs, err)
		return
	}
	collectSchemaErrors(errs, ve)
}

// collectSchemaErrors flattens the validation error tree into leaf causes.
func collectSchemaErrors(errs *[]error, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}
	if len(err.Causes) == 0 {
		*errs = append(*errs, &ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(errs, cause)
	}
}

// jsonPointerToPath converts a JSON pointer like "/tareas/0/prioridad"
// into the friendlier "tareas[0].prioridad".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	path := ""
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			path += fmt.Sprintf("[%d]", idx)
			continue
		}
		if path == "" {
			path = part
		} else {
			path += "." + part
		}
	}
	return path
}
