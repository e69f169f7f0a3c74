package schema

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/khaeru/iamc-sdmx-demo/errors"
)

// Load parses a schema document from r. It fails with a malformed-document
// error when the input cannot be decoded into the expected shape: invalid
// YAML, wrong value types, unknown keys, or missing top-level sections.
// Semantic rules are not checked here; see (*Document).Validate.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errors.WrapMalformed(errors.ErrEmptyData, "Loader", "Load", "decode document")
		}
		return nil, errors.WrapMalformed(err, "Loader", "Load", "decode document")
	}

	if missing := missingSections(&doc); len(missing) > 0 {
		err := fmt.Errorf("%w: %s", errors.ErrMissingSection, strings.Join(missing, ", "))
		return nil, errors.WrapMalformed(err, "Loader", "Load", "check document shape")
	}

	return &doc, nil
}

// LoadFile reads and parses the schema document at path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapInternal(err, "Loader", "LoadFile", "open document")
	}
	defer f.Close()

	return Load(f)
}

// missingSections lists required top-level keys absent from the document.
// An empty-but-present mapping or sequence is not missing.
func missingSections(doc *Document) []string {
	var missing []string
	if doc.Concepts == nil {
		missing = append(missing, "concepts")
	}
	if !doc.Dimensions.defined() {
		missing = append(missing, "dimensions")
	}
	if !doc.Attributes.defined() {
		missing = append(missing, "attributes")
	}
	if doc.Variables == nil {
		missing = append(missing, "variables")
	}
	return missing
}

// Marshal serializes the document back to YAML. Reloading the output yields
// an identical in-memory structure.
func (d *Document) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(d)
	if err != nil {
		return nil, errors.WrapInternal(err, "Document", "Marshal", "encode document")
	}
	return out, nil
}
