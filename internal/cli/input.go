package cli

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thesyncim/axcl"
)

// readInput returns the contents of path, or of stdin when path is empty
// or "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// parseDict decodes a YAML or JSON document into a dict. JSON is detected
// by extension or a leading brace; numbers keep their full precision.
func parseDict(path string, data []byte) (axcl.Dict, error) {
	trimmed := bytes.TrimSpace(data)
	if strings.EqualFold(filepath.Ext(path), ".json") || bytes.HasPrefix(trimmed, []byte("{")) {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.UseNumber()
		var d axcl.Dict
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		return d, nil
	}
	var d axcl.Dict
	if err := yaml.Unmarshal(trimmed, &d); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if d == nil {
		d = axcl.Dict{}
	}
	return d, nil
}

// parseHex decodes hex text, ignoring whitespace.
func parseHex(data []byte) ([]byte, error) {
	clean := strings.Join(strings.Fields(string(data)), "")
	return hex.DecodeString(clean)
}

// marshalOptions builds the marshaling options shared by encode and decode.
func marshalOptions(strict bool, discriminants map[string]int64) []axcl.Option {
	var opts []axcl.Option
	if strict {
		opts = append(opts, axcl.WithStrictKeys())
	}
	for name, v := range discriminants {
		opts = append(opts, axcl.WithDiscriminant(name, v))
	}
	return opts
}
