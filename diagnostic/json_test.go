package diagnostic

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/venylang/venyc/source"
)

func TestJSONEncoderProducesArray(t *testing.T) {
	diags := []Diagnostic{
		{Severity: Error, Position: source.Position{File: "a.veny", Line: 4, Column: 2}, Message: "bad", Phase: PhaseSema},
	}
	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(diags); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var out []jsonDiagnostic
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(out) != 1 || out[0].Message != "bad" || out[0].Line != 4 {
		t.Fatalf("unexpected decoded diagnostics: %+v", out)
	}
}
