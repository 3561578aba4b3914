package diagnostic

import (
	"encoding/json"
	"io"
)

// JSONEncoder writes a slice of Diagnostic as a JSON array, for
// callers that want structured output instead of the text renderer.
type JSONEncoder struct {
	w     io.Writer
	diags []Diagnostic
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(diags []Diagnostic) error {
	e.diags = diags
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	out := make([]jsonDiagnostic, len(e.diags))
	for i, d := range e.diags {
		out[i] = jsonDiagnostic{
			Severity: d.Severity.String(),
			File:     d.Position.File,
			Line:     d.Position.Line,
			Column:   d.Position.Column,
			Message:  d.Message,
			Phase:    string(d.Phase),
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

type jsonDiagnostic struct {
	Severity string `json:"severity"`
	File     string `json:"file,omitempty"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
	Message  string `json:"message"`
	Phase    string `json:"phase,omitempty"`
}
