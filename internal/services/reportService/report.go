package reportservice

import (
	"encoding/json"
	"fmt"
	"io"
)

// Report is one cycle's output, serialized as a single minified JSON line.
// Field order here fixes the key order on the wire; the host bar consumes
// exactly this shape. Immutable once built.
type Report struct {
	Text       string   `json:"text"`
	Tooltip    string   `json:"tooltip"`
	Class      Severity `json:"class"`
	Percentage uint8    `json:"percentage"`
}

// Encode writes the report as one JSON line. The trailing newline is part of
// the protocol; the host bar does not render without it.
func (r Report) Encode(w io.Writer) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}
