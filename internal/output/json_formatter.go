package output

import (
	"bytes"
	"encoding/json"

	"github.com/wealthpath/networth-projector/internal/domain"
)

// JSONFormatter serializes the scenario comparison as indented JSON. Amounts
// are emitted as exact decimal strings.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(results); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
