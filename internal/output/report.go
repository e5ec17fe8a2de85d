package output

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/wealthpath/networth-projector/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for format names no formatter handles
var ErrUnsupportedFormat = errors.New("unsupported format")

// allFormats are written by the "all" pseudo-format
var allFormats = []string{"console", "json", "detailed-csv", "html"}

// GenerateReport writes results in format to dir and returns the files written.
// The pseudo-format "all" writes every report type in allFormats.
func GenerateReport(results *domain.ScenarioComparison, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, name := range allFormats {
			written, err := GenerateReport(results, name, dir)
			if err != nil {
				return files, err
			}
			files = append(files, written...)
		}
		return files, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return nil, fmt.Errorf("%w: %q. Try one of: %s, all (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	filename, err := WriteFormatted(f, results, dir, extensionFor(f.Name()))
	if err != nil {
		return nil, err
	}
	return []string{filename}, nil
}

// SaveConfiguration writes config as YAML to filename
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshal configuration: %w", err)
	}
	return os.WriteFile(filename, b, 0o644)
}
