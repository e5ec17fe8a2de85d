package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wealthpath/networth-projector/internal/calculation"
	"github.com/wealthpath/networth-projector/internal/domain"
)

// Formatter renders a scenario comparison. Format must not write anywhere;
// callers decide where the bytes go.
type Formatter interface {
	Format(results *domain.ScenarioComparison) ([]byte, error)
	Name() string
}

// registration binds a formatter to the extension of the files it produces
type registration struct {
	formatter Formatter
	ext       string
}

var registry = map[string]registration{}

func register(f Formatter, ext string) {
	registry[f.Name()] = registration{formatter: f, ext: ext}
}

func init() {
	register(ConsoleVerboseFormatter{}, "txt")
	register(ConsoleFormatter{}, "txt")
	register(CSVSummarizer{}, "csv")
	register(CSVDetailedExporter{}, "csv")
	register(HTMLFormatter{}, "html")
	register(JSONFormatter{}, "json")
}

// formatAliases maps alternative spellings onto registered names
var formatAliases = map[string]string{
	"console-verbose": "console",
	"verbose":         "console",
	"table":           "console",
	"summary":         "console-lite",
	"csv-detailed":    "detailed-csv",
	"csv-summary":     "csv",
	"html-report":     "html",
	"json-pretty":     "json",
}

// NormalizeFormatName trims, lowercases and resolves aliases
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := formatAliases[n]; ok {
		return canonical
	}
	return n
}

// GetFormatterByName returns the formatter registered under name or one of
// its aliases, or nil.
func GetFormatterByName(name string) Formatter {
	reg, ok := registry[NormalizeFormatName(name)]
	if !ok {
		return nil
	}
	return reg.formatter
}

// AvailableFormatterNames lists registered names, sorted
func AvailableFormatterNames() []string {
	return sortedKeys(registry)
}

// AvailableFormatAliases lists accepted aliases, sorted
func AvailableFormatAliases() []string {
	return sortedKeys(formatAliases)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func extensionFor(name string) string {
	if reg, ok := registry[name]; ok {
		return reg.ext
	}
	return "out"
}

// WriteFormatted formats results with f and stores them in dir as
// networth_report_<timestamp>_<name>.<ext>. An empty dir means the working
// directory.
func WriteFormatted(f Formatter, results *domain.ScenarioComparison, dir, ext string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", fmt.Errorf("format %s: %w", f.Name(), err)
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}
	stamp := calculation.Now().Format("20060102_150405")
	filename := filepath.Join(dir, "networth_report_"+stamp+"_"+f.Name()+"."+ext)
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return filename, nil
}
