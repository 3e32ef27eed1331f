package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rgehrsitz/firecalc/internal/domain"
)

// Formatter renders a plan result into bytes
type Formatter interface {
	Name() string
	Format(result *domain.PlanResult) ([]byte, error)
}

// FormatterFunc adapts a function into a Formatter
type FormatterFunc struct {
	ID string
	F  func(result *domain.PlanResult) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(result *domain.PlanResult) ([]byte, error) { return f.F(result) }

var formatters = map[string]Formatter{
	"console": ConsoleFormatter{},
	"verbose": ConsoleFormatter{Verbose: true},
	"json":    JSONFormatter{Pretty: true},
	"csv":     CSVFormatter{},
}

var formatAliases = map[string]string{
	"text":            "console",
	"table":           "console",
	"console-verbose": "verbose",
	"detailed":        "verbose",
}

// NormalizeFormatName lowercases a format name and resolves aliases
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := formatAliases[n]; ok {
		return canonical
	}
	return n
}

// GetFormatterByName looks up a formatter by name or alias
func GetFormatterByName(name string) (Formatter, bool) {
	f, ok := formatters[NormalizeFormatName(name)]
	return f, ok
}

// AvailableFormatterNames returns the canonical names, sorted
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for n := range formatters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns a copy of the alias table
func AvailableFormatAliases() map[string]string {
	out := make(map[string]string, len(formatAliases))
	for k, v := range formatAliases {
		out[k] = v
	}
	return out
}

// WriteFormatted formats result and writes it to a timestamped file in the
// working directory, returning the file name.
func WriteFormatted(f Formatter, result *domain.PlanResult, ext string) (string, error) {
	data, err := f.Format(result)
	if err != nil {
		return "", fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	filename := fmt.Sprintf("firecalc_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}
