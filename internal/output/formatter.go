package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/budgetbandhu/bandhu/internal/domain"
)

// Formatter renders worksheet results. Implementations must not modify
// the results they are given.
type Formatter interface {
	Format(results *domain.WorksheetResult) ([]byte, error)
	// Name is the canonical format name, e.g. "console".
	Name() string
}

// Options carries the display preferences a formatter may honour.
type Options struct {
	ScheduleRows   int
	CurrencySymbol string
}

// DefaultOptions mirrors the default display preferences.
func DefaultOptions() Options {
	return Options{ScheduleRows: DefaultScheduleRows, CurrencySymbol: RupeeSymbol}
}

// Configurable is implemented by formatters that honour Options.
type Configurable interface {
	WithOptions(opts Options) Formatter
}

// FormatterFunc lets a plain function act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.WorksheetResult) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.WorksheetResult) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                                      { return ff.ID }

type registration struct {
	formatter Formatter
	extension string
}

// registry holds the built-in formatters by canonical name.
var registry = map[string]registration{
	"console": {ConsoleFormatter{}, "txt"},
	"csv":     {CSVFormatter{}, "csv"},
	"html":    {HTMLFormatter{}, "html"},
	"json":    {JSONFormatter{}, "json"},
	"yaml":    {YAMLFormatter{}, "yaml"},
}

// aliases maps alternative spellings to canonical names.
var aliases = map[string]string{
	"text":        "console",
	"table":       "console",
	"html-report": "html",
	"json-pretty": "json",
	"yml":         "yaml",
}

// NormalizeFormatName lower-cases a format name and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[n]; ok {
		return canonical
	}
	return n
}

// GetFormatterByName returns the built-in formatter for name or an alias,
// with default options, or nil.
func GetFormatterByName(name string) Formatter {
	reg, ok := registry[NormalizeFormatName(name)]
	if !ok {
		return nil
	}
	return reg.formatter
}

// NewFormatter looks up a formatter and applies opts when it supports them.
func NewFormatter(name string, opts Options) (Formatter, error) {
	f := GetFormatterByName(name)
	if f == nil {
		return nil, fmt.Errorf("unsupported format %q (available: %s)", name, strings.Join(AvailableFormatterNames(), ", "))
	}
	if c, ok := f.(Configurable); ok {
		return c.WithOptions(opts), nil
	}
	return f, nil
}

// Extension returns the report file extension for a format name. Unknown
// formats use their own name.
func Extension(name string) string {
	n := NormalizeFormatName(name)
	if reg, ok := registry[n]; ok {
		return reg.extension
	}
	return n
}

// WriteFormatted formats results into bandhu_report_<timestamp>.<ext> in
// the current directory and returns the file name.
func WriteFormatted(f Formatter, results *domain.WorksheetResult, ext string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", err
	}
	if ext == "" {
		ext = Extension(f.Name())
	}
	filename := fmt.Sprintf("bandhu_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", err
	}
	return filename, nil
}

// AvailableFormatterNames returns the canonical names, sorted.
func AvailableFormatterNames() []string {
	return sortedKeys(registry)
}

// AvailableFormatAliases returns the accepted aliases, sorted.
func AvailableFormatAliases() []string {
	return sortedKeys(aliases)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
