package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/budgetbandhu/bandhu/internal/calculation"
	"github.com/budgetbandhu/bandhu/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for worksheet files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported worksheet format")

// InputParser handles parsing of worksheet files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a worksheet from a YAML, TOML or JSON file. The format
// is chosen by extension.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Worksheet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	ws, err := ip.Parse(data, FormatFromPath(filename))
	if err != nil {
		return nil, err
	}
	if ws.Name == "" {
		ws.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}

	if err := ip.ValidateWorksheet(ws); err != nil {
		return nil, fmt.Errorf("worksheet validation failed: %w", err)
	}

	return ws, nil
}

// FormatFromPath maps a file extension to a worksheet format name.
func FormatFromPath(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	case ".json":
		return "json"
	default:
		return strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	}
}

// Parse decodes a worksheet without validating it. Unknown keys are
// rejected so typos surface instead of silently zeroing a field.
func (ip *InputParser) Parse(data []byte, format string) (*domain.Worksheet, error) {
	var ws domain.Worksheet

	switch format {
	case "yaml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&ws); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case "toml":
		md, err := toml.Decode(string(data), &ws)
		if err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("failed to parse TOML: unknown key %q", undecoded[0].String())
		}
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&ws); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w %q (use .yaml, .yml, .toml or .json)", ErrUnsupportedFormat, format)
	}

	return &ws, nil
}

// ValidateWorksheet validates every calculation in a worksheet and any tax
// rule overrides it carries.
func (ip *InputParser) ValidateWorksheet(ws *domain.Worksheet) error {
	if ws.ItemCount() == 0 {
		return fmt.Errorf("no calculations provided")
	}

	for i, loan := range ws.Loans {
		if err := calculation.ValidateLoanTerms(loan); err != nil {
			return fmt.Errorf("loan %d%s: %w", i+1, label(loan.Label), err)
		}
	}
	for i, lumpsum := range ws.Lumpsums {
		if err := calculation.ValidateLumpsumTerms(lumpsum); err != nil {
			return fmt.Errorf("lumpsum %d%s: %w", i+1, label(lumpsum.Label), err)
		}
	}
	for i, plan := range ws.Retirements {
		if err := calculation.ValidateRetirementTerms(plan); err != nil {
			return fmt.Errorf("retirement %d%s: %w", i+1, label(plan.Label), err)
		}
	}
	for i, tax := range ws.Taxes {
		if err := calculation.ValidateTaxTerms(tax); err != nil {
			return fmt.Errorf("tax %d%s: %w", i+1, label(tax.Label), err)
		}
	}

	if ws.TaxRules != nil {
		if err := ip.ValidateTaxRules(ws.TaxRules); err != nil {
			return fmt.Errorf("tax rules validation failed: %w", err)
		}
	}

	return nil
}

// ValidateTaxRules validates tax rule overrides. Zero values mean "use the
// default" and are accepted.
func (ip *InputParser) ValidateTaxRules(rules *domain.TaxRules) error {
	if err := validateRate("cess rate", rules.CessRate); err != nil {
		return err
	}
	if err := ip.validateRegimeRules(&rules.New); err != nil {
		return fmt.Errorf("new regime: %w", err)
	}
	if err := ip.validateRegimeRules(&rules.Old); err != nil {
		return fmt.Errorf("old regime: %w", err)
	}
	return nil
}

func (ip *InputParser) validateRegimeRules(rules *domain.RegimeRules) error {
	amounts := []struct {
		name  string
		value decimal.Decimal
	}{
		{"standard deduction", rules.StandardDeduction},
		{"rebate threshold", rules.RebateThreshold},
		{"rebate cap", rules.RebateCap},
		{"section 80C cap", rules.Section80CCap},
		{"home loan interest cap", rules.HomeLoanInterestCap},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return fmt.Errorf("%s cannot be negative", a.name)
		}
	}

	return validateSlabs(rules.Slabs)
}

// validateSlabs requires slabs to start at zero, be contiguous and end with
// a single unbounded slab.
func validateSlabs(slabs []domain.TaxSlab) error {
	if len(slabs) == 0 {
		return nil
	}
	if !slabs[0].From.IsZero() {
		return fmt.Errorf("first slab must start at 0, got %s", slabs[0].From)
	}
	for i, s := range slabs {
		if err := validateRate(fmt.Sprintf("slab %d rate", i+1), s.Rate); err != nil {
			return err
		}
		last := i == len(slabs)-1
		if s.To == nil {
			if !last {
				return fmt.Errorf("slab %d is unbounded but is not the last slab", i+1)
			}
			continue
		}
		if last {
			return fmt.Errorf("last slab must be unbounded (omit \"to\")")
		}
		if !s.To.GreaterThan(s.From) {
			return fmt.Errorf("slab %d upper bound %s must exceed lower bound %s", i+1, s.To, s.From)
		}
		if !slabs[i+1].From.Equal(*s.To) {
			return fmt.Errorf("slab %d must start at %s where slab %d ends", i+2, s.To, i+1)
		}
	}
	return nil
}

func validateRate(name string, rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%s must be between 0 and 1, got %s", name, rate)
	}
	return nil
}

func label(l string) string {
	if l == "" {
		return ""
	}
	return " (" + l + ")"
}
