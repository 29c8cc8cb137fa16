package output

import (
	"github.com/budgetbandhu/bandhu/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the worksheet results as YAML, amounts rounded
// to two decimals.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(results *domain.WorksheetResult) ([]byte, error) {
	return yaml.Marshal(RoundForDisplay(results))
}
