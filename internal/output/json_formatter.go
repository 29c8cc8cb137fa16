package output

import (
	"encoding/json"

	"github.com/budgetbandhu/bandhu/internal/domain"
)

// JSONFormatter serializes the worksheet results as pretty-printed JSON,
// amounts rounded to two decimals.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.WorksheetResult) ([]byte, error) {
	return json.MarshalIndent(RoundForDisplay(results), "", "  ")
}
