package compare

import (
	"encoding/json"

	"github.com/budgetbandhu/bandhu/internal/output"
)

// JSONFormatter formats comparison results as JSON
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// Format generates JSON output for comparison results
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	rounded := *compSet
	if compSet.BaseResult != nil {
		base := roundResult(*compSet.BaseResult)
		rounded.BaseResult = &base
	}
	rounded.AlternativeResults = make([]ComparisonResult, len(compSet.AlternativeResults))
	for i, alt := range compSet.AlternativeResults {
		rounded.AlternativeResults[i] = roundResult(alt)
	}
	return jf.marshal(&rounded)
}

// FormatRegimes generates JSON output for a regime comparison
func (jf *JSONFormatter) FormatRegimes(rc *RegimeComparison) (string, error) {
	rounded := *rc
	newResult := output.RoundTaxResult(*rc.New)
	oldResult := output.RoundTaxResult(*rc.Old)
	rounded.New = &newResult
	rounded.Old = &oldResult
	rounded.Savings = rc.Savings.Round(2)
	return jf.marshal(&rounded)
}

func (jf *JSONFormatter) marshal(v any) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

func roundResult(r ComparisonResult) ComparisonResult {
	if r.Result != nil {
		rounded := output.RoundTaxResult(*r.Result)
		r.Result = &rounded
	}
	r.TotalTax = r.TotalTax.Round(2)
	r.TakeHome = r.TakeHome.Round(2)
	r.EffectiveRate = r.EffectiveRate.Round(2)
	r.TaxDiffFromBase = r.TaxDiffFromBase.Round(2)
	r.TakeHomeDiffFromBase = r.TakeHomeDiffFromBase.Round(2)
	return r
}
