package domain

// Worksheet is a batch of calculations loaded from a file.
type Worksheet struct {
	Name        string            `yaml:"name" json:"name" toml:"name"`
	Loans       []LoanTerms       `yaml:"loans,omitempty" json:"loans,omitempty" toml:"loans,omitempty"`
	Lumpsums    []LumpsumTerms    `yaml:"lumpsums,omitempty" json:"lumpsums,omitempty" toml:"lumpsums,omitempty"`
	Retirements []RetirementTerms `yaml:"retirements,omitempty" json:"retirements,omitempty" toml:"retirements,omitempty"`
	Taxes       []TaxTerms        `yaml:"taxes,omitempty" json:"taxes,omitempty" toml:"taxes,omitempty"`
	TaxRules    *TaxRules         `yaml:"tax_rules,omitempty" json:"taxRules,omitempty" toml:"tax_rules,omitempty"`
}

// ItemCount returns the number of calculations in the worksheet.
func (w *Worksheet) ItemCount() int {
	return len(w.Loans) + len(w.Lumpsums) + len(w.Retirements) + len(w.Taxes)
}

// WorksheetResult holds the results of every calculation in a worksheet,
// in input order.
type WorksheetResult struct {
	Name        string               `yaml:"name" json:"name"`
	Loans       []AmortizationResult `yaml:"loans,omitempty" json:"loans,omitempty"`
	Lumpsums    []LumpsumResult      `yaml:"lumpsums,omitempty" json:"lumpsums,omitempty"`
	Retirements []RetirementResult   `yaml:"retirements,omitempty" json:"retirements,omitempty"`
	Taxes       []TaxResult          `yaml:"taxes,omitempty" json:"taxes,omitempty"`
}

// IsEmpty reports whether the result holds no calculations.
func (wr *WorksheetResult) IsEmpty() bool {
	return len(wr.Loans) == 0 && len(wr.Lumpsums) == 0 && len(wr.Retirements) == 0 && len(wr.Taxes) == 0
}
