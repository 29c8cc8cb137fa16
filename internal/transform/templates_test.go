package transform

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTemplateRegistry_RegisterAndGet(t *testing.T) {
	registry := NewTemplateRegistry()

	template := Template{
		Name:        "test_template",
		Description: "A test template",
		Transforms:  []TaxTransform{},
	}

	registry.Register(template)

	retrieved, ok := registry.Get("test_template")
	if !ok {
		t.Fatal("Expected to find template")
	}
	if retrieved.Name != template.Name {
		t.Errorf("Expected name %s, got %s", template.Name, retrieved.Name)
	}

	if _, ok = registry.Get("TEST_TEMPLATE"); !ok {
		t.Fatal("Expected case-insensitive lookup to work")
	}

	if _, ok = registry.Get("nonexistent"); ok {
		t.Error("Expected not to find nonexistent template")
	}
}

func TestCreateBuiltInTemplates(t *testing.T) {
	registry := CreateBuiltInTemplates()

	for _, name := range []string{"max_80c", "max_home_loan", "max_80c_and_home_loan", "raise_10pct", "raise_25pct", "switch_new", "switch_old"} {
		if _, ok := registry.Get(name); !ok {
			t.Errorf("Expected built-in template %s", name)
		}
	}
}

func TestApplyTemplate_Max80CAndHomeLoan(t *testing.T) {
	registry := CreateBuiltInTemplates()
	template, _ := registry.Get("max_80c_and_home_loan")

	result, err := ApplyTemplate(createTestTerms(), template)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !result.Section80CDeductions.Equal(decimal.NewFromInt(150000)) {
		t.Errorf("Expected 80C 150000, got %s", result.Section80CDeductions)
	}
	if !result.HomeLoanInterest.Equal(decimal.NewFromInt(200000)) {
		t.Errorf("Expected home loan 200000, got %s", result.HomeLoanInterest)
	}
	if !result.HRAExemption.Equal(decimal.NewFromInt(120000)) {
		t.Errorf("Expected HRA untouched at 120000, got %s", result.HRAExemption)
	}
}

func TestParseTemplateList(t *testing.T) {
	if got := ParseTemplateList(""); got != nil {
		t.Errorf("Expected nil for empty list, got %v", got)
	}

	got := ParseTemplateList(" max_80c, ,raise_10pct ")
	if len(got) != 2 || got[0] != "max_80c" || got[1] != "raise_10pct" {
		t.Errorf("Unexpected parse result: %v", got)
	}
}

func TestGetTemplateHelp(t *testing.T) {
	help := GetTemplateHelp(CreateBuiltInTemplates())

	for _, want := range []string{"Deductions:", "Income:", "Regime:", "max_80c", "raise_25pct", "Usage:"} {
		if !strings.Contains(help, want) {
			t.Errorf("Expected help to contain %q", want)
		}
	}

	if GetTemplateHelp(NewTemplateRegistry()) != "No templates registered" {
		t.Error("Expected empty registry message")
	}
}
