// internal/extraction/financial/extractor.go

// Package financial extracts the employment and income profile: monthly
// income, income source, employer, job title, work experience, secondary
// income, total assets and primary bank.
package financial

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"loan-intake-workers/internal/extraction/classify"
	"loan-intake-workers/internal/extraction/textnorm"
	"loan-intake-workers/internal/extraction/vnnum"
)

// Field names produced by this extractor.
const (
	FieldMonthlyIncome       = "monthlyIncome"
	FieldPrimaryIncomeSource = "primaryIncomeSource"
	FieldCompanyName         = "companyName"
	FieldJobTitle            = "jobTitle"
	FieldWorkExperience      = "workExperience"
	FieldOtherIncomeAmount   = "otherIncomeAmount"
	FieldTotalAssets         = "totalAssets"
	FieldBankName            = "bankName"
)

func Fields() []string {
	return []string{
		FieldMonthlyIncome, FieldPrimaryIncomeSource, FieldCompanyName,
		FieldJobTitle, FieldWorkExperience, FieldOtherIncomeAmount,
		FieldTotalAssets, FieldBankName,
	}
}

type Extractor struct{}

func New() *Extractor { return &Extractor{} }

func (e *Extractor) Extract(message string) map[string]interface{} {
	fields := map[string]interface{}{}

	norm := textnorm.Normalize(message)
	if norm == "" {
		return fields
	}
	raw := strings.TrimSpace(message)

	if income, ok := vnnum.Resolve(norm, incomeTable); ok {
		fields[FieldMonthlyIncome] = income
	}
	if source, ok := classify.BestMatch(norm, incomeSourceCatalog); ok {
		fields[FieldPrimaryIncomeSource] = source
	}
	if company, ok := captureFirst(raw, companyPatterns); ok {
		fields[FieldCompanyName] = company
	}
	if title, ok := extractJobTitle(raw, norm); ok {
		fields[FieldJobTitle] = title
	}
	if years, ok := extractExperience(norm); ok {
		fields[FieldWorkExperience] = years
	}
	if other, ok := extractOtherIncome(norm); ok {
		fields[FieldOtherIncomeAmount] = other
	}
	if assets, ok := extractTotalAssets(norm); ok {
		fields[FieldTotalAssets] = assets
	}
	if bank, ok := extractBankName(raw, norm); ok {
		fields[FieldBankName] = bank
	}

	return fields
}

// captureFirst returns the first labeled capture longer than 2 characters,
// title-cased.
func captureFirst(raw string, patterns []*regexp.Regexp) (string, bool) {
	for _, p := range patterns {
		m := p.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		if len(candidate) <= 2 {
			continue
		}
		return textnorm.TitleCase(candidate), true
	}
	return "", false
}

func extractJobTitle(raw, norm string) (string, bool) {
	if title, ok := captureFirst(raw, jobTitlePatterns); ok {
		return title, true
	}
	for _, title := range knownJobTitles {
		if strings.Contains(norm, title) {
			return textnorm.TitleCase(title), true
		}
	}
	return "", false
}

// Years of experience; a decimal comma is normalized to a decimal point.
// An explicit no-experience phrase short-circuits to zero.
func extractExperience(norm string) (float64, bool) {
	for _, phrase := range noExperiencePhrases {
		if strings.Contains(norm, phrase) {
			return 0.0, true
		}
	}
	for _, p := range experiencePatterns {
		m := p.FindStringSubmatch(norm)
		if m == nil {
			continue
		}
		years, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
		if err != nil {
			continue
		}
		return years, true
	}
	return 0, false
}

// Secondary income is extracted only from the text following an explicit
// other-income indicator, so the primary salary figure cannot leak in.
func extractOtherIncome(norm string) (int64, bool) {
	loc := otherIncomeIndicator.FindStringIndex(norm)
	if loc == nil {
		return 0, false
	}
	return vnnum.Resolve(norm[loc[1]:], incomeTable)
}

func extractTotalAssets(norm string) (int64, bool) {
	m := totalAssetsPattern.FindStringSubmatch(norm)
	if m == nil {
		return 0, false
	}
	value, err := vnnum.ParseLiteral(m[1])
	if err != nil {
		return 0, false
	}
	multiplier := 1.0
	if unit, ok := assetUnitMultipliers[m[2]]; ok {
		multiplier = unit
	}
	return int64(math.Round(value * multiplier)), true
}

func extractBankName(raw, norm string) (string, bool) {
	for _, bank := range knownBanks {
		if strings.Contains(norm, bank.match) {
			return bank.name, true
		}
	}
	for _, p := range bankCapturePatterns {
		m := p.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		if len(candidate) <= 2 {
			continue
		}
		return textnorm.TitleCase(candidate), true
	}
	return "", false
}
