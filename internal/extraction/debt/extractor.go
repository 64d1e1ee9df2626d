// internal/extraction/debt/extractor.go

// Package debt extracts the existing-debt profile. The hasExistingDebt flag
// gates every other field: when the customer says they have no debt, no
// monetary phrase elsewhere in the message is read as a debt figure.
package debt

import (
	"strings"

	"loan-intake-workers/internal/extraction/classify"
	"loan-intake-workers/internal/extraction/textnorm"
	"loan-intake-workers/internal/extraction/vnnum"
)

// Field names produced by this extractor.
const (
	FieldHasExistingDebt    = "hasExistingDebt"
	FieldTotalDebtAmount    = "totalDebtAmount"
	FieldMonthlyDebtPayment = "monthlyDebtPayment"
	FieldCICGroup           = "cicCreditScoreGroup"
	FieldCreditHistory      = "creditHistory"
	FieldExistingLoans      = "existingLoans"
)

func Fields() []string {
	return []string{
		FieldHasExistingDebt, FieldTotalDebtAmount, FieldMonthlyDebtPayment,
		FieldCICGroup, FieldCreditHistory, FieldExistingLoans,
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

	label, ok := classify.FirstMatch(norm, hasDebtCatalog)
	if !ok {
		return fields
	}
	hasDebt := label == "true"
	fields[FieldHasExistingDebt] = hasDebt
	if !hasDebt {
		return fields
	}

	if total, ok := vnnum.Resolve(norm, totalDebtTable); ok {
		fields[FieldTotalDebtAmount] = total
	}
	if payment, ok := vnnum.Resolve(norm, monthlyPaymentTable); ok {
		fields[FieldMonthlyDebtPayment] = payment
	}
	if group, ok := classify.FirstMatch(norm, cicGroupCatalog); ok {
		fields[FieldCICGroup] = group
	}
	if history, ok := extractCreditHistory(norm); ok {
		fields[FieldCreditHistory] = history
	}
	if loans, ok := extractExistingLoans(norm); ok {
		fields[FieldExistingLoans] = loans
	}

	return fields
}

func extractCreditHistory(norm string) (string, bool) {
	if m := creditHistoryCapture.FindStringSubmatch(norm); m != nil {
		candidate := strings.TrimSpace(m[1])
		if len(candidate) > 2 {
			return candidate, true
		}
	}
	for _, phrase := range goodCreditPhrases {
		if strings.Contains(norm, phrase) {
			return creditGood, true
		}
	}
	for _, phrase := range badCreditPhrases {
		if strings.Contains(norm, phrase) {
			return creditBad, true
		}
	}
	return "", false
}

// extractExistingLoans prefers the labeled enumeration; otherwise it scans
// the fixed loan-type phrases and returns the comma-joined matched labels.
func extractExistingLoans(norm string) (string, bool) {
	if m := existingLoansCapture.FindStringSubmatch(norm); m != nil {
		candidate := strings.TrimSpace(m[1])
		if len(candidate) > 2 {
			return candidate, true
		}
	}

	var labels []string
	seen := map[string]bool{}
	for _, entry := range loanTypePhrases {
		if strings.Contains(norm, entry.phrase) && !seen[entry.label] {
			labels = append(labels, entry.label)
			seen[entry.label] = true
		}
	}
	if len(labels) == 0 {
		return "", false
	}
	return strings.Join(labels, ", "), true
}
