// internal/extraction/loaninfo/extractor.go

// Package loaninfo extracts loan-term fields (amount, term, purpose, type,
// referring agent code) from a free-form Vietnamese chat message. One call is
// one stateless pass; fields whose patterns do not fire are simply absent
// from the returned map.
package loaninfo

import (
	"strconv"
	"strings"

	"loan-intake-workers/internal/extraction/classify"
	"loan-intake-workers/internal/extraction/textnorm"
	"loan-intake-workers/internal/extraction/vnnum"
)

// Field names produced by this extractor.
const (
	FieldLoanAmount     = "loanAmount"
	FieldLoanTerm       = "loanTerm"
	FieldLoanPurpose    = "loanPurpose"
	FieldLoanType       = "loanType"
	FieldSalesAgentCode = "salesAgentCode"
)

// Fields lists every key Extract may return, in declaration order.
func Fields() []string {
	return []string{FieldLoanAmount, FieldLoanTerm, FieldLoanPurpose, FieldLoanType, FieldSalesAgentCode}
}

type Extractor struct{}

func New() *Extractor { return &Extractor{} }

func (e *Extractor) Extract(message string) map[string]interface{} {
	fields := map[string]interface{}{}

	norm := textnorm.Normalize(message)
	if norm == "" {
		return fields
	}

	if amount, ok := vnnum.Resolve(norm, amountTable); ok {
		fields[FieldLoanAmount] = amount
	}
	if term, ok := extractTerm(norm); ok {
		fields[FieldLoanTerm] = term
	}
	if purpose, ok := classify.BestMatch(norm, purposeCatalog); ok {
		fields[FieldLoanPurpose] = purpose
	}
	if loanType, ok := classify.BestMatch(norm, typeCatalog); ok {
		fields[FieldLoanType] = loanType
	}
	// Agent codes keep the original casing for the case-sensitive patterns.
	if code, ok := extractAgentCode(strings.TrimSpace(message)); ok {
		fields[FieldSalesAgentCode] = code
	}

	return fields
}

func extractTerm(norm string) (string, bool) {
	for _, entry := range termAliases {
		if strings.Contains(norm, entry.alias) {
			return entry.label, true
		}
	}

	if m := termYearPattern.FindStringSubmatch(norm); m != nil {
		years, err := strconv.Atoi(m[1])
		if err == nil {
			if label, ok := termYearLabels[years]; ok {
				return label, true
			}
		}
	}
	if m := termMonthPattern.FindStringSubmatch(norm); m != nil {
		months, err := strconv.Atoi(m[1])
		if err == nil {
			if label, ok := termMonthLabels[months]; ok {
				return label, true
			}
		}
	}
	return "", false
}

func extractAgentCode(raw string) (string, bool) {
	for _, p := range agentCodePatterns {
		if m := p.FindStringSubmatch(raw); m != nil {
			return strings.ToUpper(m[1]), true
		}
	}
	return "", false
}
