// internal/extraction/personal/extractor.go

// Package personal extracts identity fields (name, phone, birth year,
// gender, marital status, dependents, email) from one chat message.
package personal

import (
	"strconv"
	"strings"
	"time"

	"loan-intake-workers/internal/extraction/classify"
	"loan-intake-workers/internal/extraction/textnorm"
)

// Field names produced by this extractor.
const (
	FieldFullName      = "fullName"
	FieldPhoneNumber   = "phoneNumber"
	FieldBirthYear     = "birthYear"
	FieldGender        = "gender"
	FieldMaritalStatus = "maritalStatus"
	FieldDependents    = "dependents"
	FieldEmail         = "email"
)

// Borrowers must be between 18 and 65 years old at application time.
const (
	minBorrowerAge = 18
	maxBorrowerAge = 65
)

func Fields() []string {
	return []string{
		FieldFullName, FieldPhoneNumber, FieldBirthYear, FieldGender,
		FieldMaritalStatus, FieldDependents, FieldEmail,
	}
}

type Extractor struct {
	now func() time.Time
}

func New() *Extractor { return &Extractor{now: time.Now} }

// NewWithClock fixes the current-year window; used by tests.
func NewWithClock(now func() time.Time) *Extractor { return &Extractor{now: now} }

func (e *Extractor) Extract(message string) map[string]interface{} {
	fields := map[string]interface{}{}

	norm := textnorm.Normalize(message)
	if norm == "" {
		return fields
	}
	raw := strings.TrimSpace(message)

	if name, ok := extractFullName(raw); ok {
		fields[FieldFullName] = name
	}
	if phone, ok := extractPhone(raw); ok {
		fields[FieldPhoneNumber] = phone
	}
	if year, ok := e.extractBirthYear(norm); ok {
		fields[FieldBirthYear] = year
	}
	if gender, ok := classify.FirstMatch(norm, genderCatalog); ok {
		fields[FieldGender] = gender
	}
	if status, ok := classify.FirstMatch(norm, maritalCatalog); ok {
		fields[FieldMaritalStatus] = status
	}
	if dependents, ok := extractDependents(norm); ok {
		fields[FieldDependents] = dependents
	}
	if m := emailPattern.FindStringSubmatch(raw); m != nil {
		fields[FieldEmail] = strings.ToLower(m[1])
	}

	return fields
}

// A capture counts as a name only when it has 2-6 words and at least 5
// characters; anything else is more likely a sentence fragment.
func extractFullName(raw string) (string, bool) {
	for _, p := range namePatterns {
		m := p.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		words := strings.Fields(candidate)
		if len(words) < 2 || len(words) > 6 || len(candidate) < 5 {
			continue
		}
		return textnorm.TitleCase(candidate), true
	}
	return "", false
}

// extractPhone scans digit runs in the message, strips grouping characters
// and normalizes the Vietnamese shapes to a local 10-digit number with a
// leading zero. The first run that matches a known shape wins.
func extractPhone(raw string) (string, bool) {
	for _, candidate := range phoneCandidate.FindAllString(raw, -1) {
		digits := nonPhoneChars.ReplaceAllString(candidate, "")
		for i, p := range phonePatterns {
			m := p.FindStringSubmatch(digits)
			if m == nil {
				continue
			}
			switch i {
			case 0, 2: // +84xxxxxxxxx / bare 9 digits
				return "0" + m[1], true
			default: // already 0xxxxxxxxx
				return m[1], true
			}
		}
	}
	return "", false
}

func (e *Extractor) extractBirthYear(norm string) (int, bool) {
	currentYear := e.now().Year()

	if m := birthYearPattern.FindStringSubmatch(norm); m != nil {
		year, err := strconv.Atoi(m[1])
		if err == nil && year >= currentYear-maxBorrowerAge && year <= currentYear-minBorrowerAge {
			return year, true
		}
	}

	if m := agePattern.FindStringSubmatch(norm); m != nil {
		age, err := strconv.Atoi(m[1])
		if err == nil && age >= minBorrowerAge && age <= maxBorrowerAge {
			return currentYear - age, true
		}
	}

	return 0, false
}

func extractDependents(norm string) (int, bool) {
	for _, phrase := range noDependentsPhrases {
		if strings.Contains(norm, phrase) {
			return 0, true
		}
	}
	for _, p := range dependentsPatterns {
		if m := p.FindStringSubmatch(norm); m != nil {
			count, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			return count, true
		}
	}
	return 0, false
}
