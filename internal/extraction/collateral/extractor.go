// internal/extraction/collateral/extractor.go
package collateral

import (
	"strings"

	"loan-intake-workers/internal/extraction/classify"
	"loan-intake-workers/internal/extraction/textnorm"
	"loan-intake-workers/internal/extraction/vnnum"
)

const (
	FieldCollateralType  = "collateralType"
	FieldCollateralValue = "collateralValue"
	FieldCollateralInfo  = "collateralInfo"
	FieldCollateralImage = "collateralImage"
)

// Fields returns the field names this extractor can produce.
func Fields() []string {
	return []string{
		FieldCollateralType,
		FieldCollateralValue,
		FieldCollateralInfo,
		FieldCollateralImage,
	}
}

// Extractor pulls collateral details out of a single user message.
type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

// Extract returns the collateral fields found in message. Fields that are
// not present in the text are omitted from the result.
func (e *Extractor) Extract(message string) map[string]interface{} {
	fields := make(map[string]interface{})
	norm := textnorm.Normalize(message)
	if norm == "" {
		return fields
	}

	collateralType, hasType := classify.FirstMatch(norm, typeCatalog)
	if hasType {
		fields[FieldCollateralType] = collateralType
	}

	if value, ok := vnnum.Resolve(norm, valueTable); ok {
		fields[FieldCollateralValue] = value
	}

	if info := e.extractInfo(message, norm, collateralType, hasType); info != "" {
		fields[FieldCollateralInfo] = info
	}

	if image, ok := classify.FirstMatch(norm, imageCatalog); ok {
		fields[FieldCollateralImage] = image
	}

	return fields
}

// extractInfo prefers an explicitly labeled description, then a clause
// anchored on the recognized collateral type, then the whole message when
// it is plausibly a description on its own.
func (e *Extractor) extractInfo(raw, norm, collateralType string, hasType bool) string {
	for _, re := range infoPatterns {
		if m := re.FindStringSubmatch(norm); m != nil {
			if info := strings.TrimSpace(m[1]); info != "" {
				return info
			}
		}
	}
	if hasType {
		for _, re := range typeInfoPatterns[collateralType] {
			if m := re.FindStringSubmatch(norm); m != nil {
				if info := strings.TrimSpace(m[1]); info != "" {
					return info
				}
			}
		}
		trimmed := strings.TrimSpace(raw)
		if n := len([]rune(trimmed)); n >= infoFallbackMinLen && n <= infoFallbackMaxLen {
			return trimmed
		}
	}
	return ""
}
