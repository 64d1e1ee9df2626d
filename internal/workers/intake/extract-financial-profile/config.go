// internal/workers/intake/extract-financial-profile/config.go
package extractfinancialprofile

import (
	"time"

	"loan-intake-workers/internal/extraction/financial"
)

type Config struct {
	RequiredFields []string
	Timeout        time.Duration
}

func LoadConfig() *Config {
	return &Config{
		RequiredFields: []string{
			financial.FieldMonthlyIncome,
			financial.FieldPrimaryIncomeSource,
		},
		Timeout: 10 * time.Second,
	}
}
