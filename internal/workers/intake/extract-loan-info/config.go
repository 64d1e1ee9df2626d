// internal/workers/intake/extract-loan-info/config.go
package extractloaninfo

import (
	"time"

	"loan-intake-workers/internal/extraction/loaninfo"
)

type Config struct {
	// RequiredFields must all be present in the conversation state before
	// the step is reported complete.
	RequiredFields []string
	Timeout        time.Duration
}

func LoadConfig() *Config {
	return &Config{
		RequiredFields: []string{
			loaninfo.FieldLoanAmount,
			loaninfo.FieldLoanTerm,
			loaninfo.FieldLoanPurpose,
		},
		Timeout: 10 * time.Second,
	}
}
