// internal/workers/intake/extract-existing-debt/config.go
package extractexistingdebt

import (
	"time"

	"loan-intake-workers/internal/extraction/debt"
)

type Config struct {
	RequiredFields []string
	Timeout        time.Duration
}

// The debt step only hard-requires the flag itself; when the flag is true
// the handler additionally requires the outstanding total before marking
// the step complete.
func LoadConfig() *Config {
	return &Config{
		RequiredFields: []string{
			debt.FieldHasExistingDebt,
		},
		Timeout: 10 * time.Second,
	}
}
