// internal/workers/intake/extract-personal-info/config.go
package extractpersonalinfo

import (
	"time"

	"loan-intake-workers/internal/extraction/personal"
)

type Config struct {
	RequiredFields []string
	Timeout        time.Duration
}

func LoadConfig() *Config {
	return &Config{
		RequiredFields: []string{
			personal.FieldFullName,
			personal.FieldPhoneNumber,
			personal.FieldBirthYear,
		},
		Timeout: 10 * time.Second,
	}
}
