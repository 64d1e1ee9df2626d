// internal/workers/intake/extract-collateral/config.go
package extractcollateral

import (
	"time"

	"loan-intake-workers/internal/extraction/collateral"
)

type Config struct {
	RequiredFields []string
	Timeout        time.Duration
}

func LoadConfig() *Config {
	return &Config{
		RequiredFields: []string{
			collateral.FieldCollateralType,
			collateral.FieldCollateralValue,
		},
		Timeout: 10 * time.Second,
	}
}
