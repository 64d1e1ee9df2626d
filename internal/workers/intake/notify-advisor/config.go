// internal/workers/intake/notify-advisor/config.go
package notifyadvisor

import "time"

type Config struct {
	EmailEnabled bool
	SMSEnabled   bool
	FromEmail    string
	AdvisorEmail string
	AdvisorPhone string
	Timeout      time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
	}
}
