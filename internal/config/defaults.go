package config

import "time"

// Built-in defaults. The session TTL bounds how long an authenticated
// session survives without a logout route.
const (
	DefaultHTTPAddress = ":3000"
	DefaultSessionTTL  = 12 * time.Hour
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress: DefaultHTTPAddress,
		},
		Session: Session{
			TTL: DefaultSessionTTL,
		},
	}
}
