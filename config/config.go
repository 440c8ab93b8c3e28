package config

// AppConfig holds the application configuration
type AppConfig struct {
	DBURL         string
	RedisAddress  string
	BearerToken   string
	PortalBaseURL string
}

// GetBearerToken returns the static API bearer token from the config
func (c *AppConfig) GetBearerToken() string {
	return c.BearerToken
}

// GetPortalBaseURL returns the base URL used when building patient portal links
func (c *AppConfig) GetPortalBaseURL() string {
	return c.PortalBaseURL
}
