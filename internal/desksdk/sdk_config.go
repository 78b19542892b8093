package desksdk

const (
	DefaultBaseURL = "https://api.carbondesk.earth"
)

// Config is the configuration for the DeskSDK
type Config struct {
	BaseURL string // BaseURL is required
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrNoServerURL
	}

	return nil
}
