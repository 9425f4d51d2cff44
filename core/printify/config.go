package printify

// Config holds configuration for the Printify API client.
type Config struct {
	// Endpoint is the base URL of the Printify API.
	Endpoint string `mapstructure:"endpoint" default:"https://api.printify.com"`
	// Token is the personal access token used for bearer authentication.
	Token string `mapstructure:"token" default:""`
	// ShopID is the identifier of the shop whose products are synced.
	ShopID string `mapstructure:"shop_id" default:""`
	// TimeoutSeconds is the HTTP timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
