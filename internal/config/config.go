package config

import "github.com/spf13/viper"

// Config holds every environment-sourced setting for the ChatRouterService.
// It is built once at startup and passed down explicitly, so there is no
// hidden global state and tests can inject whatever they need.
type Config struct {
	// LocalThreshold is the character-count cutoff below which a
	// conversation is routed to the local backend.
	LocalThreshold int

	// LocalURL is the endpoint of the local backend. Empty means no local
	// backend is configured and everything goes remote.
	LocalURL string

	// LocalModel is the model identifier sent to the local backend.
	LocalModel string

	// TogetherAPIKey is the bearer credential for the remote backend.
	TogetherAPIKey string

	// RemoteModel is the model identifier sent to the remote backend.
	RemoteModel string

	// Port is the port the HTTP server listens on.
	Port string
}

// Load reads the configuration from the environment, applying defaults.
// Missing credentials are not an error here: the backend that needs them
// reports a ConfigurationError when it is actually asked to send.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("LOCAL_MODEL_THRESHOLD", 2000)
	v.SetDefault("LOCAL_MODEL_NAME", "qwen:7b")
	v.SetDefault("REMOTE_MODEL_NAME", "deepseek-coder-6.7b-instruct")
	v.SetDefault("PORT", "8080")

	// Either variable marks the local backend as configured. LOCAL_MODEL_URL
	// wins when both are set.
	localURL := v.GetString("LOCAL_MODEL_URL")
	if localURL == "" {
		localURL = v.GetString("OLLAMA_URL")
	}

	return &Config{
		LocalThreshold: v.GetInt("LOCAL_MODEL_THRESHOLD"),
		LocalURL:       localURL,
		LocalModel:     v.GetString("LOCAL_MODEL_NAME"),
		TogetherAPIKey: v.GetString("TOGETHER_API_KEY"),
		RemoteModel:    v.GetString("REMOTE_MODEL_NAME"),
		Port:           v.GetString("PORT"),
	}
}

// LocalConfigured reports whether a local backend endpoint is available.
func (c *Config) LocalConfigured() bool {
	return c.LocalURL != ""
}
