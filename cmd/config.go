package cmd

// Config carries every runtime setting the service reads from the
// environment.
type Config struct {
	HTTPPort              string
	RedisHost             string
	RedisPort             string
	RedisPassword         string
	RedisDB               int
	CacheTTLSeconds       int
	MetricsRefreshSeconds int
}
