package storage

// Config holds configuration for the storage provider.
// Credentials are not part of it: they are read from the environment variables named here.
type Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"s3.amazonaws.com"`
	// AccessKeyEnv names the environment variable holding the access key id.
	AccessKeyEnv string `mapstructure:"access_key_env" default:"AWS_ACCESS_KEY_ID"`
	// SecretKeyEnv names the environment variable holding the secret access key.
	SecretKeyEnv string `mapstructure:"secret_key_env" default:"AWS_SECRET_ACCESS_KEY"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// Bucket is the default bucket for pipeline artifacts.
	Bucket string `mapstructure:"bucket" default:"ml-artifacts"`
	// Region is the location of the bucket. Empty falls back to DefaultRegion.
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds connection setup and the wait for response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

func (c Config) accessKeyEnv() string {
	if c.AccessKeyEnv == "" {
		return DefaultAccessKeyEnv
	}
	return c.AccessKeyEnv
}

func (c Config) secretKeyEnv() string {
	if c.SecretKeyEnv == "" {
		return DefaultSecretKeyEnv
	}
	return c.SecretKeyEnv
}
