package config

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

const prefix = "CLUSTERRESOURCES"

var conf Config

// Parse reads the configuration file given as parameter.
func Parse(confFile string) (*Config, error) {
	setDefault()

	viper.SetEnvPrefix(prefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	if len(confFile) > 0 {
		viper.SetConfigFile(confFile)

		err := viper.ReadInConfig()
		if err != nil {
			return &conf, fmt.Errorf("failed to read config file %v: %w", confFile, err)
		}
	}

	err := viper.Unmarshal(&conf)
	if err != nil {
		return &conf, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	storeSecurity(conf)

	return &conf, nil
}

// KafkaConfig returns kafka configuration.
// Passwords and sensitive information should be hidden with by implementing Stringer.
func KafkaConfig() Kafka {
	return conf.Kafka
}

type securitySnapshot struct {
	headers Security
	tls     TLS
}

var security atomic.Pointer[securitySnapshot]

func storeSecurity(c Config) {
	security.Store(&securitySnapshot{
		headers: c.Security,
		tls:     c.HTTP.TLS,
	})
}

// Watch reloads the security settings each time the configuration file
// changes. onChange is called after every reload with its error, the previous
// settings stay in place when the reload fails.
func Watch(onChange func(fsnotify.Event, error)) {
	v := viper.GetViper()

	v.OnConfigChange(func(e fsnotify.Event) {
		var reloaded Config

		err := v.Unmarshal(&reloaded)
		if err != nil {
			onChange(e, fmt.Errorf("failed to unmarshal config: %w", err))

			return
		}

		storeSecurity(reloaded)
		onChange(e, nil)
	})

	v.WatchConfig()
}

// SecurityHeaders reads the last loaded security settings. Watch keeps them
// in sync with the configuration file.
type SecurityHeaders struct{}

func (SecurityHeaders) current() securitySnapshot {
	snapshot := security.Load()
	if snapshot == nil {
		return securitySnapshot{}
	}

	return *snapshot
}

func (h SecurityHeaders) SSLEnabled() bool {
	return h.current().tls.Enabled()
}

func (h SecurityHeaders) StrictTransportSecurity() string {
	return h.current().headers.StrictTransportSecurity
}

func (h SecurityHeaders) XFrameOptions() string {
	return h.current().headers.XFrameOptions
}

func (h SecurityHeaders) XXSSProtection() string {
	return h.current().headers.XXSSProtection
}

func setDefault() {
	viper.SetDefault("logs.level", 0)
	viper.SetDefault("logs.encoder", EncoderTypeConsole)
	viper.SetDefault("gracefulDuration", "10s")
	viper.SetDefault("defaultTimeout", "8s")
	viper.SetDefault("metrics.port", 7777)
	viper.SetDefault("http.port", 8080)
	viper.SetDefault("http.readTimeout", "10s")
	viper.SetDefault("http.writeTimeout", "30s")
	viper.SetDefault("security.strictTransportSecurity", "max-age=31536000")
	viper.SetDefault("security.xFrameOptions", "DENY")
	viper.SetDefault("security.xXSSProtection", "1; mode=block")
	viper.SetDefault("valkey.url", "localhost:6379")
	viper.SetDefault("valkey.expiration", "24h")
	viper.SetDefault("catalog.path", "catalog.yaml")
	viper.SetDefault("hosts.source", HostSourceValkey)
	viper.SetDefault("providers.failurePolicy", "skip")
	viper.SetDefault("providers.timeout", "5s")
	viper.SetDefault("providers.retry.maxAttempt", 3)
	viper.SetDefault("providers.retry.delay", "200ms")
	viper.SetDefault("kafka.broker.version", "3.6.0")
	viper.SetDefault("kafka.broker.creds.mechanism", "SCRAM-SHA-512")
	viper.SetDefault("kafka.consumer.outageBackoff", "5s")
}
