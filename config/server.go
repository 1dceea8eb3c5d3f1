package config

import "fmt"

// ServerConfig ...
type ServerConfig struct {
	GRPC ServerListen `mapstructure:"grpc"`
	HTTP ServerListen `mapstructure:"http"`
}

// ServerListen ...
type ServerListen struct {
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`
}

// String for dialing
func (c ServerListen) String() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ListenString for listening on all interfaces
func (c ServerListen) ListenString() string {
	return fmt.Sprintf(":%d", c.Port)
}

// JaegerConfig ...
type JaegerConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
}

// PubSubConfig for publishing ledger events
type PubSubConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	ProjectID string `mapstructure:"project_id"`
	TopicID   string `mapstructure:"topic_id"`
}
