package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config for the whole process
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	MySQL  MySQLConfig  `mapstructure:"mysql"`
	Log    LogConfig    `mapstructure:"log"`
	Jaeger JaegerConfig `mapstructure:"jaeger"`
	Ledger LedgerConfig `mapstructure:"ledger"`
	PubSub PubSubConfig `mapstructure:"pubsub"`
}

// Load reads config.yml from the working directory, env vars override (MYSQL_HOST, ...)
func Load() Config {
	return loadConfig(".", "config")
}

// LoadTestConfig reads config.test.yml from the project root
func LoadTestConfig(rootDir string) Config {
	return loadConfig(rootDir, "config.test")
}

func loadConfig(dir string, name string) Config {
	vip := viper.New()

	vip.SetConfigName(name)
	vip.SetConfigType("yml")
	vip.AddConfigPath(dir)

	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()

	setDefaults(vip)

	err := vip.ReadInConfig()
	if err != nil {
		panic(err)
	}

	var conf Config
	err = vip.Unmarshal(&conf)
	if err != nil {
		panic(err)
	}
	return conf
}

func setDefaults(vip *viper.Viper) {
	vip.SetDefault("log.level", "info")

	vip.SetDefault("ledger.max_attempts", 3)
	vip.SetDefault("ledger.sweep_interval", "1m")
	vip.SetDefault("ledger.sweep_batch_size", 200)
	vip.SetDefault("ledger.opportunistic_sweep_interval", "30s")
	vip.SetDefault("ledger.sweep_cache_size", 4*1024*1024)
	vip.SetDefault("ledger.relay_interval", "5s")
	vip.SetDefault("ledger.relay_batch_size", 100)
}
