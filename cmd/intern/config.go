package main

import (
	"github.com/spf13/viper"
)

const (
	defaultConfigFileName = "intern.toml"
)

// Config is the tool configuration. Flags override the config file.
type Config struct {
	Strategy  string
	Capacity  int
	MaxTokens uint64
	Split     string
	LogLevel  string
	Dump      bool
	Sorted    bool
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("pool.strategy", "hash")
	v.SetDefault("pool.capacity", 1024)
	v.SetDefault("pool.max_tokens", uint64(1<<32))
	v.SetDefault("input.split", "line")
	v.SetDefault("output.dump", false)
	v.SetDefault("output.sorted", false)
	v.SetDefault("log.level", "info")
	return v
}

// loadConfig reads fileName, or only the defaults when fileName is empty.
func loadConfig(fileName string) (*Config, error) {
	v := newViper()
	if fileName != "" {
		v.SetConfigFile(fileName)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return &Config{
		Strategy:  v.GetString("pool.strategy"),
		Capacity:  v.GetInt("pool.capacity"),
		MaxTokens: v.GetUint64("pool.max_tokens"),
		Split:     v.GetString("input.split"),
		LogLevel:  v.GetString("log.level"),
		Dump:      v.GetBool("output.dump"),
		Sorted:    v.GetBool("output.sorted"),
	}, nil
}
