// Package session keeps the client-side session between CLI invocations:
// the auth token, the signed-in email, and the ids of listings created or
// edited this session. Everything else lives in the backend.
package session

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the backend and the on-disk session directory.
type Config interface {
	BaseURL() string
	BasePath() string
}

// LoadConfig reads .airbnb.yaml (working directory or AIRBNB_CONFIG_PATH)
// with AIRBNB_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("backend", "http://localhost:5005")
	viper.SetDefault("path", "~/.airbnb")
	viper.SetConfigName(".airbnb") // .yaml is implicit
	viper.SetEnvPrefix("AIRBNB")
	viper.AutomaticEnv()

	if override := os.Getenv("AIRBNB_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{backend: viper.GetString("backend"), path: path}, nil
}

type fileConfig struct {
	backend string
	path    string
}

func (f *fileConfig) BaseURL() string {
	return f.backend
}

func (f *fileConfig) BasePath() string {
	return f.path
}
