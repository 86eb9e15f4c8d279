package config_test

import (
	"os"
	"root/config"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestDefaultsWithoutConfigFile(t *testing.T) {
	// Make reusable assert instance
	assert := assert.New(t)

	// Viper state is process-wide; start from a clean slate
	viper.Reset()

	// Run from an empty directory so no config file is picked up
	wd, err := os.Getwd()
	assert.Equal(nil, err)
	defer os.Chdir(wd)

	err = os.Chdir(t.TempDir())
	assert.Equal(nil, err)

	config.InitConfig()

	assert.Equal(":3000", config.GetServerAddress())
	assert.Equal([]string{"*"}, config.GetAllowedOrigins())
}

func TestReadsConfigFile(t *testing.T) {
	// Make reusable assert instance
	assert := assert.New(t)

	// Viper state is process-wide; start from a clean slate
	viper.Reset()

	wd, err := os.Getwd()
	assert.Equal(nil, err)
	defer os.Chdir(wd)

	dir := t.TempDir()
	configData := `{
    "server": {
        "address": ":8080"
    },
    "cors": {
        "allow_origins": ["http://localhost:5173"]
    }
}`
	err = os.WriteFile(dir+"/config.json", []byte(configData), 0644)
	assert.Equal(nil, err)

	err = os.Chdir(dir)
	assert.Equal(nil, err)

	config.InitConfig()

	assert.Equal(":8080", config.GetServerAddress())
	assert.Equal([]string{"http://localhost:5173"}, config.GetAllowedOrigins())
}
