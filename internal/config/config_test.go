package config

import (
	"os"
	"testing"

	"fivecarddraw/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("FCD_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("FCD_PLAYER_COUNT", "2")
	defer clear2()

	config = Config{}
	a := assert.New(t)
	cfg := Instance()
	a.Equal(2, cfg.PlayerCount)
	a.Equal(int64(42), cfg.Seed)
	a.Equal("debug", cfg.Log.Level)
	a.Equal("json", cfg.Log.Format)
	a.True(cfg.Output.Plain)

	// ensure that it's only loaded once
	clear3 := util.SetEnv("FCD_PLAYER_COUNT", "1")
	defer clear3()
	// ensure we aren't using a pointer
	cfg.PlayerCount = 4
	cfg = Instance()
	a.Equal(2, cfg.PlayerCount)
}

func TestDefaults(t *testing.T) {
	clear1 := util.SetEnv("FCD_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, DefaultConfig().PlayerCount, cfg.PlayerCount)
	assert.Equal(t, 4, cfg.PlayerCount)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Output.Plain)
}

func TestLoad_EnvFile(t *testing.T) {
	clear1 := util.SetEnv("FCD_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()
	clear2 := util.SetEnv("FCD_ENV_FILE", "testdata/test.env")
	defer clear2()
	defer os.Unsetenv("FCD_SEED")

	assert.NoError(t, Load())
	assert.Equal(t, int64(7), Instance().Seed)
}

func TestLoad_Errors(t *testing.T) {
	clear1 := util.SetEnv("FCD_CONFIG_FILE", "testdata/bad.yaml")
	assert.Error(t, Load())
	clear1()

	clear2 := util.SetEnv("FCD_CONFIG_FILE", "testdata/missing.yaml")
	defer clear2()
	clear3 := util.SetEnv("FCD_PLAYER_COUNT", "zero")
	assert.Error(t, Load())
	clear3()

	clear4 := util.SetEnv("FCD_PLAYER_COUNT", "0")
	assert.EqualError(t, Load(), "playerCount must be at least 1, got 0")
	clear4()
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.Log.Format = "xml"
	assert.EqualError(t, cfg.Validate(), "unknown log format: xml")
}
