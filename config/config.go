package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	setDefaults(viperConfig)
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 600)
	v.SetDefault("window.height", 800)
	v.SetDefault("window.title", "Space Rocks")
	v.SetDefault("data.dir", ".")
	v.SetDefault("data.scorefilename", "high_scores.json")
	v.SetDefault("game.ticks_per_second", 60)
	v.SetDefault("game.score_display_count", 5)
	v.SetDefault("audio.enabled", true)
	v.SetDefault("log.level", "info")
}

func (c *Config) GetWindowWidth() int {
	windowWidth := c.config.GetInt("WINDOW_WIDTH")
	if windowWidth == 0 {
		windowWidth = c.config.GetInt("window.width")
	}

	return windowWidth
}

func (c *Config) GetWindowHeight() int {
	windowHeight := c.config.GetInt("WINDOW_HEIGHT")
	if windowHeight == 0 {
		windowHeight = c.config.GetInt("window.height")
	}

	return windowHeight
}

func (c *Config) GetWindowTitle() string {
	windowTitle := c.config.GetString("WINDOW_TITLE")
	if len(windowTitle) == 0 {
		windowTitle = c.config.GetString("window.title")
	}

	return windowTitle
}

func (c *Config) GetDataDir() string {
	dataDir := c.config.GetString("DATA_DIR")
	if len(dataDir) == 0 {
		dataDir = c.config.GetString("data.dir")
	}

	return dataDir
}

func (c *Config) GetScoreFilename() string {
	scoreFilename := c.config.GetString("SCORE_FILENAME")
	if len(scoreFilename) == 0 {
		scoreFilename = c.config.GetString("data.scorefilename")
	}

	return scoreFilename
}

// GetScorePath joins the data directory and score filename.
func (c *Config) GetScorePath() string {
	return filepath.Join(c.GetDataDir(), c.GetScoreFilename())
}

func (c *Config) GetTicksPerSecond() int {
	ticksPerSecond := c.config.GetInt("TICKS_PER_SECOND")
	if ticksPerSecond == 0 {
		ticksPerSecond = c.config.GetInt("game.ticks_per_second")
	}

	return ticksPerSecond
}

func (c *Config) GetScoreDisplayCount() int {
	displayCount := c.config.GetInt("SCORE_DISPLAY_COUNT")
	if displayCount == 0 {
		displayCount = c.config.GetInt("game.score_display_count")
	}

	return displayCount
}

// GetAudioEnabled is true unless AUDIO_ENABLED or audio.enabled is explicitly false.
func (c *Config) GetAudioEnabled() bool {
	if c.config.IsSet("AUDIO_ENABLED") {
		return c.config.GetBool("AUDIO_ENABLED")
	}

	return c.config.GetBool("audio.enabled")
}

func (c *Config) GetLogLevel() string {
	logLevel := c.config.GetString("LOG_LEVEL")
	if len(logLevel) == 0 {
		logLevel = c.config.GetString("log.level")
	}

	return logLevel
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
