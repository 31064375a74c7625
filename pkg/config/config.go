/*
Package config manages TOML config for wordlore.

Values are read from, in order of priority, a path given on the command line,
[UserConfigDir]/wordlore/config.toml, and the builtin defaults. A file with a
syntax error still contributes every section that can be recovered.
*/
package config

import (
	"path/filepath"

	"github.com/bastiangx/wordlore/internal/utils"
	"github.com/bastiangx/wordlore/pkg/corpus"
	"github.com/charmbracelet/log"
)

const (
	appName        = "wordlore"
	configFileName = "config.toml"
)

// Config holds the entire config structure
type Config struct {
	Source   SourceConfig   `toml:"source"`
	Analysis AnalysisConfig `toml:"analysis"`
	Server   ServerConfig   `toml:"server"`
	CLI      CliConfig      `toml:"cli"`
}

// SourceConfig locates the book and the common words list, and names the
// markers that delimit the body of the book.
type SourceConfig struct {
	BookPath        string `toml:"book_path"`
	CommonWordsPath string `toml:"common_words_path"`
	StartMarker     string `toml:"start_marker"`
	EndMarker       string `toml:"end_marker"`
	ChapterPrefix   string `toml:"chapter_prefix"`
}

// AnalysisConfig has the parameters of the analytic queries.
type AnalysisConfig struct {
	RankLimit       int    `toml:"rank_limit"`
	CommonWordCount int    `toml:"common_word_count"`
	MaxCommonWords  int    `toml:"max_common_words"`
	SentenceBudget  int    `toml:"sentence_budget"`
	StartWord       string `toml:"start_word"`
	Seed            int    `toml:"seed"`
	MinFrequency    int    `toml:"min_frequency"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxLimit     int  `toml:"max_limit"`
	MinPrefix    int  `toml:"min_prefix"`
	MaxPrefix    int  `toml:"max_prefix"`
	EnableFilter bool `toml:"enable_filter"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit    int  `toml:"default_limit"`
	ShowCorrections bool `toml:"show_corrections"`
}

// Markers converts the source markers for corpus extraction.
func (s SourceConfig) Markers() corpus.Markers {
	return corpus.Markers{
		Start:         s.StartMarker,
		End:           s.EndMarker,
		ChapterPrefix: s.ChapterPrefix,
	}
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	m := corpus.DefaultMarkers()
	return &Config{
		Source: SourceConfig{
			BookPath:        "Pride-and-Prejudice.txt",
			CommonWordsPath: "1-1000.txt",
			StartMarker:     m.Start,
			EndMarker:       m.End,
			ChapterPrefix:   m.ChapterPrefix,
		},
		Analysis: AnalysisConfig{
			RankLimit:       20,
			CommonWordCount: 300,
			MaxCommonWords:  1000,
			SentenceBudget:  20,
			StartWord:       "The",
			Seed:            0,
			MinFrequency:    1,
		},
		Server: ServerConfig{
			MaxLimit:     64,
			MinPrefix:    1,
			MaxPrefix:    60,
			EnableFilter: true,
		},
		CLI: CliConfig{
			DefaultLimit:    10,
			ShowCorrections: true,
		},
	}
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	resolver, err := utils.NewPathResolver(appName)
	if err != nil {
		return "", err
	}
	return resolver.GetConfigPath(configFileName), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/wordlore/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customConfigPath)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}
	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. Keys missing from the file keep their
// defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse keeps every value that decodes with the right type.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "source"); ok {
		extractSourceConfig(section, &config.Source)
	}
	if section, ok := utils.ExtractSection(tempConfig, "analysis"); ok {
		extractAnalysisConfig(section, &config.Analysis)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	return config, nil
}

func extractSourceConfig(data map[string]any, source *SourceConfig) {
	if val, ok := utils.ExtractString(data, "book_path"); ok {
		source.BookPath = val
	}
	if val, ok := utils.ExtractString(data, "common_words_path"); ok {
		source.CommonWordsPath = val
	}
	if val, ok := utils.ExtractString(data, "start_marker"); ok {
		source.StartMarker = val
	}
	if val, ok := utils.ExtractString(data, "end_marker"); ok {
		source.EndMarker = val
	}
	if val, ok := utils.ExtractString(data, "chapter_prefix"); ok {
		source.ChapterPrefix = val
	}
}

func extractAnalysisConfig(data map[string]any, analysis *AnalysisConfig) {
	if val, ok := utils.ExtractInt64(data, "rank_limit"); ok {
		analysis.RankLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "common_word_count"); ok {
		analysis.CommonWordCount = val
	}
	if val, ok := utils.ExtractInt64(data, "max_common_words"); ok {
		analysis.MaxCommonWords = val
	}
	if val, ok := utils.ExtractInt64(data, "sentence_budget"); ok {
		analysis.SentenceBudget = val
	}
	if val, ok := utils.ExtractString(data, "start_word"); ok {
		analysis.StartWord = val
	}
	if val, ok := utils.ExtractInt64(data, "seed"); ok {
		analysis.Seed = val
	}
	if val, ok := utils.ExtractInt64(data, "min_frequency"); ok {
		analysis.MinFrequency = val
	}
}

// extractServerConfig extracts server configuration from a map
func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "min_prefix"); ok {
		server.MinPrefix = val
	}
	if val, ok := utils.ExtractInt64(data, "max_prefix"); ok {
		server.MaxPrefix = val
	}
	if val, ok := utils.ExtractBool(data, "enable_filter"); ok {
		server.EnableFilter = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractBool(data, "show_corrections"); ok {
		cli.ShowCorrections = val
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update changes the server values and saves to file when configPath is set.
func (c *Config) Update(configPath string, maxLimit, minPrefix, maxPrefix *int, enableFilter *bool) error {
	server := &c.Server
	if maxLimit != nil {
		server.MaxLimit = *maxLimit
	}
	if minPrefix != nil {
		server.MinPrefix = *minPrefix
	}
	if maxPrefix != nil {
		server.MaxPrefix = *maxPrefix
	}
	if enableFilter != nil {
		server.EnableFilter = *enableFilter
	}
	if configPath == "" {
		return nil
	}
	return SaveConfig(c, configPath)
}
