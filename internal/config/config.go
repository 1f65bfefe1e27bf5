package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	domainErrors "github.com/thomas-vilte/cz-mate/internal/domain/errors"
)

type (
	Config struct {
		Language         string `json:"language"`
		Convention       string `json:"convention"`
		Strictness       string `json:"strictness"`
		UseEmoji         bool   `json:"use_emoji"`
		MaxSubjectLength int    `json:"max_subject_length"`
		PathFile         string `json:"path_file"`

		// Host-project settings the convention consumes as-is.
		TagFormat        string `json:"tag_format,omitempty"`
		ChangelogFile    string `json:"changelog_file,omitempty"`
		VersionScheme    string `json:"version_scheme,omitempty"`
		MajorVersionZero bool   `json:"major_version_zero,omitempty"`

		GitHub GitHubConfig `json:"github_config"`
	}

	GitHubConfig struct {
		Owner string `json:"owner,omitempty"`
		Name  string `json:"name,omitempty"`
		Token string `json:"token,omitempty"`
	}
)

const (
	StrictnessStrict  = "strict"
	StrictnessLenient = "lenient"

	SchemeSemVer = "semver"
	SchemePEP440 = "pep440"

	DefaultConvention = "mate-commits"

	defaultLang             = "en"
	defaultUseEmoji         = true
	defaultMaxSubjectLength = 72
	defaultChangelogFile    = "CHANGELOG.md"
	defaultTagFormat        = "v$version"
)

func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".cz-mate")
		configPath = filepath.Join(configDir, "config.json")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error creating the config directory: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading the config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error decoding the config file: %w", err)
	}
	config.PathFile = configPath
	applyFallbacks(&config)

	if err := ValidateConfig(&config); err != nil {
		return nil, fmt.Errorf("the loaded configuration is not valid: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language:         defaultLang,
		Convention:       DefaultConvention,
		Strictness:       StrictnessStrict,
		UseEmoji:         defaultUseEmoji,
		MaxSubjectLength: defaultMaxSubjectLength,
		PathFile:         path,
		TagFormat:        defaultTagFormat,
		ChangelogFile:    defaultChangelogFile,
		VersionScheme:    SchemeSemVer,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating the config directory: %w", err)
	}

	if err := SaveConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding the configuration: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error saving the configuration: %w", err)
	}

	return nil
}

// applyFallbacks fills fields older config files may not carry yet.
func applyFallbacks(config *Config) {
	if config.Language == "" {
		config.Language = defaultLang
	}
	if config.Convention == "" {
		config.Convention = DefaultConvention
	}
	if config.Strictness == "" {
		config.Strictness = StrictnessStrict
	}
	if config.MaxSubjectLength == 0 {
		config.MaxSubjectLength = defaultMaxSubjectLength
	}
	if config.ChangelogFile == "" {
		config.ChangelogFile = defaultChangelogFile
	}
	if config.TagFormat == "" {
		config.TagFormat = defaultTagFormat
	}
	if config.VersionScheme == "" {
		config.VersionScheme = SchemeSemVer
	}
}

// ValidateConfig rejects values the convention cannot work with.
func ValidateConfig(config *Config) error {
	if config.Strictness != StrictnessStrict && config.Strictness != StrictnessLenient {
		return domainErrors.NewConfigError("strictness",
			fmt.Sprintf("must be '%s' or '%s', got '%s'", StrictnessStrict, StrictnessLenient, config.Strictness), nil)
	}

	if config.MaxSubjectLength < 10 {
		return domainErrors.NewConfigError("max_subject_length",
			fmt.Sprintf("must be at least 10, got %d", config.MaxSubjectLength), nil)
	}

	if config.VersionScheme != SchemeSemVer && config.VersionScheme != SchemePEP440 {
		return domainErrors.NewConfigError("version_scheme",
			fmt.Sprintf("must be '%s' or '%s', got '%s'", SchemeSemVer, SchemePEP440, config.VersionScheme), nil)
	}

	if (config.GitHub.Owner == "") != (config.GitHub.Name == "") {
		return domainErrors.NewConfigError("github_config",
			"owner and name must be set together", nil)
	}

	return nil
}
