package cmd

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/skillsync/internal/catalog"
	"github.com/spigell/skillsync/internal/logger"
	"github.com/spigell/skillsync/internal/matching"
)

const (
	app       = "skillsync"
	envPrefix = "SKILLSYNC"

	builtinCatalog = "built-in"
)

type Config struct {
	Catalog    *CatalogConfig    `mapstructure:"catalog"`
	Extraction *ExtractionConfig `mapstructure:"extraction"`
	Server     *ServerConfig     `mapstructure:"server"`
}

type CatalogConfig struct {
	File string `mapstructure:"file"`
}

type ExtractionConfig struct {
	Mode string `mapstructure:"mode"`
}

type ServerConfig struct {
	Listen    string `mapstructure:"listen"`
	BodyLimit int    `mapstructure:"body-limit"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "skillsync finds the skills a job description asks for and the ones you are missing",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return initConfig()
		},
		SilenceUsage: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is skillsync.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("catalog", "", "a skill catalog file (yaml, json or toml) replacing the built-in one")
	rootCmd.PersistentFlags().String("mode", string(matching.ModeSubstring), "extraction mode: substring or word")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("catalog.file", rootCmd.PersistentFlags().Lookup("catalog"))
	viper.BindPFlag("extraction.mode", rootCmd.PersistentFlags().Lookup("mode"))

	viper.SetDefault("server.listen", ":5000")
	viper.SetDefault("server.body-limit", 1<<20)

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.BindEnv("port", "PORT"); err != nil {
		log.Fatalf("binding PORT environment variable: %v", err)
	}
}

// initConfig loads .env and the optional config file. A missing config file
// is fine unless it was asked for explicitly.
func initConfig() error {
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}

	return nil
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Catalog == nil {
		config.Catalog = &CatalogConfig{}
	}
	if config.Extraction == nil {
		config.Extraction = &ExtractionConfig{}
	}
	if config.Server == nil {
		config.Server = &ServerConfig{}
	}

	return config, nil
}

func newLogger() (*zap.Logger, error) {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		return nil, fmt.Errorf("creating a logger: %w", err)
	}
	return l, nil
}

// loadCatalog returns the configured catalog and a description of its source.
func loadCatalog(config *Config) (*catalog.Catalog, string, error) {
	path := strings.TrimSpace(config.Catalog.File)
	if path == "" {
		return catalog.Default(), builtinCatalog, nil
	}

	c, err := catalog.Load(path)
	if err != nil {
		return nil, "", err
	}
	return c, path, nil
}

// newEngine builds the catalog and extractor shared by all commands.
func newEngine(config *Config, l *zap.Logger) (*catalog.Catalog, *matching.Extractor, error) {
	c, source, err := loadCatalog(config)
	if err != nil {
		return nil, nil, fmt.Errorf("loading catalog: %w", err)
	}

	mode, err := matching.ParseMode(config.Extraction.Mode)
	if err != nil {
		return nil, nil, err
	}

	extractor, err := matching.NewExtractor(c, mode)
	if err != nil {
		return nil, nil, fmt.Errorf("building extractor: %w", err)
	}

	logger.WithFields(l, logger.EngineFields(source, mode)...).Debug("engine ready",
		zap.Int("catalog_size", c.Len()),
	)

	return c, extractor, nil
}
