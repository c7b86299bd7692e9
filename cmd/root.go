package cmd

import (
	"errors"
	"log"

	"github.com/spigell/jnt-tracker/internal/match"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "jnt-tracker"
)

type Config struct {
	CatalogFile string             `mapstructure:"catalog-file"`
	StateDir    string             `mapstructure:"state-dir"`
	Preferences *match.Preferences `mapstructure:"preferences"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "jnt-tracker is a simple cli for scoring, filtering and tracking job postings from a local catalog",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("state-dir", "JNT_STATE_DIR"); err != nil {
		log.Fatalf("binding JNT_STATE_DIR environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is jnt-tracker.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	viper.SetDefault("catalog-file", "jobs.json")
	viper.SetDefault("state-dir", ".jnt-tracker")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// A missing config file is fine: defaults cover everything except
	// preferences. Any other parse error is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
