package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or save the matching preferences",
	Run: func(_ *cobra.Command, _ []string) {
		runPrefsShow()
	},
}

var prefsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Persist the preferences block of the config file, replacing any saved preferences",
	Run: func(_ *cobra.Command, _ []string) {
		runPrefsSave()
	},
}

func init() {
	rootCmd.AddCommand(prefsCmd)
	prefsCmd.AddCommand(prefsSaveCmd)
}

func runPrefsShow() {
	s, err := newSession(false)
	if err != nil {
		fatal(err)
	}

	prefs := s.preferences()
	if prefs == nil {
		fmt.Println("no preferences saved; match scores are 0 for every job")
		return
	}

	// The stored value is valid JSON already, pretty-print it.
	pretty, _ := json.MarshalIndent(prefs, "", "  ")
	fmt.Println(string(pretty))
	fmt.Printf("effective matches-only threshold: %d\n", prefs.MinScore())
}

func runPrefsSave() {
	s, err := newSession(false)
	if err != nil {
		fatal(err)
	}

	if s.config.Preferences == nil {
		s.logger.Fatal("config has no preferences block",
			zap.String("hint", "add a preferences section to "+app+".yaml"),
		)
	}

	s.savePreferences(s.config.Preferences)
	s.logger.Info("preferences saved",
		zap.String("role_keywords", s.config.Preferences.RoleKeywords),
		zap.Strings("preferred_locations", s.config.Preferences.PreferredLocations),
		zap.Int("min_match_score", s.config.Preferences.MinScore()),
	)
}
