package cmd

import (
	"fmt"

	"github.com/spigell/jnt-tracker/internal/digest"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Show today's top-10 digest, creating it on the first call of the day",
	Run: func(cmd *cobra.Command, _ []string) {
		runDigest(cmd)
	},
}

func init() {
	rootCmd.AddCommand(digestCmd)

	digestCmd.Flags().BoolP("compact", "c", false, "one line per job, bounded for mail transport")
	digestCmd.Flags().Bool("mailto", false, "print a mail-draft URL instead of the report")
}

func runDigest(cmd *cobra.Command) {
	s, err := newSession(true)
	if err != nil {
		fatal(err)
	}

	prefs := s.preferences()
	if !prefs.HasBasics() {
		s.logger.Info("exiting",
			zap.String("reason", "no preferences to build a digest from"),
			zap.String("hint", "set role keywords or preferred locations and run 'jnt-tracker prefs save'"),
		)
		return
	}

	cache := digest.NewCache(s.store, s.logger)
	d := cache.GetOrCreateToday(s.catalog, prefs)
	if d == nil {
		s.logger.Info("exiting", zap.String("reason", "no jobs matched, digest not created"))
		return
	}

	switch {
	case cmd.Flag("mailto").Value.String() == "true":
		fmt.Println(digest.MailtoURL(d))
	case cmd.Flag("compact").Value.String() == "true":
		fmt.Println(digest.CompactBounded(d))
	default:
		fmt.Println(digest.PlainText(d))
	}
}
