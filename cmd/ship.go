package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spigell/jnt-tracker/internal/digest"
	"github.com/spigell/jnt-tracker/internal/proof"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var shipCmd = &cobra.Command{
	Use:   "ship",
	Short: "Show the test checklist, proof links and ship readiness",
	Run: func(_ *cobra.Command, _ []string) {
		runShipOverview()
	},
}

var shipCheckCmd = &cobra.Command{
	Use:   "check <test-id>",
	Short: "Mark one checklist test as passing",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		runShipCheck(args[0], true)
	},
}

var shipUncheckCmd = &cobra.Command{
	Use:   "uncheck <test-id>",
	Short: "Mark one checklist test as not passing",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		runShipCheck(args[0], false)
	},
}

var shipResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the whole checklist",
	Run: func(_ *cobra.Command, _ []string) {
		s, tracker := shipSession()
		tracker.ResetChecklist()
		s.logger.Info("checklist reset")
	},
}

var shipLinkCmd = &cobra.Command{
	Use:   "link <project|github|deployed> <url>",
	Short: "Store one proof link; it must be an http(s) URL to count as valid",
	Args:  cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		runShipLink(args[0], args[1])
	},
}

var shipSubmissionCmd = &cobra.Command{
	Use:   "submission",
	Short: "Print the final submission text",
	Run: func(_ *cobra.Command, _ []string) {
		_, tracker := shipSession()
		fmt.Println(tracker.SubmissionText())
	},
}

func init() {
	rootCmd.AddCommand(shipCmd)
	shipCmd.AddCommand(shipCheckCmd, shipUncheckCmd, shipResetCmd, shipLinkCmd, shipSubmissionCmd)
}

func shipSession() (*session, *proof.Tracker) {
	s, err := newSession(false)
	if err != nil {
		fatal(err)
	}
	return s, proof.New(s.store, s.logger)
}

func runShipOverview() {
	s, tracker := shipSession()

	checklist := tracker.Checklist()
	passed := 0
	for i := 1; i <= proof.ChecklistSize; i++ {
		if checklist[i] {
			passed++
		}
	}
	fmt.Printf("checklist: %d/%d tests passing\n", passed, proof.ChecklistSize)

	links := tracker.Links()
	for _, entry := range []struct {
		key   string
		value string
	}{
		{proof.LinkProject, links.Project},
		{proof.LinkGitHub, links.GitHub},
		{proof.LinkDeployed, links.Deployed},
	} {
		key, value := entry.key, entry.value
		state := "missing"
		if value != "" {
			state = "invalid"
			if proof.ValidateURL(value) {
				state = "ok"
			}
		}
		fmt.Printf("link %-8s %-7s %s\n", key, state, value)
	}

	fmt.Printf("ship status: %s\n", tracker.Status())

	completion := tracker.StepCompletion(proof.StepInputs{
		HasPreferences: s.preferences().HasBasics(),
		DigestStored:   digest.NewCache(s.store, s.logger).StoredForToday() != nil,
		HasAnyStatus:   len(s.ledger.Map()) > 0,
	})
	for step := 1; step <= len(completion); step++ {
		state := "pending"
		if completion[step] {
			state = "completed"
		}
		fmt.Printf("step %d: %s\n", step, state)
	}
}

func runShipCheck(rawID string, checked bool) {
	s, tracker := shipSession()

	id, err := strconv.Atoi(rawID)
	if err != nil || id < 1 || id > proof.ChecklistSize {
		s.logger.Fatal("invalid test id",
			zap.String("test_id", rawID),
			zap.Int("max", proof.ChecklistSize),
		)
	}

	tracker.SetChecklistItem(id, checked)
	s.logger.Info("checklist updated",
		zap.Int("test_id", id),
		zap.Bool("checked", checked),
		zap.Bool("all_passed", tracker.AllTestsPassed()),
	)
}

func runShipLink(key, value string) {
	s, tracker := shipSession()

	if err := tracker.SetLink(key, value); err != nil {
		if errors.Is(err, proof.ErrInvalidURL) {
			// The raw value is stored regardless so the input is not
			// lost; the link just does not count as valid.
			s.logger.Warn("link stored but not valid", zap.Error(err))
			return
		}
		s.logger.Fatal("storing link", zap.Error(err))
	}

	s.logger.Info("link stored",
		zap.String("key", key),
		zap.Bool("all_links_valid", tracker.AllLinksValid()),
	)
}
