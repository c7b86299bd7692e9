package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "List the saved jobs",
	Run: func(_ *cobra.Command, _ []string) {
		runSavedList()
	},
}

var savedToggleCmd = &cobra.Command{
	Use:   "toggle <job-id>",
	Short: "Save a job, or remove it when already saved",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		runSavedToggle(args[0])
	},
}

func init() {
	rootCmd.AddCommand(savedCmd)
	savedCmd.AddCommand(savedToggleCmd)
}

func runSavedList() {
	s, err := newSession(true)
	if err != nil {
		fatal(err)
	}

	ids := s.saved.IDs()
	if len(ids) == 0 {
		fmt.Println("no saved jobs")
		return
	}

	for _, id := range ids {
		posting := s.catalog.FindByID(id)
		if posting == nil {
			// The saved set may reference ids from an older catalog.
			continue
		}
		fmt.Printf("%s. %s / %s / %s / %s\n",
			posting.ID, posting.Title, posting.Company, posting.Location, posting.SalaryRange)
	}
}

func runSavedToggle(jobID string) {
	s, err := newSession(true)
	if err != nil {
		fatal(err)
	}

	if s.catalog.FindByID(jobID) == nil {
		s.logger.Fatal("job not found in catalog", zap.String("job_id", jobID))
	}

	nowSaved := s.saved.Toggle(jobID)
	s.logger.Info("toggled saved job",
		zap.String("job_id", jobID),
		zap.Bool("saved", nowSaved),
	)
}
