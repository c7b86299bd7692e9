package cmd

import (
	"fmt"

	"github.com/spigell/jnt-tracker/internal/ledger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var statusCmd = &cobra.Command{
	Use:   "status [job-id] [new-status]",
	Short: "Show or change the application status of a job",
	Args:  cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runStatus(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().Bool("history", false, "print the recent status updates, newest first")
}

func runStatus(cmd *cobra.Command, args []string) {
	s, err := newSession(true)
	if err != nil {
		fatal(err)
	}

	if cmd.Flag("history").Value.String() == "true" {
		printHistory(s)
		return
	}

	if len(args) == 0 {
		s.logger.Info("exiting", zap.String("reason", "job id is required, or pass --history"))
		return
	}

	jobID := args[0]
	posting := s.catalog.FindByID(jobID)
	if posting == nil {
		s.logger.Fatal("job not found in catalog", zap.String("job_id", jobID))
	}

	if len(args) == 1 {
		fmt.Printf("%s / %s: %s\n", posting.Title, posting.Company, s.ledger.Get(jobID))
		return
	}

	status := ledger.Status(args[1])
	if !status.Valid() {
		s.logger.Fatal("invalid status value",
			zap.String("status", args[1]),
			zap.Any("valid_values", ledger.Values()),
		)
	}

	s.ledger.Set(jobID, status, posting)
	s.logger.Info("status updated",
		zap.String("job_id", jobID),
		zap.String("status", string(status)),
	)
}

func printHistory(s *session) {
	updates := s.ledger.Updates()
	if len(updates) == 0 {
		fmt.Println("no status updates yet")
		return
	}

	for _, update := range updates {
		fmt.Printf("%s  %-11s %s / %s\n",
			update.DateChanged.Format("2006-01-02 15:04"),
			update.Status, update.Title, update.Company,
		)
	}
}
