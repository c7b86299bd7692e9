package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spigell/jnt-tracker/internal/filtering"
	"github.com/spigell/jnt-tracker/internal/job"
	"github.com/spigell/jnt-tracker/internal/ledger"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	PromptShowDetails = "Show job details"
	PromptToggleSave  = "Toggle saved"
	PromptSetStatus   = "Set application status"
	PromptDumpToFile  = "Dump results to file"
	PromptExit        = "Exit"
	PromptBack        = "back"
)

var errExit = errors.New("exit requested")

var listPrompt = promptui.Select{
	Label: "Action?",
	Items: []string{PromptShowDetails, PromptToggleSave, PromptSetStatus, PromptDumpToFile, PromptExit},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Filter, score and sort the job catalog",
	Run: func(cmd *cobra.Command, _ []string) {
		list(cmd)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("keyword", "k", "", "keep jobs whose title or company contains the keyword")
	listCmd.Flags().String("location", "", "keep jobs with this exact location")
	listCmd.Flags().String("mode", "", "keep jobs with this work mode (Remote, Hybrid, Onsite)")
	listCmd.Flags().String("experience", "", "keep jobs with this experience band")
	listCmd.Flags().String("source", "", "keep jobs from this source")
	listCmd.Flags().String("status", "", "keep jobs with this application status")
	listCmd.Flags().BoolP("matches-only", "m", false, "keep only jobs at or above the preferences match threshold")
	listCmd.Flags().StringP("sort", "s", "latest", "sort order: latest, oldest, match-score, salary-high, salary-low")
	listCmd.Flags().Bool("no-prompt", false, "print the results and exit without the action prompt")
}

// list is the main command of the cli.
func list(cmd *cobra.Command) {
	s, err := newSession(true)
	if err != nil {
		fatal(err)
	}

	sortKey, err := filtering.ParseSortKey(cmd.Flag("sort").Value.String())
	if err != nil {
		s.logger.Fatal("parsing sort flag", zap.Error(err))
	}

	prefs := s.preferences()
	if prefs == nil {
		s.logger.Info("no preferences saved yet, all match scores are 0",
			zap.String("hint", "configure a preferences block and run 'jnt-tracker prefs save'"),
		)
	}

	criteria := criteriaFromFlags(cmd)
	deps := filtering.Deps{Ledger: s.ledger, Logger: s.logger}

	results, err := filtering.FilterAndSort(s.catalog, criteria, prefs, deps, sortKey)
	if err != nil {
		s.logger.Fatal("filtering failed", zap.Error(err))
	}

	if results.Len() == 0 {
		s.logger.Info("exiting", zap.String("reason", "no jobs left after filters"))
		return
	}

	fmt.Printf("%d of %d jobs\n", results.Len(), s.catalog.Len())
	printJobs(s, results, prefs != nil)

	if cmd.Flag("no-prompt").Value.String() == "true" {
		return
	}

	for {
		_, action, err := listPrompt.Run()
		if err != nil {
			s.logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleListAction(action, s, results); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			s.logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func criteriaFromFlags(cmd *cobra.Command) *filtering.Criteria {
	return &filtering.Criteria{
		Keyword:     cmd.Flag("keyword").Value.String(),
		Location:    cmd.Flag("location").Value.String(),
		Mode:        cmd.Flag("mode").Value.String(),
		Experience:  cmd.Flag("experience").Value.String(),
		Source:      cmd.Flag("source").Value.String(),
		Status:      cmd.Flag("status").Value.String(),
		MatchesOnly: cmd.Flag("matches-only").Value.String() == "true",
	}
}

func printJobs(s *session, results *job.ScoredJobs, scored bool) {
	for _, posting := range results.Items {
		line := fmt.Sprintf("%s. %s / %s / %s / %s / %s",
			posting.ID, posting.Title, posting.Company,
			posting.Location, posting.Mode, posting.SalaryRange,
		)
		if scored {
			line = fmt.Sprintf("%s / match %d", line, posting.MatchScore)
		}
		if status := s.ledger.Get(posting.ID); status != ledger.StatusNotApplied {
			line = line + " / " + string(status)
		}
		if s.saved.Has(posting.ID) {
			line = line + " / saved"
		}
		fmt.Println(line)
	}
}

func handleListAction(action string, s *session, results *job.ScoredJobs) error {
	switch action {
	case PromptShowDetails:
		posting, err := selectJob(results)
		if err != nil || posting == nil {
			return err
		}
		printJobDetails(s, posting)
		return nil
	case PromptToggleSave:
		posting, err := selectJob(results)
		if err != nil || posting == nil {
			return err
		}
		nowSaved := s.saved.Toggle(posting.ID)
		s.logger.Info("toggled saved job",
			zap.String("job_id", posting.ID),
			zap.Bool("saved", nowSaved),
		)
		return nil
	case PromptSetStatus:
		posting, err := selectJob(results)
		if err != nil || posting == nil {
			return err
		}
		return promptStatus(s, &posting.Job)
	case PromptDumpToFile:
		filename, err := results.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		s.logger.Info("dumping results to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// selectJob asks to pick one job out of the results. A nil job without an
// error means the back item was chosen.
func selectJob(results *job.ScoredJobs) (*job.ScoredJob, error) {
	items := make([]string, 0, results.Len())
	for _, posting := range results.Items {
		items = append(items, fmt.Sprintf("%s %s / %s", posting.ID, posting.Title, posting.Company))
	}

	jobPrompt := promptui.Select{
		Label: "Choose a job and press ENTER",
		Items: append(items, PromptBack),
	}

	_, selected, err := jobPrompt.Run()
	if err != nil {
		return nil, err
	}
	if selected == PromptBack {
		return nil, nil
	}

	jobID := strings.Split(selected, " ")[0]
	posting := results.FindByID(jobID)
	if posting == nil {
		return nil, fmt.Errorf("there is no such job id %s", jobID)
	}
	return posting, nil
}

func promptStatus(s *session, posting *job.Job) error {
	values := ledger.Values()
	items := make([]string, 0, len(values))
	for _, value := range values {
		items = append(items, string(value))
	}

	statusPrompt := promptui.Select{
		Label: "New status for " + posting.Title,
		Items: items,
	}

	_, selected, err := statusPrompt.Run()
	if err != nil {
		return err
	}

	s.ledger.Set(posting.ID, ledger.Status(selected), posting)
	s.logger.Info("status updated",
		zap.String("job_id", posting.ID),
		zap.String("status", selected),
	)
	return nil
}

func printJobDetails(s *session, posting *job.ScoredJob) {
	fmt.Printf("%s / %s\n", posting.Title, posting.Company)
	fmt.Printf("Location:   %s\n", posting.Location)
	fmt.Printf("Mode:       %s\n", posting.Mode)
	fmt.Printf("Experience: %s\n", posting.ExperienceText())
	fmt.Printf("Salary:     %s\n", posting.SalaryRange)
	fmt.Printf("Posted:     %s\n", formatPostedDaysAgo(posting.PostedDaysAgo))
	fmt.Printf("Source:     %s\n", posting.Source)
	fmt.Printf("Status:     %s\n", s.ledger.Get(posting.ID))
	fmt.Printf("Match:      %d\n", posting.MatchScore)
	fmt.Printf("Skills:     %s\n", strings.Join(posting.Skills, ", "))
	fmt.Printf("Apply:      %s\n", posting.ApplyURL)
	if posting.Description != "" {
		fmt.Printf("\n%s\n", posting.Description)
	}
}

func formatPostedDaysAgo(days int) string {
	switch days {
	case 0:
		return "today"
	case 1:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
