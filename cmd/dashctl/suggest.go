package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/adapter/backend"
	plannerapp "github.com/Hammad-sajid/SPA-FYP-sub001/internal/app/planner"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/form"
	"github.com/spf13/cobra"
	"io"
	"log/slog"
	"os"
	"time"
)

var errNoSession = errors.New("a session id is required, pass --session or set DASH_SESSION")

func newSuggestCmd() *cobra.Command {
	var (
		baseURL   string
		sessionID string
		task      bool
		duration  int
		date      string
		from, to  string
		priority  string
		urgency   string
		category  string
		timeout   time.Duration
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Ask the remote API for schedule suggestions",
		Long: `Ask the smart prioritization API for free slots and print them ranked.

Examples:
  dashctl suggest --session $SID --duration 60 --priority high --category work
  dashctl suggest --task --duration 45 --priority medium --urgency high`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sessionID == "" {
				sessionID = os.Getenv("DASH_SESSION")
			}
			if sessionID == "" {
				return errNoSession
			}

			logOut := io.Discard
			if verbose {
				logOut = cmd.ErrOrStderr()
			}
			logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelDebug}))

			client := backend.New(
				backend.BaseURL(baseURL),
				backend.Logger(logger),
			)
			planner := plannerapp.New(logger, client, nil, time.Local)

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			ctx = backend.WithSession(ctx, sessionID)

			var (
				res *plannerapp.Suggestions
				err error
			)
			if task {
				q := backend.TaskSuggestionQuery{
					TaskDuration:       duration,
					TaskPriority:       priority,
					TaskUrgency:        urgency,
					PreferredDate:      date,
					PreferredTimeStart: from,
					PreferredTimeEnd:   to,
				}
				if err := form.Struct(q); err != nil {
					return err
				}
				res, err = planner.TaskSuggestions(ctx, q)
			} else {
				q := backend.EventSuggestionQuery{
					EventDuration:      duration,
					PreferredDate:      date,
					PreferredTimeStart: from,
					PreferredTimeEnd:   to,
					Priority:           priority,
					Category:           category,
				}
				if err := form.Struct(q); err != nil {
					return err
				}
				res, err = planner.EventSuggestions(ctx, q)
			}
			if err != nil {
				if detail := backend.Detail(err); detail != "" {
					return fmt.Errorf("suggestions failed: %s", detail)
				}
				return err
			}

			if err := printPresentation(cmd.OutOrStdout(), res.Presentation); err != nil {
				return err
			}
			if wa := res.WorkloadAnalysis; wa != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "\nWorkload: %d tasks, %d high priority, %d overdue\n",
					wa.TotalTasks, wa.HighPriorityTasks, wa.OverdueTasks)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&baseURL, "base-url", backend.DefaultBaseURL, "remote API base URL")
	flags.StringVar(&sessionID, "session", "", "session id (defaults to $DASH_SESSION)")
	flags.BoolVar(&task, "task", false, "suggest slots for a task instead of an event")
	flags.IntVar(&duration, "duration", 60, "duration in minutes")
	flags.StringVar(&date, "date", "", "preferred date (YYYY-MM-DD)")
	flags.StringVar(&from, "from", "", "preferred start of day (HH:MM)")
	flags.StringVar(&to, "to", "", "preferred end of day (HH:MM)")
	flags.StringVar(&priority, "priority", "medium", "low, medium or high")
	flags.StringVar(&urgency, "urgency", "medium", "task urgency: low, medium or high")
	flags.StringVar(&category, "category", "", "event category")
	flags.DurationVar(&timeout, "timeout", 15*time.Second, "request timeout")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log requests to stderr")
	return cmd
}
