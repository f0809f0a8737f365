package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/schedule"
	"github.com/spf13/cobra"
	"io"
	"os"
	"text/tabwriter"
)

func newSlotsCmd() *cobra.Command {
	var (
		file string
		kind string
	)

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Present a ranked slot list",
		Long: `Read slots as returned by the smart prioritization API and print them
the way the dashboard shows them. The input is either a JSON array of
slots or an object with a "suggestions" array.

Examples:
  dashctl slots --file suggestions.json
  curl ... | dashctl slots --kind task`,
		RunE: func(cmd *cobra.Command, args []string) error {
			k := schedule.Kind(kind)
			if k != schedule.KindEvent && k != schedule.KindTask {
				return fmt.Errorf("unknown kind %q, want event or task", kind)
			}

			in := cmd.InOrStdin()
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			slots, err := readSlots(in)
			if err != nil {
				return err
			}
			for i, s := range slots {
				slots[i] = schedule.Complete(s, 0)
			}

			return printPresentation(cmd.OutOrStdout(), schedule.Present(k, slots))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "input file (- for stdin)")
	cmd.Flags().StringVar(&kind, "kind", string(schedule.KindEvent), "event or task")
	return cmd
}

func readSlots(r io.Reader) ([]schedule.Slot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '[' {
		var slots []schedule.Slot
		if err := json.Unmarshal(data, &slots); err != nil {
			return nil, fmt.Errorf("decode slots: %w", err)
		}
		return slots, nil
	}

	var wrapped struct {
		Suggestions []schedule.Slot `json:"suggestions"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("decode slots: %w", err)
	}
	return wrapped.Suggestions, nil
}

func printPresentation(out io.Writer, p schedule.Presentation) error {
	if p.Empty {
		_, err := fmt.Fprintln(out, p.EmptyMessage)
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, c := range p.Cards {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			c.Label,
			c.Slot.StartTime,
			c.Slot.EndTime,
			c.Slot.FinalScore,
			c.Severity,
			c.TimeOfDay,
		)
	}
	return w.Flush()
}
