package commands

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/traceview/internal/core/session"
	"github.com/hay-kot/traceview/pkg/iojson"
)

type StatsCmd struct {
	flags  *Flags
	reader iojson.FileReader[session.Session]

	// flags
	jsonOutput bool
}

// NewStatsCmd creates a new stats command
func NewStatsCmd(flags *Flags) *StatsCmd {
	return &StatsCmd{flags: flags}
}

// Register adds the stats command to the application
func (cmd *StatsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "stats",
		Usage:     "Summarize a session bundle without opening the viewer",
		UsageText: "traceview stats [-f bundle.json] [--json]",
		Flags: []cli.Flag{
			cmd.reader.Flag(),
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

type statsOutput struct {
	Title        string         `json:"title"`
	Files        int            `json:"files"`
	Ranges       int            `json:"ranges"`
	Messages     int            `json:"messages"`
	Roles        map[string]int `json:"roles"`
	LinesByMsgID map[string]int `json:"lines_by_msg_id"`
	Unattributed int            `json:"unattributed_files"`
}

func (cmd *StatsCmd) run(_ context.Context, c *cli.Command) error {
	s, err := cmd.reader.Read()
	if err != nil {
		return fmt.Errorf("read bundle: %w", err)
	}
	s.Normalize()

	stats := session.Analyze(&s)

	if cmd.jsonOutput {
		return iojson.Write(statsOutput{
			Title:        s.Title,
			Files:        stats.Files,
			Ranges:       stats.Ranges,
			Messages:     stats.Messages,
			Roles:        stats.RoleCounts,
			LinesByMsgID: stats.LinesByMsgID,
			Unattributed: stats.UnattributedF,
		})
	}

	if s.Title != "" {
		fmt.Fprintln(c.Root().Writer, s.Title)
	}
	fmt.Fprintln(c.Root().Writer, session.FormatRoleCounts(stats.RoleCounts))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "files\t%d\n", stats.Files)
	fmt.Fprintf(w, "ranges\t%d\n", stats.Ranges)
	fmt.Fprintf(w, "messages\t%d\n", stats.Messages)
	fmt.Fprintf(w, "unattributed files\t%d\n", stats.UnattributedF)

	// Per-message attributed line counts, largest first.
	type ml struct {
		id    string
		lines int
	}
	byMsg := make([]ml, 0, len(stats.LinesByMsgID))
	for id, lines := range stats.LinesByMsgID {
		byMsg = append(byMsg, ml{id, lines})
	}
	sort.Slice(byMsg, func(i, j int) bool {
		if byMsg[i].lines != byMsg[j].lines {
			return byMsg[i].lines > byMsg[j].lines
		}
		return byMsg[i].id < byMsg[j].id
	})
	for _, m := range byMsg {
		fmt.Fprintf(w, "%s\t%d lines\n", m.id, m.lines)
	}

	return w.Flush()
}
