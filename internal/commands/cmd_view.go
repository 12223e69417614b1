package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/traceview/internal/core/session"
	"github.com/hay-kot/traceview/internal/tui"
	"github.com/hay-kot/traceview/pkg/iojson"
)

type ViewCmd struct {
	flags  *Flags
	reader iojson.FileReader[session.Session]
}

// NewViewCmd creates a new view command.
func NewViewCmd(flags *Flags) *ViewCmd {
	return &ViewCmd{flags: flags}
}

// Flags returns the view-specific flags for registration on the root command.
func (cmd *ViewCmd) Flags() []cli.Flag {
	return []cli.Flag{
		cmd.reader.Flag(),
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *ViewCmd) Run(ctx context.Context, c *cli.Command) error {
	s, err := cmd.reader.Read()
	if err != nil {
		return fmt.Errorf("read bundle: %w", err)
	}
	s.Normalize()

	m := tui.New(tui.Options{
		Session: &s,
		Config:  *cmd.flags.Config,
	})

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
