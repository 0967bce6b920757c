// Package transport contains the chat shells that deliver messages to
// the conversation engine: a console REPL for local use and a Discord
// bot. The engine never depends on either.
package transport

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/autoscience/autoscience/internal/conversation"
	"github.com/autoscience/autoscience/internal/domain"
)

// Console is a line-oriented REPL shell. Attachments are written to a
// directory and announced by path.
type Console struct {
	engine    *conversation.Engine
	sess      *domain.Session
	in        io.Reader
	out       io.Writer
	attachDir string
	botStyle  lipgloss.Style
	dimStyle  lipgloss.Style
}

// NewConsole creates a console shell reading stdin and writing stdout.
// Styling is disabled when stdout is not a terminal.
func NewConsole(engine *conversation.Engine, attachDir string) *Console {
	c := &Console{
		engine:    engine,
		sess:      domain.NewSession(),
		in:        os.Stdin,
		out:       os.Stdout,
		attachDir: attachDir,
	}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		c.botStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
		c.dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	}
	return c
}

// Run processes lines until EOF or context cancellation.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, c.dimStyle.Render("AutoScience console. Try: autoscience, make a survey about remote work"))

	scanner := bufio.NewScanner(c.in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		replies := c.engine.Handle(ctx, c.sess, scanner.Text())
		for _, r := range replies {
			if r.Text != "" {
				fmt.Fprintln(c.out, c.botStyle.Render("autoscience:"), r.Text)
			}
			if r.File != nil {
				path, err := c.saveAttachment(r.File)
				if err != nil {
					fmt.Fprintln(c.out, c.dimStyle.Render("[failed to save attachment: "+err.Error()+"]"))
					continue
				}
				fmt.Fprintln(c.out, c.dimStyle.Render("[attachment saved: "+path+"]"))
			}
		}
	}
	return scanner.Err()
}

func (c *Console) saveAttachment(f *conversation.Attachment) (string, error) {
	if err := os.MkdirAll(c.attachDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(c.attachDir, f.Name)
	if err := os.WriteFile(path, f.Data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
