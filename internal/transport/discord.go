package transport

import (
	"bytes"
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/autoscience/autoscience/internal/conversation"
	"github.com/autoscience/autoscience/internal/domain"
)

// Discord runs the engine behind a Discord bot. One global session, as
// the workflow is single-conversation.
type Discord struct {
	dg     *discordgo.Session
	engine *conversation.Engine
	sess   *domain.Session
}

// NewDiscord creates a Discord shell for the given bot token.
func NewDiscord(token string, engine *conversation.Engine) (*Discord, error) {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	d := &Discord{dg: dg, engine: engine, sess: domain.NewSession()}
	dg.AddHandler(d.onMessage)
	return d, nil
}

// Run connects and blocks until the context is cancelled.
func (d *Discord) Run(ctx context.Context) error {
	if err := d.dg.Open(); err != nil {
		return fmt.Errorf("opening discord connection: %w", err)
	}
	defer d.dg.Close()

	<-ctx.Done()
	return nil
}

func (d *Discord) onMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID {
		return
	}

	replies := d.engine.Handle(context.Background(), d.sess, m.Content)
	for _, r := range replies {
		send := &discordgo.MessageSend{Content: r.Text}
		if r.File != nil {
			send.Files = []*discordgo.File{{
				Name:   r.File.Name,
				Reader: bytes.NewReader(r.File.Data),
			}}
		}
		if _, err := s.ChannelMessageSendComplex(m.ChannelID, send); err != nil {
			fmt.Printf("discord send failed: %v\n", err)
		}
	}
}
