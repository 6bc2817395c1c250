package transcript

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/3-14mpa/AITO/internal/domain"
	"github.com/3-14mpa/AITO/internal/ports"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	user      lipgloss.Style
	persona   lipgloss.Style
	moderator lipgloss.Style
	failure   lipgloss.Style
	content   lipgloss.Style
	tools     lipgloss.Style
}

func newStyles() styles {
	return styles{
		user:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		persona:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		moderator: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		failure:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		content:   lipgloss.NewStyle().PaddingLeft(2),
		tools:     lipgloss.NewStyle().Faint(true).PaddingLeft(2),
	}
}

// Publisher prints meeting messages to a terminal as they are recorded.
type Publisher struct {
	mu     sync.Mutex
	out    io.Writer
	styles styles
}

var _ ports.Publisher = (*Publisher)(nil)

func NewPublisher(out io.Writer) *Publisher {
	return &Publisher{out: out, styles: newStyles()}
}

func (p *Publisher) Publish(ctx context.Context, msg domain.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rendered := p.render(msg)

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, err := fmt.Fprintln(p.out, rendered); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}

func (p *Publisher) render(msg domain.Message) string {
	speaker := string(msg.Speaker)
	if speaker == "" {
		speaker = string(msg.Role)
	}

	var badge string
	switch {
	case msg.Role == domain.RoleError || msg.Speaker == domain.ModeratorErrorID:
		badge = p.styles.failure.Render("[" + speaker + "]")
	case msg.Role == domain.RoleModerator || msg.Speaker == domain.ModeratorID:
		badge = p.styles.moderator.Render("[" + speaker + "]")
	case msg.Role == domain.RoleUser:
		badge = p.styles.user.Render("[" + speaker + "]")
	default:
		badge = p.styles.persona.Render("[" + speaker + "]")
	}

	parts := []string{badge, p.styles.content.Render(strings.TrimSpace(msg.Content))}
	if len(msg.ToolCalls) > 0 {
		names := make([]string, 0, len(msg.ToolCalls))
		for _, call := range msg.ToolCalls {
			names = append(names, call.Name)
		}
		parts = append(parts, p.styles.tools.Render("tools: "+strings.Join(names, ", ")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
