package domain

import (
	"context"
	"strings"

	"github.com/lenstown/backend/internal/model"
	"github.com/lenstown/backend/pkg/api/towns"
	"github.com/lenstown/backend/pkg/errorx"
	"github.com/lenstown/backend/pkg/xcontext"
)

// Command is the display metadata of one slash command. The list is
// registered with the platform and served by /help, separately from the
// dispatch table in the webhook domain.
type Command struct {
	Name        string
	Description string
}

func Commands() []Command {
	return []Command{
		{Name: "help", Description: "Get help with bot commands"},
		{Name: "leaderboard", Description: "See who's been keeping the channel on fire"},
		{Name: "infractions", Description: "Who has been messing up?"},
		{Name: "set_gm", Description: "ADMIN ONLY - Wake the people up with a bubbly message"},
		{Name: "challenge_start", Description: "ADMIN ONLY - Start weekly challenge"},
		{Name: "challenge_end", Description: "ADMIN ONLY - End weekly challenge"},
		{Name: "challenge_current", Description: "Show current challenge(s)"},
		{Name: "challenge_winners", Description: "See list of all challenge winners"},
	}
}

type HelpDomain interface {
	Help(ctx context.Context, cmd *model.SlashCommandEvent) error
}

type helpDomain struct {
	townsEndpoint towns.IEndpoint
}

func NewHelpDomain(townsEndpoint towns.IEndpoint) *helpDomain {
	return &helpDomain{townsEndpoint: townsEndpoint}
}

func (d *helpDomain) Help(ctx context.Context, cmd *model.SlashCommandEvent) error {
	var b strings.Builder
	b.WriteString("**Available Commands:**\n\n")
	for _, c := range Commands() {
		b.WriteString("• `/" + c.Name + "` - " + c.Description + "\n")
	}
	b.WriteString("• Some messages trigger me, so feel free to say hello and see what works.\n")

	if err := d.townsEndpoint.SendMessage(ctx, cmd.ChannelID, b.String()); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot send help message: %v", err)
		return errorx.Unknown
	}

	return nil
}
