package main

import (
	"context"

	"github.com/lenstown/backend/internal/domain"
	"github.com/lenstown/backend/internal/entity"
	"github.com/lenstown/backend/internal/repository"
	"github.com/lenstown/backend/pkg/api/towns"
	"github.com/lenstown/backend/pkg/blockchain/eth"
	"github.com/lenstown/backend/pkg/profanity"
	"github.com/lenstown/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App
	ctx context.Context

	userStatRepo        repository.UserStatRepository
	infractionRepo      repository.InfractionRepository
	botChannelRepo      repository.BotChannelRepository
	challengeRepo       repository.ChallengeRepository
	challengeEntryRepo  repository.ChallengeEntryRepository
	challengeWinnerRepo repository.ChallengeWinnerRepository
	tokenPayoutRepo     repository.TokenPayoutRepository

	townsEndpoint towns.IEndpoint
	ethClient     eth.EthClient

	statisticDomain    domain.StatisticDomain
	moderationDomain   domain.ModerationDomain
	challengeDomain    domain.ChallengeDomain
	greetingDomain     domain.GreetingDomain
	tipDomain          domain.TipDomain
	conversationDomain domain.ConversationDomain
	helpDomain         domain.HelpDomain
	webhookDomain      domain.WebhookDomain
}

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "Lens Town bot"
	app.Usage = ""
	app.Commands = []*cli.Command{
		{
			Action:      server.startBot,
			Name:        "bot",
			Usage:       "Start the bot",
			Description: `Serves the platform webhook and runs the scheduled jobs.`,
		},
		{
			Action:      server.startMigrate,
			Name:        "migrate",
			Usage:       "Create or update the database schema",
			Description: `Creates missing tables and columns, then exits.`,
		},
	}

	s.app = app
}

func (s *srv) newDatabase() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(xcontext.Configs(s.ctx).Database.Path), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	return db
}

func (s *srv) migrateDB() {
	if err := entity.MigrateTable(s.ctx); err != nil {
		panic(err)
	}
}

func (s *srv) loadEndpoint() {
	s.townsEndpoint = towns.New(xcontext.Configs(s.ctx).Bot)
}

func (s *srv) loadEthClient() {
	s.ethClient = eth.NewEthClient(xcontext.Configs(s.ctx).Chain)
}

func (s *srv) loadRepos() {
	s.userStatRepo = repository.NewUserStatRepository()
	s.infractionRepo = repository.NewInfractionRepository()
	s.botChannelRepo = repository.NewBotChannelRepository()
	s.challengeRepo = repository.NewChallengeRepository()
	s.challengeEntryRepo = repository.NewChallengeEntryRepository()
	s.challengeWinnerRepo = repository.NewChallengeWinnerRepository()
	s.tokenPayoutRepo = repository.NewTokenPayoutRepository()
}

func (s *srv) loadDomains() {
	filter := profanity.NewFilter(xcontext.Configs(s.ctx).Moderation.ExtraWords...)

	s.statisticDomain = domain.NewStatisticDomain(s.userStatRepo, s.townsEndpoint)
	s.moderationDomain = domain.NewModerationDomain(s.infractionRepo, s.townsEndpoint, filter)
	s.challengeDomain = domain.NewChallengeDomain(
		s.challengeRepo, s.challengeEntryRepo, s.challengeWinnerRepo,
		s.tokenPayoutRepo, s.townsEndpoint, s.ethClient)
	s.greetingDomain = domain.NewGreetingDomain(s.botChannelRepo, s.townsEndpoint)
	s.tipDomain = domain.NewTipDomain(s.tokenPayoutRepo, s.townsEndpoint, s.ethClient)
	s.conversationDomain = domain.NewConversationDomain(s.townsEndpoint)
	s.helpDomain = domain.NewHelpDomain(s.townsEndpoint)
	s.webhookDomain = domain.NewWebhookDomain(
		s.statisticDomain, s.moderationDomain, s.challengeDomain, s.greetingDomain,
		s.tipDomain, s.conversationDomain, s.helpDomain, s.townsEndpoint)
}
