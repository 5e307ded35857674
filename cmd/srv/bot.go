package main

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/lenstown/backend/internal/domain/cron"
	"github.com/lenstown/backend/internal/model"
	"github.com/lenstown/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

func (s *srv) startBot(*cli.Context) error {
	if err := s.loadConfig(); err != nil {
		return err
	}

	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.migrateDB()
	s.loadEndpoint()
	s.loadEthClient()
	s.loadRepos()
	s.loadDomains()

	cfg := xcontext.Configs(s.ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/webhook", s.handleWebhook)

	httpSrv := &http.Server{
		Addr:    net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler: mux,
	}

	cronJobManager := cron.NewCronJobManager()
	cronJobManager.Register(cron.NewDailyGreetingCronJob(s.greetingDomain))
	cronJobManager.Register(cron.NewChallengeResolutionCronJob(s.challengeDomain))

	g, ctx := errgroup.WithContext(s.ctx)
	g.Go(func() error {
		xcontext.Logger(s.ctx).Infof("Starting server on %s", httpSrv.Addr)
		return httpSrv.ListenAndServe()
	})
	g.Go(func() error {
		cronJobManager.Start(ctx)
		return nil
	})

	return g.Wait()
}

func (s *srv) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := s.ctx
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	claims, err := xcontext.TokenEngine(ctx).Verify(token)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Invalid webhook token: %v", err)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if claims.UserID != xcontext.Configs(ctx).Bot.UserID {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var event model.WebhookEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if err := s.webhookDomain.Handle(ctx, &event); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot handle %s event: %v", event.Type, err)
	}

	// The platform does not retry deliveries, a decoded event is always
	// acked even when its handler failed.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`{"success":true}`)); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot write webhook response: %v", err)
	}
}
