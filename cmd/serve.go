package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/omnilinks/outreach-cli/internal/campaign"
	"github.com/omnilinks/outreach-cli/internal/model"
	"github.com/omnilinks/outreach-cli/internal/prospect"
	"github.com/omnilinks/outreach-cli/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the outreach HTTP API",
	Long:  "Serves prospect generation and campaign sending over HTTP. Generation and sending run asynchronously; poll the campaign status to track progress.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if servePort == 0 {
			servePort = cfg.Server.Port
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		httpSrv := &http.Server{
			Addr:    fmt.Sprintf(":%d", servePort),
			Handler: buildMux(st),
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down http server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := httpSrv.Shutdown(shutdownCtx); err != nil {
				zap.L().Error("server shutdown failed", zap.Error(err))
			}
		}()

		zap.L().Info("http server listening", zap.Int("port", servePort))
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "cmd: server listen")
		}
		return nil
	},
}

type server struct {
	store store.Store
}

// buildMux wires the API routes onto a fresh mux.
func buildMux(st store.Store) *http.ServeMux {
	srv := &server{store: st}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", srv.handleHealth)
	mux.HandleFunc("POST /generate", srv.handleGenerate)
	mux.HandleFunc("GET /campaigns", srv.handleListCampaigns)
	mux.HandleFunc("GET /campaigns/{id}", srv.handleGetCampaign)
	mux.HandleFunc("GET /campaigns/{id}/prospects", srv.handleListProspects)
	mux.HandleFunc("POST /campaigns/{id}/send", srv.handleSend)
	return mux
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type generateRequest struct {
	ICP   string `json:"icp"`
	Count int    `json:"count"`
}

func (s *server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ICP == "" {
		writeError(w, http.StatusBadRequest, "icp is required")
		return
	}
	if req.Count <= 0 {
		req.Count = 10
	}

	c, err := s.store.CreateCampaign(r.Context(), req.ICP, "llm")
	if err != nil {
		zap.L().Error("create campaign failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "create campaign failed")
		return
	}

	// Generation runs detached from the request; the handler returns the
	// campaign id immediately and the client polls for completion.
	go s.generateAsync(c.ID, req.ICP, req.Count)

	writeJSON(w, http.StatusAccepted, c)
}

func (s *server) generateAsync(campaignID, icp string, count int) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := s.store.UpdateCampaignStatus(ctx, campaignID, model.CampaignStatusRunning); err != nil {
		zap.L().Error("update campaign status failed", zap.Error(err))
		return
	}

	generator := prospect.NewGenerator(buildRegistry(ctx))
	companies, err := generator.Generate(ctx, icp, count)
	if err != nil {
		zap.L().Error("generation failed",
			zap.String("campaign_id", campaignID),
			zap.Error(err),
		)
		_ = s.store.UpdateCampaignStatus(ctx, campaignID, model.CampaignStatusFailed)
		return
	}

	if err := s.store.SaveProspects(ctx, campaignID, companies); err != nil {
		zap.L().Error("save prospects failed", zap.Error(err))
		_ = s.store.UpdateCampaignStatus(ctx, campaignID, model.CampaignStatusFailed)
		return
	}
	if err := s.store.UpdateCampaignStatus(ctx, campaignID, model.CampaignStatusComplete); err != nil {
		zap.L().Error("update campaign status failed", zap.Error(err))
		return
	}

	zap.L().Info("campaign generated",
		zap.String("campaign_id", campaignID),
		zap.Int("prospects", len(companies)),
	)
}

func (s *server) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	filter := store.CampaignFilter{
		Status: model.CampaignStatus(r.URL.Query().Get("status")),
		Limit:  50,
	}
	campaigns, err := s.store.ListCampaigns(r.Context(), filter)
	if err != nil {
		zap.L().Error("list campaigns failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "list campaigns failed")
		return
	}
	writeJSON(w, http.StatusOK, campaigns)
}

func (s *server) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := s.store.GetCampaign(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "campaign not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *server) handleListProspects(w http.ResponseWriter, r *http.Request) {
	companies, err := s.store.ListProspects(r.Context(), r.PathValue("id"))
	if err != nil {
		zap.L().Error("list prospects failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "list prospects failed")
		return
	}
	writeJSON(w, http.StatusOK, companies)
}

func (s *server) handleSend(w http.ResponseWriter, r *http.Request) {
	campaignID := r.PathValue("id")

	c, err := s.store.GetCampaign(r.Context(), campaignID)
	if err != nil {
		writeError(w, http.StatusNotFound, "campaign not found")
		return
	}
	if c.Status == model.CampaignStatusRunning {
		writeError(w, http.StatusConflict, "campaign is already running")
		return
	}

	companies, err := s.store.ListProspects(r.Context(), campaignID)
	if err != nil || len(companies) == 0 {
		writeError(w, http.StatusBadRequest, "campaign has no prospects")
		return
	}

	sender, err := buildSender()
	if err != nil {
		writeError(w, http.StatusBadRequest, "no email backend configured")
		return
	}
	composer, err := buildComposer()
	if err != nil {
		zap.L().Error("build composer failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "composer init failed")
		return
	}

	go s.sendAsync(campaignID, composer, sender, companies)

	writeJSON(w, http.StatusAccepted, map[string]string{
		"campaign_id": campaignID,
		"status":      string(model.CampaignStatusRunning),
	})
}

func (s *server) sendAsync(campaignID string, composer *campaign.Composer, sender campaign.Sender, companies []model.Company) {
	ctx := context.Background()

	if err := s.store.UpdateCampaignStatus(ctx, campaignID, model.CampaignStatusRunning); err != nil {
		zap.L().Error("update campaign status failed", zap.Error(err))
		return
	}

	driver := campaign.NewDriver(composer, sender, cfg.Mailgun.From(),
		campaign.WithSendInterval(time.Duration(cfg.Campaign.SendDelaySecs)*time.Second),
		campaign.WithRecorder(s.store),
	)
	summary, err := driver.Run(ctx, campaignID, companies)

	status := model.CampaignStatusComplete
	if err != nil || summary.Sent == 0 {
		status = model.CampaignStatusFailed
	}
	if err := s.store.UpdateCampaignStatus(ctx, campaignID, status); err != nil {
		zap.L().Error("update campaign status failed", zap.Error(err))
	}

	zap.L().Info("campaign send finished",
		zap.String("campaign_id", campaignID),
		zap.Int("sent", summary.Sent),
		zap.Int("failed", summary.Failed),
	)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (defaults to server.port from config)")

	rootCmd.AddCommand(serveCmd)
}
