package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/zkmint-labs/minting-backend/app"
	"github.com/zkmint-labs/minting-backend/db"
	"github.com/zkmint-labs/minting-backend/metrics"
	"github.com/zkmint-labs/minting-backend/models"
)

const (
	WebhookListenerName = "WEBHOOK LISTENER"

	maxBodyBytes = 1 << 20
)

// Server receives signed notification envelopes over HTTP, verifies
// them and hands the inner events to the dispatcher. It also serves the
// metrics and health endpoints.
type Server struct {
	server     *http.Server
	verifier   *Verifier
	dispatcher *Dispatcher
	wg         *sync.WaitGroup

	healthMu     sync.RWMutex
	lastEventId  string
	lastSyncTime time.Time
	healthy      bool
}

func NewServer(wg *sync.WaitGroup) models.Service {
	if !app.Config.Webhook.Enabled {
		log.Debug("[WEBHOOK LISTENER] Listener disabled")
		return models.NewEmptyService(wg)
	}

	log.Debug("[WEBHOOK LISTENER] Initializing listener")

	dispatcher := NewDispatcher()
	synchronizer := NewSynchronizer(db.NewMintStore())
	dispatcher.Register(EventNameMintRequestUpdated, synchronizer.HandleMintRequestUpdated)

	x := &Server{
		verifier:   NewVerifier(TopicArnPrefixForEnvironment(app.Config.MintAPI.Environment, app.Config.Webhook.TopicArnPrefix)),
		dispatcher: dispatcher,
		wg:         wg,
		healthy:    true,
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Post("/webhook/events", x.handleEvents)
	router.Get("/metrics", promhttp.Handler().ServeHTTP)
	router.Get("/health", x.handleHealth)

	x.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.Config.Webhook.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("[WEBHOOK LISTENER] Initialized listener on port ", app.Config.Webhook.Port)
	return x
}

func (x *Server) Start() {
	log.Info("[WEBHOOK LISTENER] Starting listener")
	err := x.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Error("[WEBHOOK LISTENER] Listener error: ", err)
		x.healthMu.Lock()
		x.healthy = false
		x.healthMu.Unlock()
	}
	log.Info("[WEBHOOK LISTENER] Listener stopped")
}

func (x *Server) Stop() {
	log.Debug("[WEBHOOK LISTENER] Stopping listener")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := x.server.Shutdown(ctx); err != nil {
		log.Error("[WEBHOOK LISTENER] Error shutting down listener: ", err)
	}
	x.wg.Done()
}

func (x *Server) Health() models.ServiceHealth {
	x.healthMu.RLock()
	defer x.healthMu.RUnlock()
	return models.ServiceHealth{
		Name:         WebhookListenerName,
		LastSyncTime: x.lastSyncTime,
		NextSyncTime: x.lastSyncTime,
		LastEventId:  x.lastEventId,
		Healthy:      x.healthy,
	}
}

func (x *Server) recordEvent(eventId string) {
	x.healthMu.Lock()
	x.lastEventId = eventId
	x.lastSyncTime = time.Now()
	x.healthMu.Unlock()
}

func (x *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "error reading body", http.StatusBadRequest)
		return
	}

	var notification Notification
	if err := json.Unmarshal(body, &notification); err != nil {
		metrics.WebhookEventsRejected.WithLabelValues(StageStructure).Inc()
		http.Error(w, "invalid notification", http.StatusBadRequest)
		return
	}

	if err := x.verifier.Verify(&notification); err != nil {
		stage := StageStructure
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			stage = validationErr.Stage
		}
		metrics.WebhookEventsRejected.WithLabelValues(stage).Inc()
		log.Warn("[WEBHOOK LISTENER] Rejected notification: ", err)
		http.Error(w, "verification failed", http.StatusUnauthorized)
		return
	}
	metrics.WebhookEventsVerified.Inc()

	switch notification.Type {
	case TypeSubscriptionConfirmation:
		if err := x.verifier.ConfirmSubscription(&notification); err != nil {
			log.Error("[WEBHOOK LISTENER] Error confirming subscription: ", err)
			http.Error(w, "confirmation failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		return
	case TypeUnsubscribeConfirmation:
		log.Info("[WEBHOOK LISTENER] Received unsubscribe confirmation, topic: ", notification.TopicArn)
		w.WriteHeader(http.StatusOK)
		return
	}

	var event Event
	if err := json.Unmarshal([]byte(notification.Message), &event); err != nil {
		metrics.WebhookEventsRejected.WithLabelValues(StageStructure).Inc()
		http.Error(w, "invalid event payload", http.StatusBadRequest)
		return
	}

	if err := x.dispatcher.Dispatch(&event); err != nil {
		// a non-200 makes the sender redeliver; SyncStatus tolerates replays
		log.Error("[WEBHOOK LISTENER] Error handling event ", event.EventName, ": ", err)
		http.Error(w, "error handling event", http.StatusInternalServerError)
		return
	}

	x.recordEvent(event.EventId)
	w.WriteHeader(http.StatusOK)
}

func (x *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health, err := app.FindLastHealth()
	if err != nil {
		http.Error(w, "health not available", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(health); err != nil {
		log.Error("[WEBHOOK LISTENER] Error encoding health: ", err)
	}
}
