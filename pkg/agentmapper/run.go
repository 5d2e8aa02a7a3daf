package agentmapper

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/agentmapper/agentmapper/pkg/models"
	"github.com/agentmapper/agentmapper/pkg/store"
)

// Run starts the HTTP server exposing the workshop action surface: workshop
// lifecycle, per-collection CRUD, the specialized scoring and toggle
// actions, cloud operations, and the snapshot export. The server runs until
// the context is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context, cmd *RunCommand) error {
	router := a.routes()

	a.log.Info().Str("addr", a.config.Addr).Msg("starting agentmapper server")

	server := &http.Server{
		Addr:    a.config.Addr,
		Handler: router,
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}

// routes builds the full application router.
func (a *App) routes() *mux.Router {
	router := mux.NewRouter()
	router.Use(a.logRequests)

	api := router.PathPrefix("/api").Subrouter()

	// Health
	api.HandleFunc("/health", a.handleHealth).Methods("GET")
	router.HandleFunc("/health", a.handleHealth).Methods("GET")

	// Workshop lifecycle
	api.HandleFunc("/workshop", a.handleGetWorkshop).Methods("GET")
	api.HandleFunc("/workshop/start", a.handleStartWorkshop).Methods("POST")
	api.HandleFunc("/workshop/reset", a.handleResetWorkshop).Methods("POST")
	api.HandleFunc("/workshop/advance", a.handleAdvanceSession).Methods("POST")
	api.HandleFunc("/workshop/session", a.handleSetSession).Methods("PUT")
	api.HandleFunc("/workshop/organization", a.handleUpdateOrganization).Methods("PUT")
	api.HandleFunc("/workshop/save", a.handleSave).Methods("POST")

	// Snapshot export
	api.HandleFunc("/snapshot", a.handleSnapshot).Methods("GET")

	// Entity collections
	registerCollection(api, "icebreaker-responses", a.store,
		func(st store.State) []models.IcebreakerResponse { return st.IcebreakerResponses },
		a.store.AddIcebreakerResponse, a.store.UpdateIcebreakerResponse, a.store.DeleteIcebreakerResponse)
	registerCollection(api, "future-headlines", a.store,
		func(st store.State) []models.FutureHeadline { return st.FutureHeadlines },
		a.store.AddFutureHeadline, a.store.UpdateFutureHeadline, a.store.DeleteFutureHeadline)
	registerCollection(api, "cognitive-biases", a.store,
		func(st store.State) []models.CognitiveBias { return st.CognitiveBiases },
		a.store.AddCognitiveBias, a.store.UpdateCognitiveBias, a.store.DeleteCognitiveBias)
	registerCollection(api, "friction-points", a.store,
		func(st store.State) []models.FrictionPoint { return st.FrictionPoints },
		a.store.AddFrictionPoint, a.store.UpdateFrictionPoint, a.store.DeleteFrictionPoint)
	registerCollection(api, "opportunities", a.store,
		func(st store.State) []models.Opportunity { return st.Opportunities },
		a.store.AddOpportunity, a.store.UpdateOpportunity, a.store.DeleteOpportunity)
	registerCollection(api, "scored-opportunities", a.store,
		func(st store.State) []models.ScoredOpportunity { return st.ScoredOpportunities },
		a.store.AddScoredOpportunity, a.store.UpdateScoredOpportunity, a.store.DeleteScoredOpportunity)
	registerCollection(api, "working-principles", a.store,
		func(st store.State) []models.WorkingPrinciple { return st.WorkingPrinciples },
		a.store.AddWorkingPrinciple, a.store.UpdateWorkingPrinciple, a.store.DeleteWorkingPrinciple)
	registerCollection(api, "tradeoffs", a.store,
		func(st store.State) []models.Tradeoff { return st.Tradeoffs },
		a.store.AddCustomTradeoff, a.store.UpdateTradeoff, a.store.DeleteTradeoff)
	registerCollection(api, "design-principles", a.store,
		func(st store.State) []models.DesignPrinciple { return st.DesignPrinciples },
		a.store.AddDesignPrinciple, a.store.UpdateDesignPrinciple, a.store.DeleteDesignPrinciple)
	registerCollection(api, "pilot-designs", a.store,
		func(st store.State) []models.PilotDesign { return st.PilotDesigns },
		a.store.AddPilotDesign, a.store.UpdatePilotDesign, a.store.DeletePilotDesign)
	registerCollection(api, "mvp-specs", a.store,
		func(st store.State) []models.MVPSpec { return st.MVPSpecs },
		a.store.AddMVPSpec, a.store.UpdateMVPSpec, a.store.DeleteMVPSpec)
	registerCollection(api, "pilots", a.store,
		func(st store.State) []models.PilotPlan { return st.Pilots },
		a.store.AddPilot, a.store.UpdatePilot, a.store.DeletePilot)
	registerCollection(api, "raci-entries", a.store,
		func(st store.State) []models.RACIEntry { return st.RACIEntries },
		a.store.AddRACIEntry, a.store.UpdateRACIEntry, a.store.DeleteRACIEntry)
	registerCollection(api, "roadmap-milestones", a.store,
		func(st store.State) []models.RoadmapMilestone { return st.RoadmapMilestones },
		a.store.AddRoadmapMilestone, a.store.UpdateRoadmapMilestone, a.store.DeleteRoadmapMilestone)
	registerCollection(api, "scaling-checklist", a.store,
		func(st store.State) []models.ScalingChecklistItem { return st.ScalingChecklist },
		a.store.AddScalingChecklistItem, a.store.UpdateScalingChecklistItem, a.store.DeleteScalingChecklistItem)
	registerCollection(api, "training-plan", a.store,
		func(st store.State) []models.TrainingPlanEntry { return st.TrainingPlan },
		a.store.AddTrainingPlanEntry, a.store.UpdateTrainingPlanEntry, a.store.DeleteTrainingPlanEntry)
	registerCollection(api, "lessons-learned", a.store,
		func(st store.State) []models.LessonLearned { return st.LessonsLearned },
		a.store.AddLessonLearned, a.store.UpdateLessonLearned, a.store.DeleteLessonLearned)
	registerCollection(api, "next-opportunities", a.store,
		func(st store.State) []models.NextOpportunity { return st.NextOpportunities },
		a.store.AddNextOpportunity, a.store.UpdateNextOpportunity, a.store.DeleteNextOpportunity)

	// Specialized actions
	api.HandleFunc("/scored-opportunities/{id}/score", a.handleRescore).Methods("PUT")
	api.HandleFunc("/scored-opportunities/{id}/vote", a.handleVote).Methods("POST")
	api.HandleFunc("/scored-opportunities/{id}/toggle-pilot", a.handleTogglePilot).Methods("POST")
	api.HandleFunc("/tradeoffs/{id}/toggle-ignored", a.handleToggleTradeoffIgnored).Methods("POST")
	api.HandleFunc("/cognitive-biases/{id}/toggle", a.handleToggleBias).Methods("POST")

	// Cloud operations
	api.HandleFunc("/cloud/connect", a.handleCloudConnect).Methods("POST")
	api.HandleFunc("/cloud/load", a.handleCloudLoad).Methods("POST")
	api.HandleFunc("/cloud/sync", a.handleCloudSync).Methods("POST")
	api.HandleFunc("/cloud/disconnect", a.handleCloudDisconnect).Methods("POST")
	api.HandleFunc("/cloud/status", a.handleCloudStatus).Methods("GET")

	return router
}

// logRequests is the request logging middleware.
func (a *App) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		a.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
