package api

import "net/http"

// Version is reported by the root endpoint and the API docs.
const Version = "1.0.0"

type RootResponse struct {
	Message   string            `json:"message" example:"Python Quiz API"`
	Version   string            `json:"version" example:"1.0.0"`
	Endpoints map[string]string `json:"endpoints"`
}

type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message" example:"API is running"`
}

type StatsResponse struct {
	TotalQuestions int `json:"total_questions" example:"5"`
}

// root describes the service.
// @Summary      Service metadata
// @Tags         Root
// @Produce      json
// @Success      200  {object}  RootResponse
// @Router       / [get]
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, RootResponse{
		Message: "Python Quiz API",
		Version: Version,
		Endpoints: map[string]string{
			"questions":       "/api/questions",
			"random_question": "/api/questions/random",
			"submit_answer":   "/api/quiz/submit",
			"health":          "/api/health",
			"stats":           "/api/stats",
			"docs":            "/docs/index.html",
		},
	})
}

// health reports liveness.
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /api/health [get]
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Message: "API is running",
	})
}

// stats reports the bank size.
// @Summary      Question statistics
// @Tags         Statistics
// @Produce      json
// @Success      200  {object}  StatsResponse
// @Router       /api/stats [get]
func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, StatsResponse{
		TotalQuestions: h.bank.Stats().TotalQuestions,
	})
}
