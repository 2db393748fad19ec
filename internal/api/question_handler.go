package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/remaimber-it/quiz/internal/domain/questionbank"
)

// ── Request / Response types ────────────────────────────────────────────────

// QuestionResponse is a question without its answer.
type QuestionResponse struct {
	ID           int      `json:"id" example:"0"`
	QuestionText string   `json:"question_text" example:"What is the correct file extension for Python files?"`
	Options      []string `json:"options"`
}

// QuestionDetailResponse is a question including its answer and explanation.
type QuestionDetailResponse struct {
	ID               int      `json:"id" example:"0"`
	QuestionText     string   `json:"question_text" example:"What is the correct file extension for Python files?"`
	Options          []string `json:"options"`
	CorrectOptionKey string   `json:"correct_option_key" example:"c"`
	Explanation      string   `json:"explanation" example:".py is the standard extension for Python source files."`
}

func toQuestionResponse(id int, q questionbank.Question) QuestionResponse {
	return QuestionResponse{
		ID:           id,
		QuestionText: q.Text,
		Options:      q.Options,
	}
}

func toQuestionDetailResponse(id int, q questionbank.Question) QuestionDetailResponse {
	return QuestionDetailResponse{
		ID:               id,
		QuestionText:     q.Text,
		Options:          q.Options,
		CorrectOptionKey: string(q.CorrectKey),
		Explanation:      q.Explanation,
	}
}

// questionID parses the {questionID} path parameter. Negative values parse fine
// and are rejected later as out of range.
func questionID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "questionID"))
	if err != nil {
		return 0, &ValidationError{Field: "question_id", Message: "must be an integer"}
	}
	return id, nil
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listQuestions returns every question without answers.
// @Summary      List questions
// @Description  Returns all questions in bank order. Answers are omitted; use the submit endpoint to check them.
// @Tags         Questions
// @Produce      json
// @Success      200  {array}  QuestionResponse
// @Router       /api/questions [get]
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	questions := h.bank.Questions()

	response := make([]QuestionResponse, len(questions))
	for i, q := range questions {
		response[i] = toQuestionResponse(i, q)
	}

	respondJSON(w, http.StatusOK, response)
}

// getQuestion returns one question without its answer.
// @Summary      Get a question
// @Description  Returns the question with the given zero-based ID, without the answer.
// @Tags         Questions
// @Produce      json
// @Param        questionID  path      int  true  "Question ID (0 to total_questions-1)"
// @Success      200         {object}  QuestionResponse
// @Failure      400         {object}  ErrorResponse
// @Failure      404         {object}  ErrorResponse
// @Router       /api/questions/{questionID} [get]
func (h *Handler) getQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := questionID(r)
	if h.handleError(w, err) {
		return
	}

	q, err := h.bank.Question(id)
	if h.handleError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, toQuestionResponse(id, q))
}

// randomQuestion returns a uniformly chosen question without its answer.
// @Summary      Get a random question
// @Description  Picks a question ID uniformly at random on every call.
// @Tags         Questions
// @Produce      json
// @Success      200  {object}  QuestionResponse
// @Router       /api/questions/random [get]
func (h *Handler) randomQuestion(w http.ResponseWriter, r *http.Request) {
	id := h.pick(h.bank.Len())

	q, err := h.bank.Question(id)
	if h.handleError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, toQuestionResponse(id, q))
}

// getQuestionDetail returns one question including the answer.
// @Summary      Get question details
// @Description  Includes the correct answer and explanation. Intended for internal use.
// @Tags         Questions
// @Produce      json
// @Param        questionID  path      int  true  "Question ID"
// @Success      200         {object}  QuestionDetailResponse
// @Failure      400         {object}  ErrorResponse
// @Failure      404         {object}  ErrorResponse
// @Router       /api/questions/{questionID}/detail [get]
func (h *Handler) getQuestionDetail(w http.ResponseWriter, r *http.Request) {
	id, err := questionID(r)
	if h.handleError(w, err) {
		return
	}

	q, err := h.bank.Question(id)
	if h.handleError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, toQuestionDetailResponse(id, q))
}
