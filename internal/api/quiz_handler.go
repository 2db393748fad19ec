package api

import (
	"net/http"
	"regexp"

	"github.com/remaimber-it/quiz/internal/domain/questionbank"
)

var answerPattern = regexp.MustCompile(`^[a-d]$`)

// ── Request / Response types ────────────────────────────────────────────────

// SubmitAnswerRequest is the body of POST /api/quiz/submit.
// Fields are pointers so a missing field can be told apart from a zero value.
type SubmitAnswerRequest struct {
	QuestionID *int    `json:"question_id" example:"0"`
	Answer     *string `json:"answer" example:"c"`
}

func (r *SubmitAnswerRequest) Validate() error {
	if r.QuestionID == nil {
		return &ValidationError{Field: "question_id", Message: "field required"}
	}
	if *r.QuestionID < 0 {
		return &ValidationError{Field: "question_id", Message: "must be greater than or equal to 0"}
	}
	if r.Answer == nil {
		return &ValidationError{Field: "answer", Message: "field required"}
	}
	if !answerPattern.MatchString(*r.Answer) {
		return &ValidationError{Field: "answer", Message: "must match pattern ^[a-d]$"}
	}
	return nil
}

// AnswerResponse is the verdict for a submitted answer.
type AnswerResponse struct {
	IsCorrect         bool   `json:"is_correct" example:"true"`
	CorrectAnswer     string `json:"correct_answer" example:"c"`
	CorrectAnswerText string `json:"correct_answer_text" example:".py"`
	Explanation       string `json:"explanation" example:".py is the standard extension for Python source files."`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// submitAnswer checks an answer. Nothing about the submission is stored.
// @Summary      Submit an answer
// @Description  Checks the chosen option and returns the correct answer with its explanation.
// @Tags         Quiz
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitAnswerRequest  true  "Answer to check"
// @Success      200   {object}  AnswerResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /api/quiz/submit [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswerRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	q, err := h.bank.Question(*req.QuestionID)
	if h.handleError(w, err) {
		return
	}

	verdict, err := questionbank.Resolve(q, *req.Answer)
	if h.handleError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, AnswerResponse{
		IsCorrect:         verdict.IsCorrect,
		CorrectAnswer:     string(verdict.CorrectLetter),
		CorrectAnswerText: verdict.CorrectText,
		Explanation:       verdict.Explanation,
	})
}
