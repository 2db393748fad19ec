package api_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/remaimber-it/quiz/internal/api"
	"github.com/remaimber-it/quiz/internal/domain/questionbank"
)

func newTestServer(t *testing.T, opts ...api.Option) (http.Handler, *questionbank.Bank) {
	t.Helper()
	bank, err := questionbank.Default()
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := api.NewRouter(api.RouterConfig{
		Handler: api.NewHandler(bank, logger, opts...),
		Logger:  logger,
	})
	return router, bank
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestRoot(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := decode[api.RootResponse](t, rec)
	if body.Version != api.Version {
		t.Errorf("expected version %q, got %q", api.Version, body.Version)
	}
	for _, key := range []string{"questions", "random_question", "submit_answer", "health", "stats", "docs"} {
		if body.Endpoints[key] == "" {
			t.Errorf("expected endpoint %q in metadata", key)
		}
	}
}

func TestHealth(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/health", "")
	body := decode[api.HealthResponse](t, rec)
	if rec.Code != http.StatusOK || body.Status != "healthy" || body.Message == "" {
		t.Errorf("unexpected health response %d %+v", rec.Code, body)
	}
}

func TestStats(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/stats", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"total_questions":5}` {
		t.Errorf("unexpected body %s", got)
	}
}

func TestListQuestions(t *testing.T) {
	h, bank := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/questions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var raw []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(raw) != bank.Len() {
		t.Fatalf("expected %d questions, got %d", bank.Len(), len(raw))
	}
	for i, q := range raw {
		if int(q["id"].(float64)) != i {
			t.Errorf("expected id %d in bank order, got %v", i, q["id"])
		}
		if _, ok := q["correct_option_key"]; ok {
			t.Errorf("question %d leaks correct_option_key", i)
		}
		if _, ok := q["explanation"]; ok {
			t.Errorf("question %d leaks explanation", i)
		}
	}
}

func TestGetQuestion_OmitsAnswer(t *testing.T) {
	h, bank := newTestServer(t)

	for id := 0; id < bank.Len(); id++ {
		rec := do(t, h, http.MethodGet, "/api/questions/"+strconv.Itoa(id), "")
		if rec.Code != http.StatusOK {
			t.Fatalf("id %d: expected 200, got %d", id, rec.Code)
		}

		var raw map[string]any
		json.Unmarshal(rec.Body.Bytes(), &raw)
		if _, ok := raw["correct_option_key"]; ok {
			t.Errorf("id %d: response leaks correct_option_key", id)
		}
		if _, ok := raw["explanation"]; ok {
			t.Errorf("id %d: response leaks explanation", id)
		}

		body := decode[api.QuestionResponse](t, rec)
		q, _ := bank.Question(id)
		if body.ID != id || body.QuestionText != q.Text || len(body.Options) != 4 {
			t.Errorf("id %d: unexpected body %+v", id, body)
		}
	}
}

func TestGetQuestionDetail_IncludesAnswer(t *testing.T) {
	h, bank := newTestServer(t)

	for id := 0; id < bank.Len(); id++ {
		rec := do(t, h, http.MethodGet, "/api/questions/"+strconv.Itoa(id)+"/detail", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("id %d: expected 200, got %d", id, rec.Code)
		}

		body := decode[api.QuestionDetailResponse](t, rec)
		q, _ := bank.Question(id)
		if body.CorrectOptionKey != string(q.CorrectKey) {
			t.Errorf("id %d: expected key %q, got %q", id, q.CorrectKey, body.CorrectOptionKey)
		}
		if body.Explanation != q.Explanation {
			t.Errorf("id %d: expected explanation %q, got %q", id, q.Explanation, body.Explanation)
		}
	}
}

func TestQuestion_NotFound(t *testing.T) {
	h, _ := newTestServer(t)

	for _, path := range []string{
		"/api/questions/99",
		"/api/questions/5",
		"/api/questions/-1",
		"/api/questions/99/detail",
		"/api/questions/-3/detail",
	} {
		rec := do(t, h, http.MethodGet, path, "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", path, rec.Code)
			continue
		}
		body := decode[api.ErrorResponse](t, rec)
		if !strings.Contains(body.Detail, "Available IDs: 0-4") {
			t.Errorf("%s: expected detail to name the valid range, got %q", path, body.Detail)
		}
	}
}

func TestQuestion_NonIntegerID(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/questions/abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := decode[api.ErrorResponse](t, rec); body.Field != "question_id" {
		t.Errorf("expected field question_id, got %q", body.Field)
	}
}

func TestRandomQuestion_UsesPicker(t *testing.T) {
	h, _ := newTestServer(t, api.WithPicker(func(n int) int { return n - 1 }))

	rec := do(t, h, http.MethodGet, "/api/questions/random", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := decode[api.QuestionResponse](t, rec); body.ID != 4 {
		t.Errorf("expected id 4, got %d", body.ID)
	}
}

func TestRandomQuestion_Uniform(t *testing.T) {
	h, bank := newTestServer(t)

	counts := make([]int, bank.Len())
	for i := 0; i < 1000; i++ {
		rec := do(t, h, http.MethodGet, "/api/questions/random", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		body := decode[api.QuestionResponse](t, rec)
		if body.ID < 0 || body.ID >= bank.Len() {
			t.Fatalf("id %d out of range", body.ID)
		}
		counts[body.ID]++
	}

	// Expected 200 each; the bounds are more than six standard deviations wide.
	for id, n := range counts {
		if n < 120 || n > 280 {
			t.Errorf("id %d returned %d times out of 1000", id, n)
		}
	}
}

func TestSubmit_Correct(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/quiz/submit", `{"question_id":0,"answer":"c"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decode[api.AnswerResponse](t, rec)
	want := api.AnswerResponse{
		IsCorrect:         true,
		CorrectAnswer:     "c",
		CorrectAnswerText: ".py",
		Explanation:       ".py is the standard extension for Python source files.",
	}
	if body != want {
		t.Errorf("expected %+v, got %+v", want, body)
	}
}

func TestSubmit_EveryLetter(t *testing.T) {
	h, bank := newTestServer(t)

	for id, q := range bank.Questions() {
		idx, _ := q.CorrectKey.Index()
		for _, l := range questionbank.Letters {
			payload := `{"question_id":` + strconv.Itoa(id) + `,"answer":"` + string(l) + `"}`
			rec := do(t, h, http.MethodPost, "/api/quiz/submit", payload)
			if rec.Code != http.StatusOK {
				t.Fatalf("%s: expected 200, got %d", payload, rec.Code)
			}

			body := decode[api.AnswerResponse](t, rec)
			if body.IsCorrect != (l == q.CorrectKey) {
				t.Errorf("%s: expected is_correct=%v", payload, l == q.CorrectKey)
			}
			if body.CorrectAnswerText != q.Options[idx] {
				t.Errorf("%s: expected correct text %q, got %q", payload, q.Options[idx], body.CorrectAnswerText)
			}
		}
	}
}

func TestSubmit_Idempotent(t *testing.T) {
	h, _ := newTestServer(t)

	first := do(t, h, http.MethodPost, "/api/quiz/submit", `{"question_id":2,"answer":"a"}`).Body.String()
	for i := 0; i < 3; i++ {
		if got := do(t, h, http.MethodPost, "/api/quiz/submit", `{"question_id":2,"answer":"a"}`).Body.String(); got != first {
			t.Fatalf("expected identical responses, got %q and %q", first, got)
		}
	}
}

func TestSubmit_OutOfRange(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/quiz/submit", `{"question_id":5,"answer":"a"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body := decode[api.ErrorResponse](t, rec); !strings.Contains(body.Detail, "Available IDs: 0-4") {
		t.Errorf("unexpected detail %q", body.Detail)
	}
}

func TestSubmit_Validation(t *testing.T) {
	h, _ := newTestServer(t)

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"empty body", "", ""},
		{"malformed json", `{"question_id":`, ""},
		{"missing question_id", `{"answer":"a"}`, "question_id"},
		{"missing answer", `{"question_id":0}`, "answer"},
		{"negative question_id", `{"question_id":-1,"answer":"a"}`, "question_id"},
		{"string question_id", `{"question_id":"0","answer":"a"}`, "question_id"},
		{"fractional question_id", `{"question_id":1.5,"answer":"a"}`, "question_id"},
		{"upper case answer", `{"question_id":0,"answer":"C"}`, "answer"},
		{"answer out of range", `{"question_id":0,"answer":"e"}`, "answer"},
		{"two letter answer", `{"question_id":0,"answer":"ab"}`, "answer"},
		{"numeric answer", `{"question_id":0,"answer":1}`, "answer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/quiz/submit", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			body := decode[api.ErrorResponse](t, rec)
			if body.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, body.Field)
			}
			if body.Detail == "" {
				t.Error("expected a detail message")
			}
		})
	}
}

func TestCORS(t *testing.T) {
	h, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/quiz/submit", nil)
	req.Header.Set("Origin", "http://frontend.test")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got == "" {
		t.Error("expected Access-Control-Allow-Origin on preflight")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	req.Header.Set("Origin", "http://elsewhere.test")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard origin, got %q", got)
	}
}

func TestUnknownRoute(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}

	rec = do(t, h, http.MethodDelete, "/api/questions", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}

func TestDocs(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/docs/doc.json", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var doc map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("doc.json is not valid JSON: %v", err)
	}
	if paths, _ := doc["paths"].(map[string]any); paths["/api/quiz/submit"] == nil {
		t.Error("expected submit endpoint in the API docs")
	}
}
