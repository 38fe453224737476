package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/worklab-studio/Nextyoulinkedin/internal/app/prompts"
	"github.com/worklab-studio/Nextyoulinkedin/internal/app/schedule"
	"github.com/worklab-studio/Nextyoulinkedin/internal/app/session"
	"github.com/worklab-studio/Nextyoulinkedin/internal/domain"
)

const dayFormat = "2006-01-02"

type Server struct {
	sessions  *session.Manager
	fragments *prompts.Store
	schedule  *schedule.Service
}

func NewServer(sessions *session.Manager, fragments *prompts.Store, scheduleSvc *schedule.Service) http.Handler {
	s := &Server{
		sessions:  sessions,
		fragments: fragments,
		schedule:  scheduleSvc,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", s.handleHealthz)

	// /sessions           → POST: create session
	// /sessions/{id}      → GET: persona + turns; DELETE: end session
	// /sessions/{id}/messages → POST: submit a user turn
	// /sessions/{id}/persona  → PUT: switch persona
	mux.HandleFunc("/sessions", s.handleSessions)
	mux.HandleFunc("/sessions/", s.handleSessionWithID)

	// /prompts/{section}  → GET / PUT fragment content
	mux.HandleFunc("/prompts/", s.handlePromptSection)

	// /schedule           → POST: add; GET: day or range query
	// /schedule/{id}      → PATCH: reschedule; DELETE: remove
	mux.HandleFunc("/schedule", s.handleSchedule)
	mux.HandleFunc("/schedule/", s.handleScheduleWithID)

	return chainMiddlewares(mux, withRequestID, withLogging, withCORS)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type createSessionRequest struct {
	Persona string `json:"persona"`
}

type turnResponse struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

type sessionResponse struct {
	ID          string         `json:"id"`
	Persona     string         `json:"persona"`
	PersonaName string         `json:"persona_name"`
	State       string         `json:"state"`
	Turns       []turnResponse `json:"turns"`
}

type submitRequest struct {
	Text string `json:"text"`
}

type submitResponse struct {
	UserTurn      turnResponse `json:"user_turn"`
	AssistantTurn turnResponse `json:"assistant_turn"`
	Failed        bool         `json:"failed"`
}

type setPersonaRequest struct {
	Persona string `json:"persona"`
}

type fragmentResponse struct {
	Section string `json:"section"`
	Persona string `json:"persona,omitempty"`
	Value   string `json:"value"`
}

type setFragmentRequest struct {
	Persona string `json:"persona,omitempty"`
	Value   string `json:"value"`
}

type addPostRequest struct {
	Content string `json:"content"`
	Persona string `json:"persona"`
	Date    string `json:"date"` // YYYY-MM-DD
	Time    string `json:"time"` // HH:MM
	Notes   string `json:"notes,omitempty"`
}

type postResponse struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	Persona     string    `json:"persona"`
	PersonaName string    `json:"persona_name"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type listPostsResponse struct {
	Posts []postResponse `json:"posts"`
	Count int            `json:"count"`
}

type reschedulePostRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// ─────────────────────────────────────────────
// Health
// ─────────────────────────────────────────────

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ─────────────────────────────────────────────
// Sessions
// ─────────────────────────────────────────────

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleCreateSession(w, r)
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleSessionWithID(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/sessions/")
	if path == "" {
		http.NotFound(w, r)
		return
	}

	parts := strings.Split(path, "/")
	id := domain.SessionID(parts[0])

	if len(parts) == 1 {
		switch r.Method {
		case http.MethodGet:
			s.handleGetSession(w, r, id)
		case http.MethodDelete:
			s.sessions.End(id)
			w.WriteHeader(http.StatusNoContent)
		default:
			methodNotAllowed(w)
		}
		return
	}

	if len(parts) == 2 {
		switch {
		case parts[1] == "messages" && r.Method == http.MethodPost:
			s.handleSubmit(w, r, id)
			return
		case parts[1] == "persona" && r.Method == http.MethodPut:
			s.handleSetPersona(w, r, id)
			return
		}
	}

	http.NotFound(w, r)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	view, err := s.sessions.Create(r.Context(), domain.PersonaID(req.Persona))
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(view))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request, id domain.SessionID) {
	view, err := s.sessions.Get(id)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			http.NotFound(w, r)
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(view))
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request, id domain.SessionID) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	out, err := s.sessions.Submit(r.Context(), id, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrSessionNotFound):
			http.NotFound(w, r)
		case errors.Is(err, session.ErrRequestInFlight):
			writeJSON(w, http.StatusConflict, map[string]string{
				"error": err.Error(),
			})
		case errors.Is(err, session.ErrEmptyMessage):
			badRequest(w, err.Error())
		default:
			internalError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{
		UserTurn:      toTurnResponse(out.UserTurn),
		AssistantTurn: toTurnResponse(out.AssistantTurn),
		Failed:        out.Failed,
	})
}

func (s *Server) handleSetPersona(w http.ResponseWriter, r *http.Request, id domain.SessionID) {
	var req setPersonaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	if err := s.sessions.SetPersona(id, domain.PersonaID(req.Persona)); err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			http.NotFound(w, r)
			return
		}
		badRequest(w, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ─────────────────────────────────────────────
// Prompt fragments
// ─────────────────────────────────────────────

func (s *Server) handlePromptSection(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/prompts/")
	if name == "" || strings.Contains(name, "/") {
		http.NotFound(w, r)
		return
	}
	section := domain.Section(name)

	switch r.Method {
	case http.MethodGet:
		persona := domain.PersonaID(r.URL.Query().Get("persona"))
		value, err := s.fragments.Get(section, persona)
		if err != nil {
			badRequest(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, fragmentResponse{
			Section: name,
			Persona: string(persona),
			Value:   value,
		})

	case http.MethodPut:
		var req setFragmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			badRequest(w, "invalid JSON body")
			return
		}
		if err := s.fragments.Set(section, req.Value, domain.PersonaID(req.Persona)); err != nil {
			badRequest(w, err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		methodNotAllowed(w)
	}
}

// ─────────────────────────────────────────────
// Schedule
// ─────────────────────────────────────────────

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleAddPost(w, r)
	case http.MethodGet:
		s.handleListPosts(w, r)
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleScheduleWithID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/schedule/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodPatch:
		s.handleReschedule(w, r, domain.PostID(id))
	case http.MethodDelete:
		if err := s.schedule.Remove(r.Context(), domain.PostID(id)); err != nil {
			internalError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleAddPost(w http.ResponseWriter, r *http.Request) {
	var req addPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	date, err := time.Parse(dayFormat, req.Date)
	if err != nil {
		badRequest(w, "date must be YYYY-MM-DD")
		return
	}

	post, err := s.schedule.Add(r.Context(), schedule.AddInput{
		Content:   req.Content,
		PersonaID: domain.PersonaID(req.Persona),
		Date:      date,
		Time:      req.Time,
		Notes:     req.Notes,
	})
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, toPostResponse(post))
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		posts []*domain.ScheduledPost
		err   error
	)

	switch {
	case q.Get("date") != "":
		var date time.Time
		date, err = time.Parse(dayFormat, q.Get("date"))
		if err != nil {
			badRequest(w, "date must be YYYY-MM-DD")
			return
		}
		posts, err = s.schedule.PostsOn(r.Context(), date)

	case q.Get("from") != "" && q.Get("to") != "":
		var from, to time.Time
		from, err = time.Parse(dayFormat, q.Get("from"))
		if err == nil {
			to, err = time.Parse(dayFormat, q.Get("to"))
		}
		if err != nil {
			badRequest(w, "from/to must be YYYY-MM-DD")
			return
		}
		posts, err = s.schedule.PostsBetween(r.Context(), from, to)

	default:
		badRequest(w, "date or from/to query parameters are required")
		return
	}

	if err != nil {
		internalError(w, err)
		return
	}

	count, err := s.schedule.Count(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	resp := listPostsResponse{Posts: make([]postResponse, 0, len(posts)), Count: count}
	for _, p := range posts {
		resp.Posts = append(resp.Posts, toPostResponse(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReschedule(w http.ResponseWriter, r *http.Request, id domain.PostID) {
	var req reschedulePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	date, err := time.Parse(dayFormat, req.Date)
	if err != nil {
		badRequest(w, "date must be YYYY-MM-DD")
		return
	}

	if err := s.schedule.Reschedule(r.Context(), id, date, req.Time); err != nil {
		switch {
		case errors.Is(err, domain.ErrPostNotFound):
			http.NotFound(w, r)
		case errors.Is(err, schedule.ErrInvalidTime):
			badRequest(w, err.Error())
		default:
			internalError(w, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ─────────────────────────────────────────────
// Response helpers
// ─────────────────────────────────────────────

func toSessionResponse(v session.View) sessionResponse {
	turns := make([]turnResponse, 0, len(v.Turns))
	for _, t := range v.Turns {
		turns = append(turns, toTurnResponse(t))
	}
	return sessionResponse{
		ID:          string(v.ID),
		Persona:     string(v.Persona.ID),
		PersonaName: v.Persona.Name,
		State:       string(v.State),
		Turns:       turns,
	}
}

func toTurnResponse(t domain.Turn) turnResponse {
	return turnResponse{
		Speaker: string(t.Speaker),
		Text:    t.Text,
	}
}

func toPostResponse(p *domain.ScheduledPost) postResponse {
	return postResponse{
		ID:          string(p.ID),
		Content:     p.Content,
		Persona:     string(p.PersonaID),
		PersonaName: p.PersonaName,
		Date:        p.Date.Format(dayFormat),
		Time:        p.Time,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
	}
}

// ─────────────────────────────────────────────
// HTTP helpers
// ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func internalError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "internal server error",
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}
