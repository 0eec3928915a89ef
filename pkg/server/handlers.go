package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/k3a/html2text"

	"github.com/vango-dev/toastkit/internal/errors"
	"github.com/vango-dev/toastkit/pkg/dom"
	"github.com/vango-dev/toastkit/pkg/toast"
)

// ShowRequest is the body of POST /api/toasts.
type ShowRequest struct {
	Variant  string            `json:"variant"`
	Title    string            `json:"title"`
	Message  string            `json:"message"`
	WithIcon *bool             `json:"withIcon,omitempty"`
	HTML     string            `json:"html,omitempty"`
	Duration *int              `json:"duration,omitempty"`
	Style    map[string]string `json:"style,omitempty"`

	// DismissOnClick registers a click listener that dismisses the toast.
	DismissOnClick bool `json:"dismissOnClick,omitempty"`
}

// ShowResponse is returned by POST /api/toasts.
type ShowResponse struct {
	ID string `json:"id"`
}

// ToastInfo describes a live toast in GET /api/toasts.
type ToastInfo struct {
	ID      string `json:"id"`
	Exiting bool   `json:"exiting"`
	Text    string `json:"text"`
}

func (s *Server) handleShowToast(w http.ResponseWriter, r *http.Request) {
	if s.limiter != nil && !s.limiter.Allow() {
		s.writeError(w, errors.New("E202"))
		return
	}

	var req ShowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.New("E200").WithDetail(err.Error()))
		return
	}

	opts := toast.Options{
		Variant:  req.Variant,
		Title:    req.Title,
		Message:  req.Message,
		WithIcon: req.WithIcon,
		HTML:     req.HTML,
		Toastify: toast.Toastify{
			Duration: req.Duration,
			Style:    req.Style,
		},
	}

	if req.DismissOnClick {
		opts.Toastify.OnClick = s.dismissOnClick
	}
	h := s.toaster.ShowContext(r.Context(), opts)

	writeJSON(w, http.StatusCreated, ShowResponse{ID: h.ID()})
}

func (s *Server) dismissOnClick(_ dom.Event, el *dom.Element) {
	id, _ := el.Attr("data-" + toast.DataID)
	if h, ok := s.toaster.Handle(id); ok {
		h.Dismiss()
	}
}

func (s *Server) handleListToasts(w http.ResponseWriter, r *http.Request) {
	doc := s.toaster.Document()
	els := doc.QueryAllClass(toast.ToastClass)
	out := make([]ToastInfo, 0, len(els))
	for _, el := range els {
		id, _ := el.Attr("data-" + toast.DataID)
		out = append(out, ToastInfo{
			ID:      id,
			Exiting: el.ClassList().Contains(toast.ExitClass),
			Text:    html2text.HTML2Text(el.InnerHTML()),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDismissToast(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h, ok := s.toaster.Handle(id)
	if !ok {
		s.writeError(w, errors.New("E201").WithDetail("id "+id))
		return
	}
	h.Dismiss()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetDefaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.toaster.Store().Get())
}

func (s *Server) handlePutDefaults(w http.ResponseWriter, r *http.Request) {
	var p toast.Partial
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.writeError(w, errors.New("E200").WithDetail(err.Error()))
		return
	}
	s.toaster.Store().Set(p)
	s.logger.Info("defaults updated", "duration", p.Duration != nil, "style_keys", len(p.Style))
	writeJSON(w, http.StatusOK, s.toaster.Store().Get())
}

func (s *Server) writeError(w http.ResponseWriter, e *errors.Error) {
	status := e.HTTPStatus()
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", e)
	} else {
		s.logger.Debug("request rejected", "error", e)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(e.FormatJSON()))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
