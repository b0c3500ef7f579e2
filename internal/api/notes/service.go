package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/evgeniy-krivenko/ai-notes/internal/api/notes/converter"
	"github.com/evgeniy-krivenko/ai-notes/internal/entity"
	"github.com/evgeniy-krivenko/ai-notes/internal/usecase/assist"
	"github.com/evgeniy-krivenko/ai-notes/pkg/logger/slogx"
)

type notesUsecase interface {
	CreateNote(ctx context.Context, activeFolder string) entity.Note
	UpdateContent(ctx context.Context, id, content string) (entity.Note, error)
	TogglePinned(ctx context.Context, id string) (entity.Note, error)
	DeleteNote(ctx context.Context, id string) error
	AddFolder(ctx context.Context, name string) error
	DeleteFolder(ctx context.Context, name string) error
	Query(folder, text string) []entity.Note
	Get(id string) (entity.Note, error)
	FolderCounts() []entity.FolderCount
	Select(ctx context.Context, id string) error
	Selected() (entity.Note, bool)
	SubscribeToEvents(ctx context.Context) <-chan entity.Event
}

type assistPipeline interface {
	Run(ctx context.Context, noteID string, action entity.Action) (assist.Result, error)
	Loading() bool
	SubscribeToEvents(ctx context.Context) <-chan entity.AssistEvent
}

//go:generate options-gen -out-filename=service_options.gen.go -from-struct=Options
type Options struct {
	notes  notesUsecase   `option:"mandatory" validate:"required"`
	assist assistPipeline `option:"mandatory" validate:"required"`

	now            func() time.Time
	allowedOrigins []string
}

// Service exposes the note store and the assist pipeline over HTTP.
type Service struct {
	Options
	upgrader websocket.Upgrader
}

func New(opts Options) (*Service, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate notes service options: %v", err)
	}

	if opts.now == nil {
		opts.now = time.Now
	}

	s := &Service{Options: opts}
	s.upgrader = websocket.Upgrader{CheckOrigin: s.checkOrigin}

	return s, nil
}

// checkOrigin admits clients without an Origin header, pages served from the
// same host and the configured origins. The API has no auth, so any other
// browser origin could read every note from the event stream.
func (s *Service) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if strings.EqualFold(u.Host, r.Host) {
		return true
	}

	return slices.ContainsFunc(s.allowedOrigins, func(allowed string) bool {
		return strings.EqualFold(strings.TrimRight(allowed, "/"), origin)
	})
}

func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/notes", s.listNotes)
	mux.HandleFunc("POST /api/notes", s.createNote)
	mux.HandleFunc("GET /api/notes/{id}", s.getNote)
	mux.HandleFunc("PUT /api/notes/{id}", s.updateNote)
	mux.HandleFunc("DELETE /api/notes/{id}", s.deleteNote)
	mux.HandleFunc("POST /api/notes/{id}/pin", s.pinNote)
	mux.HandleFunc("POST /api/notes/{id}/assist", s.assistNote)

	mux.HandleFunc("GET /api/folders", s.listFolders)
	mux.HandleFunc("POST /api/folders", s.addFolder)
	mux.HandleFunc("DELETE /api/folders/{name}", s.deleteFolder)

	mux.HandleFunc("GET /api/selection", s.getSelection)
	mux.HandleFunc("PUT /api/selection", s.putSelection)

	mux.HandleFunc("GET /api/assist", s.assistState)

	mux.HandleFunc("GET /ws", s.events)

	return mux
}

type createNoteRequest struct {
	Folder string `json:"folder"`
}

type updateNoteRequest struct {
	Content string `json:"content"`
}

type assistRequest struct {
	Action entity.Action `json:"action"`
}

type assistResponse struct {
	Status entity.AssistStatus `json:"status"`
	Note   *converter.Note     `json:"note,omitempty"`
}

type folderRequest struct {
	Name string `json:"name"`
}

type selectionRequest struct {
	ID string `json:"id"`
}

type selectionResponse struct {
	Note *converter.Note `json:"note"`
}

type loadingResponse struct {
	Loading bool `json:"loading"`
}

func (s *Service) listNotes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	notes := s.notes.Query(q.Get("folder"), q.Get("q"))

	writeJSON(w, http.StatusOK, converter.ConvertNotesToDTO(notes, s.now()))
}

func (s *Service) createNote(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if !decodeOptional(w, r, &req) {
		return
	}

	note := s.notes.CreateNote(r.Context(), req.Folder)

	writeJSON(w, http.StatusCreated, converter.ConvertNoteToDTO(note, s.now()))
}

func (s *Service) getNote(w http.ResponseWriter, r *http.Request) {
	note, err := s.notes.Get(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, converter.ConvertNoteToDTO(note, s.now()))
}

func (s *Service) updateNote(w http.ResponseWriter, r *http.Request) {
	var req updateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	note, err := s.notes.UpdateContent(r.Context(), r.PathValue("id"), req.Content)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, converter.ConvertNoteToDTO(note, s.now()))
}

func (s *Service) deleteNote(w http.ResponseWriter, r *http.Request) {
	if err := s.notes.DeleteNote(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) pinNote(w http.ResponseWriter, r *http.Request) {
	note, err := s.notes.TogglePinned(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, converter.ConvertNoteToDTO(note, s.now()))
}

func (s *Service) assistNote(w http.ResponseWriter, r *http.Request) {
	var req assistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := s.assist.Run(r.Context(), r.PathValue("id"), req.Action)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := assistResponse{Status: res.Status}
	if res.Status == entity.AssistApplied {
		n := converter.ConvertNoteToDTO(res.Note, s.now())
		resp.Note = &n
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Service) listFolders(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, converter.ConvertFoldersToDTO(s.notes.FolderCounts()))
}

func (s *Service) addFolder(w http.ResponseWriter, r *http.Request) {
	var req folderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.notes.AddFolder(r.Context(), req.Name); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, converter.ConvertFoldersToDTO(s.notes.FolderCounts()))
}

func (s *Service) deleteFolder(w http.ResponseWriter, r *http.Request) {
	if err := s.notes.DeleteFolder(r.Context(), r.PathValue("name")); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) getSelection(w http.ResponseWriter, _ *http.Request) {
	var resp selectionResponse
	if note, ok := s.notes.Selected(); ok {
		n := converter.ConvertNoteToDTO(note, s.now())
		resp.Note = &n
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Service) putSelection(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.notes.Select(r.Context(), req.ID); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.getSelection(w, r)
}

func (s *Service) assistState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, loadingResponse{Loading: s.assist.Loading()})
}

func decodeOptional(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	writeMessage(w, http.StatusBadRequest, "invalid request body")
	return false
}

func (s *Service) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		slogx.Error(r.Context(), "request failed", slogx.Err(err))
	}

	writeMessage(w, code, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrNoteNotFound), errors.Is(err, entity.ErrFolderNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrEmptyFolderName):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrFolderExists),
		errors.Is(err, entity.ErrFolderReserved),
		errors.Is(err, entity.ErrFolderNotEmpty):
		return http.StatusConflict
	case errors.Is(err, assist.ErrRetriesExhausted):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
