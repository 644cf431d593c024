package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/wonklabs/wonk/internal/actionitems"
	"github.com/wonklabs/wonk/internal/config"
	"github.com/wonklabs/wonk/internal/exporter"
	"github.com/wonklabs/wonk/internal/ingest"
	"github.com/wonklabs/wonk/internal/llm"
	"github.com/wonklabs/wonk/internal/logger"
	"github.com/wonklabs/wonk/internal/pipeline"
	"github.com/wonklabs/wonk/internal/registry"
	"github.com/wonklabs/wonk/internal/session"
)

// actionItemsHeading is the artifact heading the expander reads from.
const actionItemsHeading = "Action Items"

const maxUploadBytes = 256 << 20

// Deps carries everything the handlers need.
type Deps struct {
	Config   *config.Config
	Store    *session.Store
	Registry *registry.Registry
	Provider llm.Provider
	Adapter  ingest.Adapter
	Logger   logger.Logger
}

// Handlers holds the HTTP handler methods for the API.
type Handlers struct {
	deps     Deps
	expander *actionitems.Expander
}

// NewHandlers creates the API handlers.
func NewHandlers(deps Deps) *Handlers {
	return &Handlers{
		deps:     deps,
		expander: actionitems.NewExpander(deps.Provider, deps.Logger, deps.Config.Gemini.Model),
	}
}

// session resolves the {id} path value, writing a 404 when unknown.
func (h *Handlers) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := r.PathValue("id")
	sess, ok := h.deps.Store.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return nil, false
	}
	return sess, true
}

func (h *Handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"groups": h.deps.Registry.Groups()})
}

type sessionResponse struct {
	ID         string              `json:"id"`
	Transcript string              `json:"transcript"`
	Tasks      []pipeline.Task     `json:"tasks"`
	Artifacts  []pipeline.Artifact `json:"artifacts,omitempty"`
}

func sessionToResponse(sess *session.Session) sessionResponse {
	resp := sessionResponse{
		ID:         sess.ID,
		Transcript: sess.Transcript(),
		Tasks:      sess.Pipeline.Tasks(),
	}
	if set := sess.Artifacts(); set != nil {
		resp.Artifacts = set.Artifacts()
	}
	return resp
}

func (h *Handlers) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	p := pipeline.New(h.deps.Registry, h.deps.Provider, h.deps.Logger, h.deps.Config.Gemini.Model)
	sess := session.New(p)
	h.deps.Store.Add(sess)

	h.deps.Logger.Info(r.Context(), "Session created: %s", sess.ID)
	writeJSON(w, http.StatusCreated, sessionToResponse(sess))
}

func (h *Handlers) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	writeJSON(w, http.StatusOK, sessionToResponse(sess))
}

type uploadItemError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

type uploadResponse struct {
	Transcript string            `json:"transcript"`
	Errors     []uploadItemError `json:"errors,omitempty"`
}

func (h *Handlers) handleUpload(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("parse upload: %v", err))
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		writeError(w, http.StatusBadRequest, "no files uploaded")
		return
	}

	tempDir, err := os.MkdirTemp("", "wonk-upload-*")
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer os.RemoveAll(tempDir)

	paths := make([]string, 0, len(files))
	for _, fh := range files {
		path, err := saveUpload(fh, tempDir)
		if err != nil {
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("save upload %s: %v", fh.Filename, err))
			return
		}
		paths = append(paths, path)
	}

	transcript, itemErrs := h.deps.Adapter.TranscribeBatch(r.Context(), paths)

	resp := uploadResponse{Transcript: transcript}
	for _, ie := range itemErrs {
		resp.Errors = append(resp.Errors, uploadItemError{
			Path:  filepath.Base(ie.Path),
			Error: ie.Err.Error(),
		})
	}

	// A new upload batch replaces the transcript wholesale, but only when
	// it actually produced text.
	if transcript != "" {
		sess.SetTranscript(transcript)
	}

	writeJSON(w, http.StatusOK, resp)
}

func saveUpload(fh *multipart.FileHeader, dir string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	path := filepath.Join(dir, filepath.Base(fh.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return path, nil
}

func (h *Handlers) handleGetTranscript(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	writeJSON(w, http.StatusOK, map[string]string{"transcript": sess.Transcript()})
}

func (h *Handlers) handlePutTranscript(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	var req struct {
		Transcript string `json:"transcript"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("parse body: %v", err))
		return
	}

	// Edits replace the blob wholesale.
	sess.SetTranscript(req.Transcript)
	writeJSON(w, http.StatusOK, map[string]string{"transcript": sess.Transcript()})
}

type addTaskRequest struct {
	Group      string `json:"group"`
	TemplateID string `json:"template_id"`
}

func (h *Handlers) handleAddTask(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	var req addTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("parse body: %v", err))
		return
	}

	var task pipeline.Task
	if req.Group == "" && req.TemplateID == "" {
		task = sess.Pipeline.AddBlank()
	} else {
		var err error
		task, err = sess.Pipeline.AddFromTemplate(req.Group, req.TemplateID)
		if errors.Is(err, registry.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	writeJSON(w, http.StatusCreated, task)
}

func (h *Handlers) handleEditTask(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	var patch pipeline.TaskPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("parse body: %v", err))
		return
	}

	task, err := sess.Pipeline.Edit(r.PathValue("taskID"), patch)
	if errors.Is(err, pipeline.ErrTaskNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *Handlers) handleRemoveTask(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	// Idempotent: removing an unknown id is still a 204.
	sess.Pipeline.Remove(r.PathValue("taskID"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) handleGenerate(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	if sess.Transcript() == "" {
		writeError(w, http.StatusUnprocessableEntity, "no transcript to generate from")
		return
	}
	if len(sess.Pipeline.Tasks()) == 0 {
		writeError(w, http.StatusUnprocessableEntity, "no tasks configured")
		return
	}

	set, err := sess.Pipeline.Generate(r.Context(), sess.Transcript())
	if err != nil {
		// The prior artifact set, if any, stays visible.
		var pe *llm.ProviderError
		if errors.As(err, &pe) {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	sess.SetArtifacts(set)
	writeJSON(w, http.StatusOK, map[string]interface{}{"artifacts": set.Artifacts()})
}

func (h *Handlers) handleArtifacts(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	set := sess.Artifacts()
	if set == nil {
		writeError(w, http.StatusNotFound, "nothing generated yet")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"artifacts": set.Artifacts()})
}

func (h *Handlers) handleExport(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	set := sess.Artifacts()
	if set == nil {
		writeError(w, http.StatusNotFound, "nothing generated yet")
		return
	}

	data, err := exporter.Export(set)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	filename := h.deps.Config.Export.Filename
	w.Header().Set("Content-Type", exporter.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck
}

type actionItemRow struct {
	Index    int               `json:"index"`
	Parent   string            `json:"parent"`
	Children []string          `json:"children,omitempty"`
	States   map[string]string `json:"states"`
}

// actionItemRows recomputes the forest from the current artifact text. The
// parse is never cached beyond this view.
func (h *Handlers) actionItemRows(sess *session.Session) ([]actionItemRow, bool) {
	set := sess.Artifacts()
	if set == nil {
		return nil, false
	}
	text, ok := set.Get(actionItemsHeading)
	if !ok {
		return nil, false
	}

	items := actionitems.Parse(text)
	rows := make([]actionItemRow, len(items))
	for i, item := range items {
		states := make(map[string]string)
		for _, kind := range []actionitems.Kind{actionitems.KindEmail, actionitems.KindChat, actionitems.KindMemo} {
			states[string(kind)] = sess.DraftState(actionitems.DraftKey{Item: i, Kind: kind}).String()
		}
		rows[i] = actionItemRow{
			Index:    i,
			Parent:   item.Parent,
			Children: item.Children,
			States:   states,
		}
	}
	return rows, true
}

func (h *Handlers) handleActionItems(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	rows, ok := h.actionItemRows(sess)
	if !ok {
		writeError(w, http.StatusNotFound, "no action items artifact")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": rows})
}

type draftRequest struct {
	Item int    `json:"item"`
	Kind string `json:"kind"`
}

func (h *Handlers) handleDraft(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	var req draftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("parse body: %v", err))
		return
	}

	kind := actionitems.Kind(req.Kind)
	if !kind.Valid() {
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("unknown draft kind %q", req.Kind))
		return
	}

	rows, ok := h.actionItemRows(sess)
	if !ok {
		writeError(w, http.StatusNotFound, "no action items artifact")
		return
	}
	if req.Item < 0 || req.Item >= len(rows) {
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("action item %d out of range", req.Item))
		return
	}

	key := actionitems.DraftKey{Item: req.Item, Kind: kind}
	sess.SetDraftState(key, actionitems.StateRequested)

	draft, err := h.expander.Draft(r.Context(), sess.Transcript(), rows[req.Item].Parent, kind)
	if err != nil {
		sess.SetDraftState(key, actionitems.StateUnrequested)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	sess.SetDraftState(key, actionitems.StateDisplayed)
	writeJSON(w, http.StatusOK, map[string]string{
		"draft": draft,
		"state": actionitems.StateDisplayed.String(),
	})
}

func (h *Handlers) handleResetDraft(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	var req draftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("parse body: %v", err))
		return
	}

	kind := actionitems.Kind(req.Kind)
	if !kind.Valid() {
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("unknown draft kind %q", req.Kind))
		return
	}

	sess.SetDraftState(actionitems.DraftKey{Item: req.Item, Kind: kind}, actionitems.StateUnrequested)
	w.WriteHeader(http.StatusNoContent)
}
