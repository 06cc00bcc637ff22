package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/fireflyai/essaylytics/models"
	"github.com/fireflyai/essaylytics/pkg/engine"
	"github.com/fireflyai/essaylytics/pkg/rank"
	"github.com/fireflyai/essaylytics/pkg/textload"
)

const (
	jobStoreCapacity = 1024
	maxUploadBytes   = 32 << 20 // 32 MiB
)

var errTooManyURLs = errors.New("url limit exceeded")

// Handler carries the dependencies of every route.
type Handler struct {
	cfg    models.Config
	engine *engine.Engine
	jobs   *JobStore
	logger *slog.Logger
}

// NewHandler wires the engine into the HTTP routes.
func NewHandler(cfg models.Config, eng *engine.Engine, logger *slog.Logger) (*Handler, error) {
	jobs, err := NewJobStore(jobStoreCapacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create job store: %w", err)
	}
	return &Handler{cfg: cfg, engine: eng, jobs: jobs, logger: logger}, nil
}

// health responds to GET /v1/health.
func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// essayInput is the decoded request body of the analysis endpoints.
type essayInput struct {
	fileName string
	content  string
	mode     string
	topN     int
}

// readInput accepts either a multipart upload (field "file") or a JSON body
// with a server-side path. top_words may come from the body, the form or the
// query string.
func (h *Handler) readInput(r *http.Request) (*essayInput, error) {
	in := &essayInput{mode: "text", topN: h.cfg.TopWords}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch {
	case strings.HasPrefix(mediaType, "multipart/"):
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, fmt.Errorf("%w: malformed multipart body: %v", rank.ErrInvalidArgument, err)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, fmt.Errorf("%w: missing file field", rank.ErrInvalidArgument)
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", textload.ErrUnreadable, err)
		}
		in.fileName = header.Filename
		in.content = string(data)
		if v := r.FormValue("mode"); v != "" {
			in.mode = v
		}
		if v := r.FormValue("top_words"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("%w: top_words must be an integer", rank.ErrInvalidArgument)
			}
			in.topN = n
		}

	default:
		var body struct {
			Path     string `json:"path"`
			Mode     string `json:"mode"`
			TopWords *int   `json:"top_words"`
		}
		if err := json.NewDecoder(io.LimitReader(r.Body, maxUploadBytes)).Decode(&body); err != nil {
			return nil, fmt.Errorf("%w: malformed JSON body: %v", rank.ErrInvalidArgument, err)
		}
		if body.Path == "" {
			return nil, fmt.Errorf("%w: path is required", rank.ErrInvalidArgument)
		}
		content, err := textload.Load(body.Path)
		if err != nil {
			return nil, err
		}
		in.fileName = body.Path
		in.content = content
		if body.Mode != "" {
			in.mode = body.Mode
		}
		if body.TopWords != nil {
			in.topN = *body.TopWords
		}
	}

	if v := r.URL.Query().Get("top_words"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: top_words must be an integer", rank.ErrInvalidArgument)
		}
		in.topN = n
	}

	switch in.mode {
	case "text", "urls":
	default:
		return nil, fmt.Errorf("%w: mode must be \"text\" or \"urls\"", rank.ErrInvalidArgument)
	}
	return in, nil
}

// analyze runs the input synchronously according to its mode.
func (h *Handler) analyze(r *http.Request, in *essayInput) (*models.Analysis, error) {
	if in.mode == "text" {
		return h.engine.AnalyzeText(in.content, in.topN), nil
	}

	urls := splitLines(in.content)
	if h.cfg.Server.MaxURLs > 0 && len(urls) > h.cfg.Server.MaxURLs {
		return nil, fmt.Errorf("%w: at most %d urls are supported", errTooManyURLs, h.cfg.Server.MaxURLs)
	}
	return h.engine.AnalyzeURLs(r.Context(), urls, in.topN)
}

// analyzeEssay responds to POST /v1/essays.
func (h *Handler) analyzeEssay(w http.ResponseWriter, r *http.Request) {
	in, err := h.readInput(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	result, err := h.analyze(r, in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// uploadBulk responds to POST /v1/essays/bulk: it accepts the upload, returns
// a file id immediately and finishes the analysis in the background.
func (h *Handler) uploadBulk(w http.ResponseWriter, r *http.Request) {
	in, err := h.readInput(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	id := uuid.NewString()
	h.jobs.Put(Job{ID: id, FileName: in.fileName, Status: StatusProcessing})

	// The request context dies with this handler; the job keeps running.
	req := r.WithContext(context.WithoutCancel(r.Context()))
	go func() {
		result, err := h.analyze(req, in)
		if err != nil {
			h.logger.Error("bulk analysis failed", "file_id", id, "error", err)
			h.jobs.Put(Job{ID: id, FileName: in.fileName, Status: StatusFailed, Error: err.Error()})
			return
		}
		h.jobs.Put(Job{ID: id, FileName: in.fileName, Status: StatusProcessed, Result: result})
	}()

	writeJSON(w, http.StatusOK, map[string]string{"file_id": id})
}

// jobByID responds to GET /v1/essays/{file_id}.
func (h *Handler) jobByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("file_id")
	job, ok := h.jobs.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, models.ErrorInfo{
			Type:    "not_found",
			Message: "unknown file id, verify and try again",
		})
		return
	}
	if job.Status == StatusProcessing {
		writeJSON(w, http.StatusAccepted, job)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// writeError maps the error taxonomy onto HTTP status codes: missing files
// are 404, caller mistakes are 400, everything else is 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var status int
	var kind string
	switch {
	case errors.Is(err, textload.ErrNotFound):
		status, kind = http.StatusNotFound, "not_found"
	case errors.Is(err, textload.ErrUnreadable):
		status, kind = http.StatusBadRequest, "unreadable"
	case errors.Is(err, rank.ErrInvalidArgument):
		status, kind = http.StatusBadRequest, "invalid_argument"
	case errors.Is(err, errTooManyURLs):
		status, kind = http.StatusBadRequest, "limit_exceeded"
	default:
		status, kind = http.StatusInternalServerError, "internal"
		h.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, models.ErrorInfo{Type: kind, Message: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func splitLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
