package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"figure-catalog/internal/catalog/model"
	"figure-catalog/internal/catalog/service"
	"figure-catalog/internal/fileio"
	"figure-catalog/internal/ingest"
	"figure-catalog/internal/store"
)

// Handler is the thin HTTP boundary over the matching and ingestion engines.
type Handler struct {
	store     store.Store
	matcher   *service.Matcher
	maxUpload int64 // multipart memory budget, same limit the body cap enforces
	log       zerolog.Logger
}

func New(st store.Store, matcher *service.Matcher, maxUploadBytes int64, log zerolog.Logger) *Handler {
	return &Handler{store: st, matcher: matcher, maxUpload: maxUploadBytes, log: log}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/match", h.match)
	r.Post("/ingest", h.ingest)
	r.Get("/records", h.listRecords)
	r.Post("/records", h.createRecord)
	r.Get("/records/{id}", h.getRecord)
	r.Put("/records/{id}/tags/{tag}", h.addTag)
	r.Delete("/records/{id}/tags/{tag}", h.removeTag)
}

type matchRequest struct {
	Name string `json:"name"`
}

type matchResponse struct {
	Found  bool                 `json:"found"`
	Query  model.MatchQuery     `json:"query"`
	Record *model.CatalogRecord `json:"record,omitempty"`
}

func (h *Handler) match(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
		return
	}

	query, rec, err := h.matcher.Resolve(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("match failed")
		writeError(w, http.StatusInternalServerError, "match failed")
		return
	}

	// No match is a valid empty result, not an error.
	writeJSON(w, http.StatusOK, matchResponse{Found: rec != nil, Query: query, Record: rec})
	h.log.Info().Str("name", req.Name).Bool("found", rec != nil).Dur("elapsed", time.Since(start)).Msg("match")
}

type ingestResponse struct {
	Count int `json:"count"`
}

func (h *Handler) ingest(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		writeError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file: "+err.Error())
		return
	}
	defer file.Close()

	ing := ingest.NewIngestor(h.store, h.log)
	ing.Strict = toBool(r.FormValue("strict"), false)

	var count int
	if fileio.IsDelimited(header.Filename) {
		count, err = ing.Ingest(r.Context(), fileio.Transcode(file))
	} else {
		var rows [][]string
		rows, err = fileio.ReadRows(file, header.Filename)
		if err != nil {
			writeError(w, http.StatusBadRequest, "failed to read file: "+err.Error())
			return
		}
		count, err = ing.IngestRows(r.Context(), rows)
	}
	if err != nil {
		if _, ok := ingest.AsDateParseError(err); ok {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		var ie *ingest.IngestionError
		if errors.As(err, &ie) {
			writeError(w, http.StatusBadRequest, ie.Error())
			return
		}
		h.log.Error().Err(err).Msg("ingest failed")
		writeError(w, http.StatusInternalServerError, "ingest failed")
		return
	}

	writeJSON(w, http.StatusOK, ingestResponse{Count: count})
	h.log.Info().
		Str("file", header.Filename).
		Int("count", count).
		Dur("elapsed", time.Since(start)).
		Msg("ingest done")
}

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	var (
		recs []model.CatalogRecord
		err  error
	)
	if v := r.URL.Query().Get("line_up"); v != "" {
		lineUp, ok := lookupLineUp(v)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown line_up: "+v)
			return
		}
		recs, err = h.store.FindAllByLineUp(r.Context(), lineUp)
	} else {
		recs, err = h.store.FindAll(r.Context())
	}
	if err != nil {
		h.log.Error().Err(err).Msg("list records")
		writeError(w, http.StatusInternalServerError, "list failed")
		return
	}
	if recs == nil {
		recs = []model.CatalogRecord{}
	}
	writeJSON(w, http.StatusOK, recs)
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	rec, err := h.store.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "record not found")
			return
		}
		h.log.Error().Err(err).Msg("get record")
		writeError(w, http.StatusInternalServerError, "get failed")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	var draft model.DraftRecord
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
		return
	}
	if draft.OriginalName == "" {
		writeError(w, http.StatusBadRequest, "originalName is required")
		return
	}
	if err := draft.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rec, err := h.store.Insert(r.Context(), draft)
	if err != nil {
		h.log.Error().Err(err).Msg("create record")
		writeError(w, http.StatusInternalServerError, "create failed")
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (h *Handler) addTag(w http.ResponseWriter, r *http.Request) {
	h.mutateTag(w, r, h.store.AddTag)
}

func (h *Handler) removeTag(w http.ResponseWriter, r *http.Request) {
	h.mutateTag(w, r, h.store.RemoveTag)
}

func (h *Handler) mutateTag(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id, tag string) error) {
	err := op(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "tag"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "record not found")
			return
		}
		h.log.Error().Err(err).Msg("mutate tag")
		writeError(w, http.StatusInternalServerError, "tag update failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func lookupLineUp(key string) (model.LineUp, bool) {
	for _, l := range model.LineUps {
		if string(l) == key {
			return l, true
		}
	}
	return "", false
}
