package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/autoresume/internal/experience"
	"github.com/jonathan/autoresume/internal/parsing"
	"github.com/jonathan/autoresume/internal/rendering"
	"github.com/jonathan/autoresume/internal/types"
)

// validationError converts a validator error into an *ErrValidation for the first failing field
func validationError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return &ErrValidation{Field: ve.Field(), Message: ve.Tag()}
	}
	return &ErrValidation{Field: "body", Message: "invalid request"}
}

// handleBullets rewrites free text into generic bullets
func (s *Server) handleBullets(w http.ResponseWriter, r *http.Request) {
	var req types.TextRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, validationError(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, types.BulletsResponse{Bullets: s.engine.RewriteToBullets(req.Text)})
}

// handleStar builds a STAR bullet group
func (s *Server) handleStar(w http.ResponseWriter, r *http.Request) {
	var req types.StarRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, validationError(err))
		return
	}

	bullets := s.engine.MakeStarBullets(req.Text, req.Role, req.Org, parsing.NormalizeTools(s.engine.Lexicon(), req.Tools))
	s.jsonResponse(w, http.StatusOK, types.BulletsResponse{Bullets: bullets})
}

// handleXyz builds XYZ bullets
func (s *Server) handleXyz(w http.ResponseWriter, r *http.Request) {
	var req types.XyzRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, validationError(err))
		return
	}

	bullets := s.engine.MakeXyzBullets(req.Text, parsing.NormalizeTools(s.engine.Lexicon(), req.Tools), req.MaxBullets)
	s.jsonResponse(w, http.StatusOK, types.BulletsResponse{Bullets: bullets})
}

// handleClassify labels each sentence with its STAR role
func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req types.TextRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, validationError(err))
		return
	}

	sentences, err := s.engine.ClassifyText(req.Text)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if sentences == nil {
		sentences = []types.ClassifiedSentence{}
	}
	s.jsonResponse(w, http.StatusOK, types.ClassifyResponse{Sentences: sentences})
}

// handleLint runs the style and taboo checks over a built resume
func (s *Server) handleLint(w http.ResponseWriter, r *http.Request) {
	var resume types.Resume
	if err := s.decodeJSON(w, r, &resume); err != nil {
		s.writeError(w, err)
		return
	}

	reports := s.engine.Lint(&resume, s.cfg.TabooPhrases)
	if reports == nil {
		reports = []types.BulletReport{}
	}
	s.jsonResponse(w, http.StatusOK, reports)
}

// handleBuildResume builds a resume from a raw record and stores it when persistence is on
func (s *Server) handleBuildResume(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, &ErrValidation{Field: "body", Message: err.Error()})
		return
	}

	raw, err := experience.ParseResume(body, experience.FormatJSON)
	if err != nil {
		s.writeError(w, err)
		return
	}

	warnings := experience.ValidateResume(raw)
	if s.cfg.Strict && len(warnings) > 0 {
		s.writeError(w, &ErrValidation{Field: "resume", Message: strings.Join(warnings, "; ")})
		return
	}

	resume, err := experience.BuildResume(r.Context(), raw, experience.BuildOptions{
		Engine:        s.engine,
		MaxXyzBullets: s.cfg.MaxXyzBullets,
		TabooPhrases:  s.cfg.TabooPhrases,
		Logger:        s.logger,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := types.BuildResponse{Resume: resume, Warnings: warnings}
	status := http.StatusOK
	if s.store != nil {
		id, err := s.store.SaveBuild(r.Context(), raw, resume)
		if err != nil {
			s.writeError(w, err)
			return
		}
		resp.ID = &id
		status = http.StatusCreated
		s.logger.Info("build stored", zap.String("id", id.String()))
	}

	s.jsonResponse(w, status, resp)
}

// handleListBuilds lists stored builds, newest first
func (s *Server) handleListBuilds(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, &ErrStoreDisabled{})
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, &ErrValidation{Field: "limit", Message: "must be a number"})
			return
		}
		limit = n
	}

	summaries, err := s.store.ListBuilds(r.Context(), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, summaries)
}

// lookupBuild loads the build named by the {id} path value
func (s *Server) lookupBuild(r *http.Request) (*types.BuildRecord, error) {
	if s.store == nil {
		return nil, &ErrStoreDisabled{}
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return nil, &ErrValidation{Field: "id", Message: "must be a UUID"}
	}
	record, err := s.store.GetBuild(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, &ErrBuildNotFound{ID: id}
	}
	return record, nil
}

// handleGetBuild returns a stored build
func (s *Server) handleGetBuild(w http.ResponseWriter, r *http.Request) {
	record, err := s.lookupBuild(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, record)
}

// handleGetBuildHTML renders a stored build as an HTML page
func (s *Server) handleGetBuildHTML(w http.ResponseWriter, r *http.Request) {
	record, err := s.lookupBuild(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	page, err := rendering.RenderHTML(record.Output)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, page); err != nil {
		s.logger.Error("error writing HTML response", zap.Error(err))
	}
}
