package server

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/fetch"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/nlp"
	"github.com/jonathan/resume-screener/internal/types"
)

// screenResponse is the full payload returned by POST /api/screen.
type screenResponse struct {
	*types.ScoringResult
	ScreeningID  string                       `json:"screening_id,omitempty"`
	Candidate    types.ContactInfo            `json:"candidate_info"`
	ResumeSkills *types.SkillExtractionResult `json:"resume_skills"`
	JobSkills    *types.SkillExtractionResult `json:"jd_skills"`
}

// handleScreen accepts a multipart resume upload plus a job description
// (inline text or a URL to fetch) and runs the full screening pipeline.
func (s *Server) handleScreen(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, &ErrMissingField{Field: "resume"})
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, &ErrMissingField{Field: "resume"})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".pdf" && ext != ".txt" {
		s.errorResponse(w, &ErrUnsupportedFormat{Extension: ext})
		return
	}

	jobText, jobSource, err := s.resolveJobText(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	resumeText, err := extractUpload(file, ext)
	if err != nil {
		s.logger.Error("resume extraction failed",
			zap.String("filename", header.Filename), zap.Error(err))
		s.errorResponse(w, err)
		return
	}

	weights, err := parseWeights(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	start := time.Now()

	resumeClean := ingestion.CleanText(resumeText)
	contact := ingestion.ExtractContactInfo(resumeText)

	// Both sides are normalized but never cleaned before extraction and
	// scoring: cleaning strips the punctuation that skills like "c++" and
	// "c#" depend on, and the two texts must get identical treatment.
	resumeNorm := nlp.Normalize(resumeText)
	jobNorm := nlp.Normalize(jobText)

	resumeSkills := s.index.Extract(resumeNorm, 1)
	jobSkills := s.index.Extract(jobNorm, 1)

	result, err := s.matcher.ScoreResume(resumeNorm, jobNorm, resumeSkills, jobSkills, weights)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.metrics.ObserveScreening(result.Rating, time.Since(start))

	resp := &screenResponse{
		ScoringResult: result,
		Candidate:     contact,
		ResumeSkills:  resumeSkills,
		JobSkills:     jobSkills,
	}

	if s.db != nil {
		id, err := s.db.SaveScreening(r.Context(), result,
			header.Filename, jobSource, resumeClean, jobText)
		if err != nil {
			s.logger.Error("failed to save screening", zap.Error(err))
		} else {
			resp.ScreeningID = id.String()
		}

		if _, err := s.db.SaveCandidate(r.Context(), contact,
			resumeClean, header.Filename); err != nil {
			s.logger.Error("failed to save candidate", zap.Error(err))
		}
	}

	s.logger.Info("screening completed",
		zap.String("resume", header.Filename),
		zap.Float64("score", result.FinalScore),
		zap.String("rating", result.Rating),
	)

	s.jsonResponse(w, http.StatusOK, resp)
}

// resolveJobText returns the job description text and a short label for
// where it came from. Exactly one of jd_text and jd_url must be provided.
func (s *Server) resolveJobText(r *http.Request) (text, source string, err error) {
	jdText := strings.TrimSpace(r.FormValue("jd_text"))
	jdURL := strings.TrimSpace(r.FormValue("jd_url"))

	switch {
	case jdText != "" && jdURL != "":
		return "", "", &ErrInvalidField{Field: "request", Reason: "provide jd_text or jd_url, not both"}
	case jdText != "":
		return jdText, "inline", nil
	case jdURL != "":
		text, err := fetch.JobText(r.Context(), jdURL, nil)
		if err != nil {
			return "", "", err
		}
		return text, jdURL, nil
	default:
		return "", "", &ErrMissingField{Field: "jd_text or jd_url"}
	}
}

// extractUpload spools the upload to a temp file so extraction can dispatch
// on the file extension, then extracts its plain text.
func extractUpload(file io.Reader, ext string) (string, error) {
	tmp, err := os.CreateTemp("", "resume-*"+ext)
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	return ingestion.ExtractTextFromFile(tmp.Name())
}

// parseWeights reads optional similarity_weight / skills_weight form fields.
// Returns nil when neither is set, letting the scorer apply its defaults.
func parseWeights(r *http.Request) (*types.Weights, error) {
	simStr := strings.TrimSpace(r.FormValue("similarity_weight"))
	skillStr := strings.TrimSpace(r.FormValue("skills_weight"))
	if simStr == "" && skillStr == "" {
		return nil, nil
	}

	w := types.DefaultWeights()
	if simStr != "" {
		v, err := strconv.ParseFloat(simStr, 64)
		if err != nil {
			return nil, &ErrInvalidField{Field: "similarity_weight", Reason: "must be a number"}
		}
		w.Similarity = v
	}
	if skillStr != "" {
		v, err := strconv.ParseFloat(skillStr, 64)
		if err != nil {
			return nil, &ErrInvalidField{Field: "skills_weight", Reason: "must be a number"}
		}
		w.Skills = v
	}
	return &w, nil
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, &ErrPersistenceDisabled{})
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}

	summaries, err := s.db.ListScreenings(r.Context(), limit)
	if err != nil {
		s.logger.Error("failed to list screenings", zap.Error(err))
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"screenings": summaries,
		"count":      len(summaries),
	})
}

func (s *Server) handleGetScreening(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, &ErrPersistenceDisabled{})
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, &ErrInvalidField{Field: "id", Reason: "must be a UUID"})
		return
	}

	screening, err := s.db.GetScreening(r.Context(), id)
	if err != nil {
		s.logger.Error("failed to get screening", zap.Error(err))
		s.errorResponse(w, err)
		return
	}
	if screening == nil {
		s.errorResponse(w, &ErrScreeningNotFound{ID: id})
		return
	}

	s.jsonResponse(w, http.StatusOK, screening)
}
