package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/trackmycareer/careertrack/internal/analysis"
	"github.com/trackmycareer/careertrack/internal/fetch"
	"github.com/trackmycareer/careertrack/internal/ingestion"
	"github.com/trackmycareer/careertrack/internal/relay"
)

// maxUploadBytes bounds the whole request body, not just the
// in-memory multipart buffer.
const maxUploadBytes = 16 << 20 // 16 MiB

// AnalyzeRequest is the decoded analyze form. A resume may arrive as
// pasted text, a file, or both; the file wins unless its extracted
// text is shorter than the pasted text.
type AnalyzeRequest struct {
	TargetRole        string `validate:"required"`
	ResumeText        string
	JobDescription    string
	JobDescriptionURL string `validate:"omitempty,url"`
}

// handleAnalyze accepts the multipart upload, resolves the resume
// text, and either forwards to the external backend (relay mode) or
// runs the built-in engine (local mode). Exactly one temp file exists
// per request with a file part, and it is deleted on every exit path.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.errorResponse(w, http.StatusRequestEntityTooLarge, "upload exceeds the 16 MiB limit")
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	req := AnalyzeRequest{
		TargetRole:        r.FormValue("target_role"),
		ResumeText:        r.FormValue("resume_text"),
		JobDescription:    r.FormValue("job_description"),
		JobDescriptionURL: r.FormValue("job_description_url"),
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	var tmp *relay.TempFile
	file, header, err := r.FormFile("resume")
	switch {
	case err == nil:
		defer func() { _ = file.Close() }()
		tmp, err = relay.SaveUpload(s.cfg.UploadDir, header.Filename, file)
		if err != nil {
			log.Printf("[analyze] failed to persist upload: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "failed to store upload")
			return
		}
		defer tmp.Remove()
	case errors.Is(err, http.ErrMissingFile):
		// text-only submissions are a supported path
	default:
		s.errorResponse(w, http.StatusBadRequest, "invalid resume file part")
		return
	}

	// Text-only is allowed, but an upload with neither file nor text
	// has nothing to analyze.
	if tmp == nil && req.ResumeText == "" {
		s.errorResponse(w, http.StatusBadRequest, "provide a resume file or resume_text")
		return
	}

	req.JobDescription = s.resolveJobDescription(r, req)

	if s.forwarder != nil {
		s.analyzeRelay(w, r, req, tmp)
		return
	}
	s.analyzeLocal(w, r, req, tmp)
}

// analyzeRelay forwards the upload to the external backend and
// returns its body verbatim.
func (s *Server) analyzeRelay(w http.ResponseWriter, r *http.Request, req AnalyzeRequest, tmp *relay.TempFile) {
	fields := relay.Fields{
		ResumeText:     req.ResumeText,
		TargetRole:     req.TargetRole,
		JobDescription: req.JobDescription,
	}
	if tmp != nil {
		data, err := tmp.Read()
		if err != nil {
			log.Printf("[analyze] failed to read temp file: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "failed to read upload")
			return
		}
		fields.FileName = tmp.Original
		fields.File = data
	}

	body, err := s.forwarder.Forward(r.Context(), fields)
	if err != nil {
		log.Printf("[analyze] forwarding failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), clientMessage(err))
		return
	}

	// pass the backend body through unchanged
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Printf("[analyze] failed to write response: %v", err)
	}
}

// analyzeLocal runs the built-in analysis engine.
func (s *Server) analyzeLocal(w http.ResponseWriter, r *http.Request, req AnalyzeRequest, tmp *relay.TempFile) {
	var extracted string
	if tmp != nil {
		data, err := tmp.Read()
		if err != nil {
			log.Printf("[analyze] failed to read temp file: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "failed to read upload")
			return
		}
		extracted, err = ingestion.ExtractFileText(tmp.Original, "", data)
		if err != nil {
			log.Printf("[analyze] extraction failed: %v", err)
			s.errorResponse(w, HTTPStatus(err), clientMessage(err))
			return
		}
	}

	text := ingestion.PreferLonger(ingestion.CleanText(req.ResumeText), extracted)

	resp, err := s.analyzer.Analyze(r.Context(), analysis.Request{
		ResumeText:     text,
		TargetRole:     req.TargetRole,
		JobDescription: req.JobDescription,
	})
	if err != nil {
		log.Printf("[analyze] analysis failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), clientMessage(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// resolveJobDescription prefers the pasted description; a URL is
// fetched best-effort and failures degrade to no description rather
// than failing the analysis.
func (s *Server) resolveJobDescription(r *http.Request, req AnalyzeRequest) string {
	if req.JobDescription != "" || req.JobDescriptionURL == "" {
		return req.JobDescription
	}
	text, err := fetch.JobDescription(r.Context(), req.JobDescriptionURL, s.cfg.FetchTimeout)
	if err != nil {
		log.Printf("[analyze] job description fetch failed: %v", err)
		return ""
	}
	return text
}

// validationMessage turns validator errors into the prompt the user
// sees. The missing-role case gets specific copy; the rest fall back
// to the field name.
func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			switch fe.Field() {
			case "TargetRole":
				return "target_role is required"
			case "JobDescriptionURL":
				return "job_description_url must be a valid URL"
			}
		}
	}
	return "invalid request"
}
