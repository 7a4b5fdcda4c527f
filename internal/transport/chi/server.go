package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/docmatch/internal/domain"
	"github.com/kailas-cloud/docmatch/internal/domain/comparison"
	"github.com/kailas-cloud/docmatch/internal/extract"
	logpkg "github.com/kailas-cloud/docmatch/internal/logger"
	compareuc "github.com/kailas-cloud/docmatch/internal/usecase/compare"
	healthuc "github.com/kailas-cloud/docmatch/internal/usecase/health"
)

const (
	defaultMaxTerms         = 200
	defaultMaxUploadBytes   = 10 << 20
	defaultMaxDocumentBytes = 2 << 20
	multipartMemory         = 8 << 20
)

// allTerms as top_terms returns every term of a summary, uncapped.
const allTerms = -1

// Upload form fields.
const (
	fieldJobDescription = "job_description"
	fieldResume         = "resume"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// documentComparer compares uploaded documents.
type documentComparer interface {
	CompareDocuments(ctx context.Context, jobDescription, resume extract.Source) (comparison.Result, error)
}

// Server serves the comparison HTTP API.
type Server struct {
	comparer         compareuc.Comparer
	documents        documentComparer
	health           *healthuc.Service
	maxTerms         int
	maxUploadBytes   int64
	maxDocumentBytes int
	logger           *zap.Logger
	errorHandlers    []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	comparer compareuc.Comparer,
	documents documentComparer,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		comparer:         comparer,
		documents:        documents,
		health:           health,
		maxTerms:         defaultMaxTerms,
		maxUploadBytes:   defaultMaxUploadBytes,
		maxDocumentBytes: defaultMaxDocumentBytes,
		logger:           logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest, ErrorCodeInvalidInput),
		sentinelHandler(domain.ErrDocumentTooLarge, http.StatusRequestEntityTooLarge, ErrorCodeDocumentTooLarge),
		sentinelHandler(domain.ErrUnsupportedFormat, http.StatusUnsupportedMediaType, ErrorCodeUnsupportedFormat),
		sentinelHandler(domain.ErrCorruptDocument, http.StatusUnprocessableEntity, ErrorCodeCorruptDocument),
		sentinelHandler(domain.ErrResourceUnavailable,
			http.StatusServiceUnavailable, ErrorCodeResourceUnavailable),
	}
	return s
}

// WithLimits sets the default term cap, the request body limit and the
// per-document size limit. Non-positive values keep the defaults.
func (s *Server) WithLimits(maxTerms int, maxUploadBytes int64, maxDocumentBytes int) *Server {
	if maxTerms > 0 {
		s.maxTerms = maxTerms
	}
	if maxUploadBytes > 0 {
		s.maxUploadBytes = maxUploadBytes
	}
	if maxDocumentBytes > 0 {
		s.maxDocumentBytes = maxDocumentBytes
	}
	return s
}

// Routes mounts the API on r.
func (s *Server) Routes(r chi.Router) {
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, ErrorCodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrorCodeMethodNotAllowed, "method not allowed")
	})

	r.Get("/health", s.HealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/compare", s.Compare)
		r.Post("/compare/upload", s.CompareUpload)
	})
}

// Compare handles POST /api/v1/compare.
func (s *Server) Compare(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, ErrorCodeDocumentTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.JobDescription == nil {
		writeError(w, http.StatusBadRequest, ErrorCodeInvalidInput, "job_description is required")
		return
	}
	if req.Resume == nil {
		writeError(w, http.StatusBadRequest, ErrorCodeInvalidInput, "resume is required")
		return
	}
	topTerms, err := s.topTerms(req.TopTerms)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeInvalidInput, err.Error())
		return
	}
	if err := s.checkSize(fieldJobDescription, len(*req.JobDescription)); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	if err := s.checkSize(fieldResume, len(*req.Resume)); err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	res, err := s.comparer.Compare(r.Context(), *req.JobDescription, *req.Resume)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, compareResponse(res, topTerms))
}

// CompareUpload handles POST /api/v1/compare/upload.
// Both documents arrive as multipart file parts; a plain form value is
// accepted as text in place of a file.
func (s *Server) CompareUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, ErrorCodeDocumentTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid multipart form: "+err.Error())
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	jd, err := formSource(r, fieldJobDescription)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeInvalidInput, err.Error())
		return
	}
	cv, err := formSource(r, fieldResume)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeInvalidInput, err.Error())
		return
	}

	var top *int
	if v := r.FormValue("top_terms"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, ErrorCodeInvalidInput, "top_terms must be an integer")
			return
		}
		top = &n
	}
	topTerms, err := s.topTerms(top)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeInvalidInput, err.Error())
		return
	}
	if err := s.checkSize(fieldJobDescription, len(jd.Data)); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	if err := s.checkSize(fieldResume, len(cv.Data)); err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	res, err := s.documents.CompareDocuments(r.Context(), jd, cv)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, compareResponse(res, topTerms))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// topTerms resolves the requested list length. Absent or 0 means the server
// default, allTerms means uncapped (returned as 0), larger values are capped.
func (s *Server) topTerms(requested *int) (int, error) {
	switch {
	case requested == nil || *requested == 0:
		return s.maxTerms, nil
	case *requested == allTerms:
		return 0, nil
	case *requested < 0:
		return 0, fmt.Errorf("top_terms must be positive, 0 or %d, got %d", allTerms, *requested)
	}
	return min(*requested, s.maxTerms), nil
}

// checkSize rejects a document above the per-document limit.
func (s *Server) checkSize(field string, size int) error {
	if size > s.maxDocumentBytes {
		return domain.NewDocumentTooLarge(field, size, s.maxDocumentBytes)
	}
	return nil
}

func formSource(r *http.Request, field string) (extract.Source, error) {
	file, header, err := r.FormFile(field)
	if err == nil {
		defer func() { _ = file.Close() }()
		return fileSource(file, header)
	}
	if !errors.Is(err, http.ErrMissingFile) {
		return extract.Source{}, fmt.Errorf("read %s: %w", field, err)
	}
	if vs, ok := r.MultipartForm.Value[field]; ok && len(vs) > 0 {
		return extract.Source{
			Name:        field + ".txt",
			ContentType: "text/plain; charset=utf-8",
			Data:        []byte(vs[0]),
		}, nil
	}
	return extract.Source{}, fmt.Errorf("%s is required", field)
}

func fileSource(file multipart.File, header *multipart.FileHeader) (extract.Source, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return extract.Source{}, fmt.Errorf("read %s: %w", header.Filename, err)
	}
	return extract.Source{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a client-safe message: the sentinel text, or the
// size details for an oversized document.
func safeDomainMessage(err error) string {
	var tooLarge *domain.DocumentTooLargeError
	if errors.As(err, &tooLarge) {
		return tooLarge.Error()
	}
	sentinels := []error{
		domain.ErrInvalidInput,
		domain.ErrDocumentTooLarge,
		domain.ErrUnsupportedFormat,
		domain.ErrCorruptDocument,
		domain.ErrResourceUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logpkg.FromContextOr(r.Context(), s.logger)
	log.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
