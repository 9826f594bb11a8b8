package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/wordhaze/wordhaze/pkg/buildinfo"
	"github.com/wordhaze/wordhaze/pkg/cache"
	"github.com/wordhaze/wordhaze/pkg/cloud/render"
	"github.com/wordhaze/wordhaze/pkg/errors"
	"github.com/wordhaze/wordhaze/pkg/pipeline"
)

// maxRequestBody caps request bodies at 1 MiB of JSON.
const maxRequestBody = 1 << 20

// cloudRequest is the JSON body for POST /v1/cloud.
//
// Pointer fields distinguish "absent" from an explicit zero, since zero
// is a meaningful value for margin and prefer_horizontal. Absent fields
// fall back to the pipeline defaults.
type cloudRequest struct {
	Text             string   `json:"text"`
	Width            int      `json:"width,omitempty"`
	Height           int      `json:"height,omitempty"`
	Margin           *int     `json:"margin,omitempty"`
	PreferHorizontal *float64 `json:"prefer_horizontal,omitempty"`
	RanksOnly        bool     `json:"ranks_only,omitempty"`
	MaxFontSize      int      `json:"max_font_size,omitempty"`
	Seed             *int64   `json:"seed,omitempty"`
	MinCount         int      `json:"min_count,omitempty"`
	Format           string   `json:"format,omitempty"`
}

// options converts the request into pipeline options.
//
// The server deliberately exposes no file inputs, stopword paths, or
// font selection; requests carry text only, and the font is server
// configuration.
func (req *cloudRequest) options(fontPath string) pipeline.Options {
	opts := pipeline.NewOptions()
	opts.Text = req.Text
	opts.Font = fontPath
	if req.Width > 0 {
		opts.Width = req.Width
	}
	if req.Height > 0 {
		opts.Height = req.Height
	}
	if req.Margin != nil {
		opts.Margin = *req.Margin
	}
	if req.PreferHorizontal != nil {
		opts.PreferHorizontal = *req.PreferHorizontal
	}
	opts.RanksOnly = req.RanksOnly
	if req.MaxFontSize > 0 {
		opts.MaxFontSize = req.MaxFontSize
	}
	if req.Seed != nil {
		opts.Seed = *req.Seed
	}
	if req.MinCount > 0 {
		opts.MinCount = req.MinCount
	}
	return opts
}

// contentTypes maps supported output formats to MIME types.
var contentTypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"tif":  "image/tiff",
	"tiff": "image/tiff",
}

func (s *Server) handleCloud(w http.ResponseWriter, r *http.Request) {
	var req cloudRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "text is required"))
		return
	}

	format := strings.ToLower(strings.TrimPrefix(req.Format, "."))
	if format == "" {
		format = "png"
	}
	contentType, ok := contentTypes[format]
	if !ok {
		s.writeError(w, r, errors.New(errors.ErrCodeUnsupportedFormat, "unsupported image format %q", format))
		return
	}

	opts := req.options(s.fontPath)
	if err := opts.Validate(); err != nil {
		s.writeError(w, r, err)
		return
	}

	key := cache.RenderKey(struct {
		Req  cloudRequest `json:"req"`
		Font string       `json:"font"`
	}{req, s.fontPath})

	if data, hit, err := s.cache.Get(r.Context(), key); err == nil && hit {
		s.logger.Debug("render cache hit", "request_id", requestIDFrom(r.Context()))
		w.Header().Set("Content-Type", contentType)
		w.Write(data)
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	data, err := render.Encode(result.Image, format)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.cache.Set(r.Context(), key, data, s.cacheTTL); err != nil {
		s.logger.Warn("render cache store failed", "error", err)
	}

	w.Header().Set("Content-Type", contentType)
	w.Write(data)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"version": buildinfo.Version,
		"commit":  buildinfo.Commit,
		"date":    buildinfo.Date,
	})
}

// errorResponse is the JSON error payload.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps structured error codes to HTTP statuses. Validation
// and format problems are the client's fault; everything else is ours.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidConfig, errors.ErrCodeUnsupportedFormat:
		status = http.StatusBadRequest
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"request_id", requestIDFrom(r.Context()),
			"code", code,
			"error", err,
		)
	}

	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(code),
		Message: errors.UserMessage(err),
	}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
