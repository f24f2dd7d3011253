package checker

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/coapi/validator/pkg/errors"
	"github.com/coapi/validator/pkg/grammar"
	"github.com/coapi/validator/pkg/parser"
	"github.com/coapi/validator/pkg/serializer"
	"github.com/coapi/validator/pkg/server"
)

// HandleValidation handles POST /v1/validation. The body is one document;
// the response is always the outcome, with status 200, once the body has
// been read.
func (c *Checker) HandleValidation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	format, err := requestFormat(r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "invalid request", nil)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			server.WriteErrorFromErr(w, r,
				errors.WrapWithContext(errors.ErrCodePayloadTooLarge, "document too large", err,
					map[string]any{"limit": tooLarge.Limit}),
				"document too large", nil)
			return
		}
		server.WriteErrorFromErr(w, r,
			errors.Wrap(errors.ErrCodeInvalidRequest, "failed to read request body", err),
			"failed to read request body", nil)
		return
	}

	outcome := c.Check(r.Context(), body, format)
	serializer.RespondJSON(w, http.StatusOK, outcome)
}

// HandleGrammar handles GET /v1/grammar with a summary of the loaded grammar.
func (c *Checker) HandleGrammar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"method not allowed", false, map[string]any{"method": r.Method})
		return
	}
	if c.grammar == nil {
		server.WriteError(w, r, http.StatusServiceUnavailable, errors.ErrCodeUnavailable,
			"grammar not loaded", true, nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, grammar.Summarize(c.grammar))
}

// requestFormat picks the document format from ?format=, then Content-Type.
func requestFormat(r *http.Request) (parser.Format, error) {
	if q := r.URL.Query().Get("format"); q != "" {
		f, err := parser.ParseFormat(q)
		if err != nil {
			return "", errors.WrapWithContext(errors.ErrCodeInvalidRequest, "unsupported document format", err,
				map[string]any{"format": q})
		}
		return f, nil
	}
	return parser.FormatFromContentType(r.Header.Get("Content-Type")), nil
}
