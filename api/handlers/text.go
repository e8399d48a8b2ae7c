// ABOUTME: Text helper handlers for the Huma API
// ABOUTME: Exposes HTML truncation, tag stripping and plain-text conversion over HTTP

package handlers

import (
	"context"
	"net/http"

	"realtorist-web/api/dto/mappers"
	"realtorist-web/api/dto/requests"
	"realtorist-web/api/dto/responses"
	"realtorist-web/core/errors"
	"realtorist-web/core/interfaces"
	"realtorist-web/pkg/utils/html"
	"github.com/danielgtaylor/huma/v2"
)

// TextHandler handles text helper HTTP requests
type TextHandler struct {
	logger interfaces.Logger
}

// NewTextHandler creates a new text handler
func NewTextHandler(logger interfaces.Logger) *TextHandler {
	return &TextHandler{logger: logger}
}

// RegisterRoutes registers all text helper routes
func (h *TextHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "truncateText",
		Method:      http.MethodPost,
		Path:        "/api/text/truncate",
		Summary:     "Truncate HTML or plain text",
		Description: "Shortens text to a visible character budget. HTML mode keeps tags balanced.",
		Tags:        []string{"Text"},
	}, h.Truncate)

	huma.Register(api, huma.Operation{
		OperationID: "stripHtml",
		Method:      http.MethodPost,
		Path:        "/api/text/strip",
		Summary:     "Strip HTML tags",
		Description: "Removes every tag and leaves entities untouched",
		Tags:        []string{"Text"},
	}, h.Strip)

	huma.Register(api, huma.Operation{
		OperationID: "plainText",
		Method:      http.MethodPost,
		Path:        "/api/text/plain",
		Summary:     "Convert HTML to plain text",
		Description: "Decodes entities, turns line breaks into newlines and removes tags",
		Tags:        []string{"Text"},
	}, h.PlainText)
}

// TruncateInput defines the input for the Truncate operation
type TruncateInput struct {
	Body requests.TruncateRequest `json:"body"`
}

// TextOutput defines the output shared by the text operations
type TextOutput struct {
	Body responses.TextResponse
}

// ConvertInput defines the input for the Strip and PlainText operations
type ConvertInput struct {
	Body requests.ConvertRequest `json:"body"`
}

// Truncate handles the POST /api/text/truncate endpoint
func (h *TextHandler) Truncate(ctx context.Context, input *TruncateInput) (*TextOutput, error) {
	req := input.Body
	req.ApplyDefaults()

	if req.Mode != requests.ModeDelimiter && req.MaxChars < 1 {
		return nil, toHumaError(&errors.ValidationError{Field: "max_chars", Message: "must be at least 1"})
	}

	var result string
	switch req.Mode {
	case requests.ModeText:
		result = html.Truncate(req.Text, req.MaxChars, *req.Trailing)
	case requests.ModeWords:
		result = html.TruncateWords(req.Text, req.MaxChars, *req.Trailing)
	case requests.ModeDelimiter:
		result = html.TruncateHTMLByDelimiter(req.Text, req.Delimiter)
	default:
		result = html.TruncateHTMLWithTrailing(req.Text, req.MaxChars, *req.Trailing)
	}

	if h.logger != nil {
		h.logger.Debug("Truncated text", map[string]interface{}{
			"mode":       req.Mode,
			"max_chars":  req.MaxChars,
			"input_len":  len(req.Text),
			"output_len": len(result),
		})
	}

	return &TextOutput{Body: mappers.ToTextResponse(req.Text, result)}, nil
}

// Strip handles the POST /api/text/strip endpoint
func (h *TextHandler) Strip(ctx context.Context, input *ConvertInput) (*TextOutput, error) {
	result := html.StripHTML(input.Body.HTML)
	return &TextOutput{Body: mappers.ToTextResponse(result, result)}, nil
}

// PlainText handles the POST /api/text/plain endpoint
func (h *TextHandler) PlainText(ctx context.Context, input *ConvertInput) (*TextOutput, error) {
	result := html.HTMLToPlainText(input.Body.HTML)
	return &TextOutput{Body: mappers.ToTextResponse(result, result)}, nil
}
