package handlers

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"convai/internal/api/errors"
	"convai/internal/api/middleware"
	"convai/internal/api/v1/dto"
	"convai/internal/api/v1/services"
	"convai/internal/app/pipeline"
)

// MediaHandler handles the upload and synthesis forms
type MediaHandler struct {
	service     services.MediaService
	page        *PageHandler
	maxUploadMB int64
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(service services.MediaService, page *PageHandler, maxUploadMB int64) *MediaHandler {
	return &MediaHandler{
		service:     service,
		page:        page,
		maxUploadMB: maxUploadMB,
	}
}

// Upload handles POST /upload and POST /upload_audio
// Stores the audio_data file, transcribes it and renders the page with the transcript.
// A missing or empty file is reported as a flash message with a redirect home.
func (h *MediaHandler) Upload(c *gin.Context) {
	if h.maxUploadMB > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadMB<<20)
	}

	file, header, err := c.Request.FormFile(dto.AudioField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			middleware.HandleError(c, errors.NewTooLargeError(h.maxUploadMB))
			return
		}
		h.redirectWithFlash(c, "No audio file selected")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		h.redirectWithFlash(c, "No audio file selected")
		return
	}

	result, err := h.service.Upload(c.Request.Context(), header.Filename, file)
	switch {
	case stderrors.Is(err, pipeline.ErrEmptyUpload):
		h.redirectWithFlash(c, "No audio file selected")
		return
	case stderrors.Is(err, pipeline.ErrUnsupportedFormat):
		h.redirectWithFlash(c, fmt.Sprintf("Unsupported audio format: %s", header.Filename))
		return
	case err != nil:
		middleware.HandleError(c, err)
		return
	}

	h.page.Render(c, dto.IndexView{
		Flashes:       []string{fmt.Sprintf("Audio file \"%s\" uploaded successfully", result.AudioName)},
		Transcription: result.Transcript,
		Sentiment:     result.Sentiment,
	})
}

// Synthesize handles POST /upload_text and POST /text_to_speech
// Renders the text field to a stored MP3. Without sentiment the client is redirected
// home; with sentiment the page is rendered with the summary.
func (h *MediaHandler) Synthesize(c *gin.Context) {
	var form dto.SynthesisForm
	if err := middleware.ValidateForm(c, &form); err != nil {
		middleware.HandleError(c, err)
		return
	}

	result, err := h.service.Synthesize(c.Request.Context(), form.Text)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	message := fmt.Sprintf("Audio generated and saved as %s", result.AudioName)
	if !h.service.SentimentEnabled() {
		h.redirectWithFlash(c, message)
		return
	}
	h.page.Render(c, dto.IndexView{
		Flashes:   []string{message},
		Sentiment: result.Sentiment,
	})
}

func (h *MediaHandler) redirectWithFlash(c *gin.Context, message string) {
	addFlash(c, message)
	c.Redirect(http.StatusFound, "/")
}
