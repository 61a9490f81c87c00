package dto

import (
	"strings"

	"convai/internal/api/errors"
)

// AudioField is the multipart field carrying an uploaded recording
const AudioField = "audio_data"

// SynthesisForm is the text-to-speech form
type SynthesisForm struct {
	Text string `form:"text" binding:"required,max=5000"`
}

// Validate performs domain-specific validation
func (f *SynthesisForm) Validate() error {
	if strings.TrimSpace(f.Text) == "" {
		return errors.NewValidationError("Validation failed", map[string]string{"text": "is required"})
	}
	return nil
}

// UploadResponse describes the files written for one upload
type UploadResponse struct {
	AudioName      string `json:"audio_name"`
	TranscriptName string `json:"transcript_name"`
	Transcript     string `json:"transcript"`
	Sentiment      string `json:"sentiment,omitempty"`
}

// SynthesisResponse describes the file written for one synthesis
type SynthesisResponse struct {
	AudioName string `json:"audio_name"`
	Sentiment string `json:"sentiment,omitempty"`
}
