package livellm

// SpeakRequest is a request to convert text to speech.
type SpeakRequest struct {
	Model        string         `json:"model"`
	Text         string         `json:"text"`
	Voice        string         `json:"voice"`
	OutputFormat string         `json:"output_format"`
	GenConfig    map[string]any `json:"gen_config,omitempty"`
}

// AudioFile is an audio payload submitted for transcription.
type AudioFile struct {
	// Name is the filename presented to the provider (e.g. "audio.mp3").
	Name        string
	Content     []byte
	ContentType string
}

// TranscribeRequest is a request to convert audio to text.
type TranscribeRequest struct {
	Model string
	File  AudioFile
	// Language is an optional hint (e.g. "en").
	Language  string
	GenConfig map[string]any
}

// TranscribeResponse is the result of an audio transcription.
type TranscribeResponse struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}
