package livellm

import (
	"encoding/base64"
	"strings"
)

// Role represents the role of a message sender in a conversation.
type Role string

const (
	RoleUser   Role = "user"
	RoleModel  Role = "model"
	RoleSystem Role = "system"
)

// FileCategory classifies binary message content by its MIME type.
type FileCategory string

const (
	FileAudio   FileCategory = "audio"
	FileImage   FileCategory = "image"
	FileVideo   FileCategory = "video"
	FileUnknown FileCategory = "unknown"
)

// CategoryOf returns the file category for a MIME type
// (e.g. "audio/mpeg" -> FileAudio, "image/png" -> FileImage).
func CategoryOf(mimeType string) FileCategory {
	switch {
	case strings.Contains(mimeType, "audio"):
		return FileAudio
	case strings.Contains(mimeType, "image"):
		return FileImage
	case strings.Contains(mimeType, "video"):
		return FileVideo
	default:
		return FileUnknown
	}
}

// Message represents a single message in a conversation.
// A message is binary when MimeType is set; Content then holds the
// base64-encoded payload. Otherwise Content is plain text.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
	// MimeType identifies binary content (e.g. "audio/mpeg", "image/png").
	// Empty for text messages.
	MimeType string `json:"mime_type,omitempty"`
	// Caption is an optional caption for binary content.
	Caption string `json:"caption,omitempty"`
}

// NewTextMessage creates a text message.
func NewTextMessage(role Role, content string) Message {
	return Message{Role: role, Content: content}
}

// NewSystemMessage creates a system text message.
func NewSystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// NewBinaryMessage creates a binary message from raw bytes.
// The content is base64-encoded for transport. Binary messages always
// originate from the user.
func NewBinaryMessage(data []byte, mimeType string) Message {
	return Message{
		Role:     RoleUser,
		Content:  base64.StdEncoding.EncodeToString(data),
		MimeType: mimeType,
	}
}

// WithCaption returns a copy of the message with the given caption.
func (m Message) WithCaption(caption string) Message {
	m.Caption = caption
	return m
}

// IsBinary returns true if the message carries binary content.
func (m Message) IsBinary() bool {
	return m.MimeType != ""
}

// Category returns the file category of a binary message,
// or FileUnknown for text messages.
func (m Message) Category() FileCategory {
	if !m.IsBinary() {
		return FileUnknown
	}
	return CategoryOf(m.MimeType)
}

// Bytes decodes the base64 content of a binary message.
func (m Message) Bytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(m.Content)
}
