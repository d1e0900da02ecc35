package livellm

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		mimeType string
		expected FileCategory
	}{
		{"audio/mpeg", FileAudio},
		{"audio/wav", FileAudio},
		{"image/png", FileImage},
		{"image/jpeg", FileImage},
		{"video/mp4", FileVideo},
		{"application/pdf", FileUnknown},
		{"text/plain", FileUnknown},
		{"", FileUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.mimeType, func(t *testing.T) {
			assert.Equal(t, tt.expected, CategoryOf(tt.mimeType))
		})
	}
}

func TestNewTextMessage(t *testing.T) {
	m := NewTextMessage(RoleUser, "hello")
	assert.Equal(t, RoleUser, m.Role)
	assert.Equal(t, "hello", m.Content)
	assert.False(t, m.IsBinary())
	assert.Equal(t, FileUnknown, m.Category())
}

func TestNewSystemMessage(t *testing.T) {
	m := NewSystemMessage("be brief")
	assert.Equal(t, RoleSystem, m.Role)
	assert.Equal(t, "be brief", m.Content)
	assert.False(t, m.IsBinary())
}

func TestNewBinaryMessage(t *testing.T) {
	data := []byte{0x49, 0x44, 0x33, 0x04}

	t.Run("encodes content as base64", func(t *testing.T) {
		m := NewBinaryMessage(data, "audio/mpeg")
		assert.Equal(t, RoleUser, m.Role)
		assert.Equal(t, base64.StdEncoding.EncodeToString(data), m.Content)
		assert.True(t, m.IsBinary())
		assert.Equal(t, FileAudio, m.Category())
	})

	t.Run("Bytes round-trips the payload", func(t *testing.T) {
		m := NewBinaryMessage(data, "image/png")
		decoded, err := m.Bytes()
		require.NoError(t, err)
		assert.Equal(t, data, decoded)
	})

	t.Run("WithCaption preserves content", func(t *testing.T) {
		m := NewBinaryMessage(data, "video/mp4").WithCaption("a short clip")
		assert.Equal(t, "a short clip", m.Caption)
		assert.True(t, m.IsBinary())
		assert.Equal(t, FileVideo, m.Category())
	})

	t.Run("Bytes fails on invalid base64", func(t *testing.T) {
		m := Message{Role: RoleUser, Content: "not base64!!!", MimeType: "audio/wav"}
		_, err := m.Bytes()
		assert.Error(t, err)
	})
}
