package google

import (
	"fmt"

	"google.golang.org/genai"

	livellm "github.com/livellm/livellm-go"
)

// convertMessages translates livellm messages to genai contents.
// Gemini has no dedicated system role on this path, so system messages
// are sent as user turns. Binary content of every category rides as an
// inline blob.
func convertMessages(messages []livellm.Message) ([]*genai.Content, error) {
	var contents []*genai.Content

	for _, m := range messages {
		role := "user"
		if m.Role == livellm.RoleModel {
			role = "model"
		}

		var parts []*genai.Part
		if m.IsBinary() {
			data, err := m.Bytes()
			if err != nil {
				return nil, &livellm.TransportError{
					Provider: livellm.ProviderGoogle,
					Msg:      fmt.Sprintf("decoding %s content", m.MimeType),
					Err:      err,
				}
			}
			if m.Caption != "" {
				parts = append(parts, &genai.Part{Text: m.Caption})
			}
			parts = append(parts, &genai.Part{
				InlineData: &genai.Blob{
					Data:     data,
					MIMEType: m.MimeType,
				},
			})
		} else if m.Content != "" {
			parts = append(parts, &genai.Part{Text: m.Content})
		}

		if len(parts) > 0 {
			contents = append(contents, &genai.Content{
				Role:  role,
				Parts: parts,
			})
		}
	}

	return contents, nil
}
