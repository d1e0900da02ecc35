package anthropic

import (
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"

	livellm "github.com/livellm/livellm-go"
)

// convertMessages translates livellm messages to Anthropic message
// params, hoisting system messages into the system block list. Images
// are passed as base64 blocks; audio and video are not representable
// on the messages endpoint and must be transformed upstream.
func convertMessages(messages []livellm.Message) ([]anthropic.MessageParam, []anthropic.TextBlockParam, error) {
	var result []anthropic.MessageParam
	var system []anthropic.TextBlockParam

	for _, m := range messages {
		if m.IsBinary() {
			converted, err := convertBinaryMessage(m)
			if err != nil {
				return nil, nil, err
			}
			result = append(result, converted)
			continue
		}
		// The API rejects empty text blocks.
		if m.Content == "" {
			continue
		}

		switch m.Role {
		case livellm.RoleSystem:
			system = append(system, anthropic.TextBlockParam{Text: m.Content})
		case livellm.RoleModel:
			result = append(result, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		default:
			result = append(result, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}

	return result, system, nil
}

func convertBinaryMessage(m livellm.Message) (anthropic.MessageParam, error) {
	if m.Category() != livellm.FileImage {
		return anthropic.MessageParam{}, errUnsupportedContent(m.MimeType)
	}

	blocks := []anthropic.ContentBlockParamUnion{}
	if m.Caption != "" {
		blocks = append(blocks, anthropic.NewTextBlock(m.Caption))
	}
	blocks = append(blocks, anthropic.NewImageBlockBase64(m.MimeType, m.Content))
	return anthropic.NewUserMessage(blocks...), nil
}

func errUnsupportedContent(mimeType string) error {
	return &livellm.TransportError{
		Provider:   livellm.ProviderAnthropic,
		StatusCode: 400,
		Msg:        fmt.Sprintf("content type %s is not supported on the messages endpoint", mimeType),
	}
}
