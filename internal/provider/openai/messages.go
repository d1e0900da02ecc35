package openai

import (
	"fmt"

	"github.com/openai/openai-go"

	livellm "github.com/livellm/livellm-go"
)

// convertMessages translates livellm messages to OpenAI chat messages.
// Images are passed as data URIs; other binary categories are not
// representable on the chat endpoint and must be transformed upstream.
func convertMessages(messages []livellm.Message) ([]openai.ChatCompletionMessageParamUnion, error) {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		if m.IsBinary() {
			converted, err := convertBinaryMessage(m)
			if err != nil {
				return nil, err
			}
			out = append(out, converted)
			continue
		}

		switch m.Role {
		case livellm.RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case livellm.RoleModel:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out, nil
}

func convertBinaryMessage(m livellm.Message) (openai.ChatCompletionMessageParamUnion, error) {
	if m.Category() != livellm.FileImage {
		return openai.ChatCompletionMessageParamUnion{}, &livellm.TransportError{
			Provider:   livellm.ProviderOpenAI,
			StatusCode: 400,
			Msg:        fmt.Sprintf("content type %s is not supported on the chat endpoint", m.MimeType),
		}
	}

	parts := []openai.ChatCompletionContentPartUnionParam{
		openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
			URL: fmt.Sprintf("data:%s;base64,%s", m.MimeType, m.Content),
		}),
	}
	if m.Caption != "" {
		parts = append([]openai.ChatCompletionContentPartUnionParam{
			openai.TextContentPart(m.Caption),
		}, parts...)
	}
	return openai.UserMessage(parts), nil
}
