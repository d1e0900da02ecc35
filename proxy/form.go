package proxy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"

	livellm "github.com/livellm/livellm-go"
)

// transcribeForm builds the multipart body for /audio/transcribe.
func transcribeForm(req *livellm.TranscribeRequest) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("model", req.Model); err != nil {
		return nil, "", err
	}
	if req.Language != "" {
		if err := w.WriteField("language", req.Language); err != nil {
			return nil, "", err
		}
	}
	if len(req.GenConfig) > 0 {
		cfg, err := json.Marshal(req.GenConfig)
		if err != nil {
			return nil, "", err
		}
		if err := w.WriteField("gen_config", string(cfg)); err != nil {
			return nil, "", err
		}
	}

	name := req.File.Name
	if name == "" {
		name = "audio"
	}
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, name))
	if req.File.ContentType != "" {
		header.Set("Content-Type", req.File.ContentType)
	}
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(req.File.Content); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
