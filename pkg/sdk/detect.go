package sdk

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
)

// DetectResult is the diagnosis produced for one uploaded image. ID
// references the detection history entry stored server-side.
type DetectResult struct {
	ID               int64    `json:"id"`
	PredictedDisease *Disease `json:"predicted_disease"`
	Confidence       float64  `json:"confidence"`
	Recommendation   string   `json:"recommendation"`
	CropName         string   `json:"crop_name"`
	HealthyExample   string   `json:"healthy_example"`
	CareTips         string   `json:"care_tips"`
}

// Detect uploads an image for diagnosis. The analysis itself runs
// server-side; this call only carries the image and interprets the result.
func (c *Client) Detect(ctx context.Context, filename string, image io.Reader) (*DetectResult, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("image", filepath.Base(filename))
	if err != nil {
		return nil, fmt.Errorf("build upload: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("build upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("api/ai-detect/"), &buf)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	var result DetectResult
	if err := c.send(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
