package sdk

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Detection is one stored diagnosis in the detection history. Regular
// users see their own entries; experts and staff see everyone's.
type Detection struct {
	ID               int64     `json:"id"`
	User             *Profile  `json:"user"`
	Image            string    `json:"image"`
	PredictedDisease *Disease  `json:"predicted_disease"`
	Confidence       float64   `json:"confidence"`
	DetectedAt       time.Time `json:"detected_at"`
}

// ListDetections returns the caller's detection history.
func (c *Client) ListDetections(ctx context.Context) ([]Detection, error) {
	var detections []Detection
	if err := c.Do(ctx, http.MethodGet, "api/detections/", nil, &detections); err != nil {
		return nil, err
	}
	return detections, nil
}

// GetDetection returns one history entry by id.
func (c *Client) GetDetection(ctx context.Context, id int64) (*Detection, error) {
	var detection Detection
	if err := c.Do(ctx, http.MethodGet, fmt.Sprintf("api/detections/%d/", id), nil, &detection); err != nil {
		return nil, err
	}
	return &detection, nil
}
