package sdk

import (
	"context"
	"fmt"
	"net/http"
)

// Disease is one entry in the disease reference catalog.
type Disease struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Species         string `json:"species"`
	Description     string `json:"description"`
	Treatment       string `json:"treatment"`
	HealthyImageURL string `json:"healthy_image_url"`
	CareTips        string `json:"care_tips"`
}

// DiseaseInput carries the writable fields for create and update.
type DiseaseInput struct {
	Name            string `json:"name"`
	Species         string `json:"species"`
	Description     string `json:"description"`
	Treatment       string `json:"treatment"`
	HealthyImageURL string `json:"healthy_image_url"`
	CareTips        string `json:"care_tips"`
}

// ListDiseases returns the full disease catalog.
func (c *Client) ListDiseases(ctx context.Context) ([]Disease, error) {
	var diseases []Disease
	if err := c.Do(ctx, http.MethodGet, "api/diseases/", nil, &diseases); err != nil {
		return nil, err
	}
	return diseases, nil
}

// GetDisease returns one catalog entry by id.
func (c *Client) GetDisease(ctx context.Context, id int64) (*Disease, error) {
	var disease Disease
	if err := c.Do(ctx, http.MethodGet, fmt.Sprintf("api/diseases/%d/", id), nil, &disease); err != nil {
		return nil, err
	}
	return &disease, nil
}

// CreateDisease adds a catalog entry. Expert or staff credentials are
// required server-side.
func (c *Client) CreateDisease(ctx context.Context, input DiseaseInput) (*Disease, error) {
	if input.Name == "" {
		return nil, validationError("name", "name is required")
	}
	if input.Species == "" {
		return nil, validationError("species", "species is required")
	}
	var disease Disease
	if err := c.Do(ctx, http.MethodPost, "api/diseases/", input, &disease); err != nil {
		return nil, err
	}
	return &disease, nil
}

// UpdateDisease replaces a catalog entry in full.
func (c *Client) UpdateDisease(ctx context.Context, id int64, input DiseaseInput) (*Disease, error) {
	var disease Disease
	if err := c.Do(ctx, http.MethodPut, fmt.Sprintf("api/diseases/%d/", id), input, &disease); err != nil {
		return nil, err
	}
	return &disease, nil
}

// DeleteDisease removes a catalog entry.
func (c *Client) DeleteDisease(ctx context.Context, id int64) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("api/diseases/%d/", id), nil, nil)
}
