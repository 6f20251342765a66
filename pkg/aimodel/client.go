package aimodel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"oda-chatbot-be/internal/entity"
)

// Client is the contract for the external recommendation model service.
type Client interface {
	FullUtilization(ctx context.Context, data *entity.PublicData) (json.RawMessage, error)
	SingleUtilization(ctx context.Context, data *entity.PublicData, analysisType string) ([]string, error)
}

type HTTPClient struct {
	BaseURL string
	Client  *http.Client
}

var _ Client = &HTTPClient{}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

// --- Request structs (internal to this package) ---

type dataInfo struct {
	FileName       string `json:"fileName"`
	Title          string `json:"title"`
	Category       string `json:"category"`
	Keywords       string `json:"keywords"`
	Description    string `json:"description"`
	ProviderAgency string `json:"providerAgency"`
}

type fullUtilizationRequest struct {
	DataInfo dataInfo `json:"dataInfo"`
}

type singleUtilizationRequest struct {
	DataInfo     dataInfo `json:"dataInfo"`
	AnalysisType string   `json:"analysisType"`
}

func newDataInfo(data *entity.PublicData) dataInfo {
	return dataInfo{
		FileName:       data.FileDataName,
		Title:          data.Title,
		Category:       data.ClassificationSystem,
		Keywords:       data.Keywords,
		Description:    data.Description,
		ProviderAgency: data.ProviderAgency,
	}
}

func (c *HTTPClient) FullUtilization(ctx context.Context, data *entity.PublicData) (json.RawMessage, error) {
	body, err := c.post(ctx, "/api/ai/data/utilization", fullUtilizationRequest{DataInfo: newDataInfo(data)})
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("model service returned invalid JSON")
	}
	return json.RawMessage(body), nil
}

func (c *HTTPClient) SingleUtilization(ctx context.Context, data *entity.PublicData, analysisType string) ([]string, error) {
	body, err := c.post(ctx, "/api/ai/data/utilization/single", singleUtilizationRequest{
		DataInfo:     newDataInfo(data),
		AnalysisType: analysisType,
	})
	if err != nil {
		return nil, err
	}
	var recommendations []string
	if err := json.Unmarshal(body, &recommendations); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return recommendations, nil
}

func (c *HTTPClient) post(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+path, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("model service request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model service returned status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
