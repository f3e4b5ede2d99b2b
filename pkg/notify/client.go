package notify

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client delivers order events to an external webhook so restaurant-side
// tooling can react to new orders. Delivery is best-effort; callers decide
// whether a failure matters.
type Client struct {
	BaseURL    string
	Username   string
	Password   string
	HTTPClient *http.Client
}

type OrderCreatedEvent struct {
	OrderID      uint      `json:"order_id"`
	RestaurantID uint      `json:"restaurant_id"`
	CustomerID   uint      `json:"customer_id"`
	TotalPrice   string    `json:"total_price"`
	CreatedAt    time.Time `json:"created_at"`
}

type eventResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewClient(baseURL, username, password string) *Client {
	return &Client{
		BaseURL:  baseURL,
		Username: username,
		Password: password,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// OrderCreated posts a new-order event to the configured webhook.
func (c *Client) OrderCreated(event OrderCreatedEvent) error {
	jsonData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	url := c.BaseURL + "/events/order-created"
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.Username != "" {
		auth := base64.StdEncoding.EncodeToString([]byte(c.Username + ":" + c.Password))
		req.Header.Set("Authorization", "Basic "+auth)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send event: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, string(body))
	}

	var response eventResponse
	if err := json.Unmarshal(body, &response); err == nil && !response.Success {
		return fmt.Errorf("webhook rejected event: %s", response.Message)
	}

	return nil
}
