package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"pedezap/internal/usecase/interfaces"
)

var ErrMissingChannelGatewayURL = errors.New("missing CHANNEL_GATEWAY_URL")

// ChannelGateway pushes outbound messages to the external messaging-channel
// connector over HTTP. The connector owns the channel itself (pairing,
// reconnects, inbound webhooks); this client only posts sends.
//
// Env vars:
//   - CHANNEL_GATEWAY_URL (e.g. http://connector:3000)
//   - CHANNEL_GATEWAY_MOCK (1/true/yes/on: log sends instead of posting)
type ChannelGateway struct {
	baseURL  string
	client   *http.Client
	mockMode bool
}

var _ interfaces.IChannelGateway = (*ChannelGateway)(nil)

func NewChannelGateway(baseURL string) (*ChannelGateway, error) {
	if isChannelGatewayMockEnabled() {
		log.Printf("[channel][gateway] mock mode enabled")
		return &ChannelGateway{mockMode: true}, nil
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[channel][gateway] missing CHANNEL_GATEWAY_URL")
		return nil, ErrMissingChannelGatewayURL
	}

	return &ChannelGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}, nil
}

type sendTextPayload struct {
	Phone string `json:"phone"`
	Text  string `json:"text"`
}

type sendImagePayload struct {
	Phone    string `json:"phone"`
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption,omitempty"`
}

func (g *ChannelGateway) SendText(ctx context.Context, phone, text string) error {
	if g.mockMode {
		log.Printf("[channel][gateway] mock send-text phone=%s len=%d", phone, len(text))
		return nil
	}
	return g.post(ctx, "/messages/text", sendTextPayload{Phone: phone, Text: text})
}

func (g *ChannelGateway) SendImage(ctx context.Context, phone, imageURL, caption string) error {
	if g.mockMode {
		log.Printf("[channel][gateway] mock send-image phone=%s url=%s", phone, imageURL)
		return nil
	}
	return g.post(ctx, "/messages/image", sendImagePayload{Phone: phone, ImageURL: imageURL, Caption: caption})
}

func (g *ChannelGateway) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[channel][gateway] post failed path=%s err=%v", path, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("[channel][gateway] post rejected path=%s status=%d", path, resp.StatusCode)
		return fmt.Errorf("channel gateway returned status %d", resp.StatusCode)
	}
	return nil
}

func isChannelGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("CHANNEL_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
