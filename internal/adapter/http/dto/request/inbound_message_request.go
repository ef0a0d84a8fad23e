package request

import "strings"

// InboundMessageRequest is the webhook payload the messaging-channel
// connector posts for each customer message.
type InboundMessageRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Text     string `json:"text"`
	ImageURL string `json:"image_url"`
}

func (r InboundMessageRequest) ResolvePhone() string {
	return strings.TrimSpace(r.Phone)
}
