package response

// BotReplyResponse echoes the reply the bot produced for an inbound message.
// The reply is also sent through the channel gateway; the webhook response is
// for connector-side logging only.
type BotReplyResponse struct {
	Reply string `json:"reply"`
}
