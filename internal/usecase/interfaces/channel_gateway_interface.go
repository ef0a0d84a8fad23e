package interfaces

import "context"

// IChannelGateway sends outbound messages through the external
// messaging-channel connector. The connector owns the channel lifecycle
// (pairing, reconnects); this port only pushes text and images out.

type IChannelGateway interface {
	SendText(ctx context.Context, phone, text string) error
	SendImage(ctx context.Context, phone, imageURL, caption string) error
}
