package message_handler

import (
	"fmt"
	"sync"
	"time"

	message_middleware "github.com/ainsongjog/whatsapp-bridge/src/message/middleware"
	message_model "github.com/ainsongjog/whatsapp-bridge/src/message/model"
	websocket_lawyer_manager "github.com/ainsongjog/whatsapp-bridge/src/websocket/lawyer-manager"
	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/pterm/pterm"
)

// subscriber serializes writes from broadcasts and pong replies, which
// the websocket connection does not allow concurrently.
type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *subscriber) WriteJSON(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.conn.SetWriteDeadline(time.Now().Add(websocket_lawyer_manager.DefaultWriteTimeout)); err != nil {
		return err
	}
	return s.conn.WriteJSON(v)
}

func (s *subscriber) writeText(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.conn.SetWriteDeadline(time.Now().Add(websocket_lawyer_manager.DefaultWriteTimeout)); err != nil {
		return err
	}
	return s.conn.WriteMessage(websocket.TextMessage, []byte(text))
}

func (s *subscriber) Close() error {
	return s.conn.Close()
}

// NewMessageSubscription streams the lawyer's incoming and sent messages.
//
//	@Summary		Subscribe to WhatsApp messages
//	@Description	Establishes a WebSocket connection and streams the calling lawyer's incoming and sent WhatsApp messages as they are reported by the bot. Send "ping" to receive "pong".
//	@Tags			Message Websocket
//	@Success		101	{string}	string							"WebSocket connection established"
//	@Failure		401	{object}	common_model.DescriptiveError	"Not authenticated"
//	@Failure		403	{object}	common_model.DescriptiveError	"WhatsApp integration not available"
//	@Failure		426	{string}	string							"Upgrade required"
//	@Security		ApiKeyAuth
//	@Router			/websocket/whatsapp/messages [get]
func NewMessageSubscription(
	manager *websocket_lawyer_manager.LawyerChannelManager[message_model.Notification],
) func(*websocket.Conn) {
	return func(conn *websocket.Conn) {
		defer conn.Close()

		// Set by SubscriptionMiddleware
		lawyerID := conn.Locals(message_middleware.BotLawyerCtxKey).(string)
		clientID := uuid.NewString()

		sub := &subscriber{conn: conn}
		manager.AppendClient(lawyerID, clientID, sub)
		defer manager.RemoveClient(lawyerID, clientID)

		pterm.DefaultLogger.Debug(fmt.Sprintf("Websocket client %s subscribed to lawyer %s", clientID, lawyerID))

		for {
			msgType, data, err := conn.ReadMessage()
			if err != nil {
				break
			}

			if msgType == websocket.TextMessage && string(data) == websocket_lawyer_manager.Ping {
				if err := sub.writeText(websocket_lawyer_manager.Pong); err != nil {
					break
				}
			}
		}
	}
}
