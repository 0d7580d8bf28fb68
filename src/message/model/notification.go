package message_model

// Notification is pushed to a lawyer's websocket subscribers for every
// webhook event.
type Notification struct {
	Direction         Direction `json:"direction"`
	LawyerID          string    `json:"lawyer_id"`
	ClientPhoneNumber string    `json:"client_phone_number"`
	Message           string    `json:"message"`
	Timestamp         string    `json:"timestamp"`
}
