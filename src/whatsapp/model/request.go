package whatsapp_model

type SendMessage struct {
	ClientPhoneNumber string `json:"clientPhoneNumber" validate:"required,phone_number"`
	Text              string `json:"text,omitempty" validate:"required_without=FilePath"`
	FilePath          string `json:"filePath,omitempty" validate:"required_without=Text"`
}

type AddClient struct {
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required,phone_number"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
}

type RegisterWebhook struct {
	URL       string `json:"url" validate:"required,url"`
	EventType string `json:"eventType,omitempty" validate:"omitempty,oneof=message_received message_sent"`
}
