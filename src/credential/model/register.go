package credential_model

type RegisterCredential struct {
	APIKey string `json:"apiKey" validate:"required,min=8,max=255"`
}

type RegisterResult struct {
	Success bool `json:"success"`
}
