package message_model

type Direction string

const (
	Incoming Direction = "incoming"
	Outgoing Direction = "outgoing"
)
