package realtime

// clientFrame is sent to the hub to join or leave a session group.
type clientFrame struct {
	Type  string `json:"type"`
	Group string `json:"group"`
}

type serverFrame struct {
	Type    string `json:"type"`
	Event   string `json:"event"`
	Payload struct {
		SessionID string `json:"sessaoId"`
		ProjectID string `json:"projetoId"`
	} `json:"payload"`
}
