package entities

type NotificationResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

type SubmitResponse struct {
	Accepted     bool                 `json:"accepted"`
	Notification NotificationResponse `json:"notification"`
	Session      SessionResponse      `json:"session"`
}
