package entities

// SessionResponse is what every dialog renders: the shared booking fields and
// which dialogs are currently open.
type SessionResponse struct {
	Date        *string  `json:"date"`
	Time        string   `json:"time"`
	Name        string   `json:"name"`
	Phone       string   `json:"phone"`
	Service     string   `json:"service"`
	Comment     string   `json:"comment"`
	OpenDialogs []string `json:"open_dialogs"`
}

// ContactUpdateRequest is a partial update; nil fields are left alone.
type ContactUpdateRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Service *string `json:"service"`
	Comment *string `json:"comment"`
}

type DateRequest struct {
	Date string `json:"date"`
}

type TimeRequest struct {
	Time string `json:"time"`
}
