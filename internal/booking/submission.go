package booking

import "fmt"

type Severity string

const (
	SeverityDefault     Severity = "default"
	SeverityDestructive Severity = "destructive"
)

// Notification is the toast shown after a submit attempt.
type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

// Notifier surfaces a Notification to the visitor. It is called exactly once
// per submit attempt.
type Notifier interface {
	Notify(n Notification)
}

type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

type Result struct {
	Accepted     bool
	Notification Notification
	// Request holds the submitted values. It is set for accepted submits only.
	Request *Snapshot
}

// Submit validates the session and reports the outcome through n. An accepted
// request clears the session except for its date; a rejected one leaves the
// session as it was. Nothing is sent anywhere else.
func Submit(s *Session, n Notifier) Result {
	res := evaluate(s)
	n.Notify(res.Notification)
	return res
}

func evaluate(s *Session) Result {
	snap, err := s.commit()
	if err != nil {
		return Result{Notification: Notification{
			Title:       "Ошибка",
			Description: IncompleteMessage,
			Severity:    SeverityDestructive,
		}}
	}
	return Result{
		Accepted: true,
		Request:  &snap,
		Notification: Notification{
			Title:       "Заявка принята!",
			Description: fmt.Sprintf("Мы свяжемся с вами по телефону %s для подтверждения записи", snap.Phone),
			Severity:    SeverityDefault,
		},
	}
}
