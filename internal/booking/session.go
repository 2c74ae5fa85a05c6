// Package booking holds the appointment request a visitor is filling in and
// the rules for submitting it. Every dialog on the page works against the same
// Session, so a value picked in one dialog shows up in the next one opened.
package booking

import (
	"sync"
	"time"
)

// Snapshot is a point-in-time copy of a Session. Date is nil when no day is
// selected.
type Snapshot struct {
	Date    *time.Time `validate:"required"`
	Time    string     `validate:"required"`
	Name    string     `validate:"required"`
	Phone   string     `validate:"required"`
	Service string     `validate:"required"`
	Comment string
}

// Session is the in-progress booking request. Setters store values verbatim;
// checks happen at the calendar and on submit.
type Session struct {
	mu      sync.Mutex
	date    time.Time
	hasDate bool
	slot    string
	name    string
	phone   string
	service string
	comment string
}

// NewSession creates a session with the date preselected to today.
func NewSession(today time.Time) *Session {
	return &Session{date: today, hasDate: true}
}

func (s *Session) SetDate(day time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.date = day
	s.hasDate = true
}

// ClearDate drops the selected day, as when the visitor clicks it again.
func (s *Session) ClearDate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.date = time.Time{}
	s.hasDate = false
}

func (s *Session) SetTime(slot string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slot = slot
}

func (s *Session) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *Session) SetPhone(phone string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phone = phone
}

func (s *Session) SetService(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.service = key
}

func (s *Session) SetComment(comment string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comment = comment
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		Time:    s.slot,
		Name:    s.name,
		Phone:   s.phone,
		Service: s.service,
		Comment: s.comment,
	}
	if s.hasDate {
		d := s.date
		snap.Date = &d
	}
	return snap
}

// commit validates the current values and, if they pass, clears everything
// except the date. Both steps run under one lock so a concurrent setter cannot
// slip in between.
func (s *Session) commit() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshotLocked()
	if err := Validate(snap); err != nil {
		return snap, err
	}

	s.slot = ""
	s.name = ""
	s.phone = ""
	s.service = ""
	s.comment = ""
	return snap, nil
}
