package booking

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"mkpp-service/internal/catalog"
)

var (
	ErrUnknownEntryPoint = errors.New("booking: unknown entry point")
	ErrDialogClosed      = errors.New("booking: dialog is not open")
)

type Kind string

const (
	KindHeader Kind = "header"
	KindHero   Kind = "hero"
	KindCard   Kind = "card"
)

// EntryPoint is a button that opens a booking dialog. Card is the index of the
// service card and is only meaningful for KindCard.
type EntryPoint struct {
	Kind Kind
	Card int
}

var (
	Header = EntryPoint{Kind: KindHeader}
	Hero   = EntryPoint{Kind: KindHero}
)

func CardEntry(index int) EntryPoint {
	return EntryPoint{Kind: KindCard, Card: index}
}

// ParseEntryPoint accepts "header", "hero" and "card-<index>" where index
// points into the service catalog.
func ParseEntryPoint(token string) (EntryPoint, error) {
	switch token {
	case string(KindHeader):
		return Header, nil
	case string(KindHero):
		return Hero, nil
	}
	raw, ok := strings.CutPrefix(token, string(KindCard)+"-")
	if !ok {
		return EntryPoint{}, fmt.Errorf("%w: %q", ErrUnknownEntryPoint, token)
	}
	idx, err := strconv.Atoi(raw)
	if err != nil {
		return EntryPoint{}, fmt.Errorf("%w: %q", ErrUnknownEntryPoint, token)
	}
	e := CardEntry(idx)
	if e.String() != token {
		return EntryPoint{}, fmt.Errorf("%w: %q", ErrUnknownEntryPoint, token)
	}
	if _, ok := catalog.ServiceAt(idx); !ok {
		return EntryPoint{}, fmt.Errorf("%w: %q", ErrUnknownEntryPoint, token)
	}
	return e, nil
}

func (e EntryPoint) String() string {
	if e.Kind == KindCard {
		return fmt.Sprintf("%s-%d", KindCard, e.Card)
	}
	return string(e.Kind)
}

// FieldIDs are the element ids a dialog renders. They differ per entry point
// because all dialogs live in the same document.
type FieldIDs struct {
	Name    string
	Phone   string
	Service string
	Comment string
}

func (e EntryPoint) FieldIDs() FieldIDs {
	var suffix string
	switch e.Kind {
	case KindHero:
		suffix = "2"
	case KindCard:
		suffix = "-" + strconv.Itoa(e.Card)
	}
	return FieldIDs{
		Name:    "name" + suffix,
		Phone:   "phone" + suffix,
		Service: "service" + suffix,
		Comment: "comment" + suffix,
	}
}

type DialogState string

const (
	DialogClosed DialogState = "closed"
	DialogOpen   DialogState = "open"
)

// Desk is one visitor's page: a single Session shared by every dialog, plus
// the open/closed state of each dialog.
type Desk struct {
	mu      sync.Mutex
	session *Session
	dialogs map[EntryPoint]DialogState
}

func NewDesk(today time.Time) *Desk {
	return &Desk{
		session: NewSession(today),
		dialogs: make(map[EntryPoint]DialogState),
	}
}

func (d *Desk) Session() *Session {
	return d.session
}

// Open shows the dialog for e. A service card first selects its own service;
// no other field is touched.
func (d *Desk) Open(e EntryPoint) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if e.Kind == KindCard {
		svc, ok := catalog.ServiceAt(e.Card)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownEntryPoint, e)
		}
		d.session.SetService(svc.Key)
	}
	d.dialogs[e] = DialogOpen
	return nil
}

// Close hides the dialog without touching the session.
func (d *Desk) Close(e EntryPoint) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dialogs[e] = DialogClosed
}

func (d *Desk) State(e EntryPoint) DialogState {
	d.mu.Lock()
	defer d.mu.Unlock()
	if st, ok := d.dialogs[e]; ok {
		return st
	}
	return DialogClosed
}

// OpenDialogs lists the entry points whose dialog is currently open.
func (d *Desk) OpenDialogs() []EntryPoint {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []EntryPoint
	for e, st := range d.dialogs {
		if st == DialogOpen {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Submit runs a submit from the dialog of e. An accepted request closes the
// dialog; a rejected one keeps it open. n runs while the desk is locked and
// must not call back into it.
func (d *Desk) Submit(e EntryPoint, n Notifier) (Result, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.dialogs[e] != DialogOpen {
		return Result{}, fmt.Errorf("%w: %s", ErrDialogClosed, e)
	}
	res := Submit(d.session, n)
	if res.Accepted {
		d.dialogs[e] = DialogClosed
	}
	return res, nil
}
