package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.October, 17, 14, 30, 0, 0, time.UTC)

func testCalendar() *Calendar {
	return &Calendar{Now: func() time.Time { return fixedNow }, Location: time.UTC}
}

type recorder struct {
	got []Notification
}

func (r *recorder) Notify(n Notification) { r.got = append(r.got, n) }

func filledSession(t *testing.T, cal *Calendar) *Session {
	t.Helper()
	s := NewSession(cal.Today())
	require.NoError(t, cal.Select(s, cal.Today().AddDate(0, 0, 1)))
	s.SetName("Ivan")
	s.SetPhone("+7 900 000 00 00")
	s.SetService("Замена масла")
	s.SetTime("10:00")
	return s
}

func TestNewSessionDefaults(t *testing.T) {
	cal := testCalendar()
	snap := NewSession(cal.Today()).Snapshot()

	require.NotNil(t, snap.Date)
	assert.True(t, snap.Date.Equal(cal.Today()))
	assert.Empty(t, snap.Time)
	assert.Empty(t, snap.Name)
	assert.Empty(t, snap.Phone)
	assert.Empty(t, snap.Service)
	assert.Empty(t, snap.Comment)
}

func TestSettersStoreVerbatim(t *testing.T) {
	s := NewSession(fixedNow)
	s.SetName("  ")
	s.SetPhone("не телефон")
	s.SetService("unknown")
	s.SetTime("25:99")
	s.SetComment("скрипит при переключении")

	snap := s.Snapshot()
	assert.Equal(t, "  ", snap.Name)
	assert.Equal(t, "не телефон", snap.Phone)
	assert.Equal(t, "unknown", snap.Service)
	assert.Equal(t, "25:99", snap.Time)
	assert.Equal(t, "скрипит при переключении", snap.Comment)
}

func TestSnapshotIsCopy(t *testing.T) {
	s := NewSession(fixedNow)
	snap := s.Snapshot()
	*snap.Date = snap.Date.AddDate(1, 0, 0)

	assert.True(t, s.Snapshot().Date.Equal(fixedNow))
}

func TestValidate(t *testing.T) {
	day := fixedNow
	full := Snapshot{Date: &day, Time: "10:00", Name: "Ivan", Phone: "123", Service: "Диагностика"}

	require.NoError(t, Validate(full))

	commentless := full
	commentless.Comment = ""
	assert.NoError(t, Validate(commentless))

	tests := []struct {
		name   string
		mutate func(*Snapshot)
	}{
		{"no name", func(s *Snapshot) { s.Name = "" }},
		{"no phone", func(s *Snapshot) { s.Phone = "" }},
		{"no service", func(s *Snapshot) { s.Service = "" }},
		{"no date", func(s *Snapshot) { s.Date = nil }},
		{"no time", func(s *Snapshot) { s.Time = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := full
			tt.mutate(&snap)
			assert.ErrorIs(t, Validate(snap), ErrIncomplete)
		})
	}
}

func TestSubmitAcceptedResetsAllButDate(t *testing.T) {
	cal := testCalendar()
	s := filledSession(t, cal)
	s.SetComment("")
	tomorrow := cal.Today().AddDate(0, 0, 1)
	rec := &recorder{}

	res := Submit(s, rec)

	require.True(t, res.Accepted)
	require.Len(t, rec.got, 1)
	assert.Equal(t, "Заявка принята!", rec.got[0].Title)
	assert.Contains(t, rec.got[0].Description, "+7 900 000 00 00")
	assert.Equal(t, SeverityDefault, rec.got[0].Severity)
	require.NotNil(t, res.Request)
	assert.Equal(t, "Ivan", res.Request.Name)

	snap := s.Snapshot()
	assert.Empty(t, snap.Name)
	assert.Empty(t, snap.Phone)
	assert.Empty(t, snap.Service)
	assert.Empty(t, snap.Time)
	assert.Empty(t, snap.Comment)
	require.NotNil(t, snap.Date)
	assert.True(t, snap.Date.Equal(tomorrow))
}

func TestSubmitIncompleteLeavesSessionUntouched(t *testing.T) {
	cal := testCalendar()
	s := NewSession(cal.Today())
	s.SetName("")
	s.SetPhone("123")
	s.SetService("Диагностика")
	s.SetTime("09:00")
	before := s.Snapshot()
	rec := &recorder{}

	res := Submit(s, rec)

	assert.False(t, res.Accepted)
	assert.Nil(t, res.Request)
	require.Len(t, rec.got, 1)
	assert.Equal(t, Notification{
		Title:       "Ошибка",
		Description: "Пожалуйста, заполните все поля",
		Severity:    SeverityDestructive,
	}, rec.got[0])
	assert.Equal(t, before, s.Snapshot())
}

func TestSubmitCompletenessLaw(t *testing.T) {
	cal := testCalendar()
	drops := map[string]func(*Session){
		"name":    func(s *Session) { s.SetName("") },
		"phone":   func(s *Session) { s.SetPhone("") },
		"service": func(s *Session) { s.SetService("") },
		"date":    func(s *Session) { s.ClearDate() },
		"time":    func(s *Session) { s.SetTime("") },
	}
	for field, drop := range drops {
		t.Run(field, func(t *testing.T) {
			s := filledSession(t, cal)
			s.SetComment("коммент")
			drop(s)
			before := s.Snapshot()
			rec := &recorder{}

			res := Submit(s, rec)

			assert.False(t, res.Accepted)
			require.Len(t, rec.got, 1)
			assert.Equal(t, SeverityDestructive, rec.got[0].Severity)
			assert.Equal(t, before, s.Snapshot())
		})
	}
}

func TestCalendarRejectsPastDays(t *testing.T) {
	cal := testCalendar()
	s := NewSession(cal.Today())
	tomorrow := cal.Today().AddDate(0, 0, 1)
	require.NoError(t, cal.Select(s, tomorrow))

	err := cal.Select(s, cal.Today().AddDate(0, 0, -1))

	assert.ErrorIs(t, err, ErrDateInPast)
	assert.True(t, s.Snapshot().Date.Equal(tomorrow))
}

func TestCalendarAcceptsEarlierHourToday(t *testing.T) {
	cal := testCalendar()
	s := NewSession(cal.Today())
	s.ClearDate()

	require.NoError(t, cal.Select(s, fixedNow.Add(-5*time.Hour)))

	assert.True(t, s.Snapshot().Date.Equal(cal.Today()))
}

func TestCalendarComparesDaysInLocation(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)
	// 22:30 UTC is already the next day in Moscow.
	now := time.Date(2026, time.October, 17, 22, 30, 0, 0, time.UTC)
	cal := &Calendar{Now: func() time.Time { return now }, Location: msk}

	assert.True(t, cal.Disabled(time.Date(2026, time.October, 17, 12, 0, 0, 0, msk)))
	assert.False(t, cal.Disabled(time.Date(2026, time.October, 18, 0, 0, 0, 0, msk)))
}

func TestCalendarDeselect(t *testing.T) {
	cal := testCalendar()
	s := NewSession(cal.Today())

	cal.Deselect(s)

	assert.Nil(t, s.Snapshot().Date)
}

func TestCalendarParseDay(t *testing.T) {
	cal := testCalendar()

	day, err := cal.ParseDay("2026-10-18")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC), day)

	_, err = cal.ParseDay("18.10.2026")
	assert.Error(t, err)
}

func TestCalendarMonth(t *testing.T) {
	cal := testCalendar()
	selected := time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC)

	days := cal.Month(2026, time.October, &selected)

	require.Len(t, days, 31)
	assert.True(t, days[15].Disabled)
	assert.False(t, days[16].Disabled)
	assert.True(t, days[16].Today)
	assert.True(t, days[19].Selected)
	assert.False(t, days[18].Selected)
}
