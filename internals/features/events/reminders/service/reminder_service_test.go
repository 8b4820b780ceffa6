package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	attendanceModel "voluntarios_backend/internals/features/events/attendance/model"
	eventModel "voluntarios_backend/internals/features/events/events/model"
	volunteerModel "voluntarios_backend/internals/features/organization/volunteers/model"
)

var testLoc = time.FixedZone("BRT", -3*60*60)

type fakeSender struct {
	enabled bool
	sent    map[string][]string // phone → bodies
	failFor map[string]bool
}

func newFakeSender() *fakeSender {
	return &fakeSender{enabled: true, sent: map[string][]string{}, failFor: map[string]bool{}}
}

func (f *fakeSender) Enabled() bool { return f.enabled }

func (f *fakeSender) SendMessage(phone, body string) error {
	if f.failFor[phone] {
		return errors.New("twilio indisponível")
	}
	f.sent[phone] = append(f.sent[phone], body)
	return nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&eventModel.EventModel{},
		&volunteerModel.VolunteerModel{},
		&attendanceModel.EventVolunteerModel{},
	))
	return db
}

func seedFixture(t *testing.T, db *gorm.DB, eventStart string) {
	t.Helper()
	require.NoError(t, db.Create(&eventModel.EventModel{
		EventID:        1,
		EventName:      "Culto da Noite",
		EventLocation:  "Templo Central",
		EventDate:      "2026-03-08",
		EventStartTime: eventStart,
		EventEndTime:   "21:00",
		EventStatus:    eventModel.StatusConfirmado,
	}).Error)
	require.NoError(t, db.Create(&volunteerModel.VolunteerModel{
		VolunteerID: 10, VolunteerName: "João", VolunteerPhone: "+5511999990001", VolunteerDepartmentID: 5,
	}).Error)
	require.NoError(t, db.Create(&attendanceModel.EventVolunteerModel{
		EventVolunteerEventID: 1, EventVolunteerVolunteerID: 10, EventVolunteerDepartmentID: 5,
	}).Error)
}

func TestProcessReminders_SendsWithinLeadWindow(t *testing.T) {
	db := setupTestDB(t)
	sender := newFakeSender()
	svc := NewReminderService(db, testLoc, sender, 2*time.Hour)

	seedFixture(t, db, "19:00")

	// 17:30, evento começa em 1h30
	now := time.Date(2026, 3, 8, 17, 30, 0, 0, testLoc)
	report, err := svc.ProcessReminders(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 1, report.ProcessedEvents)
	assert.Equal(t, 1, report.RemindersSent)
	require.Len(t, sender.sent["+5511999990001"], 1)
	assert.Contains(t, sender.sent["+5511999990001"][0], "Culto da Noite")
	assert.Contains(t, sender.sent["+5511999990001"][0], "19:00")

	var row attendanceModel.EventVolunteerModel
	require.NoError(t, db.First(&row).Error)
	assert.NotNil(t, row.EventVolunteerReminderSentAt)
}

func TestProcessReminders_OutsideWindowDoesNothing(t *testing.T) {
	db := setupTestDB(t)
	sender := newFakeSender()
	svc := NewReminderService(db, testLoc, sender, 2*time.Hour)

	seedFixture(t, db, "19:00")

	tests := []struct {
		name string
		now  time.Time
	}{
		{name: "cedo demais", now: time.Date(2026, 3, 8, 14, 0, 0, 0, testLoc)},
		{name: "evento já começou", now: time.Date(2026, 3, 8, 19, 0, 0, 0, testLoc)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := svc.ProcessReminders(context.Background(), tt.now)
			require.NoError(t, err)
			assert.Equal(t, 0, report.RemindersSent)
		})
	}
	assert.Empty(t, sender.sent)
}

func TestProcessReminders_SecondRunDoesNotRepeat(t *testing.T) {
	db := setupTestDB(t)
	sender := newFakeSender()
	svc := NewReminderService(db, testLoc, sender, 2*time.Hour)

	seedFixture(t, db, "19:00")

	now := time.Date(2026, 3, 8, 17, 30, 0, 0, testLoc)

	_, err := svc.ProcessReminders(context.Background(), now)
	require.NoError(t, err)

	report, err := svc.ProcessReminders(context.Background(), now.Add(5*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 0, report.RemindersSent)
	assert.Len(t, sender.sent["+5511999990001"], 1)
}

func TestProcessReminders_FailedSendRetriesNextRun(t *testing.T) {
	db := setupTestDB(t)
	sender := newFakeSender()
	sender.failFor["+5511999990001"] = true
	svc := NewReminderService(db, testLoc, sender, 2*time.Hour)

	seedFixture(t, db, "19:00")

	now := time.Date(2026, 3, 8, 17, 30, 0, 0, testLoc)

	report, err := svc.ProcessReminders(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 0, report.RemindersSent)

	// sem carimbo, o próximo run tenta de novo
	var row attendanceModel.EventVolunteerModel
	require.NoError(t, db.First(&row).Error)
	assert.Nil(t, row.EventVolunteerReminderSentAt)

	sender.failFor = map[string]bool{}
	report, err = svc.ProcessReminders(context.Background(), now.Add(5*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, report.RemindersSent)
}

func TestProcessReminders_DisabledSenderIsNoop(t *testing.T) {
	db := setupTestDB(t)
	sender := newFakeSender()
	sender.enabled = false
	svc := NewReminderService(db, testLoc, sender, 2*time.Hour)

	seedFixture(t, db, "19:00")

	now := time.Date(2026, 3, 8, 17, 30, 0, 0, testLoc)
	report, err := svc.ProcessReminders(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 0, report.RemindersSent)
	assert.Empty(t, sender.sent)
}
