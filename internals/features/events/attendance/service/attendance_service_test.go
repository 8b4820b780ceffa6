package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"voluntarios_backend/internals/features/events/attendance/dto"
	"voluntarios_backend/internals/features/events/attendance/model"
	eventModel "voluntarios_backend/internals/features/events/events/model"
	volunteerModel "voluntarios_backend/internals/features/organization/volunteers/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&eventModel.EventModel{},
		&eventModel.EventDepartmentModel{},
		&volunteerModel.VolunteerModel{},
		&model.EventVolunteerModel{},
	))

	// users tem default de uuid do Postgres; no sqlite criamos na mão
	require.NoError(t, db.Exec(`
		CREATE TABLE users (
			user_id TEXT PRIMARY KEY,
			user_name TEXT NOT NULL,
			user_email TEXT NOT NULL UNIQUE,
			user_password TEXT NOT NULL,
			user_role TEXT NOT NULL DEFAULT 'voluntario',
			user_department_id INTEGER,
			user_is_active NUMERIC NOT NULL DEFAULT true,
			user_created_at DATETIME,
			user_updated_at DATETIME,
			user_deleted_at DATETIME
		)`).Error)

	return db
}

type notifyCall struct {
	UserID  uuid.UUID
	Title   string
	Message string
	Tags    []string
	Data    map[string]any
}

// captureNotifier grava cada envio para os asserts
type captureNotifier struct {
	calls []notifyCall
	err   error
}

func (c *captureNotifier) SendToUser(_ context.Context, userID uuid.UUID, title, message string, tags []string, data map[string]any) error {
	c.calls = append(c.calls, notifyCall{UserID: userID, Title: title, Message: message, Tags: tags, Data: data})
	return c.err
}

func boolPtr(b bool) *bool { return &b }

func seedRow(t *testing.T, db *gorm.DB, eventID, volunteerID, deptID int64, present *bool) {
	t.Helper()
	row := model.EventVolunteerModel{
		EventVolunteerEventID:      eventID,
		EventVolunteerVolunteerID:  volunteerID,
		EventVolunteerDepartmentID: deptID,
		EventVolunteerPresent:      present,
	}
	require.NoError(t, db.Create(&row).Error)
}

func TestConfirmAttendance_FirstScanConfirms(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAttendanceService(db, nil)

	seedRow(t, db, 1, 10, 5, nil)

	row, err := svc.ConfirmAttendance(context.Background(), 5, &dto.ConfirmAttendanceRequest{
		EventID: 1, VolunteerID: 10, DepartmentID: 5,
	})
	require.NoError(t, err)
	require.NotNil(t, row.EventVolunteerPresent)
	assert.True(t, *row.EventVolunteerPresent)
	assert.NotNil(t, row.EventVolunteerConfirmedAt)

	var stored model.EventVolunteerModel
	require.NoError(t, db.First(&stored, "event_volunteer_event_id = ?", 1).Error)
	require.NotNil(t, stored.EventVolunteerPresent)
	assert.True(t, *stored.EventVolunteerPresent)
	assert.NotNil(t, stored.EventVolunteerConfirmedAt)
}

func TestConfirmAttendance_RescanReturnsConflict(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAttendanceService(db, nil)

	seedRow(t, db, 1, 10, 5, nil)

	_, err := svc.ConfirmAttendance(context.Background(), 5, &dto.ConfirmAttendanceRequest{
		EventID: 1, VolunteerID: 10, DepartmentID: 5,
	})
	require.NoError(t, err)

	_, err = svc.ConfirmAttendance(context.Background(), 5, &dto.ConfirmAttendanceRequest{
		EventID: 1, VolunteerID: 10, DepartmentID: 5,
	})
	assert.ErrorIs(t, err, ErrPresencaJaConfirmada)
}

func TestConfirmAttendance_WrongDepartmentRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAttendanceService(db, nil)

	seedRow(t, db, 1, 10, 5, nil)

	// líder do departamento 7 escaneando QR do departamento 5
	_, err := svc.ConfirmAttendance(context.Background(), 7, &dto.ConfirmAttendanceRequest{
		EventID: 1, VolunteerID: 10, DepartmentID: 5,
	})
	assert.ErrorIs(t, err, ErrOutroDepartamento)

	// nada mudou no banco
	var stored model.EventVolunteerModel
	require.NoError(t, db.First(&stored, "event_volunteer_event_id = ?", 1).Error)
	assert.Nil(t, stored.EventVolunteerPresent)
}

func TestConfirmAttendance_UnscheduledTripleNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAttendanceService(db, nil)

	seedRow(t, db, 1, 10, 5, nil)

	// mesmo evento e departamento, voluntário diferente
	_, err := svc.ConfirmAttendance(context.Background(), 5, &dto.ConfirmAttendanceRequest{
		EventID: 1, VolunteerID: 99, DepartmentID: 5,
	})
	assert.ErrorIs(t, err, ErrNaoEscalado)
}

func TestConfirmAttendance_LateArrivalOverridesAbsence(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAttendanceService(db, nil)

	// varredura já marcou falta, mas o voluntário chegou atrasado
	seedRow(t, db, 1, 10, 5, boolPtr(false))

	row, err := svc.ConfirmAttendance(context.Background(), 5, &dto.ConfirmAttendanceRequest{
		EventID: 1, VolunteerID: 10, DepartmentID: 5,
	})
	require.NoError(t, err)
	require.NotNil(t, row.EventVolunteerPresent)
	assert.True(t, *row.EventVolunteerPresent)
}

func TestConfirmAttendance_NotifiesLinkedUser(t *testing.T) {
	db := setupTestDB(t)
	notifier := &captureNotifier{}
	svc := NewAttendanceService(db, notifier)

	userID := uuid.New()
	vol := volunteerModel.VolunteerModel{
		VolunteerID:           10,
		VolunteerName:         "João",
		VolunteerDepartmentID: 5,
		VolunteerUserID:       &userID,
	}
	require.NoError(t, db.Create(&vol).Error)
	seedRow(t, db, 1, 10, 5, nil)

	_, err := svc.ConfirmAttendance(context.Background(), 5, &dto.ConfirmAttendanceRequest{
		EventID: 1, VolunteerID: 10, DepartmentID: 5,
	})
	require.NoError(t, err)

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, userID, notifier.calls[0].UserID)
	assert.Equal(t, "Presença confirmada", notifier.calls[0].Title)
	assert.Contains(t, notifier.calls[0].Tags, "presenca")
}

func TestConfirmAttendance_VolunteerWithoutAccountSkipsNotification(t *testing.T) {
	db := setupTestDB(t)
	notifier := &captureNotifier{}
	svc := NewAttendanceService(db, notifier)

	vol := volunteerModel.VolunteerModel{
		VolunteerID:           10,
		VolunteerName:         "Maria",
		VolunteerDepartmentID: 5,
	}
	require.NoError(t, db.Create(&vol).Error)
	seedRow(t, db, 1, 10, 5, nil)

	_, err := svc.ConfirmAttendance(context.Background(), 5, &dto.ConfirmAttendanceRequest{
		EventID: 1, VolunteerID: 10, DepartmentID: 5,
	})
	require.NoError(t, err)
	assert.Empty(t, notifier.calls)
}

func TestConfirmAttendance_SameVolunteerTwoDepartments(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAttendanceService(db, nil)

	// escalado em dois departamentos do mesmo evento
	seedRow(t, db, 1, 10, 5, nil)
	seedRow(t, db, 1, 10, 6, nil)

	_, err := svc.ConfirmAttendance(context.Background(), 5, &dto.ConfirmAttendanceRequest{
		EventID: 1, VolunteerID: 10, DepartmentID: 5,
	})
	require.NoError(t, err)

	// a linha do outro departamento continua pendente
	var other model.EventVolunteerModel
	require.NoError(t, db.
		Where("event_volunteer_event_id = ? AND event_volunteer_department_id = ?", 1, 6).
		First(&other).Error)
	assert.Nil(t, other.EventVolunteerPresent)
}
