package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	attendanceModel "voluntarios_backend/internals/features/events/attendance/model"
	"voluntarios_backend/internals/features/events/events/model"
	departmentModel "voluntarios_backend/internals/features/organization/departments/model"
	volunteerModel "voluntarios_backend/internals/features/organization/volunteers/model"
)

var testLoc = time.FixedZone("BRT", -3*60*60)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.EventModel{},
		&model.EventDepartmentModel{},
		&departmentModel.DepartmentModel{},
		&volunteerModel.VolunteerModel{},
		&attendanceModel.EventVolunteerModel{},
	))
	return db
}

func seedEvent(t *testing.T, db *gorm.DB, id int64, name, date, start, end, status string) {
	t.Helper()
	ev := model.EventModel{
		EventID:        id,
		EventName:      name,
		EventDate:      date,
		EventStartTime: start,
		EventEndTime:   end,
		EventStatus:    status,
	}
	require.NoError(t, db.Create(&ev).Error)
}

func at(hour, min, sec int) time.Time {
	return time.Date(2026, 3, 8, hour, min, sec, 0, testLoc)
}

func TestResolveActiveEvent_WindowBoundaries(t *testing.T) {
	db := setupTestDB(t)
	svc := NewActiveEventService(db, testLoc)

	seedEvent(t, db, 1, "Culto da Manhã", "2026-03-08", "09:00", "10:00", model.StatusConfirmado)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{name: "antes da janela", now: at(8, 59, 59), want: false},
		{name: "exatamente no início", now: at(9, 0, 0), want: true},
		{name: "no meio da janela", now: at(9, 30, 0), want: true},
		{name: "último segundo", now: at(9, 59, 59), want: true},
		{name: "exatamente no fim", now: at(10, 0, 0), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.ResolveActiveEvent(context.Background(), tt.now)
			require.NoError(t, err)
			if tt.want {
				require.NotNil(t, resp)
				assert.Equal(t, int64(1), resp.EventID)
			} else {
				assert.Nil(t, resp)
			}
		})
	}
}

func TestResolveActiveEvent_OnlyConfirmedCounts(t *testing.T) {
	db := setupTestDB(t)
	svc := NewActiveEventService(db, testLoc)

	seedEvent(t, db, 1, "Ensaio", "2026-03-08", "09:00", "10:00", model.StatusPendente)
	seedEvent(t, db, 2, "Evento Cancelado", "2026-03-08", "09:00", "10:00", model.StatusCancelado)

	resp, err := svc.ResolveActiveEvent(context.Background(), at(9, 30, 0))
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestResolveActiveEvent_OtherDateIgnored(t *testing.T) {
	db := setupTestDB(t)
	svc := NewActiveEventService(db, testLoc)

	seedEvent(t, db, 1, "Culto de Ontem", "2026-03-07", "09:00", "10:00", model.StatusConfirmado)

	resp, err := svc.ResolveActiveEvent(context.Background(), at(9, 30, 0))
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestResolveActiveEvent_OverlapPrefersEarliestStart(t *testing.T) {
	db := setupTestDB(t)
	svc := NewActiveEventService(db, testLoc)

	seedEvent(t, db, 1, "Culto Longo", "2026-03-08", "09:00", "12:00", model.StatusConfirmado)
	seedEvent(t, db, 2, "Batismo", "2026-03-08", "10:00", "11:00", model.StatusConfirmado)

	resp, err := svc.ResolveActiveEvent(context.Background(), at(10, 30, 0))
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, int64(1), resp.EventID)
}

func TestResolveActiveEvent_SameStartPrefersLowestID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewActiveEventService(db, testLoc)

	seedEvent(t, db, 2, "Segundo", "2026-03-08", "09:00", "10:00", model.StatusConfirmado)
	seedEvent(t, db, 1, "Primeiro", "2026-03-08", "09:00", "10:00", model.StatusConfirmado)

	resp, err := svc.ResolveActiveEvent(context.Background(), at(9, 30, 0))
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, int64(1), resp.EventID)
}

func TestResolveActiveEvent_SkipsBrokenWindow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewActiveEventService(db, testLoc)

	seedEvent(t, db, 1, "Quebrado", "2026-03-08", "banana", "10:00", model.StatusConfirmado)
	seedEvent(t, db, 2, "Saudável", "2026-03-08", "09:00", "10:00", model.StatusConfirmado)

	resp, err := svc.ResolveActiveEvent(context.Background(), at(9, 30, 0))
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, int64(2), resp.EventID)
}

func TestResolveActiveEvent_EnrichesDepartmentsAndVolunteers(t *testing.T) {
	db := setupTestDB(t)
	svc := NewActiveEventService(db, testLoc)

	seedEvent(t, db, 1, "Culto", "2026-03-08", "09:00", "10:00", model.StatusConfirmado)

	require.NoError(t, db.Create(&departmentModel.DepartmentModel{
		DepartmentID: 5, DepartmentName: "Louvor",
	}).Error)
	require.NoError(t, db.Create(&model.EventDepartmentModel{
		EventDepartmentEventID: 1, EventDepartmentDepartmentID: 5,
	}).Error)
	require.NoError(t, db.Create(&volunteerModel.VolunteerModel{
		VolunteerID: 10, VolunteerName: "João", VolunteerDepartmentID: 5,
	}).Error)

	present := true
	rows := []attendanceModel.EventVolunteerModel{
		{EventVolunteerEventID: 1, EventVolunteerVolunteerID: 10, EventVolunteerDepartmentID: 5, EventVolunteerPresent: &present},
		{EventVolunteerEventID: 1, EventVolunteerVolunteerID: 11, EventVolunteerDepartmentID: 5},
	}
	require.NoError(t, db.Create(&rows).Error)

	resp, err := svc.ResolveActiveEvent(context.Background(), at(9, 30, 0))
	require.NoError(t, err)
	require.NotNil(t, resp)

	require.Len(t, resp.Departments, 1)
	dep := resp.Departments[0]
	assert.Equal(t, int64(5), dep.DepartmentID)
	assert.Equal(t, "Louvor", dep.DepartmentName)
	require.Len(t, dep.Volunteers, 2)

	assert.Equal(t, "João", dep.Volunteers[0].VolunteerName)
	require.NotNil(t, dep.Volunteers[0].Present)
	assert.True(t, *dep.Volunteers[0].Present)
	assert.Nil(t, dep.Volunteers[1].Present) // ainda não escaneado
}
