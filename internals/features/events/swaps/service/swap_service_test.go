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

	attendanceModel "voluntarios_backend/internals/features/events/attendance/model"
	"voluntarios_backend/internals/features/events/swaps/dto"
	"voluntarios_backend/internals/features/events/swaps/model"
	volunteerModel "voluntarios_backend/internals/features/organization/volunteers/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&volunteerModel.VolunteerModel{},
		&attendanceModel.EventVolunteerModel{},
		&model.SwapRequestModel{},
	))
	return db
}

func seedVolunteer(t *testing.T, db *gorm.DB, id int64, deptID int64, userID *uuid.UUID) {
	t.Helper()
	vol := volunteerModel.VolunteerModel{
		VolunteerID:           id,
		VolunteerName:         "Voluntário",
		VolunteerDepartmentID: deptID,
		VolunteerUserID:       userID,
	}
	require.NoError(t, db.Create(&vol).Error)
}

func seedParticipation(t *testing.T, db *gorm.DB, id, eventID, volunteerID, deptID int64, present *bool) {
	t.Helper()
	row := attendanceModel.EventVolunteerModel{
		EventVolunteerID:           id,
		EventVolunteerEventID:      eventID,
		EventVolunteerVolunteerID:  volunteerID,
		EventVolunteerDepartmentID: deptID,
		EventVolunteerPresent:      present,
	}
	require.NoError(t, db.Create(&row).Error)
}

func uuidPtr(id uuid.UUID) *uuid.UUID { return &id }

func TestCreateSwap_HappyPath(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSwapService(db, nil)

	requesterUser := uuid.New()
	seedVolunteer(t, db, 10, 5, uuidPtr(requesterUser))
	seedVolunteer(t, db, 11, 5, nil)
	seedParticipation(t, db, 100, 1, 10, 5, nil)

	swap, err := svc.CreateSwap(context.Background(), requesterUser, &dto.SwapCreateRequest{
		EventVolunteerID: 100,
		TargetID:         11,
		Message:          "Vou viajar nesse fim de semana",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), swap.SwapRequestRequesterID)
	assert.Equal(t, int64(11), swap.SwapRequestTargetID)

	var stored model.SwapRequestModel
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, model.SwapPendente, stored.SwapRequestStatus)
}

func TestCreateSwap_UserWithoutVolunteer(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSwapService(db, nil)

	_, err := svc.CreateSwap(context.Background(), uuid.New(), &dto.SwapCreateRequest{
		EventVolunteerID: 100, TargetID: 11,
	})
	assert.ErrorIs(t, err, ErrSemVoluntario)
}

func TestCreateSwap_RowOfAnotherVolunteer(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSwapService(db, nil)

	requesterUser := uuid.New()
	seedVolunteer(t, db, 10, 5, uuidPtr(requesterUser))
	seedVolunteer(t, db, 11, 5, nil)
	seedParticipation(t, db, 100, 1, 11, 5, nil) // linha do 11, não do 10

	_, err := svc.CreateSwap(context.Background(), requesterUser, &dto.SwapCreateRequest{
		EventVolunteerID: 100, TargetID: 11,
	})
	assert.ErrorIs(t, err, ErrLinhaNaoEncontrada)
}

func TestCreateSwap_ResolvedRowRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSwapService(db, nil)

	requesterUser := uuid.New()
	present := true
	seedVolunteer(t, db, 10, 5, uuidPtr(requesterUser))
	seedVolunteer(t, db, 11, 5, nil)
	seedParticipation(t, db, 100, 1, 10, 5, &present)

	_, err := svc.CreateSwap(context.Background(), requesterUser, &dto.SwapCreateRequest{
		EventVolunteerID: 100, TargetID: 11,
	})
	assert.ErrorIs(t, err, ErrLinhaJaResolvida)
}

func TestCreateSwap_TargetFromOtherDepartment(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSwapService(db, nil)

	requesterUser := uuid.New()
	seedVolunteer(t, db, 10, 5, uuidPtr(requesterUser))
	seedVolunteer(t, db, 11, 9, nil) // outro departamento
	seedParticipation(t, db, 100, 1, 10, 5, nil)

	_, err := svc.CreateSwap(context.Background(), requesterUser, &dto.SwapCreateRequest{
		EventVolunteerID: 100, TargetID: 11,
	})
	assert.ErrorIs(t, err, ErrForaDepartamento)
}

func TestRespondSwap_AcceptRepointsRow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSwapService(db, nil)

	requesterUser := uuid.New()
	targetUser := uuid.New()
	seedVolunteer(t, db, 10, 5, uuidPtr(requesterUser))
	seedVolunteer(t, db, 11, 5, uuidPtr(targetUser))
	seedParticipation(t, db, 100, 1, 10, 5, nil)

	swap, err := svc.CreateSwap(context.Background(), requesterUser, &dto.SwapCreateRequest{
		EventVolunteerID: 100, TargetID: 11,
	})
	require.NoError(t, err)

	resolved, err := svc.RespondSwap(context.Background(), targetUser, swap.SwapRequestID, true)
	require.NoError(t, err)
	assert.Equal(t, model.SwapAceita, resolved.SwapRequestStatus)
	assert.NotNil(t, resolved.SwapRequestRespondedAt)

	var row attendanceModel.EventVolunteerModel
	require.NoError(t, db.First(&row, "event_volunteer_id = ?", 100).Error)
	assert.Equal(t, int64(11), row.EventVolunteerVolunteerID)
}

func TestRespondSwap_RefuseKeepsRow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSwapService(db, nil)

	requesterUser := uuid.New()
	targetUser := uuid.New()
	seedVolunteer(t, db, 10, 5, uuidPtr(requesterUser))
	seedVolunteer(t, db, 11, 5, uuidPtr(targetUser))
	seedParticipation(t, db, 100, 1, 10, 5, nil)

	swap, err := svc.CreateSwap(context.Background(), requesterUser, &dto.SwapCreateRequest{
		EventVolunteerID: 100, TargetID: 11,
	})
	require.NoError(t, err)

	resolved, err := svc.RespondSwap(context.Background(), targetUser, swap.SwapRequestID, false)
	require.NoError(t, err)
	assert.Equal(t, model.SwapRecusada, resolved.SwapRequestStatus)

	var row attendanceModel.EventVolunteerModel
	require.NoError(t, db.First(&row, "event_volunteer_id = ?", 100).Error)
	assert.Equal(t, int64(10), row.EventVolunteerVolunteerID)
}

func TestRespondSwap_OnlyTargetCanAnswer(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSwapService(db, nil)

	requesterUser := uuid.New()
	otherUser := uuid.New()
	seedVolunteer(t, db, 10, 5, uuidPtr(requesterUser))
	seedVolunteer(t, db, 11, 5, nil)
	seedVolunteer(t, db, 12, 5, uuidPtr(otherUser))
	seedParticipation(t, db, 100, 1, 10, 5, nil)

	swap, err := svc.CreateSwap(context.Background(), requesterUser, &dto.SwapCreateRequest{
		EventVolunteerID: 100, TargetID: 11,
	})
	require.NoError(t, err)

	_, err = svc.RespondSwap(context.Background(), otherUser, swap.SwapRequestID, true)
	assert.ErrorIs(t, err, ErrNaoEhAlvo)
}

func TestRespondSwap_AlreadyAnswered(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSwapService(db, nil)

	requesterUser := uuid.New()
	targetUser := uuid.New()
	seedVolunteer(t, db, 10, 5, uuidPtr(requesterUser))
	seedVolunteer(t, db, 11, 5, uuidPtr(targetUser))
	seedParticipation(t, db, 100, 1, 10, 5, nil)

	swap, err := svc.CreateSwap(context.Background(), requesterUser, &dto.SwapCreateRequest{
		EventVolunteerID: 100, TargetID: 11,
	})
	require.NoError(t, err)

	_, err = svc.RespondSwap(context.Background(), targetUser, swap.SwapRequestID, false)
	require.NoError(t, err)

	_, err = svc.RespondSwap(context.Background(), targetUser, swap.SwapRequestID, true)
	assert.ErrorIs(t, err, ErrTrocaJaRespondida)
}

func TestRespondSwap_AcceptWhenTargetAlreadyScheduled(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSwapService(db, nil)

	requesterUser := uuid.New()
	targetUser := uuid.New()
	seedVolunteer(t, db, 10, 5, uuidPtr(requesterUser))
	seedVolunteer(t, db, 11, 5, uuidPtr(targetUser))
	// os dois já estão escalados na mesma tripla (evento, departamento)
	seedParticipation(t, db, 100, 1, 10, 5, nil)
	seedParticipation(t, db, 101, 1, 11, 5, nil)

	swap, err := svc.CreateSwap(context.Background(), requesterUser, &dto.SwapCreateRequest{
		EventVolunteerID: 100, TargetID: 11,
	})
	require.NoError(t, err)

	_, err = svc.RespondSwap(context.Background(), targetUser, swap.SwapRequestID, true)
	assert.ErrorIs(t, err, ErrAlvoJaEscalado)

	// nada mudou: a linha segue com o requerente e o pedido segue pendente
	var row attendanceModel.EventVolunteerModel
	require.NoError(t, db.First(&row, "event_volunteer_id = ?", 100).Error)
	assert.Equal(t, int64(10), row.EventVolunteerVolunteerID)

	var stored model.SwapRequestModel
	require.NoError(t, db.First(&stored, "swap_request_id = ?", swap.SwapRequestID).Error)
	assert.Equal(t, model.SwapPendente, stored.SwapRequestStatus)
}

func TestRespondSwap_AcceptAfterPresenceResolved(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSwapService(db, nil)

	requesterUser := uuid.New()
	targetUser := uuid.New()
	seedVolunteer(t, db, 10, 5, uuidPtr(requesterUser))
	seedVolunteer(t, db, 11, 5, uuidPtr(targetUser))
	seedParticipation(t, db, 100, 1, 10, 5, nil)

	swap, err := svc.CreateSwap(context.Background(), requesterUser, &dto.SwapCreateRequest{
		EventVolunteerID: 100, TargetID: 11,
	})
	require.NoError(t, err)

	// presença foi confirmada depois que o pedido foi aberto
	require.NoError(t, db.Model(&attendanceModel.EventVolunteerModel{}).
		Where("event_volunteer_id = ?", 100).
		Update("event_volunteer_present", true).Error)

	_, err = svc.RespondSwap(context.Background(), targetUser, swap.SwapRequestID, true)
	assert.ErrorIs(t, err, ErrLinhaJaResolvida)

	// a linha continua com o requerente
	var row attendanceModel.EventVolunteerModel
	require.NoError(t, db.First(&row, "event_volunteer_id = ?", 100).Error)
	assert.Equal(t, int64(10), row.EventVolunteerVolunteerID)
}
