// internals/features/events/swaps/service/swap_service.go
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceModel "voluntarios_backend/internals/features/events/attendance/model"
	attendanceService "voluntarios_backend/internals/features/events/attendance/service"
	"voluntarios_backend/internals/features/events/swaps/dto"
	"voluntarios_backend/internals/features/events/swaps/model"
	volunteerModel "voluntarios_backend/internals/features/organization/volunteers/model"
)

var (
	ErrSemVoluntario     = errors.New("usuário não está vinculado a um voluntário")
	ErrLinhaNaoEncontrada = errors.New("linha de participação não encontrada")
	ErrLinhaJaResolvida  = errors.New("presença dessa escala já foi resolvida")
	ErrForaDepartamento  = errors.New("troca só vale dentro do mesmo departamento")
	ErrAlvoJaEscalado    = errors.New("voluntário alvo já está escalado nesse evento/departamento")
	ErrTrocaNaoEncontrada = errors.New("pedido de troca não encontrado")
	ErrTrocaJaRespondida = errors.New("pedido de troca já respondido")
	ErrNaoEhAlvo         = errors.New("só o voluntário alvo pode responder a troca")
)

type SwapService struct {
	DB       *gorm.DB
	Notifier attendanceService.UserNotifier // opcional
}

func NewSwapService(db *gorm.DB, notifier attendanceService.UserNotifier) *SwapService {
	return &SwapService{DB: db, Notifier: notifier}
}

// volunteerOf resolve o voluntário dono da conta
func (s *SwapService) volunteerOf(ctx context.Context, userID uuid.UUID) (*volunteerModel.VolunteerModel, error) {
	var vol volunteerModel.VolunteerModel
	if err := s.DB.WithContext(ctx).
		First(&vol, "volunteer_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemVoluntario
		}
		return nil, err
	}
	return &vol, nil
}

// CreateSwap abre o pedido: a linha tem que ser do requerente, ainda sem
// presença resolvida, e o alvo precisa ser do mesmo departamento.
func (s *SwapService) CreateSwap(ctx context.Context, requesterUserID uuid.UUID, req *dto.SwapCreateRequest) (*model.SwapRequestModel, error) {
	requester, err := s.volunteerOf(ctx, requesterUserID)
	if err != nil {
		return nil, err
	}

	var row attendanceModel.EventVolunteerModel
	if err := s.DB.WithContext(ctx).
		First(&row, "event_volunteer_id = ?", req.EventVolunteerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinhaNaoEncontrada
		}
		return nil, err
	}
	if row.EventVolunteerVolunteerID != requester.VolunteerID {
		return nil, ErrLinhaNaoEncontrada // linha de outro voluntário
	}
	if row.EventVolunteerPresent != nil {
		return nil, ErrLinhaJaResolvida
	}

	var target volunteerModel.VolunteerModel
	if err := s.DB.WithContext(ctx).
		First(&target, "volunteer_id = ?", req.TargetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinhaNaoEncontrada
		}
		return nil, err
	}
	if target.VolunteerDepartmentID != row.EventVolunteerDepartmentID {
		return nil, ErrForaDepartamento
	}

	swap := &model.SwapRequestModel{
		SwapRequestEventVolunteerID: row.EventVolunteerID,
		SwapRequestRequesterID:      requester.VolunteerID,
		SwapRequestTargetID:         target.VolunteerID,
		SwapRequestMessage:          req.Message,
	}
	if err := s.DB.WithContext(ctx).Create(swap).Error; err != nil {
		return nil, err
	}

	if s.Notifier != nil && target.VolunteerUserID != nil {
		err := s.Notifier.SendToUser(ctx, *target.VolunteerUserID,
			"Pedido de troca de escala",
			requester.VolunteerName+" pediu para trocar a escala com você.",
			[]string{"troca"},
			map[string]any{"swap_request_id": swap.SwapRequestID})
		if err != nil {
			log.Printf("[WARNING] Falha ao notificar troca (ignorada): %v", err)
		}
	}
	return swap, nil
}

// RespondSwap aceita ou recusa. No aceite, a linha de participação passa a
// apontar para o alvo (dentro de uma transação, e só se a presença ainda
// estiver em aberto).
func (s *SwapService) RespondSwap(ctx context.Context, callerUserID uuid.UUID, swapID int64, accept bool) (*model.SwapRequestModel, error) {
	caller, err := s.volunteerOf(ctx, callerUserID)
	if err != nil {
		return nil, err
	}

	var swap model.SwapRequestModel
	if err := s.DB.WithContext(ctx).
		First(&swap, "swap_request_id = ?", swapID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrocaNaoEncontrada
		}
		return nil, err
	}
	if swap.SwapRequestTargetID != caller.VolunteerID {
		return nil, ErrNaoEhAlvo
	}
	if swap.SwapRequestStatus != model.SwapPendente {
		return nil, ErrTrocaJaRespondida
	}

	now := time.Now()
	newStatus := model.SwapRecusada
	if accept {
		newStatus = model.SwapAceita
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if accept {
			var line attendanceModel.EventVolunteerModel
			if err := tx.First(&line, "event_volunteer_id = ?", swap.SwapRequestEventVolunteerID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrLinhaNaoEncontrada
				}
				return err
			}
			// o alvo pode já ter a própria linha na mesma tripla: re-apontar
			// colidiria com o índice único uq_event_volunteer
			var conflito int64
			if err := tx.Model(&attendanceModel.EventVolunteerModel{}).
				Where("event_volunteer_event_id = ? AND event_volunteer_volunteer_id = ? AND event_volunteer_department_id = ?",
					line.EventVolunteerEventID, caller.VolunteerID, line.EventVolunteerDepartmentID).
				Count(&conflito).Error; err != nil {
				return err
			}
			if conflito > 0 {
				return ErrAlvoJaEscalado
			}

			res := tx.Model(&attendanceModel.EventVolunteerModel{}).
				Where("event_volunteer_id = ? AND event_volunteer_present IS NULL", swap.SwapRequestEventVolunteerID).
				Update("event_volunteer_volunteer_id", caller.VolunteerID)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrLinhaJaResolvida
			}
		}
		res := tx.Model(&model.SwapRequestModel{}).
			Where("swap_request_id = ? AND swap_request_status = ?", swap.SwapRequestID, model.SwapPendente).
			Updates(map[string]interface{}{
				"swap_request_status":       newStatus,
				"swap_request_responded_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrTrocaJaRespondida
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	swap.SwapRequestStatus = newStatus
	swap.SwapRequestRespondedAt = &now

	s.notifyRequester(ctx, &swap, caller.VolunteerName, accept)
	return &swap, nil
}

func (s *SwapService) notifyRequester(ctx context.Context, swap *model.SwapRequestModel, targetName string, accepted bool) {
	if s.Notifier == nil {
		return
	}
	var requester volunteerModel.VolunteerModel
	if err := s.DB.WithContext(ctx).
		First(&requester, "volunteer_id = ?", swap.SwapRequestRequesterID).Error; err != nil {
		return
	}
	if requester.VolunteerUserID == nil {
		return
	}

	title := "Troca recusada"
	message := targetName + " recusou o pedido de troca."
	if accepted {
		title = "Troca aceita"
		message = targetName + " aceitou a troca e assumiu a sua escala."
	}
	err := s.Notifier.SendToUser(ctx, *requester.VolunteerUserID, title, message,
		[]string{"troca"},
		map[string]any{"swap_request_id": swap.SwapRequestID})
	if err != nil {
		log.Printf("[WARNING] Falha ao notificar requerente (ignorada): %v", err)
	}
}
