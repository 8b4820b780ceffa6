// internals/features/events/events/service/active_event_service.go
package service

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	attendanceModel "voluntarios_backend/internals/features/events/attendance/model"
	"voluntarios_backend/internals/features/events/events/dto"
	"voluntarios_backend/internals/features/events/events/model"
	departmentModel "voluntarios_backend/internals/features/organization/departments/model"
	volunteerModel "voluntarios_backend/internals/features/organization/volunteers/model"
	"voluntarios_backend/internals/helpers/dbtime"
)

// ActiveEventService resolve o evento "ao vivo" para o instante atual.
// Leitura pura: nenhum efeito colateral. O fuso é injetado no construtor
// e nunca vem do relógio/zona do processo.
type ActiveEventService struct {
	DB  *gorm.DB
	Loc *time.Location
}

func NewActiveEventService(db *gorm.DB, loc *time.Location) *ActiveEventService {
	return &ActiveEventService{DB: db, Loc: loc}
}

// ResolveActiveEvent devolve o evento Confirmado cuja janela local contém now
// (start <= now < end), enriquecido com departamentos, escalados e presença.
// Fora de qualquer janela devolve (nil, nil) - não é erro.
// Empate entre janelas sobrepostas: menor start_time, depois menor id.
func (s *ActiveEventService) ResolveActiveEvent(ctx context.Context, now time.Time) (*dto.ActiveEventResponse, error) {
	today := dbtime.DateStr(now, s.Loc)

	var candidates []model.EventModel
	if err := s.DB.WithContext(ctx).
		Where("event_date = ? AND event_status = ?", today, model.StatusConfirmado).
		Order("event_start_time ASC, event_id ASC").
		Find(&candidates).Error; err != nil {
		return nil, err
	}

	var active *model.EventModel
	for i := range candidates {
		ev := &candidates[i]
		start, err := dbtime.CombineLocal(ev.EventDate, ev.EventStartTime, s.Loc)
		if err != nil {
			log.Printf("[WARNING] Evento %d com start_time inválido (%q): %v", ev.EventID, ev.EventStartTime, err)
			continue
		}
		end, err := dbtime.CombineLocal(ev.EventDate, ev.EventEndTime, s.Loc)
		if err != nil {
			log.Printf("[WARNING] Evento %d com end_time inválido (%q): %v", ev.EventID, ev.EventEndTime, err)
			continue
		}
		// Janela: [start, end)
		if !now.Before(start) && now.Before(end) {
			active = ev
			break
		}
	}
	if active == nil {
		return nil, nil
	}

	return s.enrich(ctx, active)
}

// enrich monta a árvore departamentos → voluntários → presença
func (s *ActiveEventService) enrich(ctx context.Context, ev *model.EventModel) (*dto.ActiveEventResponse, error) {
	var links []model.EventDepartmentModel
	if err := s.DB.WithContext(ctx).
		Where("event_department_event_id = ?", ev.EventID).
		Find(&links).Error; err != nil {
		return nil, err
	}

	deptIDs := make([]int64, 0, len(links))
	for _, l := range links {
		deptIDs = append(deptIDs, l.EventDepartmentDepartmentID)
	}

	deptByID := map[int64]departmentModel.DepartmentModel{}
	if len(deptIDs) > 0 {
		var deps []departmentModel.DepartmentModel
		if err := s.DB.WithContext(ctx).
			Where("department_id IN ?", deptIDs).
			Find(&deps).Error; err != nil {
			return nil, err
		}
		for _, d := range deps {
			deptByID[d.DepartmentID] = d
		}
	}

	var rows []attendanceModel.EventVolunteerModel
	if err := s.DB.WithContext(ctx).
		Where("event_volunteer_event_id = ?", ev.EventID).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	volIDs := make([]int64, 0, len(rows))
	for _, r := range rows {
		volIDs = append(volIDs, r.EventVolunteerVolunteerID)
	}
	volByID := map[int64]volunteerModel.VolunteerModel{}
	if len(volIDs) > 0 {
		var vols []volunteerModel.VolunteerModel
		if err := s.DB.WithContext(ctx).
			Where("volunteer_id IN ?", volIDs).
			Find(&vols).Error; err != nil {
			return nil, err
		}
		for _, v := range vols {
			volByID[v.VolunteerID] = v
		}
	}

	resp := &dto.ActiveEventResponse{
		EventResponse: *dto.ToEventResponse(ev),
		Departments:   make([]dto.ActiveEventDepartment, 0, len(deptIDs)),
	}
	for _, deptID := range deptIDs {
		dep := dto.ActiveEventDepartment{
			DepartmentID: deptID,
			Volunteers:   []dto.ActiveEventVolunteer{},
		}
		if d, ok := deptByID[deptID]; ok {
			dep.DepartmentName = d.DepartmentName
		}
		for _, r := range rows {
			if r.EventVolunteerDepartmentID != deptID {
				continue
			}
			av := dto.ActiveEventVolunteer{
				VolunteerID: r.EventVolunteerVolunteerID,
				Present:     r.EventVolunteerPresent,
			}
			if v, ok := volByID[r.EventVolunteerVolunteerID]; ok {
				av.VolunteerName = v.VolunteerName
			}
			dep.Volunteers = append(dep.Volunteers, av)
		}
		resp.Departments = append(resp.Departments, dep)
	}
	return resp, nil
}
