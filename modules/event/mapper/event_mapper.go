package mapper

import (
	"event-rsvp-api/modules/event/dto"
	"event-rsvp-api/modules/event/entity"
)

func ToEventResponse(e *entity.Event) *dto.EventResponse {
	agenda := make([]dto.AgendaItemResponse, len(e.Agenda))
	for i, a := range e.Agenda {
		agenda[i] = dto.AgendaItemResponse{
			ID:       a.ID,
			Time:     a.Time,
			Title:    a.Title,
			Subtitle: a.Subtitle,
		}
	}
	return &dto.EventResponse{
		ID:                e.ID,
		Title:             e.Title,
		Date:              e.Date,
		EndDate:           e.EndDate,
		DressCode:         e.DressCode,
		Address:           e.Address,
		GuestInfo:         e.GuestInfo,
		Agenda:            agenda,
		IsActive:          e.IsActive,
		ShowOnHomepage:    e.ShowOnHomepage,
		VideoURL:          e.VideoURL,
		AnimationDuration: e.AnimationDuration,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func ToPaginatedEventResponse(p *entity.PaginatedEventEntity) *dto.PaginatedEventResponse {
	items := make([]dto.EventResponse, len(p.Items))
	for i := range p.Items {
		items[i] = *ToEventResponse(&p.Items[i])
	}
	totalPages := 0
	if p.PageSize > 0 {
		totalPages = (p.TotalItems + p.PageSize - 1) / p.PageSize
	}
	return &dto.PaginatedEventResponse{
		Items:      items,
		TotalItems: p.TotalItems,
		TotalPages: totalPages,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}
}
