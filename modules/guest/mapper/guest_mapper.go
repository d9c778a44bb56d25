package mapper

import (
	"event-rsvp-api/modules/guest/dto"
	"event-rsvp-api/modules/guest/entity"
)

func ToGuestResponse(g *entity.Guest) *dto.GuestResponse {
	return &dto.GuestResponse{
		ID:        g.ID,
		Name:      g.Name,
		Email:     g.Email,
		Phone:     g.Phone,
		Company:   g.Company,
		Position:  g.Position,
		Going:     g.Going,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

func ToGuestListResponse(guests []entity.Guest) *dto.GuestListResponse {
	items := make([]dto.GuestResponse, len(guests))
	for i := range guests {
		items[i] = *ToGuestResponse(&guests[i])
	}
	return &dto.GuestListResponse{
		Guests: items,
		Total:  len(items),
	}
}
