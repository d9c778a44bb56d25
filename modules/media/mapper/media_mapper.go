package mapper

import (
	"event-rsvp-api/modules/media/dto"
	"event-rsvp-api/modules/media/entity"
)

func ToMediaResponse(m *entity.Media) *dto.MediaResponse {
	return &dto.MediaResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Type:        string(m.Type),
		FileName:    m.FileName,
		FileURL:     m.FileURL,
		FileSize:    m.FileSize,
		MimeType:    m.MimeType,
		Duration:    m.Duration,
		Thumbnail:   m.Thumbnail,
		Status:      string(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToPaginatedMediaResponse(p *entity.PaginatedMediaEntity) *dto.PaginatedMediaResponse {
	items := make([]dto.MediaResponse, len(p.Items))
	for i := range p.Items {
		items[i] = *ToMediaResponse(&p.Items[i])
	}
	totalPages := 0
	if p.PageSize > 0 {
		totalPages = (p.TotalItems + p.PageSize - 1) / p.PageSize
	}
	return &dto.PaginatedMediaResponse{
		Items:      items,
		TotalItems: p.TotalItems,
		TotalPages: totalPages,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}
}
