package mapper

import (
	"event-rsvp-api/modules/settings/dto"
	"event-rsvp-api/modules/settings/entity"
)

func ToSettingsResponse(s *entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		ID:                      s.ID,
		LogoText:                s.LogoText,
		SubtitleText:            s.SubtitleText,
		GoingButtonText:         s.GoingButtonText,
		CantGoButtonText:        s.CantGoButtonText,
		DressCodeLabel:          s.DressCodeLabel,
		AddressLabel:            s.AddressLabel,
		EventAgendaLabel:        s.EventAgendaLabel,
		GuestInfoLabel:          s.GuestInfoLabel,
		GoingButtonColor:        s.GoingButtonColor,
		GoingButtonTextColor:    s.GoingButtonTextColor,
		GoingButtonHoverColor:   s.GoingButtonHoverColor,
		CantGoButtonColor:       s.CantGoButtonColor,
		CantGoButtonTextColor:   s.CantGoButtonTextColor,
		CantGoButtonBorderColor: s.CantGoButtonBorderColor,
		CantGoButtonHoverColor:  s.CantGoButtonHoverColor,
		LogoImage:               s.LogoImage,
		ShowLinearGradient:      s.ShowLinearGradient,
		ShowRadialGradient:      s.ShowRadialGradient,
		UpdatedAt:               s.UpdatedAt,
	}
}
