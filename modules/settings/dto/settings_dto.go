package dto

import (
	"time"

	"github.com/google/uuid"
)

// UpdateSettingsRequest is a partial update; nil fields stay untouched.
// LogoImage distinguishes "clear" (empty string) from "leave alone" (nil).
type UpdateSettingsRequest struct {
	LogoText                *string `json:"logo_text"`
	SubtitleText            *string `json:"subtitle_text"`
	GoingButtonText         *string `json:"going_button_text"`
	CantGoButtonText        *string `json:"cant_go_button_text"`
	DressCodeLabel          *string `json:"dress_code_label"`
	AddressLabel            *string `json:"address_label"`
	EventAgendaLabel        *string `json:"event_agenda_label"`
	GuestInfoLabel          *string `json:"guest_info_label"`
	GoingButtonColor        *string `json:"going_button_color"`
	GoingButtonTextColor    *string `json:"going_button_text_color"`
	GoingButtonHoverColor   *string `json:"going_button_hover_color"`
	CantGoButtonColor       *string `json:"cant_go_button_color"`
	CantGoButtonTextColor   *string `json:"cant_go_button_text_color"`
	CantGoButtonBorderColor *string `json:"cant_go_button_border_color"`
	CantGoButtonHoverColor  *string `json:"cant_go_button_hover_color"`
	LogoImage               *string `json:"logo_image"`
	ShowLinearGradient      *bool   `json:"show_linear_gradient"`
	ShowRadialGradient      *bool   `json:"show_radial_gradient"`
}

type SettingsResponse struct {
	ID                      uuid.UUID `json:"id"`
	LogoText                string    `json:"logo_text"`
	SubtitleText            string    `json:"subtitle_text"`
	GoingButtonText         string    `json:"going_button_text"`
	CantGoButtonText        string    `json:"cant_go_button_text"`
	DressCodeLabel          string    `json:"dress_code_label"`
	AddressLabel            string    `json:"address_label"`
	EventAgendaLabel        string    `json:"event_agenda_label"`
	GuestInfoLabel          string    `json:"guest_info_label"`
	GoingButtonColor        string    `json:"going_button_color"`
	GoingButtonTextColor    string    `json:"going_button_text_color"`
	GoingButtonHoverColor   string    `json:"going_button_hover_color"`
	CantGoButtonColor       string    `json:"cant_go_button_color"`
	CantGoButtonTextColor   string    `json:"cant_go_button_text_color"`
	CantGoButtonBorderColor string    `json:"cant_go_button_border_color"`
	CantGoButtonHoverColor  string    `json:"cant_go_button_hover_color"`
	LogoImage               *string   `json:"logo_image"`
	ShowLinearGradient      bool      `json:"show_linear_gradient"`
	ShowRadialGradient      bool      `json:"show_radial_gradient"`
	UpdatedAt               time.Time `json:"updated_at"`
}
