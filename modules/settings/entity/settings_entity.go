package entity

import "event-rsvp-api/core/entity"

// Settings is the single-row site configuration: landing-page texts, button
// styling and background toggles. The row is created on first read.
type Settings struct {
	entity.BaseEntity
	LogoText                string  `db:"logo_text" json:"logo_text"`
	SubtitleText            string  `db:"subtitle_text" json:"subtitle_text"`
	GoingButtonText         string  `db:"going_button_text" json:"going_button_text"`
	CantGoButtonText        string  `db:"cant_go_button_text" json:"cant_go_button_text"`
	DressCodeLabel          string  `db:"dress_code_label" json:"dress_code_label"`
	AddressLabel            string  `db:"address_label" json:"address_label"`
	EventAgendaLabel        string  `db:"event_agenda_label" json:"event_agenda_label"`
	GuestInfoLabel          string  `db:"guest_info_label" json:"guest_info_label"`
	GoingButtonColor        string  `db:"going_button_color" json:"going_button_color"`
	GoingButtonTextColor    string  `db:"going_button_text_color" json:"going_button_text_color"`
	GoingButtonHoverColor   string  `db:"going_button_hover_color" json:"going_button_hover_color"`
	CantGoButtonColor       string  `db:"cant_go_button_color" json:"cant_go_button_color"`
	CantGoButtonTextColor   string  `db:"cant_go_button_text_color" json:"cant_go_button_text_color"`
	CantGoButtonBorderColor string  `db:"cant_go_button_border_color" json:"cant_go_button_border_color"`
	CantGoButtonHoverColor  string  `db:"cant_go_button_hover_color" json:"cant_go_button_hover_color"`
	LogoImage               *string `db:"logo_image" json:"logo_image"`
	ShowLinearGradient      bool    `db:"show_linear_gradient" json:"show_linear_gradient"`
	ShowRadialGradient      bool    `db:"show_radial_gradient" json:"show_radial_gradient"`
}
