package service

import (
	"context"
	"encoding/json"
	"strings"

	"event-rsvp-api/core/cache"
	"event-rsvp-api/core/constants"
	apperrors "event-rsvp-api/core/errors"
	"event-rsvp-api/core/logger"
	eventservice "event-rsvp-api/modules/event/service"
	"event-rsvp-api/modules/settings/dto"
	"event-rsvp-api/modules/settings/entity"
	"event-rsvp-api/modules/settings/repository"
)

type SettingsService struct {
	repo  repository.SettingsRepository
	cache cache.Cache
}

func NewSettingsService(repo repository.SettingsRepository, c cache.Cache) *SettingsService {
	return &SettingsService{repo: repo, cache: c}
}

// GetSettings returns the site settings, cached. A cache failure is logged
// and falls through to the database.
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.Settings, *apperrors.AppError) {
	if s.cache != nil {
		if raw, found, err := s.cache.Get(ctx, constants.RedisKeySettings); err != nil {
			logger.Warn("SettingsService:GetSettings:CacheGet:Error", "error", err)
		} else if found {
			var settings entity.Settings
			if err := json.Unmarshal([]byte(raw), &settings); err != nil {
				logger.Warn("SettingsService:GetSettings:CacheDecode:Error", "error", err)
			} else {
				return &settings, nil
			}
		}
	}

	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, apperrors.TranslateStoreError(err, "Failed to load settings")
	}

	s.cacheSettings(ctx, settings)
	return settings, nil
}

// UpdateSettings applies the non-nil fields of the request and returns the
// full updated row. Unknown fields never reach the repository.
func (s *SettingsService) UpdateSettings(ctx context.Context, req *dto.UpdateSettingsRequest) (*entity.Settings, *apperrors.AppError) {
	fields := updateFields(req)

	settings, err := s.repo.Update(ctx, fields)
	if err != nil {
		return nil, apperrors.TranslateStoreError(err, "Failed to update settings")
	}

	s.invalidate(ctx)
	s.cacheSettings(ctx, settings)
	logger.Info("SettingsService:UpdateSettings:Success", "fields", len(fields))
	return settings, nil
}

// ResetSettings restores every value to its default.
func (s *SettingsService) ResetSettings(ctx context.Context) (*entity.Settings, *apperrors.AppError) {
	settings, err := s.repo.Reset(ctx)
	if err != nil {
		return nil, apperrors.TranslateStoreError(err, "Failed to reset settings")
	}

	s.invalidate(ctx)
	s.cacheSettings(ctx, settings)
	logger.Info("SettingsService:ResetSettings:Success")
	return settings, nil
}

// InviteLabels feeds the calendar invite description builder. Errors fall
// back to built-in defaults rather than failing the invite.
func (s *SettingsService) InviteLabels(ctx context.Context) eventservice.DescriptionLabels {
	settings, appErr := s.GetSettings(ctx)
	if appErr != nil {
		logger.Warn("SettingsService:InviteLabels:Fallback", "error", appErr)
		return eventservice.DescriptionLabels{}
	}
	return eventservice.DescriptionLabels{
		Heading:        settings.SubtitleText,
		DressCodeLabel: settings.DressCodeLabel,
		AddressLabel:   settings.AddressLabel,
	}
}

func (s *SettingsService) cacheSettings(ctx context.Context, settings *entity.Settings) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(settings)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, constants.RedisKeySettings, string(raw), constants.SettingsCacheTTL); err != nil {
		logger.Warn("SettingsService:CacheSettings:Error", "error", err)
	}
}

func (s *SettingsService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, constants.RedisKeySettings); err != nil {
		logger.Warn("SettingsService:Invalidate:Error", "error", err)
	}
}

// updateFields maps the request's non-nil members onto column names.
func updateFields(req *dto.UpdateSettingsRequest) map[string]any {
	fields := map[string]any{}
	put := func(column string, v *string) {
		if v != nil {
			fields[column] = strings.TrimSpace(*v)
		}
	}
	put("logo_text", req.LogoText)
	put("subtitle_text", req.SubtitleText)
	put("going_button_text", req.GoingButtonText)
	put("cant_go_button_text", req.CantGoButtonText)
	put("dress_code_label", req.DressCodeLabel)
	put("address_label", req.AddressLabel)
	put("event_agenda_label", req.EventAgendaLabel)
	put("guest_info_label", req.GuestInfoLabel)
	put("going_button_color", req.GoingButtonColor)
	put("going_button_text_color", req.GoingButtonTextColor)
	put("going_button_hover_color", req.GoingButtonHoverColor)
	put("cant_go_button_color", req.CantGoButtonColor)
	put("cant_go_button_text_color", req.CantGoButtonTextColor)
	put("cant_go_button_border_color", req.CantGoButtonBorderColor)
	put("cant_go_button_hover_color", req.CantGoButtonHoverColor)

	if req.LogoImage != nil {
		// Empty string clears the stored image.
		if strings.TrimSpace(*req.LogoImage) == "" {
			fields["logo_image"] = nil
		} else {
			fields["logo_image"] = strings.TrimSpace(*req.LogoImage)
		}
	}
	if req.ShowLinearGradient != nil {
		fields["show_linear_gradient"] = *req.ShowLinearGradient
	}
	if req.ShowRadialGradient != nil {
		fields["show_radial_gradient"] = *req.ShowRadialGradient
	}
	return fields
}
