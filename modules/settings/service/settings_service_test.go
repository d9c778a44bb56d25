package service

import (
	"context"
	"testing"

	"event-rsvp-api/modules/settings/dto"
	"event-rsvp-api/modules/settings/entity"
)

type stubSettingsRepo struct {
	current entity.Settings
	updated map[string]any
}

func (s *stubSettingsRepo) Get(ctx context.Context) (*entity.Settings, error) {
	out := s.current
	return &out, nil
}

func (s *stubSettingsRepo) Update(ctx context.Context, fields map[string]any) (*entity.Settings, error) {
	s.updated = fields
	out := s.current
	return &out, nil
}

func (s *stubSettingsRepo) Reset(ctx context.Context) (*entity.Settings, error) {
	out := entity.Settings{}
	return &out, nil
}

func strPtr(v string) *string { return &v }

func TestUpdateFieldsOnlyCarriesProvidedValues(t *testing.T) {
	fields := updateFields(&dto.UpdateSettingsRequest{
		LogoText:       strPtr("  My Event  "),
		DressCodeLabel: strPtr("Attire"),
	})

	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d: %v", len(fields), fields)
	}
	if fields["logo_text"] != "My Event" {
		t.Errorf("logo_text should be trimmed, got %v", fields["logo_text"])
	}
	if fields["dress_code_label"] != "Attire" {
		t.Errorf("dress_code_label = %v", fields["dress_code_label"])
	}
}

func TestUpdateFieldsEmptyLogoImageClears(t *testing.T) {
	fields := updateFields(&dto.UpdateSettingsRequest{LogoImage: strPtr("  ")})
	v, ok := fields["logo_image"]
	if !ok {
		t.Fatal("logo_image should be present")
	}
	if v != nil {
		t.Errorf("empty logo_image should clear to NULL, got %v", v)
	}
}

func TestUpdateFieldsBooleans(t *testing.T) {
	off := false
	fields := updateFields(&dto.UpdateSettingsRequest{ShowLinearGradient: &off})
	if fields["show_linear_gradient"] != false {
		t.Errorf("show_linear_gradient = %v", fields["show_linear_gradient"])
	}
	if _, ok := fields["show_radial_gradient"]; ok {
		t.Error("untouched boolean must not appear")
	}
}

func TestInviteLabelsComeFromSettings(t *testing.T) {
	repo := &stubSettingsRepo{current: entity.Settings{
		SubtitleText:   "SAVE THE DATE",
		DressCodeLabel: "Attire",
		AddressLabel:   "Venue",
	}}
	svc := NewSettingsService(repo, nil)

	labels := svc.InviteLabels(context.Background())
	if labels.Heading != "SAVE THE DATE" {
		t.Errorf("heading = %q", labels.Heading)
	}
	if labels.DressCodeLabel != "Attire" || labels.AddressLabel != "Venue" {
		t.Errorf("labels = %+v", labels)
	}
}

func TestUpdateSettingsPassesWhitelistedColumns(t *testing.T) {
	repo := &stubSettingsRepo{}
	svc := NewSettingsService(repo, nil)

	_, appErr := svc.UpdateSettings(context.Background(), &dto.UpdateSettingsRequest{
		GoingButtonText: strPtr("I'm in"),
	})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if repo.updated["going_button_text"] != "I'm in" {
		t.Errorf("updated fields = %v", repo.updated)
	}
}
