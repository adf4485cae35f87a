package model

import (
	"errors"
	"testing"
)

// TestAvatarConfigSource tests avatar source selection by mode.
func TestAvatarConfigSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		avatar  AvatarConfig
		want    string
		wantErr error
	}{
		{
			name:   "url mode returns URL",
			avatar: AvatarConfig{Mode: AvatarModeURL, URL: "https://example.com/me.png", MediaType: MediaTypeImage},
			want:   "https://example.com/me.png",
		},
		{
			name:   "file mode returns data URI",
			avatar: AvatarConfig{Mode: AvatarModeFile, FileDataURL: "data:image/png;base64,AAAA", MediaType: MediaTypeImage},
			want:   "data:image/png;base64,AAAA",
		},
		{
			name:    "url mode with empty URL",
			avatar:  AvatarConfig{Mode: AvatarModeURL},
			wantErr: ErrMissingAvatarSource,
		},
		{
			name:    "file mode with empty data URI",
			avatar:  AvatarConfig{Mode: AvatarModeFile},
			wantErr: ErrMissingAvatarSource,
		},
		{
			name:    "unknown mode",
			avatar:  AvatarConfig{Mode: AvatarMode("gravatar"), URL: "https://example.com/me.png"},
			wantErr: ErrInvalidAvatarMode,
		},
		{
			name:   "url mode ignores stale file field",
			avatar: AvatarConfig{Mode: AvatarModeURL, URL: "/avatar.png", FileDataURL: "data:image/png;base64,AAAA"},
			want:   "/avatar.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.avatar.Source()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Source() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Source() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestDefaultProfile tests the built-in profile record.
func TestDefaultProfile(t *testing.T) {
	t.Parallel()

	p := DefaultProfile()

	if p.Name == "" || p.Bio == "" {
		t.Error("default profile must have name and bio")
	}
	if err := p.Avatar.Validate(); err != nil {
		t.Errorf("default avatar is invalid: %v", err)
	}

	src, err := p.Avatar.Source()
	if err != nil {
		t.Fatalf("default avatar has no source: %v", err)
	}
	if src != "/avatar.png" {
		t.Errorf("expected bundled avatar asset, got %q", src)
	}
}

// TestDefaultBackground tests the empty background configuration.
func TestDefaultBackground(t *testing.T) {
	t.Parallel()

	bg := DefaultBackground()
	if bg.Type != BackgroundNone {
		t.Errorf("expected BackgroundNone, got %s", bg.Type)
	}
	if bg.Value != "" || bg.Blur != 0 || bg.Dim != 0 {
		t.Errorf("expected zeroed background, got %+v", bg)
	}
}
