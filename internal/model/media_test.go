package model

import (
	"errors"
	"testing"
)

// TestDetectMediaType tests extension-based media classification.
func TestDetectMediaType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		nameOrURL string
		want      MediaType
	}{
		{name: "jpeg image", nameOrURL: "photo.jpg", want: MediaTypeImage},
		{name: "png image", nameOrURL: "wall.PNG", want: MediaTypeImage},
		{name: "webp image", nameOrURL: "wall.webp", want: MediaTypeImage},
		{name: "gif", nameOrURL: "loop.gif", want: MediaTypeGIF},
		{name: "mp4 video", nameOrURL: "clip.mp4", want: MediaTypeVideo},
		{name: "webm video", nameOrURL: "clip.webm", want: MediaTypeVideo},
		{name: "URL with query string", nameOrURL: "https://cdn.example.com/bg.mp4?token=abc", want: MediaTypeVideo},
		{name: "URL with fragment", nameOrURL: "https://cdn.example.com/bg.gif#loop", want: MediaTypeGIF},
		{name: "unknown extension falls back to image", nameOrURL: "avatar.svg", want: MediaTypeImage},
		{name: "no extension falls back to image", nameOrURL: "https://example.com/avatar", want: MediaTypeImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := DetectMediaType(tt.nameOrURL); got != tt.want {
				t.Errorf("DetectMediaType(%q) = %s, want %s", tt.nameOrURL, got, tt.want)
			}
		})
	}
}

// TestBackgroundTypeForMedia tests media to background type mapping.
func TestBackgroundTypeForMedia(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mt   MediaType
		want BackgroundType
	}{
		{mt: MediaTypeImage, want: BackgroundImage},
		{mt: MediaTypeGIF, want: BackgroundGIF},
		{mt: MediaTypeVideo, want: BackgroundVideo},
	}

	for _, tt := range tests {
		t.Run(string(tt.mt), func(t *testing.T) {
			t.Parallel()

			if got := BackgroundTypeForMedia(tt.mt); got != tt.want {
				t.Errorf("BackgroundTypeForMedia(%s) = %s, want %s", tt.mt, got, tt.want)
			}
		})
	}
}

// TestValidateBackgroundFile tests background upload checks.
func TestValidateBackgroundFile(t *testing.T) {
	t.Parallel()

	t.Run("accepts image within limit", func(t *testing.T) {
		t.Parallel()

		mt, err := ValidateBackgroundFile("wall.png", 5*1024*1024)
		if err != nil {
			t.Fatalf("expected image accepted: %v", err)
		}
		if mt != MediaTypeImage {
			t.Errorf("expected image type, got %s", mt)
		}
	})

	t.Run("accepts video up to its larger limit", func(t *testing.T) {
		t.Parallel()

		mt, err := ValidateBackgroundFile("clip.mp4", 60*1024*1024)
		if err != nil {
			t.Fatalf("expected video accepted: %v", err)
		}
		if mt != MediaTypeVideo {
			t.Errorf("expected video type, got %s", mt)
		}
	})

	t.Run("rejects image above limit", func(t *testing.T) {
		t.Parallel()

		_, err := ValidateBackgroundFile("wall.png", MaxBackgroundImageSize+1)
		if !errors.Is(err, ErrMediaFileTooLarge) {
			t.Errorf("expected ErrMediaFileTooLarge, got %v", err)
		}
	})

	t.Run("rejects video above limit", func(t *testing.T) {
		t.Parallel()

		_, err := ValidateBackgroundFile("clip.webm", MaxBackgroundVideoSize+1)
		if !errors.Is(err, ErrMediaFileTooLarge) {
			t.Errorf("expected ErrMediaFileTooLarge, got %v", err)
		}
	})

	t.Run("rejects unsupported extension", func(t *testing.T) {
		t.Parallel()

		_, err := ValidateBackgroundFile("wall.bmp", 1024)
		if !errors.Is(err, ErrUnsupportedMediaFile) {
			t.Errorf("expected ErrUnsupportedMediaFile, got %v", err)
		}
	})
}

// TestValidateAvatarFile tests avatar upload checks.
func TestValidateAvatarFile(t *testing.T) {
	t.Parallel()

	t.Run("accepts small image", func(t *testing.T) {
		t.Parallel()

		mt, err := ValidateAvatarFile("me.jpg", 1024*1024)
		if err != nil {
			t.Fatalf("expected image accepted: %v", err)
		}
		if mt != MediaTypeImage {
			t.Errorf("expected image type, got %s", mt)
		}
	})

	t.Run("rejects image above avatar limit", func(t *testing.T) {
		t.Parallel()

		// 6MB is fine for a background but too big for an avatar.
		_, err := ValidateAvatarFile("me.jpg", 6*1024*1024)
		if !errors.Is(err, ErrMediaFileTooLarge) {
			t.Errorf("expected ErrMediaFileTooLarge, got %v", err)
		}
	})

	t.Run("rejects unsupported extension", func(t *testing.T) {
		t.Parallel()

		_, err := ValidateAvatarFile("me.tiff", 1024)
		if !errors.Is(err, ErrUnsupportedMediaFile) {
			t.Errorf("expected ErrUnsupportedMediaFile, got %v", err)
		}
	})
}

// TestFormatFileSize tests human-readable size rendering.
func TestFormatFileSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{name: "bytes", bytes: 512, want: "512 B"},
		{name: "kilobytes", bytes: 2048, want: "2.0 KB"},
		{name: "megabytes", bytes: 5 * 1024 * 1024, want: "5.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatFileSize(tt.bytes); got != tt.want {
				t.Errorf("FormatFileSize(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}
