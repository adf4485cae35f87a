package model

import (
	"fmt"
	"path"
	"strings"
)

// Size limits for uploaded media, in bytes. Backgrounds live in the blob
// store so their limits are generous; avatars are stored inline in the
// profile record and must stay small.
const (
	// MaxBackgroundImageSize is the limit for background images.
	MaxBackgroundImageSize = 20 * 1024 * 1024

	// MaxBackgroundVideoSize is the limit for background videos.
	MaxBackgroundVideoSize = 100 * 1024 * 1024

	// MaxAvatarImageSize is the limit for avatar images.
	MaxAvatarImageSize = 5 * 1024 * 1024

	// MaxAvatarVideoSize is the limit for avatar videos.
	MaxAvatarVideoSize = 10 * 1024 * 1024
)

// mediaTypeByExtension maps lowercase file extensions to media types.
// Extensions outside this map are not accepted for upload.
var mediaTypeByExtension = map[string]MediaType{
	".jpg":  MediaTypeImage,
	".jpeg": MediaTypeImage,
	".png":  MediaTypeImage,
	".webp": MediaTypeImage,
	".gif":  MediaTypeGIF,
	".mp4":  MediaTypeVideo,
	".webm": MediaTypeVideo,
}

// DetectMediaType classifies a file or URL by its extension.
// Unknown extensions default to MediaTypeImage, matching how renderers
// treat arbitrary avatar URLs.
func DetectMediaType(nameOrURL string) MediaType {
	ext := strings.ToLower(path.Ext(strippedPath(nameOrURL)))
	if mt, ok := mediaTypeByExtension[ext]; ok {
		return mt
	}
	return MediaTypeImage
}

// strippedPath removes query and fragment parts so URL extensions resolve.
func strippedPath(nameOrURL string) string {
	if i := strings.IndexAny(nameOrURL, "?#"); i >= 0 {
		return nameOrURL[:i]
	}
	return nameOrURL
}

// BackgroundTypeForMedia maps a media type to its background type.
func BackgroundTypeForMedia(mt MediaType) BackgroundType {
	switch mt {
	case MediaTypeGIF:
		return BackgroundGIF
	case MediaTypeVideo:
		return BackgroundVideo
	default:
		return BackgroundImage
	}
}

// ValidateBackgroundFile checks an uploaded background file's extension and
// size, returning the detected media type when accepted.
func ValidateBackgroundFile(name string, size int64) (MediaType, error) {
	mt, err := detectUploadType(name)
	if err != nil {
		return "", err
	}

	limit := int64(MaxBackgroundImageSize)
	if mt == MediaTypeVideo {
		limit = MaxBackgroundVideoSize
	}
	if size > limit {
		return "", fmt.Errorf("%w: %s is %s (limit %s)",
			ErrMediaFileTooLarge, name, FormatFileSize(size), FormatFileSize(limit))
	}
	return mt, nil
}

// ValidateAvatarFile checks an uploaded avatar file's extension and size,
// returning the detected media type when accepted.
func ValidateAvatarFile(name string, size int64) (MediaType, error) {
	mt, err := detectUploadType(name)
	if err != nil {
		return "", err
	}

	limit := int64(MaxAvatarImageSize)
	if mt == MediaTypeVideo {
		limit = int64(MaxAvatarVideoSize)
	}
	if size > limit {
		return "", fmt.Errorf("%w: %s is %s (limit %s)",
			ErrMediaFileTooLarge, name, FormatFileSize(size), FormatFileSize(limit))
	}
	return mt, nil
}

// detectUploadType classifies an uploaded file strictly: unlike
// DetectMediaType there is no image fallback for unknown extensions.
func detectUploadType(name string) (MediaType, error) {
	ext := strings.ToLower(path.Ext(name))
	mt, ok := mediaTypeByExtension[ext]
	if !ok {
		return "", fmt.Errorf("%w: %s (accepted: JPG, PNG, WebP, GIF, MP4, WebM)",
			ErrUnsupportedMediaFile, name)
	}
	return mt, nil
}

// FormatFileSize renders a byte count for user-facing messages.
func FormatFileSize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	}
}
