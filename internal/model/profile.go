package model

// MediaType classifies avatar and background media.
type MediaType string

const (
	// MediaTypeImage covers static images (JPEG, PNG, WebP).
	MediaTypeImage MediaType = "image"

	// MediaTypeGIF covers animated GIFs, rendered as looping images.
	MediaTypeGIF MediaType = "gif"

	// MediaTypeVideo covers video files (MP4, WebM).
	MediaTypeVideo MediaType = "video"
)

// AvatarMode tags the variant of an AvatarConfig.
type AvatarMode string

const (
	// AvatarModeURL means the avatar is fetched from an external URL.
	AvatarModeURL AvatarMode = "url"

	// AvatarModeFile means the avatar is an uploaded file stored inline
	// as a base64 data URI.
	AvatarModeFile AvatarMode = "file"
)

// AvatarConfig is a tagged union: Mode selects which source field is
// meaningful. Use Source to read the payload with exhaustiveness checking
// instead of touching URL/FileDataURL directly.
type AvatarConfig struct {
	// Mode selects the variant: AvatarModeURL or AvatarModeFile.
	Mode AvatarMode `json:"mode"`

	// URL is the avatar location when Mode is AvatarModeURL.
	URL string `json:"url,omitempty"`

	// FileDataURL is the base64 data URI when Mode is AvatarModeFile.
	FileDataURL string `json:"fileDataUrl,omitempty"`

	// MediaType tells renderers whether to use an img or video element.
	MediaType MediaType `json:"mediaType"`
}

// Source returns the renderable avatar source selected by Mode.
func (a *AvatarConfig) Source() (string, error) {
	switch a.Mode {
	case AvatarModeURL:
		if a.URL == "" {
			return "", ErrMissingAvatarSource
		}
		return a.URL, nil
	case AvatarModeFile:
		if a.FileDataURL == "" {
			return "", ErrMissingAvatarSource
		}
		return a.FileDataURL, nil
	default:
		return "", ErrInvalidAvatarMode
	}
}

// Validate checks that the mode tag is known and its source field is set.
func (a *AvatarConfig) Validate() error {
	_, err := a.Source()
	return err
}

// Profile is the single user profile record shown in the dashboard header.
type Profile struct {
	// Name is the display name.
	Name string `json:"name"`

	// Bio is a one-line description under the name.
	Bio string `json:"bio"`

	// Avatar configures the profile picture.
	Avatar AvatarConfig `json:"avatar"`
}
