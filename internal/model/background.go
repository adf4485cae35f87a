package model

// BackgroundType classifies the dashboard background.
type BackgroundType string

const (
	// BackgroundNone renders the plain theme background; Value is ignored.
	BackgroundNone BackgroundType = "none"

	// BackgroundColor renders a solid CSS color stored in Value.
	BackgroundColor BackgroundType = "color"

	// BackgroundGradient renders a CSS gradient expression stored in Value.
	BackgroundGradient BackgroundType = "gradient"

	// BackgroundImage renders a static image asset.
	BackgroundImage BackgroundType = "image"

	// BackgroundGIF renders an animated GIF asset.
	BackgroundGIF BackgroundType = "gif"

	// BackgroundVideo renders a looping video asset.
	BackgroundVideo BackgroundType = "video"
)

// BackgroundConfig describes the customizable dashboard background.
//
// For image/gif/video types Value holds an asset reference, which may be a
// transient blob reference during a session. The literal "blob:stored" value
// is a persistence-layer sentinel and is never exposed to renderers; the
// background repository swaps it for a fresh reference on load.
type BackgroundConfig struct {
	// Type selects how Value is interpreted.
	Type BackgroundType `json:"type"`

	// Value is a CSS color, a CSS gradient expression, or an asset
	// reference, depending on Type. Ignored when Type is BackgroundNone.
	Value string `json:"value"`

	// Blur is the backdrop blur strength, 0-10. The editing UI clamps the
	// range; it is not re-validated on load.
	Blur int `json:"blur"`

	// Dim is the darkening overlay percentage, 0-100. The editing UI
	// clamps the range; it is not re-validated on load.
	Dim int `json:"dim"`
}

// GradientPreset is a named, ready-to-use CSS gradient.
type GradientPreset struct {
	Name  string
	Value string
}

// GradientPresets are the built-in gradient choices offered by the
// background settings UI.
var GradientPresets = []GradientPreset{
	{Name: "Sunset", Value: "linear-gradient(135deg, #667eea 0%, #764ba2 100%)"},
	{Name: "Ocean", Value: "linear-gradient(135deg, #2E3192 0%, #1BFFFF 100%)"},
	{Name: "Forest", Value: "linear-gradient(135deg, #0F2027 0%, #203A43 50%, #2C5364 100%)"},
	{Name: "Fire", Value: "linear-gradient(135deg, #FF512F 0%, #DD2476 100%)"},
	{Name: "Aurora", Value: "linear-gradient(135deg, #00c6ff 0%, #0072ff 100%)"},
	{Name: "Violet", Value: "linear-gradient(135deg, #4e54c8 0%, #8f94fb 100%)"},
}
