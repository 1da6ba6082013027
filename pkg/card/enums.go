package card

// Enumerations mirror the card schema's token tables. Every enum parses with
// a case-sensitive table and falls back to its documented default on an
// unrecognized token; the boolean result lets the decoder attach a warning
// without aborting the parse.

// Spacing controls the gap an element requests above itself.
type Spacing string

const (
	SpacingNone       Spacing = "none"
	SpacingSmall      Spacing = "small"
	SpacingDefault    Spacing = "default"
	SpacingMedium     Spacing = "medium"
	SpacingLarge      Spacing = "large"
	SpacingExtraLarge Spacing = "extraLarge"
	SpacingPadding    Spacing = "padding"
)

// ParseSpacing maps a token to a Spacing. Unknown tokens yield
// SpacingDefault and false.
func ParseSpacing(token string) (Spacing, bool) {
	switch Spacing(token) {
	case SpacingNone, SpacingSmall, SpacingDefault, SpacingMedium,
		SpacingLarge, SpacingExtraLarge, SpacingPadding:
		return Spacing(token), true
	default:
		return SpacingDefault, false
	}
}

// String returns the schema token.
func (s Spacing) String() string { return string(s) }

// ImageStyle selects the rendering treatment for an Image.
type ImageStyle string

const (
	ImageStyleDefault ImageStyle = "default"
	ImageStylePerson  ImageStyle = "person"
)

// ParseImageStyle maps a token to an ImageStyle; unknown tokens yield
// ImageStyleDefault and false.
func ParseImageStyle(token string) (ImageStyle, bool) {
	switch ImageStyle(token) {
	case ImageStyleDefault, ImageStylePerson:
		return ImageStyle(token), true
	default:
		return ImageStyleDefault, false
	}
}

// String returns the schema token.
func (s ImageStyle) String() string { return string(s) }

// ImageSize selects the sizing policy for an Image.
type ImageSize string

const (
	ImageSizeAuto    ImageSize = "auto"
	ImageSizeStretch ImageSize = "stretch"
	ImageSizeSmall   ImageSize = "small"
	ImageSizeMedium  ImageSize = "medium"
	ImageSizeLarge   ImageSize = "large"
)

// ParseImageSize maps a token to an ImageSize; unknown tokens yield
// ImageSizeAuto and false.
func ParseImageSize(token string) (ImageSize, bool) {
	switch ImageSize(token) {
	case ImageSizeAuto, ImageSizeStretch, ImageSizeSmall, ImageSizeMedium, ImageSizeLarge:
		return ImageSize(token), true
	default:
		return ImageSizeAuto, false
	}
}

// String returns the schema token.
func (s ImageSize) String() string { return string(s) }

// HorizontalAlignment positions an element along the horizontal axis.
type HorizontalAlignment string

const (
	AlignLeft   HorizontalAlignment = "left"
	AlignCenter HorizontalAlignment = "center"
	AlignRight  HorizontalAlignment = "right"
)

// ParseHorizontalAlignment maps a token to a HorizontalAlignment; unknown
// tokens yield AlignLeft and false.
func ParseHorizontalAlignment(token string) (HorizontalAlignment, bool) {
	switch HorizontalAlignment(token) {
	case AlignLeft, AlignCenter, AlignRight:
		return HorizontalAlignment(token), true
	default:
		return AlignLeft, false
	}
}

// String returns the schema token.
func (a HorizontalAlignment) String() string { return string(a) }

// VerticalAlignment positions container content along the vertical axis.
type VerticalAlignment string

const (
	VerticalTop    VerticalAlignment = "top"
	VerticalCenter VerticalAlignment = "center"
	VerticalBottom VerticalAlignment = "bottom"
)

// ParseVerticalAlignment maps a token to a VerticalAlignment; unknown tokens
// yield VerticalTop and false.
func ParseVerticalAlignment(token string) (VerticalAlignment, bool) {
	switch VerticalAlignment(token) {
	case VerticalTop, VerticalCenter, VerticalBottom:
		return VerticalAlignment(token), true
	default:
		return VerticalTop, false
	}
}

// String returns the schema token.
func (a VerticalAlignment) String() string { return string(a) }

// TextSize scales TextBlock content.
type TextSize string

const (
	TextSizeSmall      TextSize = "small"
	TextSizeDefault    TextSize = "default"
	TextSizeMedium     TextSize = "medium"
	TextSizeLarge      TextSize = "large"
	TextSizeExtraLarge TextSize = "extraLarge"
)

// ParseTextSize maps a token to a TextSize; unknown tokens yield
// TextSizeDefault and false.
func ParseTextSize(token string) (TextSize, bool) {
	switch TextSize(token) {
	case TextSizeSmall, TextSizeDefault, TextSizeMedium, TextSizeLarge, TextSizeExtraLarge:
		return TextSize(token), true
	default:
		return TextSizeDefault, false
	}
}

// String returns the schema token.
func (s TextSize) String() string { return string(s) }

// TextWeight adjusts TextBlock font weight.
type TextWeight string

const (
	TextWeightLighter TextWeight = "lighter"
	TextWeightDefault TextWeight = "default"
	TextWeightBolder  TextWeight = "bolder"
)

// ParseTextWeight maps a token to a TextWeight; unknown tokens yield
// TextWeightDefault and false.
func ParseTextWeight(token string) (TextWeight, bool) {
	switch TextWeight(token) {
	case TextWeightLighter, TextWeightDefault, TextWeightBolder:
		return TextWeight(token), true
	default:
		return TextWeightDefault, false
	}
}

// String returns the schema token.
func (w TextWeight) String() string { return string(w) }

// TextColor selects a host-theme color slot for TextBlock content.
type TextColor string

const (
	TextColorDefault   TextColor = "default"
	TextColorDark      TextColor = "dark"
	TextColorLight     TextColor = "light"
	TextColorAccent    TextColor = "accent"
	TextColorGood      TextColor = "good"
	TextColorWarning   TextColor = "warning"
	TextColorAttention TextColor = "attention"
)

// ParseTextColor maps a token to a TextColor; unknown tokens yield
// TextColorDefault and false.
func ParseTextColor(token string) (TextColor, bool) {
	switch TextColor(token) {
	case TextColorDefault, TextColorDark, TextColorLight, TextColorAccent,
		TextColorGood, TextColorWarning, TextColorAttention:
		return TextColor(token), true
	default:
		return TextColorDefault, false
	}
}

// String returns the schema token.
func (c TextColor) String() string { return string(c) }

// ContainerStyle selects the background treatment for container elements.
type ContainerStyle string

const (
	ContainerStyleDefault   ContainerStyle = "default"
	ContainerStyleEmphasis  ContainerStyle = "emphasis"
	ContainerStyleGood      ContainerStyle = "good"
	ContainerStyleAttention ContainerStyle = "attention"
	ContainerStyleWarning   ContainerStyle = "warning"
	ContainerStyleAccent    ContainerStyle = "accent"
)

// ParseContainerStyle maps a token to a ContainerStyle; unknown tokens yield
// ContainerStyleDefault and false.
func ParseContainerStyle(token string) (ContainerStyle, bool) {
	switch ContainerStyle(token) {
	case ContainerStyleDefault, ContainerStyleEmphasis, ContainerStyleGood,
		ContainerStyleAttention, ContainerStyleWarning, ContainerStyleAccent:
		return ContainerStyle(token), true
	default:
		return ContainerStyleDefault, false
	}
}

// String returns the schema token.
func (s ContainerStyle) String() string { return string(s) }

// ActionStyle hints how prominently a host should present an action.
type ActionStyle string

const (
	ActionStyleDefault     ActionStyle = "default"
	ActionStylePositive    ActionStyle = "positive"
	ActionStyleDestructive ActionStyle = "destructive"
)

// ParseActionStyle maps a token to an ActionStyle; unknown tokens yield
// ActionStyleDefault and false.
func ParseActionStyle(token string) (ActionStyle, bool) {
	switch ActionStyle(token) {
	case ActionStyleDefault, ActionStylePositive, ActionStyleDestructive:
		return ActionStyle(token), true
	default:
		return ActionStyleDefault, false
	}
}

// String returns the schema token.
func (s ActionStyle) String() string { return string(s) }

// TextInputStyle selects the keyboard/validation hint for Input.Text.
type TextInputStyle string

const (
	TextInputStyleText  TextInputStyle = "text"
	TextInputStyleTel   TextInputStyle = "tel"
	TextInputStyleURL   TextInputStyle = "url"
	TextInputStyleEmail TextInputStyle = "email"
)

// ParseTextInputStyle maps a token to a TextInputStyle; unknown tokens yield
// TextInputStyleText and false.
func ParseTextInputStyle(token string) (TextInputStyle, bool) {
	switch TextInputStyle(token) {
	case TextInputStyleText, TextInputStyleTel, TextInputStyleURL, TextInputStyleEmail:
		return TextInputStyle(token), true
	default:
		return TextInputStyleText, false
	}
}

// String returns the schema token.
func (s TextInputStyle) String() string { return string(s) }

// ChoiceSetStyle selects the presentation of an Input.ChoiceSet.
type ChoiceSetStyle string

const (
	ChoiceSetStyleCompact  ChoiceSetStyle = "compact"
	ChoiceSetStyleExpanded ChoiceSetStyle = "expanded"
)

// ParseChoiceSetStyle maps a token to a ChoiceSetStyle; unknown tokens yield
// ChoiceSetStyleCompact and false.
func ParseChoiceSetStyle(token string) (ChoiceSetStyle, bool) {
	switch ChoiceSetStyle(token) {
	case ChoiceSetStyleCompact, ChoiceSetStyleExpanded:
		return ChoiceSetStyle(token), true
	default:
		return ChoiceSetStyleCompact, false
	}
}

// String returns the schema token.
func (s ChoiceSetStyle) String() string { return string(s) }
