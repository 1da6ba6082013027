package card

import "github.com/goliatone/go-cardkit/pkg/node"

// TypeImage is the Image element discriminator.
const TypeImage = "Image"

// Image displays a single image. The element exclusively owns its
// SelectAction.
type Image struct {
	BaseElement
	URL                 string
	Style               ImageStyle
	Size                ImageSize
	AltText             string
	HorizontalAlignment HorizontalAlignment
	SelectAction        Action
}

// NewImage constructs an Image with schema defaults.
func NewImage(url string) *Image {
	return &Image{
		BaseElement:         NewBaseElement(),
		URL:                 url,
		Style:               ImageStyleDefault,
		Size:                ImageSizeAuto,
		HorizontalAlignment: AlignLeft,
	}
}

// ElementType returns the type discriminator.
func (i *Image) ElementType() string { return TypeImage }

// SerializeToValue emits the element as a document node.
func (i *Image) SerializeToValue() *node.Value {
	obj := node.Object()
	i.serializeInto(obj, TypeImage)
	obj.Set("url", node.String(i.URL))
	if i.Style != ImageStyleDefault {
		obj.Set("style", node.String(i.Style.String()))
	}
	if i.Size != ImageSizeAuto {
		obj.Set("size", node.String(i.Size.String()))
	}
	if i.AltText != "" {
		obj.Set("altText", node.String(i.AltText))
	}
	if i.HorizontalAlignment != AlignLeft {
		obj.Set("horizontalAlignment", node.String(i.HorizontalAlignment.String()))
	}
	if i.SelectAction != nil {
		obj.Set(keySelectAct, i.SelectAction.SerializeToValue())
	}
	i.serializeAdditional(obj)
	return obj
}

func parseImage(ctx *ParseContext, v *node.Value) (Element, error) {
	rd := newObjectReader(ctx, v)
	img := NewImage("")
	img.decodeBase(rd)

	// URL is required. An empty string is accepted (the host decides how to
	// treat an unloadable image) so absence warns and defaults rather than
	// dropping the element.
	if url, ok := rd.requireString("url"); ok {
		img.URL = url
	}
	if tok, ok := rd.stringField("style"); ok {
		style, valid := ParseImageStyle(tok)
		if !valid {
			rd.warnEnum("style", tok)
		}
		img.Style = style
	}
	if tok, ok := rd.stringField("size"); ok {
		size, valid := ParseImageSize(tok)
		if !valid {
			rd.warnEnum("size", tok)
		}
		img.Size = size
	}
	if alt, ok := rd.stringField("altText"); ok {
		img.AltText = alt
	}
	if tok, ok := rd.stringField("horizontalAlignment"); ok {
		align, valid := ParseHorizontalAlignment(tok)
		if !valid {
			rd.warnEnum("horizontalAlignment", tok)
		}
		img.HorizontalAlignment = align
	}
	img.SelectAction = ctx.parseActionField(rd, keySelectAct)

	img.AdditionalProperties = rd.rest()
	return img, nil
}
