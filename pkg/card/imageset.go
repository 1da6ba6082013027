package card

import "github.com/goliatone/go-cardkit/pkg/node"

// TypeImageSet is the ImageSet element discriminator.
const TypeImageSet = "ImageSet"

// ImageSet displays a collection of images with a shared size.
type ImageSet struct {
	BaseElement
	Images    []*Image
	ImageSize ImageSize
}

// NewImageSet constructs an ImageSet with schema defaults.
func NewImageSet(images ...*Image) *ImageSet {
	return &ImageSet{
		BaseElement: NewBaseElement(),
		Images:      images,
		ImageSize:   ImageSizeMedium,
	}
}

// ElementType returns the type discriminator.
func (s *ImageSet) ElementType() string { return TypeImageSet }

// SerializeToValue emits the element as a document node.
func (s *ImageSet) SerializeToValue() *node.Value {
	obj := node.Object()
	s.serializeInto(obj, TypeImageSet)
	images := node.Array()
	for _, img := range s.Images {
		images.Append(img.SerializeToValue())
	}
	obj.Set("images", images)
	if s.ImageSize != ImageSizeMedium {
		obj.Set("imageSize", node.String(s.ImageSize.String()))
	}
	s.serializeAdditional(obj)
	return obj
}

func parseImageSet(ctx *ParseContext, v *node.Value) (Element, error) {
	rd := newObjectReader(ctx, v)
	set := NewImageSet()
	set.decodeBase(rd)

	if images, ok := rd.arrayField("images"); ok {
		for i, imgNode := range images {
			ctx.pushPath(indexed("images", i))
			el, produced := ctx.parseElementNode(imgNode)
			ctx.popPath()
			if !produced || el == nil {
				continue
			}
			if img, isImg := el.(*Image); isImg {
				set.Images = append(set.Images, img)
				continue
			}
			ctx.warn(WarningElementDropped, el.ElementID(), "ImageSet children must be Image, got %q", el.ElementType())
		}
	}
	if tok, ok := rd.stringField("imageSize"); ok {
		size, valid := ParseImageSize(tok)
		if !valid {
			rd.warnEnum("imageSize", tok)
		}
		set.ImageSize = size
	}

	set.AdditionalProperties = rd.rest()
	return set, nil
}
