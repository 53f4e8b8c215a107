package segment

import "image"

// Kind identifies what a segment displays
type Kind int

const (
	KindEmpty Kind = iota
	KindText
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindImage:
		return "image"
	default:
		return "empty"
	}
}

// Content is the displayable content of a segment: nothing, a title or an image.
// The zero value is empty content.
type Content struct {
	kind  Kind
	title string
	img   image.Image
}

// Text returns title content
func Text(title string) Content {
	return Content{kind: KindText, title: title}
}

// Image returns image content
func Image(img image.Image) Content {
	return Content{kind: KindImage, img: img}
}

// Kind reports which variant the content holds
func (c Content) Kind() Kind { return c.kind }

// IsEmpty reports whether nothing has been set
func (c Content) IsEmpty() bool { return c.kind == KindEmpty }

// Title returns the title and whether the content is text
func (c Content) Title() (string, bool) {
	return c.title, c.kind == KindText
}

// Image returns the image and whether the content is an image
func (c Content) Image() (image.Image, bool) {
	return c.img, c.kind == KindImage
}
