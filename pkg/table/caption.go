package table

type captionKind int

const (
	captionOff captionKind = iota
	captionAuto
	captionText
	captionModel
)

// Caption selects whether a table gets a caption and where its text comes
// from. The zero value renders no caption.
type Caption struct {
	kind  captionKind
	text  string
	model any
}

// AutoCaption derives the caption from the active model's type name.
func AutoCaption() Caption {
	return Caption{kind: captionAuto}
}

// NoCaption disables the caption.
func NoCaption() Caption {
	return Caption{kind: captionOff}
}

// CaptionText uses text verbatim. An empty string disables the caption.
func CaptionText(text string) Caption {
	return Caption{kind: captionText, text: text}
}

// CaptionFor names the model the caption belongs to. Single and collection
// tables treat it like AutoCaption; Concat uses it to pick which constituent
// model emits the caption. A nil model disables the caption.
//
// Pointers, maps and other reference values match by identity. Plain struct
// values match by equality, so pass a pointer when two targets may hold equal
// values.
func CaptionFor(m any) Caption {
	return Caption{kind: captionModel, model: m}
}

// Enabled reports whether the caption should be rendered.
func (c Caption) Enabled() bool {
	switch c.kind {
	case captionAuto:
		return true
	case captionText:
		return c.text != ""
	case captionModel:
		return c.model != nil
	default:
		return false
	}
}

// Text returns the literal caption text for text captions.
func (c Caption) Text() (string, bool) {
	if c.kind != captionText {
		return "", false
	}
	return c.text, true
}

// Model returns the model referenced by CaptionFor.
func (c Caption) Model() any {
	if c.kind != captionModel {
		return nil
	}
	return c.model
}
