package encode

import "github.com/signadot/jsondoc/format"

type EncodeOption func(*EncState)

func EncodeStyle(s format.Style) EncodeOption {
	return func(es *EncState) { es.style = s }
}

// EncodeFormat selects JSON (the default) or YAML output.
func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// Indent sets the number of spaces per level of the indented style.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

func TrailingNewline(v bool) EncodeOption {
	return func(es *EncState) { es.trailingNL = v }
}
