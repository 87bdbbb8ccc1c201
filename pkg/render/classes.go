package render

// TableClass is a typed identifier for semantic table CSS classes emitted by
// the embedded element templates.
type TableClass string

const (
	ClassCaption TableClass = "formtable-caption"
	ClassHeader  TableClass = "formtable-header"
	ClassCell    TableClass = "formtable-cell"
	ClassFlag    TableClass = "formtable-flag"
)

// DefaultTemplates maps element names to the embedded templates used by the
// built-in "template" strategy. Content arrives escaped, so templates print it
// with |safe.
func DefaultTemplates() map[string]string {
	return map[string]string{
		"caption": "caption",
		"th":      "th",
		"td":      "td",
		"em":      "em",
	}
}
