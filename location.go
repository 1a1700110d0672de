package quotefinder

// Location is an estimated position inside a document. Every field is
// independently optional and none of them is checked against the source
// text.
type Location struct {
	Chapter   *string `json:"chapter"`
	Page      *int    `json:"page"`
	Paragraph *int    `json:"paragraph"`
}

// IsZero reports whether no field of the location is known.
func (l Location) IsZero() bool {
	return l.Chapter == nil && l.Page == nil && l.Paragraph == nil
}
