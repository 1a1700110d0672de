package quotefinder

// Converter turns the main content of an HTML document into Markdown
// text that can be searched like any other document.
type Converter interface {
	Convert(html string) (string, error)
}
