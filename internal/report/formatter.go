package report

import "strings"

// Formatter renders header/row/footer values into one output format.
// It knows nothing about transactions; the generator feeds it plain
// string values.
type Formatter interface {
	FormatHeader(labels []string) string
	FormatRow(values []string) string
	FormatFooter(footer string) string
}

type CSVFormatter struct{}

func (CSVFormatter) FormatHeader(labels []string) string {
	return strings.Join(labels, ",") + "\n"
}

func (CSVFormatter) FormatRow(values []string) string {
	return strings.Join(values, ",") + "\n"
}

func (CSVFormatter) FormatFooter(footer string) string {
	return "-- " + footer + " --"
}

type HTMLFormatter struct{}

func (HTMLFormatter) FormatHeader(labels []string) string {
	var b strings.Builder
	b.WriteString("<html><body><table border='1'><tr>")
	for _, l := range labels {
		b.WriteString("<th>")
		b.WriteString(l)
		b.WriteString("</th>")
	}
	b.WriteString("</tr>")
	return b.String()
}

func (HTMLFormatter) FormatRow(values []string) string {
	var b strings.Builder
	b.WriteString("<tr>")
	for _, v := range values {
		b.WriteString("<td>")
		b.WriteString(v)
		b.WriteString("</td>")
	}
	b.WriteString("</tr>")
	return b.String()
}

func (HTMLFormatter) FormatFooter(footer string) string {
	return "</table><p>" + footer + "</p></body></html>"
}

var formatters = map[string]Formatter{
	"csvFormatter":  CSVFormatter{},
	"htmlFormatter": HTMLFormatter{},
}

// Formatters returns the formatter registry, keyed "<type>Formatter".
// Built once at startup and treated as read-only.
func Formatters() map[string]Formatter {
	return formatters
}
