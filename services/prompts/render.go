package prompts

import (
	"fmt"
	"strings"
	"text/template"

	"tutoragents/models"

	"github.com/samber/lo"
)

var templates = map[Kind]*template.Template{
	KindGreeter:        parse(KindGreeter, greeterTemplate),
	KindIntroGiver:     parse(KindIntroGiver, introGiverTemplate),
	KindQuestionReader: parse(KindQuestionReader, questionReaderTemplate),
	KindBrainStormer:   parse(KindBrainStormer, brainStormerTemplate),
	KindStepTutor:      parse(KindStepTutor, stepTutorTemplate),
	KindCloser:         parse(KindCloser, closerTemplate),
}

func parse(kind Kind, src string) *template.Template {
	return template.Must(template.New(string(kind)).Option("missingkey=error").Parse(src))
}

// view is the superset of values any template may interpolate.
type view struct {
	Topic            string
	Title            string
	Problem          string
	QuestionText     string
	Options          string
	Intro            models.IntroData
	TotalSteps       int
	StepInstructions string
	StepCompletions  string
	BrainstormAreas  string
	FinalAnswer      string
}

func newView(doc *models.ProblemDocument) view {
	return view{
		Topic:            doc.Topic,
		Title:            doc.Title,
		Problem:          doc.ProblemStatement(),
		QuestionText:     doc.QuestionData.QuestionText,
		Options:          renderOptions(doc.QuestionData.Options),
		Intro:            doc.IntroData,
		TotalSteps:       doc.StepCount(),
		StepInstructions: strings.Join(StepInstructions(doc.Steps), "\n"),
		StepCompletions:  strings.Join(StepCompletions(doc.Steps), "\n"),
		BrainstormAreas:  BrainstormAreas(doc.Steps),
		FinalAnswer:      doc.FinalAnswer(),
	}
}

// renderOptions writes the multiple-choice options as a bracketed list of
// quoted strings, ['2', '4'], and "[]" when the question has none.
func renderOptions(options []string) string {
	quoted := lo.Map(options, func(o string, _ int) string { return quoteOption(o) })
	return "[" + strings.Join(quoted, ", ") + "]"
}

// quoteOption single-quotes o, switching to double quotes when o holds a
// single quote but no double quote.
func quoteOption(o string) string {
	quote := '\''
	if strings.ContainsRune(o, '\'') && !strings.ContainsRune(o, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.WriteRune(quote)
	for _, r := range o {
		switch {
		case r == quote || r == '\\':
			b.WriteRune('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune(quote)
	return b.String()
}

// Render builds the instruction string for one agent kind. The output depends
// only on the document and the kind.
func Render(doc *models.ProblemDocument, kind Kind) (string, error) {
	tmpl, ok := templates[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if doc == nil {
		return "", fmt.Errorf("failed to render %s: nil document", kind)
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, newView(doc)); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", kind, err)
	}
	return out.String(), nil
}

// RenderAll renders every kind for the same document, keyed by kind.
func RenderAll(doc *models.ProblemDocument) (map[Kind]string, error) {
	out := make(map[Kind]string, len(templates))
	for _, kind := range Kinds() {
		text, err := Render(doc, kind)
		if err != nil {
			return nil, err
		}
		out[kind] = text
	}
	return out, nil
}
