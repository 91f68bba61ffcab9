package models

// ProblemDocument is one tutoring problem as authored in data/<problem-id>.json.
type ProblemDocument struct {
	Topic        string       `json:"topic"`
	Title        string       `json:"title"`
	Problem      string       `json:"problem,omitempty"`
	QuestionData QuestionData `json:"questionData"`
	IntroData    IntroData    `json:"introData"`
	Steps        []StepRecord `json:"steps"`
}

type QuestionData struct {
	QuestionText string   `json:"QuestionText"`
	Options      []string `json:"Options,omitempty"`
}

type IntroData struct {
	Voice            string `json:"Voice"`
	TopicExplanation string `json:"TopicExplanation"`
	Visual           Visual `json:"Visual"`
}

type Visual struct {
	Content string `json:"Content"`
	Label   string `json:"Label"`
	Type    string `json:"Type"`
}

type StepRecord struct {
	Topic               string               `json:"Topic"`
	Description         string               `json:"Description"`
	ConceptualQuestions []ConceptualQuestion `json:"ConceptualQuestions"`
	Notes               StepNotes            `json:"Notes"`
}

type ConceptualQuestion struct {
	Question     string       `json:"Question"`
	Illustration Illustration `json:"Illustration"`
}

type Illustration struct {
	BeforeQuestion Cue      `json:"BeforeQuestion"`
	Feedback       Feedback `json:"Feedback"`
}

type Feedback struct {
	Success Cue `json:"Success"`
	Hint    Cue `json:"Hint"`
}

// Cue is a piece of visual content (emoji, symbol or short text) with its caption.
type Cue struct {
	Content string `json:"Content"`
	Label   string `json:"Label"`
}

// StepNotes is the canonical summary of what a completed step changed.
type StepNotes struct {
	Description       string `json:"Description"`
	UpdatedExpression string `json:"UpdatedExpression"`
}

// ProblemStatement returns the legacy "problem" field when set, otherwise the question text.
func (d *ProblemDocument) ProblemStatement() string {
	if d.Problem != "" {
		return d.Problem
	}
	return d.QuestionData.QuestionText
}

// StepCount is the number of curriculum steps; valid step numbers are 1..StepCount.
func (d *ProblemDocument) StepCount() int {
	return len(d.Steps)
}

// Step returns the record for a 1-based step number.
func (d *ProblemDocument) Step(number int) (StepRecord, bool) {
	if number < 1 || number > len(d.Steps) {
		return StepRecord{}, false
	}
	return d.Steps[number-1], true
}

// FinalAnswer is the updated expression of the last step.
func (d *ProblemDocument) FinalAnswer() string {
	if len(d.Steps) == 0 {
		return ""
	}
	return d.Steps[len(d.Steps)-1].Notes.UpdatedExpression
}

// ProblemSummary is the catalog view of a document.
type ProblemSummary struct {
	ID        string `json:"id"`
	Topic     string `json:"topic"`
	Title     string `json:"title"`
	StepCount int    `json:"step_count"`
}
