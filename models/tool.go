package models

// ToolResult is the acknowledgement every tool returns to the runtime. Only
// success and message are always present; the embedded extras are emitted by
// the tools that define them.
type ToolResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	*NotesProgress
	*BrainstormCapture
}

type NotesProgress struct {
	StepTitle  *string `json:"step_title"`
	TotalSteps int     `json:"total_steps"`
}

type BrainstormCapture struct {
	CurrentExpression *string `json:"current_expression"`
	StepNumber        int     `json:"step_number"`
}

func Ack(message string) ToolResult {
	return ToolResult{Success: true, Message: message}
}

func Reject(message string) ToolResult {
	return ToolResult{Success: false, Message: message}
}

type ShowIntroVisualInput struct {
	Content     string `json:"content" jsonschema_description:"The content of the visual (could be text, URL, or emoji)"`
	Label       string `json:"label" jsonschema_description:"The label/description for the visual"`
	Explanation string `json:"explanation" jsonschema_description:"The explanation text to be shown with the visual"`
	Type        string `json:"type,omitempty" jsonschema_description:"The type of visual content (text, image, etc.), defaults to text"`
}

type TutorFeedbackInput struct {
	Type          string `json:"type" jsonschema_description:"Type of visual feedback to show"`
	Content       string `json:"content" jsonschema_description:"The content of the visual feedback (text or emoji)"`
	Label         string `json:"label" jsonschema_description:"The label for the visual feedback"`
	StepNumber    int    `json:"step_number" jsonschema_description:"The step number this feedback relates to (1-based)"`
	QuestionIndex *int   `json:"question_index,omitempty" jsonschema_description:"The index of the conceptual question this feedback relates to"`
}

type NoteEntry struct {
	StepNumber        int    `json:"stepNumber" jsonschema_description:"The 1-based number of the completed step"`
	Description       string `json:"description" jsonschema_description:"What was done in this step"`
	UpdatedExpression string `json:"updatedExpression" jsonschema_description:"The expression after this step"`
}

type UpdateNotesInput struct {
	Steps []NoteEntry `json:"steps" jsonschema_description:"Array of step information objects that were completed"`
}

type BrainstormNotesInput struct {
	DiscoveryType     string            `json:"discovery_type" jsonschema_description:"Type of discovery or interaction made"`
	StepNumber        int               `json:"step_number" jsonschema_description:"Which step in the problem this relates to (1-based)"`
	StudentIdeas      []string          `json:"student_ideas,omitempty" jsonschema_description:"Ideas and thoughts the student shared"`
	DebateElements    map[string]string `json:"debate_elements,omitempty" jsonschema_description:"Debate elements if this discovery involved comparing approaches"`
	PartSolved        string            `json:"part_solved,omitempty" jsonschema_description:"The specific part of the problem they just worked on"`
	CurrentExpression *string           `json:"current_expression,omitempty" jsonschema_description:"Current state of the problem, expression or understanding"`
	Approach          string            `json:"approach,omitempty" jsonschema_description:"The approach or strategy discovered or used"`
}

type BrainstormFeedbackInput struct {
	Type           string `json:"type" jsonschema_description:"Type of visual feedback"`
	Content        string `json:"content" jsonschema_description:"The visual content (emoji, symbol, or text)"`
	Label          string `json:"label" jsonschema_description:"Message about the discovery or insight"`
	ExpressionPart string `json:"expression_part,omitempty" jsonschema_description:"The part of the problem this relates to"`
	StepNumber     *int   `json:"step_number,omitempty" jsonschema_description:"Which step this feedback relates to"`
}
