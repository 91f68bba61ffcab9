package problems

// problemSchema lists every field a prompt or tool reads without a fallback.
// Structs are left open so authoring metadata in the JSON files is tolerated.
const problemSchema = `
topic: string
title: string
problem?: string
questionData: {
	QuestionText: string
	Options?: [...string] | null
	...
}
introData: {
	Voice:            string
	TopicExplanation: string
	Visual: {
		Content: string
		Label:   string
		Type:    string
		...
	}
	...
}
steps: [#Step, ...#Step]

#Cue: {
	Content: string
	Label:   string
	...
}

#Question: {
	Question: string
	Illustration: {
		BeforeQuestion: #Cue
		Feedback: {
			Success: #Cue
			Hint:    #Cue
			...
		}
		...
	}
	...
}

#Step: {
	Topic:       string
	Description: string
	ConceptualQuestions: [...#Question]
	Notes: {
		Description:       string
		UpdatedExpression: string
		...
	}
	...
}
`
