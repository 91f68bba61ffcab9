package models

import "google.golang.org/genai"

type AgentSummary struct {
	Name        string   `json:"name"`
	Model       string   `json:"model"`
	Description string   `json:"description"`
	Tools       []string `json:"tools"`
	Problem     string   `json:"problem"`
}

type AgentDetail struct {
	AgentSummary
	Instruction          string                       `json:"instruction"`
	FunctionDeclarations []*genai.FunctionDeclaration `json:"function_declarations"`
}

type AgentListResponse struct {
	Agents []AgentSummary `json:"agents"`
}

type ProblemListResponse struct {
	Problems []ProblemSummary `json:"problems"`
}
