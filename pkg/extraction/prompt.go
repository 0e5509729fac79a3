package extraction

// Prompt is a fixed instruction pair for the completion call.
type Prompt struct {
	Name   string
	System string
	// Instruction precedes the delimited input text in the user message.
	Instruction string
}

// ResumePrompt asks for the fields the resume normalizer understands.
var ResumePrompt = Prompt{
	Name:   "resume",
	System: "You are a precise resume parser. Reply with a single JSON object only, no markdown, no commentary. Do not invent facts.",
	Instruction: `Extract the following information from the resume text and return it as JSON:
- "Name": the candidate's full name
- "Experience": an array of objects with "Job Title", "Company" and "Dates"
- "Education": an array of objects with "Degree", "Institution" and "Dates"
- "Skills": all skills as ONE comma-separated string

Use an empty string or an empty array when something is not present.`,
}

func (p Prompt) userMessage(text string) string {
	return p.Instruction + "\n\nText between the markers:\n<<<\n" + text + "\n>>>"
}
