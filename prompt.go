package nbscribe

import (
	"fmt"
	"strings"
	"text/template"
)

// Prompt templates for the two transform stages. Both are fixed
// instructional texts with named insertion points; there is no conditional
// logic in either.

// draftPromptTemplate asks for narrative documentation with a fixed section
// outline. It forbids raw code in the output.
const draftPromptTemplate = `You are a professional technical writer and software architect. Your task is to generate a comprehensive and professional documentation for the given code. The documentation should be suitable for knowledge transfer or project handover. It should explain the code's purpose, logic, and architecture clearly and concisely.

Guidelines:
1. Do NOT include any raw code snippets in the documentation.
2. Maintain a professional and informative tone.
3. The content should be well-structured and formatted for readability.
4. Focus on explaining the logic, structure, and purpose rather than the code itself.
5. Avoid using special characters or unnecessary symbols.
6. Use plain language and clear formatting to enhance understanding.
7. Write the documentation as if explaining the project to a new team member.

Documentation Format:

Language the documentation should be in: {{.Language}}

Project Overview:
- Briefly describe the overall purpose and goal of the code.
- Mention key features or components implemented.

Architecture and Design:
- Explain the high-level architecture and structure of the code.
- Describe how different components interact with each other.

Key Functionalities:
- Describe the core functionalities and how they are implemented.
- Explain how each functionality contributes to the overall goal.

Workflow and Logic:
- Explain the logical flow of the code from start to finish.
- Provide insights into decision-making and process flow.

Key Concepts and Techniques:
- Highlight important concepts, techniques, or algorithms used.
- Mention any libraries or frameworks utilized and why they were chosen.

Error Handling and Performance:
- Discuss how errors are handled and how performance is optimized.
- Mention any security considerations or best practices followed.

Potential Challenges and Considerations:
- Identify potential challenges or issues faced during development.
- Discuss how these were addressed or mitigated.

Future Enhancements:
- Suggest areas for improvement or future upgrades.
- Mention any features that could be added to increase functionality or performance.

Summary:
- Summarize the key takeaways and the overall project impact.
- Include a brief note on maintenance and support.

Now, generate the documentation accordingly:
{{.Document}}`

// stylePromptTemplate turns a plain draft into formatted markdown. It
// restricts the model to structural changes only.
const stylePromptTemplate = `You are a markdown formatter and technical storyteller. Take the following plain documentation and transform it into a beautifully formatted markdown document.

Rules:
1. Do NOT alter, add, or remove substantive content; only restructure it.
2. Use markdown headings for each section and add a fitting emoji to each section heading.
3. Use bullet lists and tables where they improve readability.
4. Keep the tone professional but attractive.

Documentation to format:
{{.Draft}}`

var (
	draftTmpl = template.Must(template.New("draft").Parse(draftPromptTemplate))
	styleTmpl = template.Must(template.New("style").Parse(stylePromptTemplate))
)

// buildDraftPrompt renders the drafting prompt for the aggregate document.
func buildDraftPrompt(document, language string) (string, error) {
	return renderPrompt(draftTmpl, map[string]string{
		"Language": language,
		"Document": document,
	})
}

// buildStylePrompt renders the enhancement prompt around the draft. The
// draft is embedded verbatim so the styling stage sees exactly what the
// drafting stage produced.
func buildStylePrompt(draft string) (string, error) {
	return renderPrompt(styleTmpl, map[string]string{"Draft": draft})
}

func renderPrompt(tmpl *template.Template, data map[string]string) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering prompt %q: %w", tmpl.Name(), err)
	}
	return b.String(), nil
}
