// Package prompt assembles the request sent to the model provider.
package prompt

import (
	"fmt"
	"strings"
)

// NoEvidencePlaceholder stands in for the evidence section when no page
// yielded any text.
const NoEvidencePlaceholder = "No relevant online content found."

// systemInstructions is the fixed consultant brief. Answer categories,
// calculation rules, and formatting requirements live here; per-deployment
// program exclusions are appended from config.
const systemInstructions = `You are a highly paid, expert-level clean energy funding consultant. Your role is to assess a single EV charging project site and provide a clear, accurate, and thorough one-page summary of all potential funding opportunities available to that project.

Use the provided project input and internet findings to identify likely support under:

- Federal Funding
- State Funding
- Utility Incentives
- Local/Regional Programs
- Private/Other Incentives

Do not name programs. Describe eligibility types using conservative ranges, note required missing info (e.g. DAC status), and end with a short disclaimer. Keep the language professional and executive-ready.`

// Prompt is the fully assembled model request content.
type Prompt struct {
	System string
	User   string
}

// Assembler builds prompts from pipeline outputs.
type Assembler struct {
	excludedPrograms []string
}

// NewAssembler creates an Assembler. excludedPrograms is deployment policy:
// program names the model must not bring up.
func NewAssembler(excludedPrograms []string) *Assembler {
	return &Assembler{excludedPrograms: excludedPrograms}
}

// Assemble concatenates the project description, the gathered evidence, and
// the instruction block into one prompt. Pure string assembly; callers pass
// NoEvidencePlaceholder when the evidence set is empty.
func (a *Assembler) Assemble(description, evidence string) Prompt {
	system := systemInstructions
	if len(a.excludedPrograms) > 0 {
		system += fmt.Sprintf("\n\nDo not mention or allude to the following programs under any circumstances: %s.",
			strings.Join(a.excludedPrograms, "; "))
	}

	user := fmt.Sprintf("Customer Project Details:\n%s\n\nRelevant Internet Findings:\n%s",
		description, evidence)

	return Prompt{System: system, User: user}
}
