package generator

import (
	"fmt"
	"strings"
)

// fileMarker is the line prefix that delimits files in the model output.
// Each generated file starts with a line "---FILE: <path>---".
const fileMarkerPrefix = "---FILE:"

// legacyReadmeMarker is the original single-README delimiter, accepted as an
// alias for "---FILE: README.md---".
const legacyReadmeMarker = "---README.md---"

// buildPrompt renders the full prompt for one generation run: role, round,
// task, revision context, attachment summaries, evaluation checks and the
// output protocol the parser understands.
func buildPrompt(in Input, attachmentsMeta string) string {
	var b strings.Builder

	b.WriteString("You are a professional web developer assistant.\n\n")

	fmt.Fprintf(&b, "### Round\n%d\n\n", in.Round)
	fmt.Fprintf(&b, "### Task\n%s\n\n", in.Brief)

	if in.Round == 2 && in.PreviousReadme != "" {
		fmt.Fprintf(&b, "### Previous README.md:\n%s\n\n", in.PreviousReadme)
		b.WriteString("Revise and enhance this project according to the new brief above.\n\n")
	}

	if attachmentsMeta != "" {
		fmt.Fprintf(&b, "### Attachments (if any)\n%s\n\n", attachmentsMeta)
	}

	if len(in.Checks) > 0 {
		b.WriteString("### Evaluation checks\n")
		for _, c := range in.Checks {
			fmt.Fprintf(&b, "- %s\n", c)
		}
		b.WriteString("\n")
	}

	b.WriteString(`### Output format rules:
1. Produce a complete static web app (HTML/JS/CSS, inline if needed) satisfying the brief.
2. Emit every file preceded by a marker line of exactly: ---FILE: <path>---
3. The entry point must be a file named index.html.
4. Include a README.md file with: Overview, Setup, Usage.
5. If Round 2, the README must describe improvements made over the previous version.
6. Do not include any commentary outside the file contents.
`)

	return b.String()
}

// fallbackReadme synthesizes a README when the model output does not contain
// one. Mirrors the information the prompt carried so the published repository
// is still self-describing.
func fallbackReadme(in Input, attachmentsMeta string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Auto-generated README (Round %d)\n\n", in.Round)
	fmt.Fprintf(&b, "**Project brief:** %s\n\n", in.Brief)

	if attachmentsMeta != "" {
		fmt.Fprintf(&b, "**Attachments:**\n%s\n\n", attachmentsMeta)
	}
	if len(in.Checks) > 0 {
		b.WriteString("**Checks to meet:**\n")
		for _, c := range in.Checks {
			fmt.Fprintf(&b, "- %s\n", c)
		}
		b.WriteString("\n")
	}

	b.WriteString(`## Setup
1. Open ` + "`index.html`" + ` in a browser.
2. No build steps required.

## Notes
This README was generated as a fallback because the model did not return one.
`)

	return b.String()
}
