package persona

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Project describes one portfolio entry surfaced to the model.
type Project struct {
	Name     string   `yaml:"name"`
	Category string   `yaml:"category"`
	Goal     string   `yaml:"goal"`
	Tech     []string `yaml:"tech"`
}

// Persona is the biographical context injected into every completion
// request. Fields left empty in a YAML override keep their compiled-in
// defaults.
type Persona struct {
	Name     string    `yaml:"name"`
	Title    string    `yaml:"title"`
	Bio      string    `yaml:"bio"`
	Location string    `yaml:"location"`
	Contact  string    `yaml:"contact"`
	Projects []Project `yaml:"projects"`
}

// policyBlock is fixed and not overridable from the persona file.
const policyBlock = `Guidelines:
- Answer questions about the portfolio owner accurately and concisely.
- If asked about personal details that are not listed here, say they are not listed rather than guessing.
- When asked to list projects, cover multiple project categories.
- For questions about a specific project, summarize its goal and tech stack.
- Maintain a professional, friendly tone.`

func Default() Persona {
	return Persona{
		Name:     "Daniel Werner",
		Title:    "Full-stack software engineer",
		Bio:      "Software engineer focused on backend services and developer tooling, with several years of experience building and operating production web applications.",
		Location: "Berlin, Germany",
		Contact:  "Reachable through the contact form on the portfolio site or via the linked GitHub and LinkedIn profiles.",
		Projects: []Project{
			{
				Name:     "Portfolio Chat Backend",
				Category: "Web services",
				Goal:     "Power the chat widget on the portfolio site by relaying visitor questions to a language model with persona context.",
				Tech:     []string{"Go", "chi", "OpenAI API"},
			},
			{
				Name:     "Gitter",
				Category: "Developer tooling",
				Goal:     "Voice-driven assistant for reviewing and merging GitHub pull requests.",
				Tech:     []string{"Go", "OpenAI API", "GitHub API"},
			},
			{
				Name:     "Lectura",
				Category: "Education",
				Goal:     "Summarize recorded lectures and generate study activities from the transcript.",
				Tech:     []string{"Go", "PostgreSQL", "Redis"},
			},
		},
	}
}

// Load returns the persona, merging a YAML override file over the
// defaults when path is non-empty.
func Load(path string) (Persona, error) {
	p := Default()
	if path == "" {
		return p, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Persona{}, fmt.Errorf("read persona file: %w", err)
	}
	if err := yaml.Unmarshal(b, &p); err != nil {
		return Persona{}, fmt.Errorf("parse persona file: %w", err)
	}
	return p, nil
}

// SystemPrompt renders the full system instruction: biographical
// context, project list, and the fixed policy block.
func (p Persona) SystemPrompt() string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are the portfolio assistant for %s (%s).\n\n", p.Name, p.Title)
	fmt.Fprintf(&b, "About: %s\n", p.Bio)
	if p.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", p.Location)
	}
	if p.Contact != "" {
		fmt.Fprintf(&b, "Contact: %s\n", p.Contact)
	}
	b.WriteString("\nProjects:\n")
	for _, pr := range p.Projects {
		fmt.Fprintf(&b, "- %s (%s): %s Tech stack: %s.\n", pr.Name, pr.Category, pr.Goal, strings.Join(pr.Tech, ", "))
	}
	b.WriteString("\n")
	b.WriteString(policyBlock)
	return b.String()
}
