package generation

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/SleeperKt/GoogleTeamRepo/internal/domain"
)

//go:embed templates/prompts.tmpl
var templateFS embed.FS

// prompts holds the parsed prompt templates. They are parsed once; a parse
// failure is a build defect and panics at init.
var prompts = template.Must(template.ParseFS(templateFS, "templates/prompts.tmpl"))

// Template names in templates/prompts.tmpl.
const (
	generateTemplate = "generate"
	shortenTemplate  = "shorten"
	expandTemplate   = "expand"
)

// generationPromptData is the data passed to the "generate" template.
type generationPromptData struct {
	Title          string
	Stage          string
	Description    string
	HasDescription bool
	Category       string
}

// contentPromptData is the data passed to the "shorten" and "expand" templates.
type contentPromptData struct {
	Content string
}

// BuildGenerationPrompt builds the prompt asking the model for a 250-400
// character description of a single task. The guidance section depends on the
// category of the task's stage.
func BuildGenerationPrompt(task domain.TaskContext) string {
	return render(generateTemplate, generationPromptData{
		Title:          task.Title,
		Stage:          task.Stage,
		Description:    task.Description,
		HasDescription: task.HasDescription(),
		Category:       task.StageCategory().String(),
	})
}

// BuildShortenPrompt wraps content with instructions to compress it to
// 50-150 words. content is not validated.
func BuildShortenPrompt(content string) string {
	return render(shortenTemplate, contentPromptData{Content: content})
}

// BuildExpandPrompt wraps content with instructions to enrich it to 200-500
// words. The original content appears verbatim in the prompt.
func BuildExpandPrompt(content string) string {
	return render(expandTemplate, contentPromptData{Content: content})
}

// render executes a named template. The templates only reference fields of
// the data structs above, so execution cannot fail for valid input.
func render(name string, data any) string {
	var buf bytes.Buffer
	if err := prompts.ExecuteTemplate(&buf, name, data); err != nil {
		panic(fmt.Sprintf("generation: executing %s prompt template: %v", name, err))
	}
	return buf.String()
}
