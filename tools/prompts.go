package tools

import (
	"bytes"
	"embed"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/petasbytes/sous-chef/interpret"
	"github.com/pkg/errors"
)

var (
	//go:embed data/*.md.tmpl
	promptFS  embed.FS
	templates = template.Must(template.New("").Funcs(funcMap()).ParseFS(promptFS, "data/*.md.tmpl"))
)

func funcMap() template.FuncMap {
	return sprig.TxtFuncMap()
}

type systemValues struct {
	Tools       []ToolDefinition
	NameField   string
	ParamsField string
}

type mealPlanValues struct {
	Days        int
	Diet        string
	Preferences string
}

type recipeValues struct {
	Pantry           []string
	ExtraIngredients string
	DietaryNeeds     string
	CookingTime      string
	Liked            []string
	Disliked         []string
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.Wrapf(err, "render %s", name)
	}
	return buf.String(), nil
}

// SystemPrompt is the instruction sent with every model call. It lists defs with
// their input schemas and the tool call reply format.
func SystemPrompt(defs []ToolDefinition) (string, error) {
	return render("system.md.tmpl", systemValues{
		Tools:       defs,
		NameField:   interpret.ToolNameField,
		ParamsField: interpret.ToolParamsField,
	})
}
