package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/petasbytes/sous-chef/tools"
	"github.com/tidwall/gjson"
)

var (
	youColor   = color.New(color.FgHiBlue)
	agentColor = color.New(color.FgHiYellow)
	errorColor = color.New(color.FgRed, color.Bold)
	faint      = color.New(color.Faint)
)

// render prints res the way its shape asks for: errors with the raw model text
// when there is one, plain replies, tool messages, meal plans, recipes, and any
// other object as JSON.
func render(w io.Writer, res tools.Result) {
	b, err := json.Marshal(res)
	if err != nil {
		fmt.Fprintln(w, errorColor.Sprint("Agent Error:"), err)
		return
	}
	doc := gjson.ParseBytes(b)

	switch {
	case res.Kind == tools.KindError:
		fmt.Fprintln(w, errorColor.Sprint("Agent Error:"), doc.Get("message").String())
		if raw := doc.Get("raw_response"); raw.Exists() {
			fmt.Fprintln(w, faint.Sprint("Raw LLM Response: "+raw.String()))
		}
	case doc.Get("response").Exists():
		fmt.Fprintln(w, agentColor.Sprint("Agent:"), doc.Get("response").String())
	case doc.Get("status").String() == tools.StatusSuccess:
		fmt.Fprintln(w, agentColor.Sprint("Agent:"), doc.Get("message").String())
		if p := doc.Get("file_path"); p.Exists() {
			fmt.Fprintln(w, "Calendar saved to:", p.String())
		}
	case res.Kind == tools.KindPantry:
		renderPantry(w, doc.Get("pantry"))
	case doc.Get("plan").IsArray():
		renderPlan(w, doc.Get("plan"))
	case doc.Get("title").Exists() && doc.Get("ingredients").Exists():
		renderRecipe(w, doc)
	default:
		fmt.Fprintln(w, agentColor.Sprint("Agent (Unhandled structured response):"), doc.Raw)
	}
}

func renderPantry(w io.Writer, items gjson.Result) {
	names := make([]string, 0)
	items.ForEach(func(_, v gjson.Result) bool {
		names = append(names, v.String())
		return true
	})
	if len(names) == 0 {
		fmt.Fprintln(w, agentColor.Sprint("Agent:"), "Your pantry is empty.")
		return
	}
	fmt.Fprintln(w, agentColor.Sprint("Agent:"), "Current Pantry:", strings.Join(names, ", "))
}

func renderPlan(w io.Writer, plan gjson.Result) {
	fmt.Fprintln(w, agentColor.Sprint("Agent (Meal Plan):"))
	plan.ForEach(func(_, meal gjson.Result) bool {
		fmt.Fprintf(w, "  Day %s: %s - %s\n",
			meal.Get("day").String(), meal.Get("meal_type").String(), meal.Get("meal_name").String())
		return true
	})
}

func renderRecipe(w io.Writer, doc gjson.Result) {
	fmt.Fprintln(w, agentColor.Sprint("Agent (Recipe):"), doc.Get("title").String())
	fmt.Fprintf(w, "  Description: %s\n", doc.Get("description").String())
	fmt.Fprintf(w, "  Servings: %s\n", doc.Get("servings").String())
	fmt.Fprintf(w, "  Prep Time: %s\n", doc.Get("prep_time").String())
	fmt.Fprintf(w, "  Cook Time: %s\n", doc.Get("cook_time").String())
	renderList(w, "Ingredients", doc.Get("ingredients"))
	renderList(w, "Instructions", doc.Get("instructions"))
}

func renderList(w io.Writer, title string, list gjson.Result) {
	fmt.Fprintf(w, "  %s:\n", title)
	list.ForEach(func(_, v gjson.Result) bool {
		fmt.Fprintf(w, "    - %s\n", v.String())
		return true
	})
}
