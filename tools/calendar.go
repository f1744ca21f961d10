package tools

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/petasbytes/sous-chef/internal/fsops"
	"github.com/petasbytes/sous-chef/internal/safety"
	"github.com/pkg/errors"
)

type MealEntry struct {
	Day      *int   `json:"day" jsonschema_description:"Day number in the plan."`
	MealType string `json:"meal_type" jsonschema_description:"Type of meal (e.g., 'Breakfast', 'Lunch', 'Dinner')."`
	MealName string `json:"meal_name" jsonschema_description:"Name of the meal."`
	DayStr   string `json:"day_str,omitempty" jsonschema_description:"Optional explicit date (YYYY-MM-DD); overrides day."`
}

type CalendarInput struct {
	MealPlan []MealEntry `json:"meal_plan" jsonschema_description:"A list of meal objects representing the meal plan."`
}

const (
	calendarProductID = "-//sous-chef//meal plan//EN"
	dayStrLayout      = "2006-01-02"
	mealDuration      = time.Hour
)

const (
	createCalendarFileName = "create_calendar_file"
)

var CreateCalendarFileDefinition = ToolDefinition{
	Name:        createCalendarFileName,
	Description: "Creates an .ics calendar file from a generated meal plan. Expects a JSON array of meal objects.",
	InputSchema: GenerateSchema[CalendarInput](),
	Function:    CreateCalendarFile,
}

// CreateCalendarFile writes one event per meal to
// <calendar dir>/<user id>_meal_plan.ics, replacing any earlier export.
func CreateCalendarFile(_ context.Context, env Env, params any) Result {
	var in CalendarInput
	if err := decodeParams(params, &in, "meal_plan"); err != nil {
		return paramFailure(createCalendarFileName, err)
	}

	path, err := writeCalendar(env, in.MealPlan)
	if err != nil {
		return Failed("Failed to create calendar file: "+err.Error(), errors.Wrap(ErrCalendar, err.Error()))
	}
	res := Success("Calendar file created successfully.")
	res.FilePath = path
	return res
}

func writeCalendar(env Env, meals []MealEntry) (string, error) {
	now := env.Now()
	cal := ics.NewCalendar()
	cal.SetProductId(calendarProductID)
	cal.SetMethod(ics.MethodPublish)

	for i, meal := range meals {
		if meal.MealType == "" || meal.MealName == "" {
			return "", errors.Errorf("meal %d: meal_type and meal_name are required", i+1)
		}
		start := MealStart(meal, now)
		ev := cal.AddEvent(uuid.NewString())
		ev.SetDtStampTime(now)
		ev.SetSummary(meal.MealType + ": " + meal.MealName)
		ev.SetStartAt(start)
		ev.SetEndAt(start.Add(mealDuration))
	}

	dir := env.CalendarDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "mkdir %s", dir)
	}
	root, err := safety.ResolveRoot(dir)
	if err != nil {
		return "", err
	}
	path, err := safety.ValidateFileName(root, fmt.Sprintf("%s_meal_plan.ics", env.UserID()))
	if err != nil {
		return "", err
	}
	if err := fsops.WriteFileAtomic(path, []byte(cal.Serialize()), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// MealStart is the local start time of meal. The date is DayStr when it parses,
// otherwise now's date plus Day-1 days (Day defaults to 1). The hour comes from
// the meal type: breakfast 08:00, lunch 13:00, anything else 19:00.
func MealStart(meal MealEntry, now time.Time) time.Time {
	loc := now.Location()
	y, m, d := now.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, loc)

	if t, err := time.ParseInLocation(dayStrLayout, strings.TrimSpace(meal.DayStr), loc); err == nil {
		date = t
	} else {
		day := 1
		if meal.Day != nil {
			day = *meal.Day
		}
		date = date.AddDate(0, 0, day-1)
	}

	y, m, d = date.Date()
	return time.Date(y, m, d, mealHour(meal.MealType), 0, 0, 0, loc)
}

func mealHour(mealType string) int {
	switch strings.ToLower(strings.TrimSpace(mealType)) {
	case "breakfast":
		return 8
	case "lunch":
		return 13
	default:
		return 19
	}
}
