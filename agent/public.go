package agent

import (
	"context"
	"fmt"

	tracker "github.com/DKushman/calorie-tracker"
	"github.com/DKushman/calorie-tracker/date"
	"github.com/DKushman/calorie-tracker/docs"
	"github.com/DKushman/calorie-tracker/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand and improve what he eats: what he consumed on a
			given day, how far he is from his daily goals, and what a food is worth nutritionally.

			Devise a plan of questions to ask each expert and come up with the best response to the
			user's request. The Bookkeeper has already loaded the user's meal ledger, ask him first.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewDietitian returns an expert grounded with Google Search for general
// nutrition questions.
func NewDietitian() *Expert {
	return &Expert{
		Name: "Dietitian",
		Description: `This is an expert dietitian,
		very well aware of the nutritional content of foods, dietary guidelines,
		and the latest nutrition research.
		Ask the Dietitian whenever you need grounded information about food and nutrition.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in nutrition and dietetics. You can search and find about anything
			related to foods, their macronutrient content, dietary guidelines and healthy eating.
			You leverage Google Search to ground your assertions in solid truth.
				`}}},
		},
	}
}

// NewBookkeeper returns the expert in charge of reading and editing the
// user's meal ledger through its function-calling tools.
func NewBookkeeper(session *tracker.Session) *Expert {
	lib := []Function{daySummary(session), logMeal(session), currentGoals(session), setGoals(session)}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading and editing the user's meal ledger.
		He can report what was consumed on any day, how it compares to the daily goals, and log new meals.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's meal ledger.
				You know how to use the Tools to extract relevant information about what the user ate
				and how it compares to his daily goals. Pardon approximative language and figure out
				what the user meant.

				Use the available tools to:
				  - summarize the consumption of a day
				  - log a new meal
				  - report or update the daily goals
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// errResponse builds the error shape every tool returns on failure.
func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func daySummary(session *tracker.Session) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "DaySummary",
			Description: `DaySummary reports everything consumed on a given day: the logged meals,
			the per-nutrient totals, and the progress against the daily goals.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": {
						Type:        genai.TypeString,
						Description: "The day to summarize, as YYYY-MM-DD. The selected day is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted summary of the day's consumption.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			day, err := parseDay(session, args)
			if err != nil {
				return errResponse(id, "DaySummary", err)
			}
			view := session.DayViewOn(day)
			return &genai.FunctionResponse{
				ID:   id,
				Name: "DaySummary",
				Response: map[string]any{
					"output": renderer.DayMarkdown(&view, session.Goals()),
				},
			}
		},
	}
}

func logMeal(session *tracker.Session) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "LogMeal",
			Description: `LogMeal records a meal on the selected day. Name and calories are required;
			protein, carbs and fat grams are optional and default to 0.

			` + must(docs.GetTopic("meals")),
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":     {Type: genai.TypeString, Description: "The meal name."},
					"calories": {Type: genai.TypeNumber, Description: "Kilocalories, non-negative."},
					"protein":  {Type: genai.TypeNumber, Description: "Protein grams."},
					"carbs":    {Type: genai.TypeNumber, Description: "Carbohydrate grams."},
					"fat":      {Type: genai.TypeNumber, Description: "Fat grams."},
				},
				Required: []string{"name", "calories"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A confirmation carrying the id of the logged meal.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			name, _ := args["name"].(string)
			draft := tracker.Draft{
				Name:     name,
				Calories: tracker.A(number(args, "calories")),
				Protein:  tracker.A(number(args, "protein")),
				Carbs:    tracker.A(number(args, "carbs")),
				Fat:      tracker.A(number(args, "fat")),
			}
			m, err := session.AddMeal(draft)
			if err != nil {
				return errResponse(id, "LogMeal", err)
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "LogMeal",
				Response: map[string]any{
					"output": fmt.Sprintf("logged %q (%s kcal) on %s with id %d", m.Name, m.Calories, m.Date, m.ID),
				},
			}
		},
	}
}

func currentGoals(session *tracker.Session) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Goals",
			Description: `Goals reports the user's current daily nutrient targets. An unset goal means the nutrient is untracked.`,
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the daily goals.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Goals",
				Response: map[string]any{
					"output": renderer.GoalsMarkdown(session.Goals()),
				},
			}
		},
	}
}

func setGoals(session *tracker.Session) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "SetGoals",
			Description: `SetGoals updates the user's daily nutrient targets. Only the given
			fields change; goals must be strictly positive.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"calories": {Type: genai.TypeNumber, Description: "Daily calorie goal in kcal."},
					"protein":  {Type: genai.TypeNumber, Description: "Daily protein goal in grams."},
					"carbs":    {Type: genai.TypeNumber, Description: "Daily carbohydrate goal in grams."},
					"fat":      {Type: genai.TypeNumber, Description: "Daily fat goal in grams."},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the daily goals after the update.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			update := tracker.GoalUpdate{
				Calories: tracker.A(number(args, "calories")),
				Protein:  tracker.A(number(args, "protein")),
				Carbs:    tracker.A(number(args, "carbs")),
				Fat:      tracker.A(number(args, "fat")),
			}
			if err := session.SetGoals(update); err != nil {
				return errResponse(id, "SetGoals", err)
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "SetGoals",
				Response: map[string]any{
					"output": renderer.GoalsMarkdown(session.Goals()),
				},
			}
		},
	}
}

// number extracts an optional float argument, defaulting to 0.
func number(args map[string]any, key string) float64 {
	v, _ := args[key].(float64)
	return v
}

func parseDay(session *tracker.Session, args map[string]any) (date.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return session.Selected(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return session.Selected(), fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}
	day, err := date.Parse(sdate)
	if err != nil {
		return session.Selected(), fmt.Errorf("argument 'date' must be a valid YYYY-MM-DD date, got %q", sdate)
	}
	return day, nil
}
