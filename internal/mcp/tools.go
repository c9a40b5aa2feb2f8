package mcp

import (
	"context"
	"fmt"
	"math"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/alsnogtix/simuladorFermentacao/internal/config"
	"github.com/alsnogtix/simuladorFermentacao/internal/kinetics"
	"github.com/alsnogtix/simuladorFermentacao/internal/logger"
	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
	"github.com/alsnogtix/simuladorFermentacao/internal/prediction"
	"github.com/alsnogtix/simuladorFermentacao/internal/simulation"
)

// ParamsInput holds the recipe. Omitted fields take the default recipe.
type ParamsInput struct {
	FlourG        *float64 `json:"flour_g,omitempty" jsonschema:"flour mass in grams"`
	WaterFraction *float64 `json:"water_fraction,omitempty" jsonschema:"water to flour ratio, between 0 and 1"`
	TemperatureC  *float64 `json:"temperature_c,omitempty" jsonschema:"dough temperature in degrees Celsius"`
	SugarAddedG   *float64 `json:"sugar_added_g,omitempty" jsonschema:"added sucrose in grams"`
	SaltG         *float64 `json:"salt_g,omitempty" jsonschema:"salt in grams"`
	DurationMin   *float64 `json:"duration_min,omitempty" jsonschema:"fermentation time in minutes"`
}

// Params resolves the input against the default recipe and validates it.
func (in ParamsInput) Params() (kinetics.ProcessParameters, error) {
	p := config.Default().Dough.Params()
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.FlourG, in.FlourG)
	set(&p.WaterFraction, in.WaterFraction)
	set(&p.TemperatureC, in.TemperatureC)
	set(&p.SugarAddedG, in.SugarAddedG)
	set(&p.SaltG, in.SaltG)
	set(&p.DurationMin, in.DurationMin)
	if err := p.Validate(); err != nil {
		return kinetics.ProcessParameters{}, err
	}
	return p, nil
}

// EvaluateInput is the input of the evaluate tool.
type EvaluateInput struct {
	Params ParamsInput `json:"params,omitempty" jsonschema:"recipe, defaults apply to omitted fields"`
	TMin   float64     `json:"t_min" jsonschema:"elapsed fermentation time in minutes"`
}

// EvaluateOutput is the state at TMin.
type EvaluateOutput struct {
	Params kinetics.ProcessParameters `json:"params"`
	TMin   float64                    `json:"t_min"`
	State  kinetics.FermentationState `json:"state"`
}

// ClassificationOutput is a category with its feedback.
type ClassificationOutput struct {
	Category string `json:"category"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

func classificationOutput(r prediction.Result) ClassificationOutput {
	return ClassificationOutput{
		Category: string(r.Category),
		Message:  r.Message,
		Severity: r.Severity.String(),
	}
}

// PredictOutput is the final state of a recipe with its classification.
type PredictOutput struct {
	Params         kinetics.ProcessParameters `json:"params"`
	State          kinetics.FermentationState `json:"state"`
	Classification ClassificationOutput       `json:"classification"`
}

// ClassifyInput is the part of a state that classification reads.
type ClassifyInput struct {
	FlourG          float64 `json:"flour_g" jsonschema:"flour mass in grams, sets the base volume"`
	Volume          float64 `json:"volume" jsonschema:"dough volume in mL"`
	PH              float64 `json:"ph" jsonschema:"dough pH"`
	GlutenRetention float64 `json:"gluten_retention" jsonschema:"gluten retention in percent"`
}

// SimulateOutput summarises a full run.
type SimulateOutput struct {
	Params         kinetics.ProcessParameters `json:"params"`
	Summary        prediction.Summary         `json:"summary"`
	Findings       []prediction.Finding       `json:"findings"`
	Classification ClassificationOutput       `json:"classification"`
}

func evaluateHandler(_ context.Context, _ *mcp.CallToolRequest, in EvaluateInput) (*mcp.CallToolResult, EvaluateOutput, error) {
	p, err := in.Params.Params()
	if err != nil {
		return nil, EvaluateOutput{}, err
	}
	if math.IsNaN(in.TMin) || math.IsInf(in.TMin, 0) || in.TMin < 0 {
		return nil, EvaluateOutput{}, fmt.Errorf(messages.McpInvalidTimeFmt, in.TMin)
	}
	logger.L().Debug("mcp.evaluate", "t_min", in.TMin)
	return nil, EvaluateOutput{Params: p, TMin: in.TMin, State: kinetics.Evaluate(in.TMin, p)}, nil
}

func predictHandler(_ context.Context, _ *mcp.CallToolRequest, in ParamsInput) (*mcp.CallToolResult, PredictOutput, error) {
	p, err := in.Params()
	if err != nil {
		return nil, PredictOutput{}, err
	}
	pred := prediction.Predict(p)
	logger.L().Debug("mcp.predict", "category", pred.Category)
	return nil, PredictOutput{Params: p, State: pred.State, Classification: classificationOutput(pred.Result)}, nil
}

func classifyHandler(_ context.Context, _ *mcp.CallToolRequest, in ClassifyInput) (*mcp.CallToolResult, ClassificationOutput, error) {
	if !(in.FlourG > 0) {
		return nil, ClassificationOutput{}, fmt.Errorf(messages.McpInvalidFlourFmt, in.FlourG)
	}
	state := kinetics.FermentationState{
		Volume:          in.Volume,
		PH:              in.PH,
		GlutenRetention: in.GlutenRetention,
	}
	p := kinetics.ProcessParameters{FlourG: in.FlourG}
	return nil, classificationOutput(prediction.Classify(state, p)), nil
}

func simulateHandler(ctx context.Context, _ *mcp.CallToolRequest, in ParamsInput) (*mcp.CallToolResult, SimulateOutput, error) {
	p, err := in.Params()
	if err != nil {
		return nil, SimulateOutput{}, err
	}
	// A run stores one point per simulated minute.
	if limit := maxSimulateDuration(); p.DurationMin > limit {
		return nil, SimulateOutput{}, fmt.Errorf(messages.McpDurationTooLongFmt, limit, p.DurationMin)
	}
	run := simulation.NewRun(p)
	if err := run.RunToCompletion(ctx); err != nil {
		return nil, SimulateOutput{}, err
	}
	return nil, SimulateOutput{
		Params:         p,
		Summary:        run.Summary(),
		Findings:       run.Analysis(),
		Classification: classificationOutput(run.Classification()),
	}, nil
}

// maxSimulateDuration is the editor maximum for duration_min.
func maxSimulateDuration() float64 {
	f, _ := config.LookupField(config.KeyDuration)
	return f.Max
}
