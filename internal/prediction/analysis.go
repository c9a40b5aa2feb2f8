package prediction

import (
	"fmt"
	"math"

	"github.com/alsnogtix/simuladorFermentacao/internal/kinetics"
	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
)

// Analysis thresholds.
const (
	IdealPHLow  = 4.0
	IdealPHHigh = 4.8
	// EthanolAromaPerFlour is the ethanol mass per gram of flour above which
	// a dough counts as aromatic (3 g for 1 kg of flour).
	EthanolAromaPerFlour = 0.003
	// EmptyRunPH is the pH reported for a run without points.
	EmptyRunPH = 7.0
)

// Topic is the aspect of a fermentation a Finding is about.
type Topic string

const (
	TopicVolume  Topic = "volume"
	TopicPH      Topic = "ph"
	TopicEthanol Topic = "ethanol"
)

// Finding is one line of a post-run analysis.
type Finding struct {
	Topic    Topic  `json:"topic"`
	Positive bool   `json:"positive"`
	Text     string `json:"text"`
}

// Mark returns the check or cross shown in front of the finding.
func (f Finding) Mark() string {
	if f.Positive {
		return messages.AnalysisPositiveMark
	}
	return messages.AnalysisNegativeMark
}

func (f Finding) String() string {
	return f.Mark() + " " + f.Text
}

// Summary condenses a trajectory for analysis.
type Summary struct {
	Points         int     `json:"points"`
	MaxVolume      float64 `json:"max_volume"`
	MaxCO2         float64 `json:"max_co2"`
	FinalPH        float64 `json:"final_ph"`
	FinalEthanol   float64 `json:"final_ethanol"`
	FinalRetention float64 `json:"final_retention"`
}

// Summarize reduces a trajectory in time order. An empty trajectory yields
// the base volume, a neutral pH and no ethanol.
func Summarize(states []kinetics.FermentationState, p kinetics.ProcessParameters) Summary {
	if len(states) == 0 {
		return Summary{MaxVolume: p.BaseVolume(), FinalPH: EmptyRunPH}
	}
	sum := Summary{
		Points:    len(states),
		MaxVolume: math.Inf(-1),
		MaxCO2:    math.Inf(-1),
	}
	for _, s := range states {
		sum.MaxVolume = math.Max(sum.MaxVolume, s.Volume)
		sum.MaxCO2 = math.Max(sum.MaxCO2, s.CO2)
	}
	last := states[len(states)-1]
	sum.FinalPH = last.PH
	sum.FinalEthanol = last.Ethanol
	sum.FinalRetention = last.GlutenRetention
	return sum
}

// Analyze explains a finished run in three findings: rise, acidity, aroma.
func Analyze(sum Summary, p kinetics.ProcessParameters) []Finding {
	return []Finding{
		analyzeVolume(sum, p.BaseVolume()),
		analyzePH(sum.FinalPH),
		analyzeEthanol(sum.FinalEthanol, p.FlourG),
	}
}

func analyzeVolume(sum Summary, base float64) Finding {
	f := Finding{Topic: TopicVolume}
	switch {
	case sum.FinalPH < DangerPH:
		f.Text = fmt.Sprintf(messages.AnalysisVolumeStalledFmt, sum.FinalPH)
	case sum.MaxVolume > base*ExcellentVolumeRatio:
		f.Positive = true
		f.Text = fmt.Sprintf(messages.AnalysisVolumeExcellentFmt, sum.MaxCO2, sum.MaxVolume)
	case sum.MaxVolume > base*ModerateVolumeRatio:
		f.Positive = true
		f.Text = fmt.Sprintf(messages.AnalysisVolumeGoodFmt, sum.MaxVolume)
	default:
		f.Text = fmt.Sprintf(messages.AnalysisVolumeLimitedFmt, sum.MaxVolume)
	}
	return f
}

func analyzePH(ph float64) Finding {
	f := Finding{Topic: TopicPH}
	switch {
	case ph >= IdealPHLow && ph <= IdealPHHigh:
		f.Positive = true
		f.Text = fmt.Sprintf(messages.AnalysisPHIdealFmt, ph)
	case ph > IdealPHHigh:
		f.Text = fmt.Sprintf(messages.AnalysisPHHighFmt, ph)
	default:
		f.Text = fmt.Sprintf(messages.AnalysisPHLowFmt, ph)
	}
	return f
}

// Both ethanol outcomes are positive; a short ferment is not a fault.
func analyzeEthanol(ethanol, flourG float64) Finding {
	f := Finding{Topic: TopicEthanol, Positive: true}
	if ethanol > flourG*EthanolAromaPerFlour {
		f.Text = fmt.Sprintf(messages.AnalysisEthanolHighFmt, ethanol)
	} else {
		f.Text = fmt.Sprintf(messages.AnalysisEthanolModerateFmt, ethanol)
	}
	return f
}
