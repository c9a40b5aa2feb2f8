package kinetics_test

import (
	"fmt"

	"github.com/alsnogtix/simuladorFermentacao/internal/kinetics"
)

func ExampleEvaluate() {
	p := kinetics.ProcessParameters{
		FlourG:        1000,
		WaterFraction: 0.68,
		TemperatureC:  30,
		SugarAddedG:   20,
		SaltG:         15,
		DurationMin:   240,
	}
	s := kinetics.Evaluate(240, p)
	fmt.Printf("biomass %.3f\n", s.Biomass)
	fmt.Printf("sucrose %.2f g, maltose %.2f g\n", s.Sucrose, s.Maltose)
	fmt.Printf("co2 %.2f g, ethanol %.2f g\n", s.CO2, s.Ethanol)
	fmt.Printf("volume %.1f mL, pH %.3f\n", s.Volume, s.PH)
	fmt.Printf("gluten %.1f%%\n", s.GlutenRetention)
	// Output:
	// biomass 1.202
	// sucrose 2.07 g, maltose 13.96 g
	// co2 3.16 g, ethanol 3.16 g
	// volume 1498.3 mL, pH 5.584
	// gluten 98.0%
}

func ExampleComputeEnvironment() {
	f := kinetics.ComputeEnvironment(30, 0.68, 0, 1000)
	fmt.Printf("%.2f %.2f %.2f %.2f\n", f.Temperature, f.Water, f.Salt, f.Combined)
	// Output:
	// 1.00 1.00 1.00 1.00
}
