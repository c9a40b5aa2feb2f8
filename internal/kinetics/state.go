package kinetics

// FermentationState is the dough composition at one instant.
// Each Evaluate call returns a fresh value.
type FermentationState struct {
	Biomass         float64 `json:"biomass"`
	Sucrose         float64 `json:"sucrose_remaining"`
	Maltose         float64 `json:"maltose"`
	CO2             float64 `json:"co2"`
	Volume          float64 `json:"volume"`
	PH              float64 `json:"ph"`
	Ethanol         float64 `json:"ethanol"`
	GlutenRetention float64 `json:"gluten_retention"`
}

// Quantity names one reading of a FermentationState.
type Quantity int

// Readings in canonical order.
const (
	QuantityBiomass Quantity = iota
	QuantitySucrose
	QuantityMaltose
	QuantityCO2
	QuantityVolume
	QuantityPH
	QuantityEthanol
	QuantityGlutenRetention
)

// Quantities lists every reading in canonical order.
var Quantities = []Quantity{
	QuantityBiomass,
	QuantitySucrose,
	QuantityMaltose,
	QuantityCO2,
	QuantityVolume,
	QuantityPH,
	QuantityEthanol,
	QuantityGlutenRetention,
}

var quantityNames = [...]string{
	QuantityBiomass:         "biomass",
	QuantitySucrose:         "sucrose_remaining",
	QuantityMaltose:         "maltose",
	QuantityCO2:             "co2",
	QuantityVolume:          "volume",
	QuantityPH:              "ph",
	QuantityEthanol:         "ethanol",
	QuantityGlutenRetention: "gluten_retention",
}

func (q Quantity) String() string {
	if q < 0 || int(q) >= len(quantityNames) {
		return "unknown"
	}
	return quantityNames[q]
}

// Get returns the reading named by q, or 0 for an unknown quantity.
func (s FermentationState) Get(q Quantity) float64 {
	switch q {
	case QuantityBiomass:
		return s.Biomass
	case QuantitySucrose:
		return s.Sucrose
	case QuantityMaltose:
		return s.Maltose
	case QuantityCO2:
		return s.CO2
	case QuantityVolume:
		return s.Volume
	case QuantityPH:
		return s.PH
	case QuantityEthanol:
		return s.Ethanol
	case QuantityGlutenRetention:
		return s.GlutenRetention
	default:
		return 0
	}
}

// Values returns the eight readings in canonical order.
func (s FermentationState) Values() []float64 {
	out := make([]float64, len(Quantities))
	for i, q := range Quantities {
		out[i] = s.Get(q)
	}
	return out
}
