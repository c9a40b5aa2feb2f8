// Package kinetics models the biochemistry of a fermenting bread dough as a
// lumped, well-mixed system.
//
// Given the elapsed fermentation time and a fixed set of ProcessParameters,
// Evaluate returns the instantaneous FermentationState: yeast biomass,
// remaining sucrose, free maltose, CO₂, ethanol, pH, dough volume and a
// gluten-network retention score.
//
// Model outline (all closed form, no stepwise integration):
//  1. Environment: temperature, hydration and salt each scale yeast activity
//     by a factor in [0.01, 1]; the combined factor is their product.
//  2. Sugars: added sucrose decays first-order. Maltose released from starch
//     follows a two-compartment production/consumption chain whose uptake is
//     repressed while sucrose remains (diauxic lag).
//  3. Growth: biomass follows the logistic curve with a Monod-like substrate
//     term on the total sugar potential.
//  4. Products: consumed sugar is split into CO₂ and ethanol by two
//     independent yield coefficients.
//  5. Physical state: CO₂ drives a saturating volume rise and biomass drives
//     a saturating acid build-up that lowers the pH.
//  6. Gluten: salt, water, acidity and ethanol each add or remove retention
//     points from a base of 100, clamped once to [5, 98].
//
// Every function is pure and total over finite inputs: denominators are
// guarded and outputs are clamped, so Evaluate can be called concurrently, at
// any t, in any order. Stepping through t and evaluating a single t directly
// give the same state.
//
// Validation of user input is the caller's job; see ProcessParameters.Validate.
// Non-finite inputs are outside the contract.
package kinetics
