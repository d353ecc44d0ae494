// Package estimate predicts output sizes for the sizes preview, either from
// an empirical CRF ratio table or by extrapolating a short sample encode.
package estimate
