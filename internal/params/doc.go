// Package params loads and serves run parameter files.
//
// A parameter file is a two-level YAML document: top-level sections whose
// entries are scalar values. Entries are addressed by "Section:name" keys,
// e.g. "SPH:viscosity_alpha". The package distinguishes required lookups,
// which fail when the key is absent, from optional lookups, which fall back
// to a caller-supplied default:
//
//	p, err := params.Load("run.yml")
//	alpha, err := p.OptFloat("SPH:viscosity_alpha", 0.8)
//	sigma, err := p.Float("SPH:div_B_parabolic_sigma")
//
// A Store is populated once and read during the sequential startup phase of
// a run; it is not safe for concurrent use. Lookups record which keys were
// consumed so that [Store.Unused] can flag parameters the run never read.
package params
