// Package lovogen synthesizes test problems for nonlinear curve-fitting and
// LOVO (Low Order Value Optimization) solvers.
//
// A problem is a noisy one-dimensional dataset of (x, y) pairs drawn from a
// parametric model y = f(x, θ), together with the ground-truth θ. Most points
// are "trusted" and carry Gaussian measurement noise only; the rest are
// outliers with large, randomly signed perturbations, either scattered over
// the domain or clustered in a sub-interval.
//
// Packages:
//
//	sampler/  — uniform selection of distinct row numbers (which rows become outliers)
//	synth/    — noisy point generator and clustered partitioner over gonum matrices
//	models/   — read-only registry of example models (linear, cubic, exponential, logistic, circle)
//	problem/  — solution/data file formats, readers, and the WriteProblemFiles wrapper
//	cmd/lovogen — command-line front end (generate, models, inspect)
//
// Quick example:
//
//	m, _ := models.Lookup("linear")
//	res, err := synth.Generate(m.Func, m.Arity, 100, 90, synth.WithSeed(7))
//	// res.Block is 100×3 (x, y, noise); res.Outliers holds 10 row numbers.
//
// Determinism: every generator draws from one explicit *rand.Rand; pass
// synth.WithSeed to reproduce a problem bit for bit.
package lovogen
