// Package advisor provides the portfolio analytics and scoring engine behind
// an investment advisory service. It is designed to be deterministic,
// stateless and side-effect free, so that every analysis is reproducible and
// independently testable.
//
// The core functionalities include:
//   - Holding Classification: A fixed, ordered heuristic that tags each
//     holding with a coarse asset type (Brazilian equity, ETF, FII, foreign
//     asset, fund, pension wrapper, fixed income, cash) from its name or
//     ticker alone.
//   - Analytics: A stateless engine that aggregates a valued holding list
//     into allocation, concentration, liquidity and complexity metrics, plus
//     a set of policy-driven risk flags and per-dimension subscores.
//   - Health Score: A single 0-100 score derived from the raised flags and
//     the penalty weights of a policy profile.
//   - What-If Simulations: Counterfactual before/after scores for a fixed
//     set of rebalancing actions, computed on an independent copy of the
//     analytics so the original is never mutated.
//
// This package serves as the foundational logic for the `pha` command-line
// tool; report renderers and the advisory narrative pipeline consume its
// output but never feed anything back into it.
package advisor
