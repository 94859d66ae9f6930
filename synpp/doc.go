// Package synpp exports a simulation model as a configuration file for the
// external synpp spectrum-synthesis tool.
//
// The export starts from a reference configuration template (see
// LoadConfig), overwrites its spectral window and velocity structure from
// the model, and fills the first setup block with one entry per species
// whose Sobolev reference optical depth is significant (log τ > -50).
// Species are written as synpp ion codes, 100·Z + ion number, so Si II
// (Z=14, ion 1) becomes 1401.
//
// The emitted document carries an explicit "---" start marker, matching
// what synpp expects.
//
// Errors (sentinel)
//
//   - ErrBadConfig if the template holds no setup block to fill.
//   - ErrNoRefs    if the model carries no significant species references,
//     which would produce a setup synpp cannot run.
package synpp
