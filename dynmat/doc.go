// Package dynmat assembles dynamical matrices: the mass-weighted lattice
// Fourier transform of the second-order force constants at a wave-vector q,
// optionally corrected for the long-range dipole–dipole interaction
// (the non-analytic correction, NAC).
//
// 🚀 What lives here?
//
//   - Assemble — fills the (real, imaginary) planes of the un-symmetrized
//     dynamical matrix D(q) from fc2, masses, site maps, phase factors and
//     an optional charge-sum buffer.
//   - NAC / Correction / ChargeSum — Wang-method dipole–dipole correction:
//     the (3N)² tensor scaled by nac_factor / (qᵀ·ε·q) / N_cells, built from
//     Born effective charges, the dielectric tensor and the Cartesian
//     projection of q (or of an explicit limiting direction at the zone
//     center).
//
// ⚙️ Zone-center policy:
//
//	The correction is direction-dependent and undefined at q = 0. With no
//	explicit q-direction the correction is skipped entirely there
//	(Correction returns a nil buffer); with a q-direction supplied, that
//	direction's Cartesian projection replaces q in both the charge sum and
//	the qᵀ·ε·q normalization.
//
// Errors:
//   - ErrShape              — buffer/table dimensions disagree.
//   - ErrBadSiteMap         — a p2s/s2p entry points outside the supercell.
//   - ErrSingularDielectric — |qᵀ·ε·q| below tolerance; failing fast here
//     keeps Inf/NaN out of the eigensolver.
package dynmat
