// Package dynamics computes inverse dynamics of kinematic trees with the
// recursive Newton-Euler algorithm (RNEA) over spatial vectors.
//
// [RNEA] is the engine: given a tree and the prescribed joint positions,
// velocities, and accelerations it returns the joint torques that produce
// that motion, in O(NB) with one forward and one backward sweep.
//
// Joint-space helpers built on the engine:
//
//   - [GravityTorques]: torques holding the tree static
//   - [BiasForces]: gravity plus Coriolis/centrifugal torques (qdd = 0)
//   - [MassMatrix]: joint-space inertia matrix from unit-acceleration sweeps
//
// # Thread Safety
//
// Every call is a pure function of its arguments with freshly allocated
// buffers; a single model.Tree may be shared across concurrent calls.
package dynamics
