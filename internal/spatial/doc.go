// Package spatial implements 6-D spatial vector algebra for rigid-body
// dynamics: cross-product operators and Plücker coordinate transforms.
//
// A spatial vector packs the angular part first and the linear part
// second, [angular(3); linear(3)]. Whether a [Vector] represents motion
// (velocity, acceleration) or force (wrench) is a caller convention, not
// a type distinction; the transform helpers make the convention explicit:
//
//   - [TransformMotion]: v_A = X · v_B
//   - [TransformForce]:  f_B = Xᵀ · f_A
//
// Operators:
//
//   - [Skew]: 3×3 vector cross-product matrix
//   - [Crm], [Crf]: 6×6 motion and force cross operators, crf(v) = -crm(v)ᵀ
//   - [Xrot], [Xlt], [Xtrans], [InvXtrans]: 6×6 rigid transforms
//
// All matrices are dense gonum values; functions validate input shapes
// and fail with [ErrShape] or [ErrInvalidRotation] before producing any
// output.
package spatial
