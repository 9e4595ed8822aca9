// Package randvar defines the scalar Normal random variable used to
// represent beliefs over an integral value.
//
// A Normal is a plain mean/variance pair. The Bayesian-quadrature solver
// threads Normals through its state: the current posterior belief and the
// ordered history of earlier beliefs are all values of this type.
//
// The type is a small immutable value; copy it freely.
package randvar
