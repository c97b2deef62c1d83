// Package activations is the catalog of provided activation functions. Pointwise functions
// (Identity, Logistic, Tanh, ReLU, ...) depend only on a single pre-activation value;
// layer-normalized functions (Softmax, UnitSum) implement anny.Layerwise and are evaluated over
// the whole layer at once. Importing this package registers every entry by name and sets
// Logistic as the default activation.
package activations
