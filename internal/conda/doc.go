// Package conda adapts the conda-compatible package managers (micromamba,
// mamba, conda) to one Tool interface: probe for a binary, create or update
// prefix environments from spec files, and run commands inside them. The
// fastest implementation found wins; everything above this package is
// agnostic to which binary is in use.
package conda
