/*
package clustobs computes observable signals of spherically symmetric
galaxy-cluster models: gamma-ray, neutrino, inverse-Compton,
synchrotron, thermal Sunyaev-Zel'dovich and X-ray spectra, projected
radial profiles and sky maps.

The numerical core lives in the integrate package: log-spaced sampling
grids, log-log trapezoidal integration, spherical and line-of-sight
cylindrical integrals, and band integration over energy. The obs
package layers the per-observable calculators on top of it, with the
emission physics injected through rate-source interfaces, and the
skymap package projects profiles onto pixel grids. The main/ binary
ties everything to INI configuration files for command-line use.
*/
package clustobs
