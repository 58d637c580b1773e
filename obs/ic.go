package obs

// InverseCompton computes inverse-Compton photon observables. The
// machinery is identical to Gamma, but cluster IC emission sits at
// energies where background-light absorption is negligible, so no
// absorber is wired in.
type InverseCompton struct {
	Gamma
}

func NewInverseCompton(g *ClusterGeometry, src RateSource) *InverseCompton {
	return &InverseCompton{Gamma{Calculator{Geom: g, Source: src}}}
}
