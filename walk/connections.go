package walk

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/scenewalk/scene"
)

// Connected returns the one-hop dependency neighbors of n: the nodes owning
// plugs connected to plugs of n. sources selects nodes feeding into n,
// destinations selects nodes fed by n. Results are de-duplicated and keep
// the order of n's plugs; sources come before destinations.
func Connected[N, P comparable](g scene.Graph[N, P], n N, sources, destinations bool) ([]N, error) {
	var neighbors []N
	seen := make(map[N]struct{})
	if sources {
		plugs, err := PlugsWhere(g, n, scene.ConnectionStatus.HasSource)
		if err != nil {
			return nil, err
		}
		for _, p := range plugs {
			src, ok, err := g.PlugSource(p)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			owner, err := g.PlugOwner(src)
			if err != nil {
				return nil, err
			}
			if _, dup := seen[owner]; !dup {
				neighbors = append(neighbors, owner)
				seen[owner] = struct{}{}
			}
		}
	}
	if destinations {
		plugs, err := PlugsWhere(g, n, scene.ConnectionStatus.HasDestinations)
		if err != nil {
			return nil, err
		}
		for _, p := range plugs {
			dsts, err := g.PlugDestinations(p)
			if err != nil {
				return nil, err
			}
			for _, dst := range dsts {
				owner, err := g.PlugOwner(dst)
				if err != nil {
					return nil, err
				}
				if _, dup := seen[owner]; !dup {
					neighbors = append(neighbors, owner)
					seen[owner] = struct{}{}
				}
			}
		}
	}
	return neighbors, nil
}
