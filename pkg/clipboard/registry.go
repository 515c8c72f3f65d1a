package clipboard

import "secretclip/pkg/logger"

type descriptor struct {
	name      string
	supported func(env Environment) bool
	create    func(deps Deps) Backend
}

// registry lists the known backends in probing order.
var registry = []descriptor{
	{
		name:      xselName,
		supported: func(env Environment) bool { return !env.IsWaylandSession() && env.IsExecutableInstalled(xselName) },
		create:    func(deps Deps) Backend { return &XSel{deps: deps} },
	},
	{
		name:      xclipName,
		supported: func(env Environment) bool { return !env.IsWaylandSession() && env.IsExecutableInstalled(xclipName) },
		create:    func(deps Deps) Backend { return &XClip{deps: deps} },
	},
	{
		name:      wlCopyName,
		supported: func(env Environment) bool { return env.IsWaylandSession() && env.IsExecutableInstalled(wlCopyName) },
		create:    func(deps Deps) Backend { return &WlCopy{deps: deps} },
	},
}

// Names returns the registered backend names in probing order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, d := range registry {
		names = append(names, d.name)
	}
	return names
}

// Select returns a fresh backend instance.
//
// A preferred name that matches a registered backend wins even if that
// backend does not look usable here. Otherwise the first supported backend is
// returned, and if there is none, a Null backend whose operations fail.
// An unknown preferred name falls through to auto-detection.
func Select(preferred string, deps Deps) Backend {
	if preferred != "" {
		for _, d := range registry {
			if d.name == preferred {
				logger.Debug().Str("backend", d.name).Msg("using requested clipboard backend")
				return d.create(deps)
			}
		}
		logger.Warn().Str("backend", preferred).Strs("known", Names()).Msg("unknown clipboard backend, detecting one instead")
	}

	for _, d := range registry {
		if d.supported(deps.Env) {
			logger.Debug().Str("backend", d.name).Msg("detected clipboard backend")
			return d.create(deps)
		}
	}

	logger.Debug().Msg("no supported clipboard backend found")
	return Null{}
}

// Availability describes how a registered backend fares in this environment.
type Availability struct {
	Name      string `json:"name" yaml:"name"`
	Supported bool   `json:"supported" yaml:"supported"`
	Selected  bool   `json:"selected" yaml:"selected"`
}

// Probe reports, for every registered backend, whether it is supported and
// whether auto-detection would pick it.
func Probe(env Environment) []Availability {
	result := make([]Availability, 0, len(registry))
	picked := false
	for _, d := range registry {
		a := Availability{Name: d.name, Supported: d.supported(env)}
		if a.Supported && !picked {
			a.Selected = true
			picked = true
		}
		result = append(result, a)
	}
	return result
}
