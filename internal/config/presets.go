package config

var Presets = map[string]map[string]*Config{
	"river": {
		// Reference parameter set for USGS station 03451500, French Broad
		// River at Asheville, North Carolina.
		"french_broad": {
			Model: "river", Integrator: "rk4", Station: "03451500",
			Dt: 0.25, Duration: 365.0,
			Params: ModelParams{
				Imax: 9.0, Sumax: 200.0, Qsmax: 7.0,
				AlphaE: 85.0, AlphaF: 0.2, AlphaS: 0.0, AlphaI: 50.0,
				Ks: 70.0, Kf: 2.5,
			},
		},
		// Quick-responding catchment: small stores, fast reservoirs.
		"flashy": {
			Model: "river", Integrator: "rk4",
			Dt: 0.1, Duration: 90.0,
			Params: ModelParams{
				Imax: 2.0, Sumax: 50.0, Qsmax: 3.0,
				AlphaE: 20.0, AlphaF: 1.5, AlphaS: 0.0, AlphaI: 10.0,
				Ks: 20.0, Kf: 0.8,
			},
		},
		// Groundwater-dominated catchment: deep storage, slow release.
		"baseflow": {
			Model: "river", Integrator: "rk4",
			Dt: 0.5, Duration: 730.0,
			Params: ModelParams{
				Imax: 5.0, Sumax: 400.0, Qsmax: 12.0,
				AlphaE: 60.0, AlphaF: -0.5, AlphaS: 0.0, AlphaI: 30.0,
				Ks: 150.0, Kf: 5.0,
			},
		},
	},
}

func GetPreset(model, name string) *Config {
	group, ok := Presets[model]
	if !ok {
		return nil
	}
	return group[name]
}

func ListPresets(model string) []string {
	group, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
