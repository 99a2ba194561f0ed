package domain

// PresetSelection names the printer, filament, and process presets a slice
// request should be run with. Empty fields defer to the service defaults.
type PresetSelection struct {
	Printer  string
	Filament string
	Process  string
}

// Known preset names for the Bambu A1 profile family shipped with the
// slicing service. The catalog only feeds the interactive picker; any preset
// string the service knows is accepted on the command line.
var (
	PrinterPresets = []string{
		"Bambu Lab A1",
		"Bambu Lab A1 mini",
		"Bambu Lab P1S",
		"Bambu Lab X1 Carbon",
	}

	FilamentPresets = []string{
		"Bambu PLA Basic @BBL A1",
		"Bambu PLA Matte @BBL A1",
		"Bambu PETG Basic @BBL A1",
		"Bambu ABS @BBL A1",
	}

	ProcessPresets = []string{
		"0.20mm Standard @BBL A1",
		"0.12mm Fine @BBL A1",
		"0.28mm Draft @BBL A1",
	}
)
