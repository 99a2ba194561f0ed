package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/printforge/slicectl/internal/domain"
	"github.com/printforge/slicectl/internal/slicer"
)

// presetSelect returns a huh.Select over known preset names, defaulting to
// the current value.
func presetSelect(title string, options []string, value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Value(value)
}

// runPresetPicker collects a preset selection interactively. Fields already
// set (from flags) seed the form; the configured defaults fill the rest.
func runPresetPicker(cfg slicer.Config, sel domain.PresetSelection) (domain.PresetSelection, error) {
	if sel.Printer == "" {
		sel.Printer = cfg.PrinterPreset
	}
	if sel.Filament == "" {
		sel.Filament = cfg.FilamentPreset
	}
	if sel.Process == "" {
		sel.Process = cfg.ProcessPreset
	}

	form := huh.NewForm(
		huh.NewGroup(
			presetSelect("Printer", domain.PrinterPresets, &sel.Printer),
			presetSelect("Filament", domain.FilamentPresets, &sel.Filament),
			presetSelect("Process", domain.ProcessPresets, &sel.Process),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return domain.PresetSelection{}, err
	}
	return sel, nil
}
