package slicer

// SliceConfig is the JSON body of the multipart "config" field. All fields
// are optional on the wire; the service falls back to its own defaults.
// CustomParams serializes as an array of [key, value] pairs, which is what
// the service's decoder expects.
type SliceConfig struct {
	PrinterPreset  string      `json:"printer_preset,omitempty"`
	FilamentPreset string      `json:"filament_preset,omitempty"`
	ProcessPreset  string      `json:"process_preset,omitempty"`
	CustomParams   [][2]string `json:"custom_params,omitempty"`
}

// SliceRequest bundles the model blob with its slicing configuration.
// ModelName is sent as the multipart filename; the service validates its
// extension (stl/3mf/amf/obj).
type SliceRequest struct {
	ModelName string
	Model     []byte
	Config    SliceConfig
}

// SliceStats are the print statistics the service reports for a job.
type SliceStats struct {
	EstimatedPrintTime string  `json:"estimated_print_time"`
	TotalUsedFilament  float64 `json:"total_used_filament"` // millimeters
	TotalWeight        float64 `json:"total_weight"`        // grams
	TotalCost          float64 `json:"total_cost"`
}

// SliceResult is the JSON response of POST /slice.
type SliceResult struct {
	JobID string     `json:"job_id"`
	Stats SliceStats `json:"stats"`
	GCode string     `json:"gcode"` // base64-encoded
}

// HealthStatus is the JSON response of GET /health.
type HealthStatus struct {
	Status       string `json:"status"`
	Version      string `json:"version"`
	BambuVersion string `json:"bambu_version"`
}
