package models

// DecodedVIN holds every structural and table-derived field of a VIN.
// Absent lookups (unknown region, manufacturer and so on) are omitted from
// the JSON rather than guessed.
type DecodedVIN struct {
	VIN           string `json:"vin"`
	WMI           string `json:"wmi"`
	VDS           string `json:"vds"`
	VIS           string `json:"vis"`
	Region        string `json:"region,omitempty"`
	Manufacturer  string `json:"manufacturer,omitempty"`
	Year          int    `json:"year"`
	ModelYearCode string `json:"model_year_code,omitempty"`
	AssemblyPlant string `json:"assembly_plant,omitempty"`
	SerialNumber  string `json:"serial_number,omitempty"`
	Checksum      string `json:"checksum,omitempty"`
	Valid         bool   `json:"valid"`
}

type ValidationResult struct {
	VIN   string `json:"vin"`
	Valid bool   `json:"valid"`
}

// ExtendedInfo is the narrow subset of external attributes the service
// exposes.
type ExtendedInfo struct {
	VIN          string `json:"vin"`
	Make         string `json:"make,omitempty"`
	MakeID       int    `json:"make_id,omitempty"`
	Model        string `json:"model,omitempty"`
	ModelID      int    `json:"model_id,omitempty"`
	VehicleType  string `json:"vehicle_type,omitempty"`
	FuelTypeCode int    `json:"fuel_type_code,omitempty"`
}
