package decoder

import (
	"context"
	"fmt"

	"github.com/alovak/vinflow-playground/decoder/models"
	"github.com/alovak/vinflow-playground/internal/vin"
)

var ErrNotFound = fmt.Errorf("not found")

// Service decodes and validates VINs and resolves extended attributes
// through the configured source.
type Service struct {
	source vin.ExtendedSource
}

// NewService returns a decoder service. A nil source disables extended
// lookups; every other operation works without one.
func NewService(source vin.ExtendedSource) *Service {
	return &Service{source: source}
}

// Decode parses raw and returns its structural and table-derived fields.
// It never fails: malformed input decodes to absent fields and valid=false.
func (s *Service) Decode(raw string) *models.DecodedVIN {
	v := vin.New(raw)

	decoded := &models.DecodedVIN{
		VIN:          v.Code(),
		WMI:          v.WMI(),
		VDS:          v.VDS(),
		VIS:          v.VIS(),
		Year:         v.Year(),
		SerialNumber: v.SerialNumber(),
		Valid:        v.Valid(),
	}
	if region, ok := v.Region(); ok {
		decoded.Region = region
	}
	if name, ok := v.Manufacturer(); ok {
		decoded.Manufacturer = name
	}
	if c, ok := v.ChecksumChar(); ok {
		decoded.Checksum = string(c)
	}
	if c := v.ModelYearCode(); c != 0 {
		decoded.ModelYearCode = string(c)
	}
	if c := v.AssemblyPlant(); c != 0 {
		decoded.AssemblyPlant = string(c)
	}

	return decoded
}

// Validate reports whether raw passes checksum validation.
func (s *Service) Validate(raw string) bool {
	return vin.Valid(raw)
}

// Extended resolves external attributes for raw. ErrNotFound means the
// source had nothing for this VIN or extended lookups are disabled; a
// malformed numeric identifier in the external response surfaces as an
// error.
func (s *Service) Extended(ctx context.Context, raw string) (*models.ExtendedInfo, error) {
	v := vin.NewWithSource(raw, s.source)

	info := &models.ExtendedInfo{VIN: v.Code()}
	found := false

	if name, ok := v.Make(ctx); ok {
		info.Make = name
		found = true
	}
	if name, ok := v.Model(ctx); ok {
		info.Model = name
		found = true
	}
	if name, ok := v.VehicleType(ctx); ok {
		info.VehicleType = name
		found = true
	}
	if code, ok := v.FuelType(ctx); ok {
		info.FuelTypeCode = code
		found = true
	}

	makeID, ok, err := v.MakeID(ctx)
	if err != nil {
		return nil, fmt.Errorf("extended info for %s: %w", v.Code(), err)
	}
	if ok {
		info.MakeID = makeID
		found = true
	}

	modelID, ok, err := v.ModelID(ctx)
	if err != nil {
		return nil, fmt.Errorf("extended info for %s: %w", v.Code(), err)
	}
	if ok {
		info.ModelID = modelID
		found = true
	}

	if !found {
		return nil, ErrNotFound
	}

	return info, nil
}
