package vin

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

const (
	codeLen     = 17
	wmiEnd      = 3
	vdsEnd      = 9
	checkPos    = 8
	yearPos     = 9
	plantPos    = 10
	serialStart = 12
)

// Cache keys read by the extended-info accessors. They mirror the flat
// vPIC response field names and are the contract any ExtendedSource must
// match to its backing service.
const (
	KeyFuelType    = "FuelTypePrimary"
	KeyMake        = "Make"
	KeyMakeID      = "MakeID"
	KeyModel       = "Model"
	KeyModelID     = "ModelID"
	KeyVehicleType = "VehicleType"
)

// ExtendedSource resolves a normalized VIN to a record of named attributes
// from an external data source. A VIN the source does not know is an empty
// map, not an error.
type ExtendedSource interface {
	Fetch(ctx context.Context, code string) (map[string]string, error)
}

// VIN is a parsed vehicle identification number. The code and its segments
// are immutable after construction; only the extended-info cache is
// populated lazily, at most once per record.
type VIN struct {
	code string
	wmi  string
	vds  string
	vis  string

	source ExtendedSource

	mu    sync.Mutex
	group singleflight.Group
	cache map[string]string
}

// New parses raw into a VIN with extended lookups disabled. Construction
// never fails: the input is normalized and sliced positionally, so
// under-length input yields truncated segments and zero-value positional
// accessors. Length is enforced by validation, not construction.
func New(raw string) *VIN { return NewWithSource(raw, nil) }

// NewWithSource parses raw into a VIN that may consult src for extended
// attributes. A nil src disables extended lookups.
func NewWithSource(raw string, src ExtendedSource) *VIN {
	code := Normalize(raw)

	return &VIN{
		code:   code,
		wmi:    slice(code, 0, wmiEnd),
		vds:    slice(code, wmiEnd, vdsEnd),
		vis:    slice(code, vdsEnd, codeLen),
		source: src,
	}
}

// slice cuts [from:to) out of s, clamped to its length.
func slice(s string, from, to int) string {
	if from > len(s) {
		return ""
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}

// Code returns the normalized code.
func (v *VIN) Code() string { return v.code }

// WMI returns the world manufacturer identifier (characters 1-3).
func (v *VIN) WMI() string { return v.wmi }

// VDS returns the vehicle descriptor section (characters 4-9).
func (v *VIN) VDS() string { return v.vds }

// VIS returns the vehicle identifier section (characters 10-17).
func (v *VIN) VIS() string { return v.vis }

// Region maps the leading character onto one of the six region codes.
// Characters that head no region (I, O, Q, 0) report absence rather than
// an error.
func (v *VIN) Region() (string, bool) {
	if v.code == "" {
		return "", false
	}

	c := v.code[0]
	if c == 'I' || c == 'O' || c == 'Q' {
		return "", false
	}

	switch {
	case c >= 'A' && c <= 'H':
		return "AF", true
	case c >= 'J' && c <= 'R':
		return "AS", true
	case c >= 'S' && c <= 'Z':
		return "EU", true
	case c >= '1' && c <= '5':
		return "NA", true
	case c == '6' || c == '7':
		return "OC", true
	case c == '8' || c == '9':
		return "SA", true
	}

	return "", false
}

// Manufacturer resolves the WMI against the manufacturer table, retrying
// with the 2-character prefix for manufacturers that registered a short
// WMI. No further fuzzy matching happens.
func (v *VIN) Manufacturer() (string, bool) {
	if name, ok := manufacturers[v.wmi]; ok {
		return name, true
	}
	if len(v.wmi) >= 2 {
		if name, ok := manufacturers[v.wmi[:2]]; ok {
			return name, true
		}
	}
	return "", false
}

// ChecksumChar returns the check-digit character. European-region codes
// report absence: ISO 3779 defines no checksum for them, whatever the
// position holds.
func (v *VIN) ChecksumChar() (byte, bool) {
	if region, _ := v.Region(); region == "EU" {
		return 0, false
	}
	if len(v.code) <= checkPos {
		return 0, false
	}
	return v.code[checkPos], true
}

// ModelYearCode returns the model-year character.
func (v *VIN) ModelYearCode() byte { return v.at(yearPos) }

// Year resolves the model-year code through the year table, defaulting to
// FallbackYear for codes outside it.
func (v *VIN) Year() int {
	if y, ok := modelYears[v.at(yearPos)]; ok {
		return y
	}
	return FallbackYear
}

// AssemblyPlant returns the plant character verbatim; its meaning is
// manufacturer-specific and not interpreted here.
func (v *VIN) AssemblyPlant() byte { return v.at(plantPos) }

// SerialNumber returns the production serial (last 5 characters) verbatim.
func (v *VIN) SerialNumber() string { return slice(v.code, serialStart, codeLen) }

// Valid reports whether the record's own code passes checksum validation.
// Use the package-level Valid to test a candidate string without
// constructing a record.
func (v *VIN) Valid() bool { return Valid(v.code) }

func (v *VIN) at(i int) byte {
	if i >= len(v.code) {
		return 0
	}
	return v.code[i]
}

// extended returns the attribute cache, fetching it through the source on
// first use. Fetch errors and not-found responses come back as an empty
// map and are not cached, so a later access retries the fetch. Concurrent
// first accesses share one in-flight fetch.
func (v *VIN) extended(ctx context.Context) map[string]string {
	if v.source == nil {
		return nil
	}

	v.mu.Lock()
	cached := v.cache
	v.mu.Unlock()
	if len(cached) > 0 {
		return cached
	}

	res, _, _ := v.group.Do(v.code, func() (any, error) {
		v.mu.Lock()
		if len(v.cache) > 0 {
			cached := v.cache
			v.mu.Unlock()
			return cached, nil
		}
		v.mu.Unlock()

		attrs, err := v.source.Fetch(ctx, v.code)
		if err != nil || len(attrs) == 0 {
			return map[string]string(nil), nil
		}

		v.mu.Lock()
		v.cache = attrs
		v.mu.Unlock()
		return attrs, nil
	})

	return res.(map[string]string)
}

func (v *VIN) extendedValue(ctx context.Context, key string) (string, bool) {
	val, ok := v.extended(ctx)[key]
	if !ok || val == "" {
		return "", false
	}
	return val, true
}

// FuelType resolves the reported fuel name through the fuel-type table.
// Unknown names and missing data both report absence.
func (v *VIN) FuelType(ctx context.Context) (int, bool) {
	name, ok := v.extendedValue(ctx, KeyFuelType)
	if !ok {
		return 0, false
	}
	code, ok := fuelTypes[name]
	return code, ok
}

// Make returns the vehicle make as reported by the extended source.
func (v *VIN) Make(ctx context.Context) (string, bool) {
	return v.extendedValue(ctx, KeyMake)
}

// Model returns the vehicle model as reported by the extended source.
func (v *VIN) Model(ctx context.Context) (string, bool) {
	return v.extendedValue(ctx, KeyModel)
}

// VehicleType returns the vehicle type as reported by the extended source.
func (v *VIN) VehicleType(ctx context.Context) (string, bool) {
	return v.extendedValue(ctx, KeyVehicleType)
}

// MakeID returns the numeric make identifier. A missing field reports
// absence; a value that is present but not numeric surfaces as a parse
// error, unlike every other extended accessor.
func (v *VIN) MakeID(ctx context.Context) (int, bool, error) {
	return v.extendedID(ctx, KeyMakeID)
}

// ModelID returns the numeric model identifier with the same contract as
// MakeID.
func (v *VIN) ModelID(ctx context.Context) (int, bool, error) {
	return v.extendedID(ctx, KeyModelID)
}

func (v *VIN) extendedID(ctx context.Context, key string) (int, bool, error) {
	raw, ok := v.extendedValue(ctx, key)
	if !ok {
		return 0, false, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("parsing %s %q: %w", key, raw, err)
	}
	return id, true, nil
}
