package project

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/titanous/json5"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/divider"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
)

// Keys of the divider settings file.
const (
	KeyPitch  = "SCHLITZABSTAND"
	KeyCount  = "ANZAHL_SCHLITZE"
	KeyOffset = "VERSCHIEBUNG"
)

// LoadDividerSettings reads pitch, slot count and offset from a settings
// file and applies them to base. The file may use JSON5 syntax and numbers
// may be strings with a decimal comma.
func LoadDividerSettings(path string, base divider.Settings) (divider.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read divider settings: %w", err)
	}
	return ParseDividerSettings(data, base)
}

// ParseDividerSettings decodes and validates divider settings.
func ParseDividerSettings(data []byte, base divider.Settings) (divider.Settings, error) {
	var raw map[string]interface{}
	if err := json5.Unmarshal(data, &raw); err != nil {
		return base, fmt.Errorf("%w: divider settings must be an object: %v", model.ErrInvalidInput, err)
	}

	var missing []string
	for _, k := range []string{KeyPitch, KeyCount, KeyOffset} {
		if _, ok := raw[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return base, fmt.Errorf("%w: missing keys %s", model.ErrInvalidInput, strings.Join(missing, ", "))
	}

	pitch, err := number(raw, KeyPitch)
	if err != nil {
		return base, err
	}
	count, err := number(raw, KeyCount)
	if err != nil {
		return base, err
	}
	offset, err := number(raw, KeyOffset)
	if err != nil {
		return base, err
	}

	switch {
	case pitch <= 0:
		return base, fmt.Errorf("%w: %s must be greater than 0", model.ErrInvalidInput, KeyPitch)
	case count != math.Trunc(count) || count < 1 || count > divider.MaxSlots:
		return base, fmt.Errorf("%w: %s must be a whole number between 1 and %d", model.ErrInvalidInput, KeyCount, divider.MaxSlots)
	case offset < 0:
		return base, fmt.Errorf("%w: %s must not be negative", model.ErrInvalidInput, KeyOffset)
	case offset > pitch:
		return base, fmt.Errorf("%w: %s must not exceed %s", model.ErrInvalidInput, KeyOffset, KeyPitch)
	}

	s := base
	s.Pitch = pitch
	s.Count = int(count)
	s.Offset = offset
	return s, nil
}

// number reads a JSON number or a numeric string, accepting a decimal comma.
func number(raw map[string]interface{}, key string) (float64, error) {
	switch v := raw[key].(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(strings.Replace(strings.TrimSpace(v), ",", ".", 1), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s is not a number: %q", model.ErrInvalidInput, key, v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %s is not a number", model.ErrInvalidInput, key)
	}
}

// SaveDividerSettings writes pitch, slot count and offset in the settings file format.
func SaveDividerSettings(path string, s divider.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	data, err := json.MarshalIndent(map[string]interface{}{
		KeyPitch:  s.Pitch,
		KeyCount:  s.Count,
		KeyOffset: s.Offset,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal divider settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write divider settings: %w", err)
	}
	return nil
}
