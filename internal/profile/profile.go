// Package profile loads user profiles from YAML or JSON files and validates
// them before they are saved.
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Veraticus/lifepath/internal/model"
	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned when a profile document has no content.
var ErrEmpty = errors.New("profile document is empty")

// Load reads a profile from a YAML or JSON file.
func Load(path string) (model.UserProfile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user on the command line
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("failed to read profile: %w", err)
	}

	p, err := Decode(bytes.NewReader(data))
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	return p, nil
}

// Decode parses a single YAML or JSON profile document. Unknown fields are
// rejected so typos do not silently drop data.
func Decode(r io.Reader) (model.UserProfile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p model.UserProfile
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return model.UserProfile{}, ErrEmpty
		}
		return model.UserProfile{}, err
	}
	return Normalize(p), nil
}

// Encode writes p as YAML.
func Encode(w io.Writer, p model.UserProfile) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	return enc.Close()
}

// Normalize trims surrounding whitespace from the free-text fields.
func Normalize(p model.UserProfile) model.UserProfile {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.DOB = strings.TrimSpace(p.DOB)
	p.Location = strings.TrimSpace(p.Location)
	p.LifeGoal = strings.TrimSpace(p.LifeGoal)
	p.Finance.Currency = strings.ToUpper(strings.TrimSpace(p.Finance.Currency))
	return p
}
