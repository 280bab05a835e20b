// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package storage

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/wanderlust/internal/recommend"
)

//go:embed data/profiles.yaml
var defaultProfilesYAML []byte

// profilesKey is the top-level YAML key holding the profile list.
const profilesKey = "profiles"

// bytesProvider is a koanf.Provider over an in-memory document.
type bytesProvider []byte

func (b bytesProvider) ReadBytes() ([]byte, error) {
	return b, nil
}

func (b bytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("bytes provider does not support Read")
}

// ParseProfiles decodes a YAML profile document.
func ParseProfiles(data []byte) ([]recommend.ReferenceProfile, error) {
	return loadProfiles(bytesProvider(data))
}

// LoadProfiles builds the reference profile set from the YAML file at path,
// or from the embedded defaults when path is empty.
func LoadProfiles(path string) (*recommend.ProfileSet, error) {
	var provider koanf.Provider = bytesProvider(defaultProfilesYAML)
	if path != "" {
		provider = file.Provider(path)
	}

	profiles, err := loadProfiles(provider)
	if err != nil {
		return nil, err
	}
	return recommend.NewProfileSet(profiles)
}

func loadProfiles(provider koanf.Provider) ([]recommend.ReferenceProfile, error) {
	k := koanf.New(".")
	if err := k.Load(provider, yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}
	if !k.Exists(profilesKey) {
		return nil, fmt.Errorf("load profiles: missing %q key", profilesKey)
	}

	var profiles []recommend.ReferenceProfile
	if err := k.UnmarshalWithConf(profilesKey, &profiles, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	return profiles, nil
}
