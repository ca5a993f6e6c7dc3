package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is an optional YAML defaults file. The defaults section applies to
// every interface; the interfaces section overrides it for specific
// interface names. Explicitly set command-line flags override both.
//
//	defaults:
//	  state: "10000:full"
//	  critical: true
//	interfaces:
//	  eth0:
//	    mtu: 9000
//	    address_assigned: ip
type File struct {
	Defaults   Overrides            `yaml:"defaults"`
	Interfaces map[string]Overrides `yaml:"interfaces"`
}

// Overrides is one set of expectation overrides. Absent keys leave the
// current value untouched.
type Overrides struct {
	MTU             *int    `yaml:"mtu"`
	State           *string `yaml:"state"`
	Critical        *bool   `yaml:"critical"`
	AddressAssigned *string `yaml:"address_assigned"`
}

// LoadFile reads and parses a defaults file.
//
//nolint:gosec // G304: the path comes from a command-line argument
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &file, nil
}

// Apply layers the file's defaults and the matching per-interface section
// onto the expectation, in that order.
func (f *File) Apply(exp *Expectation) error {
	if err := f.Defaults.apply(exp); err != nil {
		return err
	}

	if section, ok := f.Interfaces[exp.Interface]; ok {
		if err := section.apply(exp); err != nil {
			return err
		}
	}

	return nil
}

func (o *Overrides) apply(exp *Expectation) error {
	if o.MTU != nil {
		exp.MTU = *o.MTU
	}

	if o.State != nil {
		speed, duplex, err := ParseLinkState(*o.State)
		if err != nil {
			return err
		}
		exp.Speed = speed
		exp.Duplex = duplex
	}

	if o.Critical != nil {
		exp.Critical = *o.Critical
	}

	if o.AddressAssigned != nil {
		mode, err := ParseAddressCheck(*o.AddressAssigned)
		if err != nil {
			return err
		}
		exp.AddressCheck = mode
	}

	return nil
}
