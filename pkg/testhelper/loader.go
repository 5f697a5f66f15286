// Package testhelper provides fixture loading for conversion tests.
//
// Fixtures are YAML files describing one conversion each: the raw test log
// fed to the converter and either the expected report (in a companion file,
// so literal tabs stay out of the YAML) or the expected failure exit code.
//
// Example usage in a test:
//
//	cases, err := testhelper.LoadCases(filepath.Join(fixturesDir(), "convert"))
//	if err != nil {
//	    t.Fatal(err)
//	}
//
//	for _, tc := range cases {
//	    t.Run(tc.Name, func(t *testing.T) {
//	        // run the conversion on tc.Input, compare against tc.Report
//	    })
//	}
package testhelper

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Case represents a single conversion fixture loaded from a YAML file.
type Case struct {
	// Name is the fixture name (derived from the filename when omitted).
	Name string `yaml:"name"`

	// Input is the raw test log content.
	Input string `yaml:"input"`

	// ReportFile names a companion file holding the expected report,
	// relative to the fixture file.
	ReportFile string `yaml:"report_file,omitempty"`

	// ExitCode is the expected CLI exit code.
	ExitCode int `yaml:"exit_code"`

	// Description provides optional documentation.
	Description string `yaml:"description,omitempty"`

	// Skip marks the fixture as skipped if true.
	Skip bool `yaml:"skip,omitempty"`

	// Report is the expected report content, loaded from ReportFile.
	Report string `yaml:"-"`
}

// LoadCase loads a single fixture file and resolves its report file.
func LoadCase(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Case
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}

	if c.Name == "" {
		base := filepath.Base(path)
		c.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	if c.ReportFile != "" {
		report, err := os.ReadFile(filepath.Join(filepath.Dir(path), c.ReportFile))
		if err != nil {
			return nil, fmt.Errorf("fixture %s: %w", path, err)
		}
		c.Report = string(report)
	}

	return &c, nil
}

// LoadCases loads all fixtures matching dir/*.yaml, in filename order.
func LoadCases(dir string) ([]Case, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}

	var cases []Case
	for _, f := range files {
		c, err := LoadCase(f)
		if err != nil {
			return nil, err
		}
		cases = append(cases, *c)
	}

	return cases, nil
}
