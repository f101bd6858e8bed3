package handlers

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/kalivaraprasad-gonapa/GCP-Pulumi/internal/config"
)

// DoctorReport is the offline diagnostic view of the resolved settings.
type DoctorReport struct {
	Name            string              `json:"name,omitempty"`
	Region          string              `json:"region,omitempty"`
	Subnets         []config.SubnetSpec `json:"subnets,omitempty"`
	SourceRanges    []string            `json:"sourceRanges,omitempty"`
	SSHSourceRanges []string            `json:"sshSourceRanges,omitempty"`
	Valid           bool                `json:"valid"`
	Error           string              `json:"error,omitempty"`
	Warnings        []string            `json:"warnings,omitempty"`
}

// Doctor resolves settings from the environment, validates them, and
// prints a JSON report. It returns an error when the settings would be
// rejected, so CI can gate on it before a preview ever reaches the
// provider.
func Doctor() error {
	report := buildDoctorReport(getenv)

	encoder := json.NewEncoder(os.Stdout)
	if isatty.IsTerminal(os.Stdout.Fd()) {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(report); err != nil {
		return err
	}

	if !report.Valid {
		return fmt.Errorf("configuration is invalid: %s", report.Error)
	}
	return nil
}

func buildDoctorReport(get config.Getter) DoctorReport {
	settings, err := config.Load(get)
	if err != nil {
		return DoctorReport{Valid: false, Error: err.Error()}
	}

	report := DoctorReport{
		Name:            settings.Name,
		Region:          settings.Region,
		Subnets:         settings.Subnets,
		SourceRanges:    settings.SourceRanges,
		SSHSourceRanges: settings.SSHSourceRanges,
		Valid:           true,
	}

	if err := settings.Validate(); err != nil {
		report.Valid = false
		report.Error = err.Error()
		return report
	}

	report.Warnings = doctorWarnings(settings)
	return report
}

// doctorWarnings flags suspicious but not invalid settings.
func doctorWarnings(settings *config.Settings) []string {
	var warnings []string

	// Subnets outside every internal source range will not be reachable
	// through the allow-internal rule.
	for _, subnet := range settings.Subnets {
		covered := false
		for _, source := range settings.SourceRanges {
			contains, err := config.RangeContains(source, subnet.CIDRRange)
			if err == nil && contains {
				covered = true
				break
			}
		}
		if !covered {
			warnings = append(warnings,
				fmt.Sprintf("subnet %s (%s) is not covered by any internal source range", subnet.Name, subnet.CIDRRange))
		}
	}

	// The SSH rule exists to be narrower than the internal one.
	if equalStringSets(settings.SSHSourceRanges, settings.SourceRanges) {
		warnings = append(warnings,
			"ssh source ranges are identical to the general source ranges; set the trusted ranges explicitly")
	}

	return warnings
}

func equalStringSets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]bool, len(a))
	for _, value := range a {
		set[value] = true
	}
	for _, value := range b {
		if !set[value] {
			return false
		}
	}
	return true
}
