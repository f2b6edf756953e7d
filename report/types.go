package report

import "github.com/sagarc03/jukebox/config"

// CheckResult is the outcome of a bootstrap run as shown to the operator.
type CheckResult struct {
	Valid     bool   `json:"valid" yaml:"valid"`
	Location  string `json:"location" yaml:"location"`
	Reason    string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Rewritten bool   `json:"rewritten" yaml:"rewritten"`
}

// NewCheckResult converts a bootstrap outcome. location is used when the
// outcome carries no config location.
func NewCheckResult(out config.Outcome, location string) CheckResult {
	result := CheckResult{
		Valid:     out.Valid,
		Location:  location,
		Reason:    out.Reason,
		Rewritten: out.Rewritten,
	}
	if out.Config != nil && out.Config.Location() != "" {
		result.Location = out.Config.Location()
	}
	return result
}

// PathResult describes the resolved config location. Created is set when
// the file was just written.
type PathResult struct {
	Path    string `json:"path" yaml:"path"`
	Exists  bool   `json:"exists" yaml:"exists"`
	Created bool   `json:"created,omitempty" yaml:"created,omitempty"`
}
