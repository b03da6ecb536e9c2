package domain

import "time"

// PackageRecord is the persisted outcome of one package.
type PackageRecord struct {
	Name       string       `json:"name"`
	Group      int          `json:"group"`
	State      PackageState `json:"state"`
	FailedStep Operation    `json:"failedStep,omitempty"`
}

// RunRecord is the persisted summary of the last release run.
type RunRecord struct {
	Version    string          `json:"version"`
	DryRun     bool            `json:"dryRun"`
	Succeeded  bool            `json:"succeeded"`
	StartedAt  time.Time       `json:"startedAt"`
	FinishedAt time.Time       `json:"finishedAt"`
	Missing    []string        `json:"missing,omitempty"`
	Packages   []PackageRecord `json:"packages"`
}

// NewRunRecord flattens a report into its persisted form.
func NewRunRecord(report RunReport) RunRecord {
	rec := RunRecord{
		Version:    report.Version,
		DryRun:     report.DryRun,
		Succeeded:  report.Succeeded(),
		StartedAt:  report.StartedAt,
		FinishedAt: report.FinishedAt,
		Packages:   []PackageRecord{},
	}
	for _, g := range report.Groups {
		rec.Missing = append(rec.Missing, g.Missing...)
		for _, p := range g.Packages {
			rec.Packages = append(rec.Packages, PackageRecord{
				Name:       p.Name,
				Group:      g.Index + 1,
				State:      p.State,
				FailedStep: p.FailedStep,
			})
		}
	}
	return rec
}
