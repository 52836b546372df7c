package entity

import (
	"encoding/json"
)

// Report is the document printed after a successful run.
type Report struct {
	CPUs []CPU `json:"cpus"`
}

func NewReport(t *Table) Report {
	r := Report{CPUs: make([]CPU, 0, t.Len())}
	for _, cpu := range t.CPUs() {
		r.CPUs = append(r.CPUs, *cpu)
	}
	return r
}

func (r Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
