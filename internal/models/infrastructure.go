package models

import (
	"fmt"
	"sort"
)

// InfrastructureSummary is one entry of the infrastructure index
type InfrastructureSummary struct {
	ID            uint64 `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	TimetableYear uint32 `json:"timetableYear,omitempty" yaml:"timetable_year,omitempty"`
	ValidFrom     string `json:"validFrom,omitempty" yaml:"valid_from,omitempty"`
	ValidTo       string `json:"validTo,omitempty" yaml:"valid_to,omitempty"`
}

// Label returns the picker label, e.g. "17: Netz 2024"
func (s InfrastructureSummary) Label() string {
	return fmt.Sprintf("%d: %s", s.ID, s.Name)
}

// SortSummaries orders summaries by id, in place
func SortSummaries(summaries []InfrastructureSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].ID < summaries[j].ID
	})
}

// InfrastructureIndexResponse represents one raw entry of the infrastructure index
type InfrastructureIndexResponse struct {
	ID           uint64 `json:"id"`
	Anzeigename  string `json:"anzeigename"`
	Fahrplanjahr uint32 `json:"fahrplanjahr"`
	GueltigVon   string `json:"gueltig_von"`
	GueltigBis   string `json:"gueltig_bis"`
}

// ToSummary converts the raw index entry to an InfrastructureSummary
func (r *InfrastructureIndexResponse) ToSummary() InfrastructureSummary {
	return InfrastructureSummary{
		ID:            r.ID,
		Name:          r.Anzeigename,
		TimetableYear: r.Fahrplanjahr,
		ValidFrom:     r.GueltigVon,
		ValidTo:       r.GueltigBis,
	}
}

// InfrastructureResponse represents the raw API response for a single infrastructure.
// Only the fields needed to build a StationGraph are decoded; everything else
// in the document is ignored.
type InfrastructureResponse struct {
	ID             uint64 `json:"id"`
	Anzeigename    string `json:"anzeigename"`
	Ordnungsrahmen struct {
		Betriebsstellen  []OperatingPointResponse `json:"betriebsstellen"`
		Streckensegmente []TrackSegmentResponse   `json:"streckensegmente"`
	} `json:"ordnungsrahmen"`
}

// OperatingPointResponse is a raw station record (Betriebsstelle)
type OperatingPointResponse struct {
	DS100    string  `json:"ds100"`
	Langname string  `json:"langname_stammdaten"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// TrackSegmentResponse is a raw segment record (Streckensegment)
type TrackSegmentResponse struct {
	Von            string `json:"von"`
	Bis            string `json:"bis"`
	Streckennummer uint32 `json:"streckennummer"`
}

// Label returns the diagnostic label FROM-ROUTE-TO
func (r TrackSegmentResponse) Label() string {
	return fmt.Sprintf("%s-%d-%s", r.Von, r.Streckennummer, r.Bis)
}
