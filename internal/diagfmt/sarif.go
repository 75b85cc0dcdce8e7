package diagfmt

import (
	"encoding/json"
	"io"
	"path/filepath"
	"sort"

	"omnicode/internal/diag"
)

const (
	sarifSchema  = "https://json.schemastore.org/sarif-2.1.0.json"
	sarifVersion = "2.1.0"
)

type sarifLog struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool        sarifTool         `json:"tool"`
	Invocations []sarifInvocation `json:"invocations,omitempty"`
	Results     []sarifResult     `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version,omitempty"`
	InformationURI string      `json:"informationUri,omitempty"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	ShortDescription sarifMessage `json:"shortDescription"`
}

type sarifInvocation struct {
	Arguments           []string `json:"arguments,omitempty"`
	ExecutionSuccessful bool     `json:"executionSuccessful"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId,omitempty"`
	RuleIndex *int            `json:"ruleIndex,omitempty"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysical `json:"physicalLocation"`
}

type sarifPhysical struct {
	ArtifactLocation sarifArtifact `json:"artifactLocation"`
	Region           *sarifRegion  `json:"region,omitempty"`
}

type sarifArtifact struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
}

func sarifLevel(s diag.Severity) string {
	switch s {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "note"
	}
}

// BuildSarif assembles a SARIF 2.1.0 log with one run.
func BuildSarif(entries []Entry, meta SarifRunMeta) any {
	used := map[diag.Rule]struct{}{}
	for _, e := range entries {
		for _, d := range e.Diagnostics {
			if d.Rule != diag.RuleNone {
				used[d.Rule] = struct{}{}
			}
		}
	}
	ruleIDs := make([]string, 0, len(used))
	for r := range used {
		ruleIDs = append(ruleIDs, r.ID())
	}
	sort.Strings(ruleIDs)
	index := make(map[string]int, len(ruleIDs))
	rules := make([]sarifRule, len(ruleIDs))
	for i, id := range ruleIDs {
		index[id] = i
		rules[i] = sarifRule{ID: id, ShortDescription: sarifMessage{Text: diag.Rule(id).Title()}}
	}

	results := make([]sarifResult, 0)
	for _, e := range entries {
		uri := filepath.ToSlash(e.Path)
		if uri == "" {
			uri = "stdin"
		}
		for _, d := range e.Diagnostics {
			res := sarifResult{
				Level:   sarifLevel(d.Severity),
				Message: sarifMessage{Text: d.Message},
				Locations: []sarifLocation{{PhysicalLocation: sarifPhysical{
					ArtifactLocation: sarifArtifact{URI: uri},
				}}},
			}
			if d.Rule != diag.RuleNone {
				i := index[d.Rule.ID()]
				res.RuleID = d.Rule.ID()
				res.RuleIndex = &i
			}
			if d.HasLine() {
				res.Locations[0].PhysicalLocation.Region = &sarifRegion{StartLine: d.Line, StartColumn: d.Column}
			}
			results = append(results, res)
		}
	}

	run := sarifRun{
		Tool: sarifTool{Driver: sarifDriver{
			Name:           meta.ToolName,
			Version:        meta.ToolVersion,
			InformationURI: meta.InformationURI,
			Rules:          rules,
		}},
		Results: results,
	}
	if len(meta.InvocationArgs) > 0 {
		run.Invocations = []sarifInvocation{{Arguments: meta.InvocationArgs, ExecutionSuccessful: true}}
	}
	return sarifLog{Schema: sarifSchema, Version: sarifVersion, Runs: []sarifRun{run}}
}

// Sarif форматирует диагностики в SARIF формат (v2.1.0)
func Sarif(w io.Writer, entries []Entry, meta SarifRunMeta) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildSarif(entries, meta))
}
