/*
scenarios.go - Demo datasets for the SHU distribution endpoints

PURPOSE:
  Canned member rosters and rule sets so the dashboard and CLI can
  demonstrate a distribution without real member data. Loading a scenario
  runs the distributor and records the run like any other request.

SCENARIOS:
  small-coop:   Two members, textbook 40/30/20/10 rules
  mixed-tiers:  Five members across all three tiers and tenures
  no-savings:   Members with zero savings everywhere (exercises the
                zero-denominator rule)

SEE ALSO:
  - handlers.go: LoadScenario endpoint
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/koperasi/finance-engine/member"
	"github.com/koperasi/finance-engine/shu"
)

// Scenario is a named demo distribution input.
type Scenario struct {
	Name        string
	Description string
	Config      shu.Config
}

func standardDemoRules() shu.Rules {
	return shu.Rules{
		SavingsPercent:         40,
		TransactionPercent:     30,
		EqualPercent:           20,
		MembershipBonusPercent: 10,
	}
}

// Scenarios returns the built-in demo scenarios in display order.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:        "small-coop",
			Description: "Two members, standard 40/30/20/10 rules",
			Config: shu.Config{
				TotalSHU: 10_000_000,
				Rules:    standardDemoRules(),
				Members: []member.Contribution{
					{MemberID: "m-001", MemberName: "Budi Santoso", SavingsBalance: 5_000_000,
						TransactionVolume: 2_000_000, DurationMonths: 24, Membership: member.TypeRegular},
					{MemberID: "m-002", MemberName: "Siti Rahayu", SavingsBalance: 1_000_000,
						TransactionVolume: 500_000, DurationMonths: 24, Membership: member.TypeRegular},
				},
			},
		},
		{
			Name:        "mixed-tiers",
			Description: "Five members across regular, premium and investor tiers",
			Config: shu.Config{
				TotalSHU: 50_000_000,
				Rules:    standardDemoRules(),
				Members: []member.Contribution{
					{MemberID: "m-101", MemberName: "Agus Wijaya", SavingsBalance: 12_000_000,
						TransactionVolume: 8_000_000, DurationMonths: 60, Membership: member.TypeInvestor},
					{MemberID: "m-102", MemberName: "Dewi Lestari", SavingsBalance: 7_500_000,
						TransactionVolume: 3_000_000, DurationMonths: 36, Membership: member.TypePremium},
					{MemberID: "m-103", MemberName: "Rina Kusuma", SavingsBalance: 4_000_000,
						TransactionVolume: 6_500_000, DurationMonths: 48, Membership: member.TypePremium},
					{MemberID: "m-104", MemberName: "Joko Susilo", SavingsBalance: 2_000_000,
						TransactionVolume: 1_500_000, DurationMonths: 18, Membership: member.TypeRegular},
					{MemberID: "m-105", MemberName: "Andi Pratama", SavingsBalance: 500_000,
						TransactionVolume: 250_000, DurationMonths: 6, Membership: member.TypeRegular},
				},
			},
		},
		{
			Name:        "no-savings",
			Description: "Members without savings; the savings component zeroes out",
			Config: shu.Config{
				TotalSHU: 5_000_000,
				Rules:    standardDemoRules(),
				Members: []member.Contribution{
					{MemberID: "m-201", MemberName: "Tono", TransactionVolume: 900_000,
						DurationMonths: 12, Membership: member.TypeRegular},
					{MemberID: "m-202", MemberName: "Wati", TransactionVolume: 600_000,
						DurationMonths: 30, Membership: member.TypePremium},
				},
			},
		},
	}
}

func findScenario(name string) (Scenario, bool) {
	for _, s := range Scenarios() {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

// ListScenarios returns the available demo scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	scenarios := Scenarios()
	dtos := make([]ScenarioDTO, len(scenarios))
	for i, s := range scenarios {
		dtos[i] = ScenarioDTO{
			Name:        s.Name,
			Description: s.Description,
			MemberCount: len(s.Config.Members),
			TotalSHU:    s.Config.TotalSHU,
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"scenarios": dtos})
}

// LoadScenario distributes a named demo scenario and records the run.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	scenario, ok := findScenario(req.Name)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown scenario: "+req.Name, nil)
		return
	}

	result, err := shu.Distribute(scenario.Config)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "distribution failed", err)
		return
	}

	runID, err := h.Store.SaveDistributionRun(r.Context(), scenario.Name, scenario.Config.TotalSHU, result)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to record run", err)
		return
	}

	dto := toDistributionDTO(result)
	dto.RunID = runID
	writeJSON(w, http.StatusOK, dto)
}
