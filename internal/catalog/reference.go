package catalog

import "github.com/alexanderramin/tarmac/internal/domain"

// referenceTasks is the canonical 27-step turnaround, ids 0..26 in display
// order: arrival/ramp, departure ramp, check-in, gate and boarding, final
// ground ops.
var referenceTasks = []domain.TaskDefinition{
	// ARRIVAL / RAMP
	{ID: 0, Key: "chocks-on", Title: "Chocks On", TimeoutMin: 0, Team: domain.TeamGroundHandling},
	{ID: 1, Key: "gpu-connected", Title: "GPU Connected", TimeoutMin: 7, Team: domain.TeamGroundHandling, Dependencies: []string{"chocks-on"}},
	{ID: 2, Key: "open-pax-door", Title: "Open Pax Door", TimeoutMin: 8, Team: domain.TeamGateBoarding, Dependencies: []string{"chocks-on"}},
	{ID: 3, Key: "baggage-unloading-start", Title: "Baggage Unloading Start", TimeoutMin: 10, Team: domain.TeamGroundHandling, Dependencies: []string{"open-pax-door"}},
	{ID: 4, Key: "ground-services-ready", Title: "Ground Services Ready", TimeoutMin: 12, Team: domain.TeamGroundHandling, Dependencies: []string{"chocks-on"}},
	{ID: 5, Key: "fuel-truck-arrived", Title: "Fuel Truck Arrived", TimeoutMin: 15, Team: domain.TeamFuel, Dependencies: []string{"ground-services-ready"}},
	{ID: 6, Key: "refueling-start", Title: "Refueling Start", TimeoutMin: 20, Team: domain.TeamFuel, Dependencies: []string{"fuel-truck-arrived"}},
	{ID: 7, Key: "refueling-complete", Title: "Refueling Complete", TimeoutMin: 30, Team: domain.TeamFuel, Dependencies: []string{"refueling-start"}},
	{ID: 8, Key: "cleaning-complete", Title: "Cleaning Complete", TimeoutMin: 35, Team: domain.TeamCleaning, Dependencies: []string{"open-pax-door"}},
	{ID: 9, Key: "catering-delivered", Title: "Catering Delivered", TimeoutMin: 40, Team: domain.TeamCatering, Dependencies: []string{"ground-services-ready"}},
	{ID: 10, Key: "baggage-unloading-complete", Title: "Baggage Unloading Complete", TimeoutMin: 25, Team: domain.TeamGroundHandling, Dependencies: []string{"baggage-unloading-start"}},
	// DEPARTURE / RAMP + TERMINAL
	{ID: 11, Key: "baggage-loading-start", Title: "Baggage Loading Start", TimeoutMin: 45, Team: domain.TeamGroundHandling, Dependencies: []string{"baggage-unloading-complete"}},
	// CHECK-IN
	{ID: 12, Key: "start-check-in", Title: "Start Check-In", TimeoutMin: 120, Team: domain.TeamGateBoarding},
	{ID: 13, Key: "end-check-in", Title: "End Check-In", TimeoutMin: 40, Team: domain.TeamGateBoarding, Dependencies: []string{"start-check-in"}},
	// GATE & BOARDING
	{ID: 14, Key: "first-agent-at-gate", Title: "First Agent at Gate", TimeoutMin: 40, Team: domain.TeamGateBoarding, Dependencies: []string{"end-check-in"}},
	{ID: 15, Key: "second-agent-at-gate", Title: "Second Agent at Gate", TimeoutMin: 35, Team: domain.TeamGateBoarding, Dependencies: []string{"first-agent-at-gate"}},
	{ID: 16, Key: "first-passenger-boarded", Title: "First Passenger Boarded", TimeoutMin: 30, Team: domain.TeamGateBoarding, Dependencies: []string{"first-agent-at-gate"}},
	{ID: 17, Key: "managing-waiting-list", Title: "Managing Waiting List", TimeoutMin: 20, Team: domain.TeamGateBoarding, Dependencies: []string{"first-passenger-boarded"}},
	{ID: 18, Key: "pax-no-show-identification", Title: "Pax No-Show Identification", TimeoutMin: 20, Team: domain.TeamGateBoarding, Dependencies: []string{"first-passenger-boarded"}},
	{ID: 19, Key: "last-baggage-on-aircraft", Title: "Last Baggage on Aircraft", TimeoutMin: 25, Team: domain.TeamGroundHandling, Dependencies: []string{"baggage-loading-start"}},
	{ID: 20, Key: "last-passenger-boarded", Title: "Last Passenger Boarded", TimeoutMin: 15, Team: domain.TeamGateBoarding, Dependencies: []string{"managing-waiting-list", "pax-no-show-identification"}},
	// FINAL GROUND OPS
	{ID: 21, Key: "close-pax-door", Title: "Close Pax Door", TimeoutMin: 10, Team: domain.TeamFlightCrew, Dependencies: []string{"last-passenger-boarded"}},
	{ID: 22, Key: "cargo-doors-closed", Title: "Cargo Doors Closed", TimeoutMin: 10, Team: domain.TeamGroundHandling, Dependencies: []string{"last-baggage-on-aircraft"}},
	{ID: 23, Key: "safety-checks-complete", Title: "Safety Checks Complete", TimeoutMin: 5, Team: domain.TeamFlightCrew, Dependencies: []string{"close-pax-door", "cargo-doors-closed"}},
	{ID: 24, Key: "pushback-requested", Title: "Pushback Requested", TimeoutMin: 5, Team: domain.TeamFlightCrew, Dependencies: []string{"safety-checks-complete"}},
	{ID: 25, Key: "pushback-start", Title: "Pushback Start", TimeoutMin: 3, Team: domain.TeamGroundHandling, Dependencies: []string{"pushback-requested"}},
	{ID: 26, Key: "chocks-off", Title: "Chocks Off", TimeoutMin: 2, Team: domain.TeamGroundHandling, Dependencies: []string{"pushback-start"}},
}

// Reference returns the canonical turnaround catalog. It panics on a
// validation failure, which would mean the reference data itself is broken;
// that is a programming error, not a runtime condition.
func Reference() *Catalog {
	c, err := New(referenceTasks)
	if err != nil {
		panic("catalog: invalid reference data: " + err.Error())
	}
	return c
}
