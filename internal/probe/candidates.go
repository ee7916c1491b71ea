package probe

import "time"

// alternateSlotProcedures are the procedure names the booking router has
// used for slot lookups over time. The duplicate is kept: it is probed twice.
var alternateSlotProcedures = []string{
	"booking.getAvailabilitiesByDate",
	"patientBooking.getAvailableSlots",
	"patientBooking.getAvailableSlots",
	"booking.getAvailableSlots",
}

// candidatePaths are the places the deployment's API entry point may live
var candidatePaths = []string{
	"/api/index.js",
	"/api/index.ts",
	"/api/",
	"/",
	"/api/trpc",
	"/api/trpc/",
}

// healthFields are the health endpoint keys worth reporting
var healthFields = []string{"status", "googleCalendar", "service"}

type dateInput struct {
	Date string `json:"date"`
}

type inputEnvelope struct {
	Input interface{} `json:"input"`
}

// slotsPayload is the body the booking procedures were probed with:
// {"input":{"input":{"date":...}}}
func slotsPayload(date string) inputEnvelope {
	return inputEnvelope{Input: inputEnvelope{Input: dateInput{Date: date}}}
}

// batchPayload is a batched TRPC call for booking.getAvailableSlots
func batchPayload(date string) map[string]interface{} {
	return map[string]interface{}{
		"0": map[string]interface{}{
			"json": map[string]interface{}{
				"id":     "booking.getAvailableSlots",
				"method": "query",
				"params": inputEnvelope{Input: dateInput{Date: date}},
			},
		},
	}
}

// BookingAPICandidates checks health, the slot procedures and OAuth init
func BookingAPICandidates(date string) []Candidate {
	candidates := []Candidate{
		{
			Description: "Health check",
			Timeout:     10 * time.Second,
			Build:       Get("/api/health"),
			Fields:      healthFields,
		},
		{
			Description: "TRPC booking.getAvailableSlots",
			Timeout:     10 * time.Second,
			Build:       PostJSON("/api/trpc/booking.getAvailableSlots", slotsPayload(date)),
			PreviewLen:  200,
		},
	}

	for _, proc := range alternateSlotProcedures {
		candidates = append(candidates, Candidate{
			Description: "Alternate endpoint " + proc,
			Timeout:     5 * time.Second,
			Build:       PostJSON("/api/trpc/"+proc, slotsPayload(date)),
		})
	}

	return append(candidates, Candidate{
		Description: "OAuth init",
		Timeout:     5 * time.Second,
		Build:       Get("/api/oauth/init"),
		Fields:      []string{"url", "authUrl"},
		PreviewLen:  100,
	})
}

// CalendarCandidates checks the entry paths, a batched TRPC call and the
// full health document
func CalendarCandidates(date string) []Candidate {
	candidates := make([]Candidate, 0, len(candidatePaths)+2)
	for _, path := range candidatePaths {
		candidates = append(candidates, Candidate{
			Description: "Path " + path,
			Timeout:     5 * time.Second,
			Build:       Get(path),
			PreviewLen:  100,
		})
	}

	return append(candidates,
		Candidate{
			Description: "TRPC batched payload",
			Timeout:     10 * time.Second,
			Build:       PostJSON("/api/trpc", batchPayload(date)),
			PreviewLen:  200,
		},
		Candidate{
			Description: "Detailed health",
			Timeout:     5 * time.Second,
			Build:       Get("/api/health"),
			DumpJSON:    true,
			PreviewLen:  200,
		},
	)
}
