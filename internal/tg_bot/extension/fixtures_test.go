package extension

import "funding_approval_system/internal/db/models"

func testRequest() *models.Request {
	return &models.Request{
		ID:          15,
		Title:       "Julebord 2025",
		GroupTag:    models.GroupTagBedkom,
		Amount:      "10000",
		Description: "Fancy julebord",
		RequesterID: "111",
	}
}
