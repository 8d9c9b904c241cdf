package domain

import "time"

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusResponded LeadStatus = "responded"
	LeadStatusConverted LeadStatus = "converted"
)

type Lead struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Platform    string     `json:"platform"`
	ProfileURL  string     `json:"profileUrl"`
	Company     string     `json:"company,omitempty"`
	Position    string     `json:"position,omitempty"`
	Status      LeadStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastContact *time.Time `json:"lastContact,omitempty"`
}
