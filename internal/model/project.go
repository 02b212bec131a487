package model

// Project is a portfolio item shown on the consultation page.  Like
// reviews, projects are display-only records ordered by DisplayOrder.
type Project struct {
	ID           uint64  `json:"id"`            // consultation_projects.id
	Title        string  `json:"title"`         // consultation_projects.title
	Description  string  `json:"description"`   // consultation_projects.description
	ImageURL     *string `json:"image_url"`     // consultation_projects.image_url (nullable)
	Link         *string `json:"link"`          // consultation_projects.link (nullable)
	DisplayOrder int     `json:"display_order"` // consultation_projects.display_order
}
