package model

// Review is a client testimonial shown on the consultation page.
// Reviews are administrator-managed display data with no relationship to
// slots or bookings.
//
// Fields:
//  ID            – primary key identifier.
//  ClientName    – name of the quoted client.
//  ClientCompany – optional company line under the name.
//  ClientPhoto   – optional photo URL.
//  ReviewText    – the testimonial body.
//  Rating        – star rating, 1 to 5.
//  DisplayOrder  – ascending sort position on the page.
type Review struct {
	ID            uint64  `json:"id"`             // consultation_reviews.id
	ClientName    string  `json:"client_name"`    // consultation_reviews.client_name
	ClientCompany *string `json:"client_company"` // consultation_reviews.client_company (nullable)
	ClientPhoto   *string `json:"client_photo"`   // consultation_reviews.client_photo (nullable)
	ReviewText    string  `json:"review_text"`    // consultation_reviews.review_text
	Rating        uint8   `json:"rating"`         // consultation_reviews.rating
	DisplayOrder  int     `json:"display_order"`  // consultation_reviews.display_order
}
