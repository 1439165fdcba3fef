package http

import "time"

// Request and response bodies for the JSON API. Hand-written; status and
// notification fields travel in their wire form (status names TitleCase,
// notification statuses lowercase).

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type CreateSubmissionRequest struct {
	FullName        string `json:"fullName"`
	ContactNumber   string `json:"contactNumber"`
	Email           string `json:"email"`
	Address         string `json:"address"`
	SareeCount      int    `json:"sareeCount"`
	SareeCondition  string `json:"sareeCondition"`
	MaterialType    string `json:"materialType"`
	ImagePath       string `json:"imagePath,omitempty"`
	PreferredDate   string `json:"preferredDate"`
	PreferredTime   string `json:"preferredTime"`
	PreferredBranch string `json:"preferredBranch"`
	Notes           string `json:"notes,omitempty"`
}

type SubmissionResponse struct {
	ID                 string     `json:"id"`
	FullName           string     `json:"fullName"`
	Email              string     `json:"email"`
	SareeCount         int        `json:"sareeCount"`
	MaterialType       string     `json:"materialType"`
	PreferredBranch    string     `json:"preferredBranch"`
	Status             string     `json:"status"`
	NotificationStatus string     `json:"notificationStatus"`
	NotificationSentAt *time.Time `json:"notificationSentAt"`
	SubmittedAt        time.Time  `json:"submittedAt"`
}

type ChangeStatusRequest struct {
	Status string `json:"status"`
}

type AssignTailorRequest struct {
	TailorID string `json:"tailorId"`
}

type CustomizationResponse struct {
	ID                 string     `json:"id"`
	RequesterName      string     `json:"requesterName"`
	RequesterEmail     string     `json:"requesterEmail"`
	ProductType        string     `json:"productType"`
	Status             string     `json:"status"`
	AssignedTailorID   *string    `json:"assignedTailorId"`
	NotificationStatus string     `json:"notificationStatus"`
	NotificationSentAt *time.Time `json:"notificationSentAt"`
}

type CreateCustomizationRequest struct {
	RequesterName    string `json:"requesterName"`
	RequesterEmail   string `json:"requesterEmail"`
	Phone            string `json:"phone,omitempty"`
	Address          string `json:"address,omitempty"`
	ProductType      string `json:"productType"`
	Material         string `json:"material"`
	ColorDescription string `json:"colorDescription,omitempty"`
	SpecialNotes     string `json:"specialNotes,omitempty"`
}

type CreateOrderRequest struct {
	OrderNumber string        `json:"orderNumber"`
	Customer    OrderCustomer `json:"customer"`
	Items       []OrderItem   `json:"items"`
	TotalAmount float64       `json:"totalAmount"`
}

type OrderCustomer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
}

type OrderItem struct {
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type OrderResponse struct {
	ID          string    `json:"id"`
	OrderNumber string    `json:"orderNumber"`
	Customer    string    `json:"customer"`
	TotalAmount float64   `json:"totalAmount"`
	Status      string    `json:"status"`
	PlacedAt    time.Time `json:"placedAt"`
}

type ResendNotificationRequest struct {
	Kind     string `json:"kind"`
	RecordID string `json:"recordId"`
}

type ResendNotificationResponse struct {
	NotificationStatus string     `json:"notificationStatus"`
	NotificationSentAt *time.Time `json:"notificationSentAt"`
}
