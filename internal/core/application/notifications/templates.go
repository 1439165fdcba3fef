package notifications

import (
	"html/template"
	"strings"

	"punarvasthra/internal/core/domain/model/customization"
	"punarvasthra/internal/core/domain/model/order"
	"punarvasthra/internal/core/domain/model/submission"
)

// Templates for the three notification events. Rendering is pure: record
// data in, subject and HTML body out. Subjects are fixed per event.

var submissionApprovedTmpl = template.Must(template.New("submission.approved").Parse(`
<h2>Hello {{.FullName}},</h2>
<p>Good news! Your resale submission has been approved.</p>
<h3>Submission Details:</h3>
<p><strong>Number of Sarees:</strong> {{.SareeCount}}</p>
<p><strong>Material:</strong> {{.MaterialType}}</p>
<p><strong>Condition:</strong> {{.SareeCondition}}</p>
<p>Please visit our {{.PreferredBranch}} branch on {{.PreferredDate}} at {{.PreferredTime}}.</p>
`))

var customizationAssignedTmpl = template.Must(template.New("customizationRequest.assigned").Parse(`
<h2>Hello {{.RequesterName}},</h2>
<p>Your customization request has been assigned to a tailor.</p>
<h3>Request Details:</h3>
<p><strong>Product Type:</strong> {{.ProductType}}</p>
<p><strong>Material:</strong> {{.Material}}</p>
<p><strong>Color Description:</strong> {{.ColorDescription}}</p>
<p><strong>Special Notes:</strong> {{if .SpecialNotes}}{{.SpecialNotes}}{{else}}None{{end}}</p>
`))

var orderConfirmedTmpl = template.Must(template.New("order.confirmed").Parse(`
<h2>Thank you for your order, {{.FirstName}}!</h2>
<h3>Order Details:</h3>
<p><strong>Order Number:</strong> {{.OrderNumber}}</p>
<p><strong>Total Amount:</strong> {{printf "%.2f" .TotalAmount}}</p>
<h3>Items:</h3>
{{range .Items}}<p>{{.Title}} x {{.Quantity}}</p>
{{end}}
<p>We will notify you when your order ships.</p>
`))

func renderSubmissionApproved(s *submission.Submission) (subject, body string, err error) {
	var buf strings.Builder
	if err := submissionApprovedTmpl.Execute(&buf, s.Details()); err != nil {
		return "", "", err
	}
	return "Your Resale Submission Has Been Approved", buf.String(), nil
}

func renderCustomizationAssigned(r *customization.Request) (subject, body string, err error) {
	var buf strings.Builder
	if err := customizationAssignedTmpl.Execute(&buf, r.Details()); err != nil {
		return "", "", err
	}
	return "Your Assigned Tailor Details", buf.String(), nil
}

func renderOrderConfirmed(o *order.Order) (subject, body string, err error) {
	data := struct {
		FirstName   string
		OrderNumber string
		TotalAmount float64
		Items       []order.Item
	}{
		FirstName:   o.Customer().FirstName,
		OrderNumber: o.OrderNumber(),
		TotalAmount: o.TotalAmount(),
		Items:       o.Items(),
	}

	var buf strings.Builder
	if err := orderConfirmedTmpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return "Order Confirmation", buf.String(), nil
}
