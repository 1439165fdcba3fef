// Package submission contains the resale submission aggregate.
//
// A submission is created by a customer offering sarees for resale and is
// reviewed by staff exactly once: Pending -> Approved or Pending -> Rejected.
// Approval triggers a tracked customer notification email whose delivery
// state lives on the aggregate alongside the business status.
package submission
