// Package customization contains the customization request aggregate.
//
// A request moves Pending -> Assigned -> InProgress -> Completed, with
// cancellation possible from any non-terminal status. Assigning a tailor
// triggers a tracked notification email to the requester.
package customization
