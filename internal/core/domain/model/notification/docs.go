// Package notification contains the delivery-tracking value objects shared by
// record kinds that carry tracked email notifications (submissions and
// customization requests).
//
// The central type is Delivery, a small state machine over the persisted
// notification status (none, pending, sent, failed). Its pending state doubles
// as the single-flight guard that serializes concurrent delivery attempts for
// a record without any in-memory coordination.
package notification
