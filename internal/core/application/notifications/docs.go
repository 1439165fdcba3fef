// Package notifications contains the notification dispatcher and the
// delivery tracker.
//
// The dispatcher renders the email for an event and hands it to the injected
// mail transport, converting any transport fault into a plain failure
// outcome. The tracker sequences a tracked delivery attempt around the
// dispatcher: mark pending, persist durably, dispatch, record the outcome,
// persist again. The two persistence calls are deliberate; the intermediate
// pending state is the single-flight guard and the crash-recovery anchor.
//
// Delivery is at-least-once: if the process dies after the transport accepts
// the message but before the outcome is persisted, a later resend sends a
// second email. Exactly-once is explicitly not attempted.
package notifications
