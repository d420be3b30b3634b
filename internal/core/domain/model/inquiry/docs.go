// Package inquiry defines the customer-inquiry domain model: the integer
// Status code with its bit-exact label mapping and transition table, and the
// read-time Snapshot. Status inference and transition gating live in
// services.InquiryStatusEngine.
package inquiry
