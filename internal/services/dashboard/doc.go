// Package dashboard serves the loan-pool dashboard over HTTP.
//
// Each visitor gets a session holding its own filter state. Requests for the
// page, chart fragments, single-panel SVGs, CSV exports and JSON views all
// read through that state, so one visitor's filters never leak into another's
// charts or downloads.
package dashboard
