// Package registry holds the closed set of recognized donation-logistics use
// cases. Each entry carries its rule category and the short remediation text
// shown when narrative generation is unavailable. The table is fixed at build
// time; there is no external configuration source.
package registry

import "fmt"

type Category string

const (
	CategoryReconciliation Category = "RECONCILIATION"
	CategoryValidation     Category = "VALIDATION"
	CategoryProcessEvent   Category = "PROCESS_EVENT"
)

// CSVUploadValidation is the one use case whose resolution is always the
// canned text: the check is binary, no narrative adds anything.
const CSVUploadValidation = "CSV Upload Validation"

type entry struct {
	category    Category
	remediation string
}

// One key per use case, one category per key: the partition into the three
// categories is total and disjoint by construction.
var registry = map[string]entry{
	CSVUploadValidation: {
		CategoryValidation,
		"Simple binary validation. System accepts or rejects the upload. No chatbot needed.",
	},
	"Duplicate Asset Detection": {
		CategoryValidation,
		"AI chatbot detects duplicates, alerts donor instantly, reduces manual cleanup.",
	},
	"Pickup Scheduling Confirmation": {
		CategoryProcessEvent,
		"Bot reconciles scheduled assets vs CSV upload, alerts mismatch, prompts correction.",
	},
	"Donor Asset Data Validation": {
		CategoryValidation,
		"Bot can query donor to fill missing data or correct errors interactively.",
	},
	"Donation Commitment vs Actual Reconciliation": {
		CategoryReconciliation,
		"Bot helps compare commitment vs upload and pickup, alerts donor or admin for mismatches.",
	},
	"Data Privacy Compliance": {
		CategoryProcessEvent,
		"Bot verifies consent flags, requests missing consents interactively to ensure compliance.",
	},
	"Donation Tax Certificate Issuance": {
		CategoryProcessEvent,
		"Bot auto-generates certificates, notifies donors, and tracks issuance status.",
	},
	"Asset Return or Cancellation Request": {
		CategoryProcessEvent,
		"Bot manages cancellation workflows, approves or refers to admin, updates records.",
	},
	"Receiving Assets from Donor": {
		CategoryProcessEvent,
		"Chatbot reconciles expected vs received assets and flags discrepancies for approval.",
	},
	"Partner Asset Classification": {
		CategoryProcessEvent,
		"AI-powered image recognition bot suggests correct classification and reduces manual errors.",
	},
	"Rescheduling & Location Mismatch": {
		CategoryProcessEvent,
		"Bot tracks schedules, alerts all parties, suggests new timings, and confirms.",
	},
	"Partner to Beneficiary Handoff": {
		CategoryProcessEvent,
		"Bot records asset condition, confirms quantities, and alerts admin on discrepancies.",
	},
	"Multiple Pickups in Phases": {
		CategoryProcessEvent,
		"Chatbot tracks phased pickups, aggregates data, and sends reminders for incomplete pickups.",
	},
	"Inventory Overstock Management": {
		CategoryProcessEvent,
		"Bot detects overcapacity and suggests redistribution or pickup rescheduling.",
	},
	"Partner Skill/Capability Mismatch": {
		CategoryProcessEvent,
		"Bot flags assets needing specialized handling and routes them to expert partners.",
	},
	"Partner Non-compliance or SLA Breach": {
		CategoryProcessEvent,
		"Bot monitors SLA data, sends warnings, and escalates persistent issues.",
	},
	"Receipt Confirmation": {
		CategoryProcessEvent,
		"Bot prompts for receipt confirmation and sends reminders until acknowledged.",
	},
	"Device Condition Feedback": {
		CategoryProcessEvent,
		"Bot collects condition reports with photos and triggers alerts for replacements.",
	},
	"Feedback on Usability": {
		CategoryProcessEvent,
		"Bot sends automated surveys and collects structured usability feedback.",
	},
	"Multiple Deliveries Tracking": {
		CategoryProcessEvent,
		"Bot aggregates deliveries and shows clear history and status.",
	},
	"Unauthorized Asset Usage": {
		CategoryProcessEvent,
		"Bot monitors usage logs, flags anomalies, and alerts admin for investigation.",
	},
	"Beneficiary Accessibility Issues": {
		CategoryProcessEvent,
		"Bot collects accessibility issues via feedback and coordinates logistics resolution.",
	},
	"Lost or Stolen Asset Report": {
		CategoryProcessEvent,
		"Bot logs reports, initiates claims workflows, and notifies donor and admin.",
	},
	"Donor Budget vs Execution Reconciliation": {
		CategoryReconciliation,
		"Bot reconciles donation value against promised budget and flags shortfalls or overruns.",
	},
	"Expense Tracking vs Asset Flow": {
		CategoryReconciliation,
		"Bot analyzes financial data against asset logs and alerts admins of anomalies.",
	},
	"Audit Trail & Compliance Reporting": {
		CategoryProcessEvent,
		"Bot ensures all handoffs are logged and auto-generates audit-ready summaries.",
	},
	"Budget Variance Forecasting": {
		CategoryProcessEvent,
		"Bot analyzes historical trends and predicts budget variances for review.",
	},
	"Regulatory Compliance Check": {
		CategoryProcessEvent,
		"Bot tracks deadlines, verifies document completeness, and escalates non-compliance.",
	},
	"Multi-project Resource Allocation": {
		CategoryProcessEvent,
		"Bot recommends resource redistribution based on priority and availability.",
	},
}

func init() {
	for name, e := range registry {
		switch e.category {
		case CategoryReconciliation, CategoryValidation, CategoryProcessEvent:
		default:
			panic(fmt.Sprintf("registry: %q has unknown category %q", name, e.category))
		}
		if e.remediation == "" {
			panic(fmt.Sprintf("registry: %q has no remediation text", name))
		}
	}
}

// CategoryOf returns the rule category for a use case, or false when the name
// is not registered.
func CategoryOf(name string) (Category, bool) {
	e, ok := registry[name]
	return e.category, ok
}

// Remediation returns the canned remediation text for a use case.
func Remediation(name string) (string, bool) {
	e, ok := registry[name]
	return e.remediation, ok
}

// Names returns every registered use-case name, in no particular order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
