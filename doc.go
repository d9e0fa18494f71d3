// Package realty models a property portfolio and derives its financial
// picture. It is designed to be local-first: every metric is recomputed from
// the raw records, nothing derived is stored.
//
// The core functionalities include:
//   - Entity model: properties with their acquisition, lease, management,
//     appraisals and documents, plus tenants, standalone leases, rent
//     payments and the activity log.
//   - Valuation: the current and prior value of a property from its
//     appraisal history, falling back to the acquisition cost.
//   - Aggregation: portfolio totals, value change and attention counts.
//   - Financial summary: annualized income and expenses, net operating
//     income, return on investment, collected and pending payments.
//   - Time series: the portfolio market value over monthly, quarterly or
//     yearly buckets.
//   - Filtering: property and document selection by search text and facets.
//   - Post-dated checks: the monthly rent schedule of a lease.
//   - Export: the CSV financial report and the import of backend dumps.
//
// This package serves as the foundational logic for the `pms` command-line
// tool. Persistence lives in the store package.
package realty
