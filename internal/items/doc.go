// Package items resolves item ids to display names.
//
// The reference data is the ItemSparse client table exported as CSV and
// embedded at build time. Column 0 holds the item id and column 6 the
// display name; every other column is ignored.
package items
