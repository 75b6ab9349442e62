// Package symaudit audits a native-binding source file against published GTK
// API indexes. It extracts the names of dynamically loaded functions from the
// binding source, checks each name against one or more catalogs (deprecated
// index, per-version symbol index) and reports which functions are deprecated
// or shared between major versions.
//
// This package contains domain types, interfaces and the pure classification
// logic. Implementations live in subdirectories named after their primary
// dependency (e.g., http/, goquery/, regexp/, fs/).
package symaudit
