// Package oimkit converts flat cartographic index records into
// OpenIndexMaps (OIM) GeoJSON documents.
//
// # Pipeline
//
// The core is a single-pass, purely computational pipeline:
//
//	raw records ──▶ builder (lookup tables + date classification)
//	                   │
//	                   ▼
//	            sheet.Sheet values ──▶ sheet.IndexMap ──▶ GeoJSON document
//	                                                          │
//	                                                          ▼
//	                                              schema validation (optional)
//
// Each package owns one stage:
//
//   - record: the RawRecord input type and CSV-backed record sources
//   - lookup: static code→label tables for production, prime meridian,
//     projection, and ISO type codes
//   - builder: field renaming, code resolution, the date-role classifier,
//     and Sheet construction
//   - sheet: the normalized Sheet entity, the ordered IndexMap collection,
//     and their GeoJSON serialization
//   - schema: JSON-Schema validation of serialized documents
//   - errors, config, metric: error taxonomy, run configuration, and
//     pipeline counters
//
// Two commands wrap the library: oim-export runs the full conversion and
// oim-validate checks an existing document against a schema.
//
// # Design constraints
//
// All core components are pure functions over immutable inputs. The lookup
// table is loaded once and shared read-only; per-record failures are
// aggregated as results rather than raised, so one bad record never aborts a
// batch unless the caller asks for strict behavior.
package oimkit
