// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

// Package storage loads the destination catalog and the reference profile set.
//
// Both sources ship embedded in the binary so the service starts with no data
// files present. Operators can point CATALOG_PATH and PROFILES_PATH at their
// own files to replace them.
//
// # Catalog Format
//
// The catalog is CSV with a header row. Columns are matched by name, so their
// order is free:
//
//	city,country,short_description,budget_level,culture,adventure,nature,
//	beaches,nightlife,cuisine,wellness,urban,seclusion
//
// Every row is checked when the catalog is built. A single malformed row
// rejects the whole file.
//
// # Profile Format
//
// Profiles are YAML, read through koanf:
//
//	profiles:
//	  - id: adventure_enthusiast_001
//	    liked: [Queenstown, Interlaken, Reykjavik]
//	    weights:
//	      adventure: 0.9
package storage
