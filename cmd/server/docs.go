// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

// Package main provides the Wanderlust HTTP server
//
// Wanderlust API recommends travel destinations from a ten-attribute
// preference vector or from a set of liked destinations.
//
// @title Wanderlust API
// @version 1.0
// @description Travel destination recommendations by preference vector or by liked destinations.
// @description
// @description ## Preference vector
// @description
// @description Ten numbers in this order: culture, adventure, nature, beaches, nightlife, cuisine, wellness, urban, seclusion, budget (1 Budget, 2 Mid-range, 3 Luxury).
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address. Health probes allow ten times that.
// @description
// @description ## Error Responses
// @description
// @description Versioned endpoints report errors in this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "VALIDATION_ERROR",
// @description     "message": "vector must contain exactly 10 items",
// @description     "details": {"field": "vector"}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-03-01T12:00:00Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/wanderlust/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /
// @schemes http https
//
// @tag.name Core
// @tag.description Liveness message
//
// @tag.name Recommendations
// @tag.description Content and collaborative recommendations
//
// @tag.name Feedback
// @tag.description User likes and dislikes
//
// @tag.name Catalog
// @tag.description Destinations and reference profiles
//
// @tag.name Health
// @tag.description Health and readiness probes
package main
