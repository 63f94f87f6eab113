// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - PredictRequest: game_id, draws
  - NotifyRequest: draw_number

# Response Types

Types for JSON responses:

  - PredictResponse: predicted_numbers
  - NotifyResponse: delivered
  - GameStats: <prefix>_hot, <prefix>_cold, <prefix>_overdue
  - DrawRecord: draw_number, draw_date
  - ErrorResponse: error, message

# Live Messages

Payloads pushed over the live socket:

  - DrawMessage: draw_number
  - DrawRecord: draw_number, draw_date

# Domain Types

  - Game: per-category pool sizes (main_max, supp_max, powerball_max)
  - Draw: draw_number and its results
  - DrawResult: ball number and raw type tag
  - GameHotCold: precomputed hot/cold lists per category

# Categories

Category is a closed set:

	CategoryMain          ("main", key prefix "main")
	CategorySupplementary ("supplementary", key prefix "supp")
	CategoryPowerball     ("powerball", key prefix "powerball")

ParseCategory maps stored tags to categories and rejects anything else.
*/
package models
