// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest: username, name, password
  - LoginRequest: username, password
  - CastVoteRequest: movieId, screeningId
  - SuggestionRequest: title, year (optional), screeningId

# Response Types

Types for JSON responses:

  - AuthResponse: token, user
  - VoteResponse: vote (null when absent)
  - ScreeningResponse: screening (null when the catalog is empty)
  - ScreeningsResponse: screenings
  - SuggestionResponse / SuggestionsResponse
  - MessageResponse: message
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Screening: scheduled movie night with candidate movies
  - Movie: one candidate, with optional TMDb metadata
  - Vote: a user's single current choice for a screening
  - MovieSuggestion: user-submitted proposal, deduplicated per screening
  - User: opaque identity plus display name
  - MovieMetadata: TMDb enrichment, passed through untouched

# View Types

Aggregated shapes produced by joining the catalog with the vote store:

  - ScreeningView: screening metadata, voting_closed, the caller's vote
  - MovieView: movie fields plus votes count and voter identities
*/
package models
