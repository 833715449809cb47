// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog owns the screening catalog and the voting-window rules.

# Catalog

The Catalog is an explicitly owned, injectable instance - no process-wide
state. It loads from a JSON file and seeds built-in defaults on first run:

	cat, err := catalog.Load("data/config.json")

Read operations:

	all := cat.GetAll()
	s, ok := cat.GetByID("screening_1")
	next, ok := cat.GetNext(time.Now())
	current, ok := cat.Current(time.Now())

Current prefers the next upcoming screening and falls back to the earliest
one when everything has passed, so clients never see a blank state unless
the catalog is empty.

The only mutator is the whole-catalog swap used by config sync:

	err := cat.ReplaceAll(newScreenings)

ReplaceAll validates first (unique movie ids per screening, unique
screening ids, non-zero dates) and swaps under a write lock, so readers
see either the fully-old or fully-new catalog, never a mix.

# Voting Window

	open := catalog.IsVotingOpen(s, now)   // s.Date.After(now)
	stale := cat.Expired(now)              // date <= now

Voting closes the instant the screening time is reached. There is no
grace period and no opening delay.
*/
package catalog
