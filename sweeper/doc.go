// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sweeper runs the recurring purge of stale votes.

# Lifecycle

The sweeper is started once at boot and stopped via context:

	sw := sweeper.New(conn, cat, 24*time.Hour)
	go sw.Run(ctx)

# Sweep Semantics

Each cycle does two things, in order:

 1. Write a reset marker for every screening whose date has passed and
    that doesn't carry one yet. Admin clears write the same marker, so
    a screening that expires naturally and one that was cleared by hand
    converge on the same state.
 2. Delete every vote whose screening has a marker stamped at or before
    now.

Both steps are idempotent, so sweeping twice is the same as sweeping
once, and a sweep interleaved with an admin clear of the same screening
nets out to "no votes for that screening" in either order.

A failed cycle is logged and retried on the next tick; the sweeper never
crashes the process and has no caller to propagate errors to.
*/
package sweeper
