// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package watcher announces newly imported draws to live subscribers.

Draws are imported into the database out of band. A Watcher polls the
latest draw of every game on a cron schedule and broadcasts the draw record
of each game whose draw number went up:

	w := watcher.New(store, hub, logger)
	if err := w.Start("@every 1m"); err != nil {
		// bad schedule
	}
	defer w.Stop()

The first poll only records what is already there, so a restart does not
re-announce old draws.
*/
package watcher
