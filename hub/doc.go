// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package hub keeps the live subscribers of each game and fans draw
notifications out to them.

A single Hub is created in main and handed to the router:

	h := hub.New(logger)
	mux := router.NewRouter(db, h, cfg)

Subscribers join with Connect and leave with Disconnect. Broadcast sends to
a snapshot of the game's subscribers; any subscriber whose send fails is
closed and removed, so dead connections are pruned the next time something
is sent to them.
*/
package hub
