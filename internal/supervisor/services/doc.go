// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

/*
Package services adapts the visit counter's long-running components to the
suture.Service interface.

  - HTTPServerService: runs an *http.Server and drains it on shutdown
  - StorageGCService: runs badger value-log GC on a fixed interval

Both return ctx.Err() when the supervisor cancels them. StorageGCService
returns suture.ErrDoNotRestart once the storage backend is closed.
*/
package services
