// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

/*
Package main is the entry point for the visit counter server.

The server hands out SVG badges that count their own views. Every request to
/counter/{name}/svg increments the named counter and returns a freshly
rendered badge; the counters survive restarts in a JSON file or a BadgerDB
directory.

# Startup

 1. Configuration: Koanf v2 (defaults, optional config.yaml, environment)
 2. Logging: zerolog, JSON or console
 3. Storage: file, badger or memory backend behind counter.Store
 4. Rendering: embedded or custom base stylesheet
 5. Auth: JWT admin login and the x-api-key guard for counter writes
 6. HTTP: chi router with CORS, rate limits, request IDs and Prometheus metrics
 7. Supervision: suture v4 tree with the HTTP server and, for badger, value-log GC

# Supervisor Tree

	RootSupervisor ("visitcounter")
	├── DataSupervisor ("data-layer")
	│   └── StorageGCService (STORAGE_BACKEND=badger)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

# Configuration

Commonly used environment variables:

	HTTP_PORT=8000              listen port
	STORAGE_BACKEND=file        file, badger or memory
	DATA_PATH=/data/counters.json
	BADGER_PATH=/data/badger
	API_KEY=...                 enables PUT /api/counter/{name}
	AUTH_MODE=jwt               jwt or none
	JWT_SECRET=...              32+ characters
	ADMIN_USERNAME=admin
	ADMIN_PASSWORD=...
	CORS_ORIGINS=https://example.org
	LOG_LEVEL=info
	LOG_FORMAT=json

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
in-flight requests for up to 10 seconds, then the counter store is closed.

# Example

	export API_KEY=$(openssl rand -hex 20)
	export JWT_SECRET=$(openssl rand -base64 32)
	export ADMIN_PASSWORD='Str0ng!Badge#Pass'
	./visitcounter

	<img src="https://counter.example.org/counter/my-repo/svg?label=Views">
*/
package main
