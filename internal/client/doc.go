// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the hms command-line client.
//
// Every subcommand maps to one call of the HTTP API through an
// [adapter.ServerAdapter]. Results are printed as text or, with
// --format json, as the JSON the server returned.
package client
