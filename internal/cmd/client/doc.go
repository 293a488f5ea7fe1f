// Package client contains the Cobra CLI commands for the bus client.
//
// # Overview
//
// Commands resolve their configuration in three layers: config file, PUBSUB_*
// environment overlay, then flags. Each command dials the bus on demand and
// prints results as JSON lines, one object per line, so output composes with
// jq and friends.
package client
