// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned when the configuration yields no
// transport to run (empty listen address).
var errNoServersAreCreated = errors.New("no servers are created")
