// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package server

// MaxQueueOps exposes maxQueueOps to the external server_test package.
const MaxQueueOps = maxQueueOps
